package kafka

import (
	"context"
)

// Serializer encodes a value into the bytes placed in a Kafka message value.
// Implementations backed by the schema registry produce wire-format framed
// payloads; see RegistrySerializer.
type Serializer interface {
	// Serialize encodes value into message bytes.
	Serialize(ctx context.Context, value interface{}) ([]byte, error)
}

// Deserializer decodes the bytes of a Kafka message value back into a value.
// See RegistryDeserializer for the schema registry backed implementation.
type Deserializer interface {
	// Deserialize decodes message bytes into a value.
	Deserialize(ctx context.Context, data []byte) (interface{}, error)
}

// Client is the call surface offered by this package.
// Implemented by *KafkaClient.
type Client interface {
	// Publish serializes value and writes it to the configured topic.
	Publish(ctx context.Context, key string, value interface{}, headers map[string]string) error

	// Consume starts consuming messages in a background goroutine and
	// returns the channel they are delivered on.
	Consume(ctx context.Context) <-chan *Message

	// GracefulShutdown closes the underlying writer and reader.
	GracefulShutdown() error
}

// ensure interfaces are implemented
var _ Client = (*KafkaClient)(nil)
var _ Serializer = (*RegistrySerializer)(nil)
var _ Deserializer = (*RegistryDeserializer)(nil)
