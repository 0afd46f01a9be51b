package kafka

import (
	"context"
	"testing"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClientAppliesDefaults(t *testing.T) {
	client, err := NewClient(Config{
		Brokers: []string{"localhost:9092"},
		Topic:   "orders",
	})
	require.NoError(t, err)
	defer client.GracefulShutdown()

	assert.Equal(t, DefaultMaxAttempts, client.cfg.MaxAttempts)
	assert.Equal(t, DefaultWriteTimeout, client.cfg.WriteTimeout)
	assert.Equal(t, DefaultPartition, client.cfg.Partition)
	assert.NotNil(t, client.writer)
	assert.Nil(t, client.reader)
}

func TestNewClientConsumerMode(t *testing.T) {
	client, err := NewClient(Config{
		Brokers:    []string{"localhost:9092"},
		Topic:      "orders",
		GroupID:    "order-processor",
		IsConsumer: true,
	})
	require.NoError(t, err)
	defer client.GracefulShutdown()

	assert.Nil(t, client.writer)
	assert.NotNil(t, client.reader)
}

func TestNewClientRejectsUnknownSASLMechanism(t *testing.T) {
	_, err := NewClient(Config{
		Brokers: []string{"localhost:9092"},
		Topic:   "orders",
		SASL: SASLConfig{
			Enabled:   true,
			Mechanism: "GSSAPI",
		},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported SASL mechanism")
}

func TestPublishOnConsumerFails(t *testing.T) {
	client, err := NewClient(Config{
		Brokers:    []string{"localhost:9092"},
		Topic:      "orders",
		GroupID:    "order-processor",
		IsConsumer: true,
	})
	require.NoError(t, err)
	defer client.GracefulShutdown()

	err = client.Publish(context.Background(), "key", []byte("value"), nil)
	require.Error(t, err)
}

func TestPublishWithoutSerializerRequiresBytes(t *testing.T) {
	client, err := NewClient(Config{
		Brokers: []string{"localhost:9092"},
		Topic:   "orders",
	})
	require.NoError(t, err)
	defer client.GracefulShutdown()

	err = client.Publish(context.Background(), "key", map[string]interface{}{"a": 1}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no serializer configured")
}

func TestMessageAccessors(t *testing.T) {
	msg := &Message{
		msg: kafkago.Message{
			Topic:     "orders",
			Partition: 3,
			Offset:    42,
			Key:       []byte("order-123"),
			Value:     []byte("raw"),
			Headers: []kafkago.Header{
				{Key: "trace_id", Value: []byte("abc")},
			},
		},
	}

	assert.Equal(t, "orders", msg.Topic())
	assert.Equal(t, 3, msg.Partition())
	assert.Equal(t, int64(42), msg.Offset())
	assert.Equal(t, "order-123", msg.Key())
	assert.Equal(t, []byte("raw"), msg.Body())
	assert.Equal(t, map[string]string{"trace_id": "abc"}, msg.Headers())
}

func TestMessageValueWithoutDeserializer(t *testing.T) {
	msg := &Message{msg: kafkago.Message{Value: []byte("raw")}}

	value, err := msg.Value(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []byte("raw"), value)
}

func TestMessageValueThroughDeserializer(t *testing.T) {
	registry := newTestRegistry(t)
	serializer := NewRegistrySerializer(registry, 1)

	data, err := serializer.Serialize(context.Background(), map[string]interface{}{
		"full_name": "John Doe",
	})
	require.NoError(t, err)

	msg := &Message{
		msg:          kafkago.Message{Value: data},
		deserializer: NewRegistryDeserializer(registry),
	}

	value, err := msg.Value(context.Background())
	require.NoError(t, err)

	decoded, ok := value.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "John Doe", decoded["full_name"])
}
