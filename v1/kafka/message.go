package kafka

import (
	"context"

	kafkago "github.com/segmentio/kafka-go"
)

// Message is a consumed Kafka message. It gives access to the raw bytes and
// headers, decodes the value through the client's deserializer on demand, and
// commits its offset when auto-commit is disabled.
type Message struct {
	msg          kafkago.Message
	reader       *kafkago.Reader
	deserializer Deserializer
}

// Key returns the message key.
func (m *Message) Key() string {
	return string(m.msg.Key)
}

// Body returns the raw message value bytes.
func (m *Message) Body() []byte {
	return m.msg.Value
}

// Headers returns the message headers as a map.
func (m *Message) Headers() map[string]string {
	headers := make(map[string]string, len(m.msg.Headers))
	for _, h := range m.msg.Headers {
		headers[h.Key] = string(h.Value)
	}
	return headers
}

// Topic returns the topic the message was consumed from.
func (m *Message) Topic() string {
	return m.msg.Topic
}

// Partition returns the partition the message was consumed from.
func (m *Message) Partition() int {
	return m.msg.Partition
}

// Offset returns the message offset within its partition.
func (m *Message) Offset() int64 {
	return m.msg.Offset
}

// Value decodes the message value through the client's deserializer.
// When no deserializer is configured, the raw bytes are returned.
func (m *Message) Value(ctx context.Context) (interface{}, error) {
	if m.deserializer == nil {
		return m.msg.Value, nil
	}
	return m.deserializer.Deserialize(ctx, m.msg.Value)
}

// Commit commits the message offset. Only needed when auto-commit is
// disabled; with auto-commit enabled offsets are committed periodically.
func (m *Message) Commit(ctx context.Context) error {
	return m.reader.CommitMessages(ctx, m.msg)
}
