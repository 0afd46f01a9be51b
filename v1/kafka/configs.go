package kafka

import (
	"time"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/seriouslag/confluent-schema-registry/v1/logger"
)

// Default values applied by NewClient when the corresponding Config field
// is left at its zero value.
const (
	// DefaultMinBytes is the minimum batch size the consumer will accept.
	DefaultMinBytes = 10e3 // 10KB

	// DefaultMaxBytes is the maximum batch size the consumer will accept.
	DefaultMaxBytes = 10e6 // 10MB

	// DefaultMaxWait is the maximum time the consumer waits for a batch.
	DefaultMaxWait = 1 * time.Second

	// DefaultCommitInterval is the interval at which offsets are committed
	// when auto-commit is enabled.
	DefaultCommitInterval = 1 * time.Second

	// DefaultStartOffset determines where a new consumer group starts reading.
	DefaultStartOffset = kafkago.FirstOffset

	// DefaultPartition means no explicit partition assignment; partitions
	// are balanced through the consumer group.
	DefaultPartition = -1

	// DefaultRequiredAcks waits for all in-sync replicas to acknowledge.
	DefaultRequiredAcks = -1

	// DefaultBatchSize is the producer batch size in async mode.
	DefaultBatchSize = 100

	// DefaultBatchTimeout is the producer batch flush interval in async mode.
	DefaultBatchTimeout = 1 * time.Second

	// DefaultMaxAttempts is the number of attempts before a publish fails.
	DefaultMaxAttempts = 3

	// DefaultWriteTimeout bounds a single publish.
	DefaultWriteTimeout = 10 * time.Second
)

// TLSConfig holds TLS settings for broker connections.
type TLSConfig struct {
	// Enabled turns TLS on for all broker connections
	Enabled bool

	// CACertPath is the path to a PEM-encoded CA certificate bundle
	CACertPath string

	// ClientCertPath is the path to a PEM-encoded client certificate
	ClientCertPath string

	// ClientKeyPath is the path to the client certificate's private key
	ClientKeyPath string

	// InsecureSkipVerify disables server certificate verification.
	// Never enable this in production.
	InsecureSkipVerify bool
}

// SASLConfig holds SASL authentication settings for broker connections.
type SASLConfig struct {
	// Enabled turns SASL authentication on
	Enabled bool

	// Mechanism selects the SASL mechanism:
	// "PLAIN", "SCRAM-SHA-256" or "SCRAM-SHA-512"
	Mechanism string

	// Username for SASL authentication
	Username string

	// Password for SASL authentication
	Password string
}

// Config holds the configuration for the Kafka client.
//
// A client is either a producer or a consumer, selected by IsConsumer.
// Producers need Brokers and Topic; consumers additionally need GroupID
// unless an explicit Partition is set.
type Config struct {
	// Brokers is the list of broker addresses (host:port)
	Brokers []string

	// Topic is the topic to produce to or consume from
	Topic string

	// GroupID is the consumer group ID (consumers only)
	GroupID string

	// IsConsumer selects consumer mode; the default is producer mode
	IsConsumer bool

	// MinBytes is the minimum batch size the consumer will accept
	MinBytes int

	// MaxBytes is the maximum batch size the consumer will accept
	MaxBytes int

	// MaxWait is the maximum time the consumer waits for a batch
	MaxWait time.Duration

	// EnableAutoCommit enables periodic offset commits at CommitInterval.
	// When disabled, offsets are committed per message via Message.Commit.
	EnableAutoCommit bool

	// CommitInterval is the auto-commit interval
	CommitInterval time.Duration

	// StartOffset determines where a new consumer group starts reading
	// (kafka.FirstOffset or kafka.LastOffset)
	StartOffset int64

	// Partition pins the consumer to a single partition.
	// Leave at zero (or set to -1) for group-balanced consumption.
	Partition int

	// RequiredAcks is the number of acknowledgements required before a
	// publish is considered successful (-1 means all replicas)
	RequiredAcks int

	// Async enables asynchronous batched publishing
	Async bool

	// BatchSize is the producer batch size in async mode
	BatchSize int

	// BatchTimeout is the producer batch flush interval in async mode
	BatchTimeout time.Duration

	// MaxAttempts is the number of attempts before a publish fails
	MaxAttempts int

	// WriteTimeout bounds a single publish
	WriteTimeout time.Duration

	// CompressionCodec selects the producer compression codec:
	// "gzip", "snappy", "lz4" or "zstd". Empty means no compression.
	CompressionCodec string

	// TLS holds TLS settings for broker connections
	TLS TLSConfig

	// SASL holds SASL authentication settings
	SASL SASLConfig

	// Logger receives the transport's internal error messages when set
	Logger *logger.Logger

	// ErrorLogger is a fallback error log function used when Logger is nil
	ErrorLogger func(msg string, args ...interface{})
}
