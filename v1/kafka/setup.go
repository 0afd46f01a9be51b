package kafka

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/compress"
	"github.com/segmentio/kafka-go/sasl"
	"github.com/segmentio/kafka-go/sasl/plain"
	"github.com/segmentio/kafka-go/sasl/scram"

	"github.com/seriouslag/confluent-schema-registry/v1/observability"
)

// KafkaClient publishes and consumes Kafka messages whose values are
// encoded and decoded through a schema registry.
//
// KafkaClient implements the Client interface.
type KafkaClient struct {
	// cfg stores the configuration for this Kafka client
	cfg Config

	// observer provides optional observability hooks for tracking operations
	observer observability.Observer

	// writer is the Kafka writer used for publishing messages
	writer *kafkago.Writer

	// reader is the Kafka reader used for consuming messages
	reader *kafkago.Reader

	// serializer encodes message values before publishing
	serializer Serializer

	// deserializer decodes message values after consuming
	deserializer Deserializer

	// mu protects concurrent access to serializer and deserializer
	mu sync.RWMutex

	closeOnce sync.Once
}

// NewClient creates and initializes a new KafkaClient with the provided
// configuration. A producer or a consumer is set up based on cfg.IsConsumer.
//
// Example:
//
//	client, err := kafka.NewClient(kafka.Config{
//		Brokers: []string{"localhost:9092"},
//		Topic:   "orders",
//	})
//	if err != nil {
//		return err
//	}
//	defer client.GracefulShutdown()
func NewClient(cfg Config) (*KafkaClient, error) {
	// Apply defaults
	if cfg.MinBytes == 0 {
		cfg.MinBytes = DefaultMinBytes
	}
	if cfg.MaxBytes == 0 {
		cfg.MaxBytes = DefaultMaxBytes
	}
	if cfg.MaxWait == 0 {
		cfg.MaxWait = DefaultMaxWait
	}
	if cfg.CommitInterval == 0 {
		cfg.CommitInterval = DefaultCommitInterval
	}
	if cfg.StartOffset == 0 {
		cfg.StartOffset = DefaultStartOffset
	}
	if cfg.Partition == 0 {
		cfg.Partition = DefaultPartition
	}
	if cfg.RequiredAcks == 0 {
		cfg.RequiredAcks = DefaultRequiredAcks
	}
	if cfg.BatchSize == 0 {
		cfg.BatchSize = DefaultBatchSize
	}
	if cfg.BatchTimeout == 0 {
		cfg.BatchTimeout = DefaultBatchTimeout
	}
	if cfg.MaxAttempts == 0 {
		cfg.MaxAttempts = DefaultMaxAttempts
	}
	if cfg.WriteTimeout == 0 {
		cfg.WriteTimeout = DefaultWriteTimeout
	}

	k := &KafkaClient{
		cfg: cfg,
	}

	// Set up TLS config if enabled
	var tlsConfig *tls.Config
	var err error
	if cfg.TLS.Enabled {
		tlsConfig, err = createTLSConfig(cfg.TLS)
		if err != nil {
			return nil, fmt.Errorf("failed to create TLS config: %w", err)
		}
	}

	// Set up SASL mechanism if enabled
	var mechanism sasl.Mechanism
	if cfg.SASL.Enabled {
		mechanism, err = createSASLMechanism(cfg.SASL)
		if err != nil {
			return nil, fmt.Errorf("failed to create SASL mechanism: %w", err)
		}
	}

	if cfg.IsConsumer {
		k.reader = createReader(cfg, tlsConfig, mechanism)
	} else {
		k.writer = createWriter(cfg, tlsConfig, mechanism)
	}

	return k, nil
}

// WithObserver attaches an observer to the Kafka client for tracking
// publish and consume operations. Returns the client for method chaining.
//
// Example:
//
//	client = client.WithObserver(metrics.NewObserver(m))
func (k *KafkaClient) WithObserver(observer observability.Observer) *KafkaClient {
	k.observer = observer
	return k
}

// SetSerializer sets the serializer used to encode published message values.
func (k *KafkaClient) SetSerializer(s Serializer) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.serializer = s
}

// SetDeserializer sets the deserializer used to decode consumed message values.
func (k *KafkaClient) SetDeserializer(d Deserializer) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.deserializer = d
}

// Publish serializes value and writes it to the configured topic.
//
// When a serializer is configured, value is passed through it; a []byte
// value is otherwise written as-is. Headers are optional.
func (k *KafkaClient) Publish(ctx context.Context, key string, value interface{}, headers map[string]string) error {
	start := time.Now()

	err := k.publish(ctx, key, value, headers)

	k.observeOperation("publish", k.cfg.Topic, time.Since(start), err, nil)
	return err
}

func (k *KafkaClient) publish(ctx context.Context, key string, value interface{}, headers map[string]string) error {
	if k.writer == nil {
		return fmt.Errorf("client is configured as a consumer, cannot publish")
	}

	k.mu.RLock()
	serializer := k.serializer
	k.mu.RUnlock()

	var body []byte
	switch {
	case serializer != nil:
		var err error
		body, err = serializer.Serialize(ctx, value)
		if err != nil {
			return err
		}
	default:
		raw, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("no serializer configured and value is not []byte")
		}
		body = raw
	}

	msg := kafkago.Message{
		Key:   []byte(key),
		Value: body,
	}
	for name, val := range headers {
		msg.Headers = append(msg.Headers, kafkago.Header{
			Key:   name,
			Value: []byte(val),
		})
	}

	if err := k.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}
	return nil
}

// Consume starts consuming messages in a background goroutine and returns
// the channel they are delivered on. The channel is closed when ctx is
// cancelled or the reader is closed.
//
// With auto-commit enabled, offsets are committed periodically; otherwise
// call Message.Commit after processing.
//
// Example:
//
//	for msg := range client.Consume(ctx) {
//		value, err := msg.Value(ctx)
//		if err != nil {
//			continue
//		}
//		process(value)
//		if err := msg.Commit(ctx); err != nil {
//			return err
//		}
//	}
func (k *KafkaClient) Consume(ctx context.Context) <-chan *Message {
	out := make(chan *Message)

	go func() {
		defer close(out)

		if k.reader == nil {
			return
		}

		for {
			var msg kafkago.Message
			var err error
			if k.cfg.EnableAutoCommit {
				msg, err = k.reader.ReadMessage(ctx)
			} else {
				msg, err = k.reader.FetchMessage(ctx)
			}
			if err != nil {
				// Context cancellation and reader closure both end the loop.
				return
			}

			k.mu.RLock()
			deserializer := k.deserializer
			k.mu.RUnlock()

			k.observeOperation("consume", msg.Topic, 0, nil, map[string]interface{}{
				"partition": msg.Partition,
				"offset":    msg.Offset,
			})

			select {
			case out <- &Message{msg: msg, reader: k.reader, deserializer: deserializer}:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}

// GracefulShutdown closes the underlying writer and reader.
// Safe to call multiple times.
func (k *KafkaClient) GracefulShutdown() error {
	var err error
	k.closeOnce.Do(func() {
		if k.writer != nil {
			if closeErr := k.writer.Close(); closeErr != nil {
				err = fmt.Errorf("failed to close writer: %w", closeErr)
			}
		}
		if k.reader != nil {
			if closeErr := k.reader.Close(); closeErr != nil && err == nil {
				err = fmt.Errorf("failed to close reader: %w", closeErr)
			}
		}
	})
	return err
}

// createErrorLogger creates a Kafka error logger from the config
func createErrorLogger(cfg Config) kafkago.LoggerFunc {
	// Priority 1: use the structured logger if provided
	if cfg.Logger != nil {
		return func(msg string, args ...interface{}) {
			formattedMsg := msg
			if len(args) > 0 {
				formattedMsg = fmt.Sprintf(msg, args...)
			}
			cfg.Logger.Error("Kafka internal error", nil, map[string]interface{}{
				"error": formattedMsg,
			})
		}
	}

	// Priority 2: use a custom error logger function
	if cfg.ErrorLogger != nil {
		return kafkago.LoggerFunc(cfg.ErrorLogger)
	}

	// Priority 3: use the standard log package
	return func(msg string, args ...interface{}) {
		log.Printf("KAFKA ERROR: "+msg, args...)
	}
}

// createWriter creates a Kafka writer with the given configuration
func createWriter(cfg Config, tlsConfig *tls.Config, mechanism sasl.Mechanism) *kafkago.Writer {
	writerConfig := kafkago.WriterConfig{
		Brokers:      cfg.Brokers,
		Topic:        cfg.Topic,
		Balancer:     &kafkago.LeastBytes{},
		MaxAttempts:  cfg.MaxAttempts,
		WriteTimeout: cfg.WriteTimeout,
		RequiredAcks: cfg.RequiredAcks,
		ErrorLogger:  createErrorLogger(cfg),
	}

	if cfg.Async {
		writerConfig.Async = true
		writerConfig.BatchSize = cfg.BatchSize
		writerConfig.BatchTimeout = cfg.BatchTimeout
	}

	switch cfg.CompressionCodec {
	case "gzip":
		writerConfig.CompressionCodec = &compress.GzipCodec
	case "snappy":
		writerConfig.CompressionCodec = &compress.SnappyCodec
	case "lz4":
		writerConfig.CompressionCodec = &compress.Lz4Codec
	case "zstd":
		writerConfig.CompressionCodec = &compress.ZstdCodec
	}

	writerConfig.Dialer = &kafkago.Dialer{
		TLS:           tlsConfig,
		SASLMechanism: mechanism,
	}

	return kafkago.NewWriter(writerConfig)
}

// createReader creates a Kafka reader with the given configuration
func createReader(cfg Config, tlsConfig *tls.Config, mechanism sasl.Mechanism) *kafkago.Reader {
	readerConfig := kafkago.ReaderConfig{
		Brokers:     cfg.Brokers,
		Topic:       cfg.Topic,
		GroupID:     cfg.GroupID,
		MinBytes:    cfg.MinBytes,
		MaxBytes:    cfg.MaxBytes,
		MaxWait:     cfg.MaxWait,
		StartOffset: cfg.StartOffset,
		ErrorLogger: createErrorLogger(cfg),
	}

	if cfg.EnableAutoCommit {
		readerConfig.CommitInterval = cfg.CommitInterval
	}

	if cfg.Partition != -1 {
		readerConfig.Partition = cfg.Partition
	}

	readerConfig.Dialer = &kafkago.Dialer{
		TLS:           tlsConfig,
		SASLMechanism: mechanism,
	}

	return kafkago.NewReader(readerConfig)
}

// createTLSConfig creates a TLS configuration from the provided config
func createTLSConfig(cfg TLSConfig) (*tls.Config, error) {
	tlsConfig := &tls.Config{
		InsecureSkipVerify: cfg.InsecureSkipVerify,
	}

	// Load CA certificate
	if cfg.CACertPath != "" {
		caCert, err := os.ReadFile(cfg.CACertPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read CA cert: %w", err)
		}
		caCertPool := x509.NewCertPool()
		if !caCertPool.AppendCertsFromPEM(caCert) {
			return nil, fmt.Errorf("failed to parse CA cert")
		}
		tlsConfig.RootCAs = caCertPool
	}

	// Load client certificate
	if cfg.ClientCertPath != "" && cfg.ClientKeyPath != "" {
		cert, err := tls.LoadX509KeyPair(cfg.ClientCertPath, cfg.ClientKeyPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load client cert: %w", err)
		}
		tlsConfig.Certificates = []tls.Certificate{cert}
	}

	return tlsConfig, nil
}

// createSASLMechanism creates a SASL mechanism from the provided config
func createSASLMechanism(cfg SASLConfig) (sasl.Mechanism, error) {
	switch cfg.Mechanism {
	case "PLAIN":
		return plain.Mechanism{
			Username: cfg.Username,
			Password: cfg.Password,
		}, nil
	case "SCRAM-SHA-256":
		return scram.Mechanism(scram.SHA256, cfg.Username, cfg.Password)
	case "SCRAM-SHA-512":
		return scram.Mechanism(scram.SHA512, cfg.Username, cfg.Password)
	default:
		return nil, fmt.Errorf("unsupported SASL mechanism: %s", cfg.Mechanism)
	}
}
