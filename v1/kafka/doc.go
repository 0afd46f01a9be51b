// Package kafka provides Kafka producers and consumers whose message values
// are encoded and decoded through a schema registry.
//
// The kafka package offers a simplified interface for working with Kafka
// message brokers, providing connection management, message publishing, and
// consuming capabilities. Message values pass through pluggable Serializer
// and Deserializer implementations; the schema registry backed ones produce
// and consume Confluent wire-format framed payloads interoperable with
// clients on any platform.
//
// Core Features:
//   - Schema registry backed serialization via RegistrySerializer and
//     RegistryDeserializer
//   - Simple publishing interface with error handling
//   - Consumer interface with per-message or periodic offset commits
//   - Consumer group support
//   - TLS and SASL (PLAIN, SCRAM-SHA-256, SCRAM-SHA-512) authentication
//   - Integration with the logger package for structured logging
//   - Observability hooks for publish and consume operations
//
// Producer Usage:
//
//	import (
//		"github.com/seriouslag/confluent-schema-registry/v1/kafka"
//		"github.com/seriouslag/confluent-schema-registry/v1/schemaregistry"
//	)
//
//	registry, err := schemaregistry.NewSchemaRegistry(schemaregistry.Config{
//		URL: "http://localhost:8081",
//	})
//	if err != nil {
//		return err
//	}
//
//	registered, err := registry.Register(ctx, "orders-value", schema, nil)
//	if err != nil {
//		return err
//	}
//
//	client, err := kafka.NewClient(kafka.Config{
//		Brokers: []string{"localhost:9092"},
//		Topic:   "orders",
//	})
//	if err != nil {
//		return err
//	}
//	defer client.GracefulShutdown()
//
//	client.SetSerializer(kafka.NewRegistrySerializer(registry, registered.ID))
//
//	err = client.Publish(ctx, "order-123", map[string]interface{}{
//		"full_name": "John Doe",
//	}, nil)
//
// Consumer Usage:
//
//	client, err := kafka.NewClient(kafka.Config{
//		Brokers:    []string{"localhost:9092"},
//		Topic:      "orders",
//		GroupID:    "order-processor",
//		IsConsumer: true,
//	})
//	if err != nil {
//		return err
//	}
//	defer client.GracefulShutdown()
//
//	client.SetDeserializer(kafka.NewRegistryDeserializer(registry))
//
//	for msg := range client.Consume(ctx) {
//		value, err := msg.Value(ctx)
//		if err != nil {
//			continue
//		}
//		process(value)
//
//		if err := msg.Commit(ctx); err != nil {
//			return err
//		}
//	}
//
// FX Module Integration:
//
// This package provides a fx module for easy integration:
//
//	app := fx.New(
//		logger.FXModule,
//		schemaregistry.FXModule,
//		kafka.FXModule,
//		// ... other modules
//	)
//	app.Run()
//
// Thread Safety:
//
// All methods on the KafkaClient type are safe for concurrent use by
// multiple goroutines.
package kafka
