package kafka

import (
	"context"

	"go.uber.org/fx"

	"github.com/seriouslag/confluent-schema-registry/v1/observability"
)

// FXModule defines the Fx module for the kafka package.
// This module integrates the Kafka client into an Fx-based application by
// providing the client factory and registering its shutdown hook.
//
// Usage:
//
//	app := fx.New(
//	    schemaregistry.FXModule,
//	    kafka.FXModule,
//	    fx.Provide(func() kafka.Config {
//	        return kafka.Config{
//	            Brokers: []string{"localhost:9092"},
//	            Topic:   "orders",
//	        }
//	    }),
//	)
//
// Dependencies required by this module:
// - A kafka.Config instance must be available in the dependency injection container
// - An observability.Observer is optional
var FXModule = fx.Module("kafka",
	fx.Provide(
		NewClientWithDI,
		func(k *KafkaClient) Client { return k },
	),
	fx.Invoke(RegisterKafkaLifecycle),
)

// KafkaParams groups the dependencies needed to create a KafkaClient.
type KafkaParams struct {
	fx.In

	Config   Config
	Observer observability.Observer `optional:"true"`
}

// NewClientWithDI creates a KafkaClient from injected dependencies.
// An observer available in the container is attached automatically.
func NewClientWithDI(params KafkaParams) (*KafkaClient, error) {
	client, err := NewClient(params.Config)
	if err != nil {
		return nil, err
	}
	if params.Observer != nil {
		client = client.WithObserver(params.Observer)
	}
	return client, nil
}

// RegisterKafkaLifecycle shuts the client down when the application stops.
//
// Note: This function is automatically invoked by the FXModule and does not
// need to be called directly in application code.
func RegisterKafkaLifecycle(lc fx.Lifecycle, client *KafkaClient) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.GracefulShutdown()
		},
	})
}
