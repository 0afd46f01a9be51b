package schemaregistry

import (
	"context"
	"log"

	"go.uber.org/fx"

	"github.com/seriouslag/confluent-schema-registry/v1/logger"
	"github.com/seriouslag/confluent-schema-registry/v1/observability"
)

// FXModule is an fx.Module that provides and configures the schema registry
// client. This module registers the SchemaRegistry with the Fx dependency
// injection framework, making it available to other components in the
// application both as the concrete type and as the Registry interface.
//
// Usage:
//
//	app := fx.New(
//	    schemaregistry.FXModule,
//	    fx.Provide(
//	        func() schemaregistry.Config {
//	            return schemaregistry.Config{
//	                URL: os.Getenv("SCHEMA_REGISTRY_URL"),
//	            }
//	        },
//	    ),
//	)
var FXModule = fx.Module("schema_registry",
	fx.Provide(
		NewSchemaRegistryWithDI,
		func(s *SchemaRegistry) Registry { return s },
	),
	fx.Invoke(RegisterSchemaRegistryLifecycle),
)

// SchemaRegistryParams groups the dependencies needed to create a SchemaRegistry.
type SchemaRegistryParams struct {
	fx.In

	Config   Config
	Observer observability.Observer `optional:"true"`
	Logger   *logger.Logger         `optional:"true"`
}

// NewSchemaRegistryWithDI creates a new SchemaRegistry using dependency
// injection. Dependencies are automatically provided via the
// SchemaRegistryParams struct, which embeds fx.In. An observer or logger
// available in the container is attached automatically.
func NewSchemaRegistryWithDI(params SchemaRegistryParams) (*SchemaRegistry, error) {
	registry, err := NewSchemaRegistry(params.Config)
	if err != nil {
		return nil, err
	}
	if params.Observer != nil {
		registry = registry.WithObserver(params.Observer)
	}
	if params.Logger != nil {
		registry = registry.WithLogger(params.Logger)
	}
	return registry, nil
}

// SchemaRegistryLifecycleParams groups the dependencies needed for lifecycle
// management.
type SchemaRegistryLifecycleParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Registry  *SchemaRegistry
}

// RegisterSchemaRegistryLifecycle registers the SchemaRegistry with the fx
// lifecycle system. The client holds no connections of its own, so shutdown
// only discards the schema cache.
func RegisterSchemaRegistryLifecycle(params SchemaRegistryLifecycleParams) {
	params.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Println("INFO: Schema Registry client initialized")
			return nil
		},
		OnStop: func(ctx context.Context) error {
			params.Registry.Cache().Clear()
			log.Println("INFO: Schema Registry client shutdown")
			return nil
		},
	})
}
