// Package metrics provides Prometheus-based monitoring and metrics collection
// for the schema registry client.
//
// The metrics package exposes a configurable HTTP endpoint for metrics
// scraping, records the built-in schema registry operation metrics, and
// integrates with the Fx dependency injection framework for lifecycle
// management.
//
// # Architecture
//
// This package follows the "accept interfaces, return structs" design pattern:
//   - MetricsCollector interface: Defines the contract for metrics operations
//   - Metrics struct: Concrete implementation of the MetricsCollector interface
//   - NewMetrics constructor: Returns *Metrics (concrete type)
//   - Observer: Implements observability.Observer, recording reported
//     operations into the built-in metrics
//   - FX module: Provides *Metrics and *Observer for dependency injection
//
// Core Features:
//   - Exposes a configurable /metrics endpoint for Prometheus scraping
//   - Built-in counters and histograms for registry operations and payload sizes
//   - Integration with go.uber.org/fx for automatic lifecycle management
//   - Automatic registration of Go runtime and process-level metrics
//   - Support for custom metric registration (counters, gauges, histograms)
//   - Constant service labelling for multi-service observability
//   - Graceful startup and shutdown via Fx lifecycle hooks
//
// # Direct Usage (Without FX)
//
// For simple applications or tests, create metrics directly:
//
//	import "github.com/seriouslag/confluent-schema-registry/v1/metrics"
//
//	cfg := metrics.Config{
//		Address:                 ":9090",
//		EnableDefaultCollectors: true,
//		ServiceName:             "orders-producer",
//	}
//
//	m := metrics.NewMetrics(cfg)
//	go m.Server.ListenAndServe()
//
//	// Attach the observer to an instrumented component
//	registry = registry.WithObserver(metrics.NewObserver(m))
//
// # Built-in Metrics
//
// The following metrics are registered by NewMetrics and fed by the Observer:
//
//	schema_registry_operations_total{component,operation,status}
//	schema_registry_operation_duration_seconds{component,operation}
//	schema_registry_payload_bytes{component,operation}
//
// The status label is "success" or "error". Payload sizes are recorded for
// encode and decode operations only.
//
// # FX Module Integration
//
// For production applications using Uber's fx, use the FXModule:
//
//	import (
//		"go.uber.org/fx"
//		"github.com/seriouslag/confluent-schema-registry/v1/logger"
//		"github.com/seriouslag/confluent-schema-registry/v1/metrics"
//	)
//
//	app := fx.New(
//		logger.FXModule,
//		metrics.FXModule,
//		fx.Provide(func() metrics.Config {
//			return metrics.Config{
//				Address:                 ":9090",
//				EnableDefaultCollectors: true,
//				ServiceName:             "orders-producer",
//			}
//		}),
//	)
//	app.Run()
//
// # Custom Metrics
//
// Applications can register additional Prometheus metrics using the exposed
// factory methods or the Registry directly:
//
//	retries := m.CreateCounter(
//	    "producer_retries_total",
//	    "Total number of produce retries.",
//	    []string{"topic"},
//	)
//	retries.WithLabelValues("orders").Inc()
//
// # Thread Safety
//
// All methods on the Metrics struct and Prometheus collectors are safe for
// concurrent use by multiple goroutines.
package metrics
