// Package observability defines the hooks that instrumented packages in this
// repository use to report their operations.
//
// Packages such as schemaregistry and kafka accept an optional Observer and
// notify it after every operation they perform. Observer implementations can
// turn those notifications into Prometheus metrics (see the metrics package),
// trace events, or log entries without the instrumented package knowing which.
//
// Usage:
//
//	type myObserver struct{}
//
//	func (myObserver) ObserveOperation(ctx observability.OperationContext) {
//	    log.Printf("%s.%s took %s", ctx.Component, ctx.Operation, ctx.Duration)
//	}
//
//	registry = registry.WithObserver(myObserver{})
package observability

import "time"

// OperationContext describes a single completed operation.
// It is passed to Observer implementations after the operation finished,
// whether it succeeded or failed.
type OperationContext struct {
	// Component is the name of the package reporting the operation,
	// e.g. "schema_registry" or "kafka".
	Component string

	// Operation is the name of the operation, e.g. "register" or "decode".
	Operation string

	// Resource is the primary resource the operation acted on,
	// e.g. a subject name or a topic.
	Resource string

	// SubResource carries additional context such as a schema ID.
	SubResource string

	// Duration is how long the operation took.
	Duration time.Duration

	// Error is the error returned by the operation, nil on success.
	Error error

	// Size is the payload size in bytes where applicable, 0 otherwise.
	Size int64

	// Metadata holds operation-specific key/value pairs.
	Metadata map[string]interface{}
}

// Observer receives notifications about completed operations.
// Implementations must be safe for concurrent use; instrumented packages
// may report from multiple goroutines.
type Observer interface {
	// ObserveOperation is called once per completed operation.
	// It must not block; expensive processing should be offloaded.
	ObserveOperation(ctx OperationContext)
}
