package schemaregistry

import (
	"time"

	"github.com/seriouslag/confluent-schema-registry/v1/observability"
)

// observeOperation notifies the observer about an operation if one is
// configured.
//
// Notes:
//   - resource: the subject being operated on, if any
//   - subResource: the registry ID as a string, if known
func (s *SchemaRegistry) observeOperation(operation, resource, subResource string, duration time.Duration, err error, size int64, metadata map[string]interface{}) {
	if s == nil || s.observer == nil {
		return
	}

	s.observer.ObserveOperation(observability.OperationContext{
		Component:   "schema_registry",
		Operation:   operation,
		Resource:    resource,
		SubResource: subResource,
		Duration:    duration,
		Error:       err,
		Size:        size,
		Metadata:    metadata,
	})
}
