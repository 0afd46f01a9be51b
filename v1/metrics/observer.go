package metrics

import (
	"github.com/seriouslag/confluent-schema-registry/v1/observability"
)

// Observer translates operation notifications into Prometheus metrics.
// It implements observability.Observer and can be attached to any
// instrumented component in this repository, e.g.:
//
//	registry = registry.WithObserver(metrics.NewObserver(m))
//
// Every reported operation increments the operation counter with a
// success/error status label and feeds the duration histogram. Operations
// that carry a payload size additionally feed the payload size histogram.
type Observer struct {
	metrics *Metrics
}

// NewObserver returns an Observer that records operations into m.
func NewObserver(m *Metrics) *Observer {
	return &Observer{metrics: m}
}

// ObserveOperation records a single completed operation.
// Safe for concurrent use; all underlying Prometheus vectors are.
func (o *Observer) ObserveOperation(ctx observability.OperationContext) {
	status := "success"
	if ctx.Error != nil {
		status = "error"
	}

	o.metrics.IncrementOperations(ctx.Component, ctx.Operation, status)
	o.metrics.operationDuration.WithLabelValues(ctx.Component, ctx.Operation).Observe(ctx.Duration.Seconds())

	if ctx.Size > 0 {
		o.metrics.ObservePayloadBytes(ctx.Component, ctx.Operation, ctx.Size)
	}
}

var _ observability.Observer = (*Observer)(nil)
