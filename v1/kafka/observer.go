package kafka

import (
	"time"

	"github.com/seriouslag/confluent-schema-registry/v1/observability"
)

// observeOperation notifies the observer about an operation if one is
// configured. The resource is the topic being operated on.
func (k *KafkaClient) observeOperation(operation, topic string, duration time.Duration, err error, metadata map[string]interface{}) {
	if k == nil || k.observer == nil {
		return
	}

	k.observer.ObserveOperation(observability.OperationContext{
		Component: "kafka",
		Operation: operation,
		Resource:  topic,
		Duration:  duration,
		Error:     err,
		Metadata:  metadata,
	})
}
