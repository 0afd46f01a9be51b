package schemaregistry

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/seriouslag/confluent-schema-registry/v1/observability"
)

// TestObserver is a mock observer for testing.
type TestObserver struct {
	mu         sync.Mutex
	operations []observability.OperationContext
}

func (t *TestObserver) ObserveOperation(ctx observability.OperationContext) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.operations = append(t.operations, ctx)
}

func (t *TestObserver) GetOperations() []observability.OperationContext {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]observability.OperationContext, len(t.operations))
	copy(out, t.operations)
	return out
}

func TestObserveOperationNilObserverNoPanic(t *testing.T) {
	s := &SchemaRegistry{
		observer: nil,
	}

	// Should not panic.
	s.observeOperation("encode", "", "1", 10*time.Millisecond, nil, 64, nil)
}

func TestObserveOperationCallsObserver(t *testing.T) {
	obs := &TestObserver{}
	s := &SchemaRegistry{
		observer: obs,
	}

	opErr := errors.New("boom")
	s.observeOperation("register", "users-value", "", 10*time.Millisecond, opErr, 0, map[string]interface{}{"schema_type": "AVRO"})

	ops := obs.GetOperations()
	if len(ops) != 1 {
		t.Fatalf("expected 1 operation, got %d", len(ops))
	}
	if ops[0].Component != "schema_registry" {
		t.Fatalf("expected component schema_registry, got %q", ops[0].Component)
	}
	if ops[0].Operation != "register" {
		t.Fatalf("expected operation register, got %q", ops[0].Operation)
	}
	if ops[0].Resource != "users-value" {
		t.Fatalf("expected resource users-value, got %q", ops[0].Resource)
	}
	if ops[0].Error != opErr {
		t.Fatalf("expected error to be recorded, got %v", ops[0].Error)
	}
	if ops[0].Metadata == nil || ops[0].Metadata["schema_type"] != "AVRO" {
		t.Fatalf("expected metadata schema_type=AVRO, got %#v", ops[0].Metadata)
	}
}

func TestWithObserver(t *testing.T) {
	obs := &TestObserver{}
	s := &SchemaRegistry{
		observer: nil,
	}

	if s.observer != nil {
		t.Fatalf("expected no observer initially")
	}

	out := s.WithObserver(obs)
	if out != s {
		t.Fatalf("WithObserver should return same instance for chaining")
	}
	if s.observer != obs {
		t.Fatalf("expected observer to be set")
	}
}
