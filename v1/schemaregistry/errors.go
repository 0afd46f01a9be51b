package schemaregistry

import (
	"errors"
	"fmt"
)

// Typed failures surfaced by this package. Transport-level failures are not
// reinterpreted; they are wrapped with %w and propagate verbatim.
var (
	// ErrInvalidRegistryID is returned when Encode is called with an absent
	// or non-positive registry ID. The check happens before any I/O or
	// cache access.
	ErrInvalidRegistryID = errors.New("invalid registry id")

	// ErrSubjectNotFound is returned when an operation references a subject
	// unknown to the remote registry.
	ErrSubjectNotFound = errors.New("subject not found")

	// ErrSchemaNotFound is returned when a registry ID is unknown to the
	// remote registry.
	ErrSchemaNotFound = errors.New("schema not found")

	// ErrSchemaNotFoundForSubject is returned when a subject exists but no
	// registered version matches the exact schema content.
	ErrSchemaNotFoundForSubject = errors.New("schema not registered under subject")

	// ErrInvalidSchemaDefinition is returned when the remote registry
	// rejects schema content as malformed.
	ErrInvalidSchemaDefinition = errors.New("invalid schema definition")
)

// CompatibilityMismatchError is returned by Register when the subject already
// has a compatibility level configured and it differs from the requested or
// default level. The remote configuration is left untouched.
type CompatibilityMismatchError struct {
	// Configured is the level currently set on the subject.
	Configured Compatibility

	// Requested is the level the Register call asked for.
	Requested Compatibility
}

func (e *CompatibilityMismatchError) Error() string {
	return fmt.Sprintf("compatibility mismatch: %s != %s", e.Configured, e.Requested)
}

// remoteError carries a structured error response from the registry.
// It is internal; callers see the mapped sentinel errors above.
type remoteError struct {
	StatusCode int
	Code       int
	Message    string
}

func (e *remoteError) Error() string {
	return fmt.Sprintf("schema registry returned status %d (error code %d): %s", e.StatusCode, e.Code, e.Message)
}

// Remote registry error codes, per the Confluent Schema Registry API.
const (
	remoteCodeSubjectNotFound = 40401
	remoteCodeSchemaNotFound  = 40403
	remoteCodeInvalidSchema   = 42201
)
