package schemaregistry

import (
	"context"

	"github.com/seriouslag/confluent-schema-registry/v1/serde"
)

//go:generate go run go.uber.org/mock/mockgen -destination=mock_remote.go -package=schemaregistry github.com/seriouslag/confluent-schema-registry/v1/schemaregistry Remote

// Remote is the typed call surface over the remote registry's operations.
// *Client implements it over HTTP; tests substitute a mock. The registry is
// the sole authority over IDs and compatibility enforcement; implementations
// must not invent either.
type Remote interface {
	// RegisterSchema registers schema content under subject, returning the
	// assigned registry ID. Idempotent by content.
	RegisterSchema(ctx context.Context, subject string, schema Schema) (int, error)

	// FetchSchemaByID retrieves the schema registered under id.
	FetchSchemaByID(ctx context.Context, id int) (Schema, error)

	// FetchLatestVersion retrieves the latest version under subject.
	FetchLatestVersion(ctx context.Context, subject string) (*Metadata, error)

	// GetCompatibility returns the subject's configured level and whether
	// one is configured.
	GetCompatibility(ctx context.Context, subject string) (Compatibility, bool, error)

	// SetCompatibility sets the subject's level.
	SetCompatibility(ctx context.Context, subject string, level Compatibility) error

	// FindRegistrationByContent returns the ID registered for the exact
	// schema content under subject.
	FindRegistrationByContent(ctx context.Context, subject string, schema Schema) (int, error)
}

// Registry is the full client surface offered by this package.
// Implemented by *SchemaRegistry.
type Registry interface {
	// Register registers a schema under subject, negotiating the subject's
	// compatibility level first.
	Register(ctx context.Context, subject string, schema Schema, opts *RegisterOptions) (*RegisteredSchema, error)

	// Encode serializes value with the schema registered under id and
	// frames it in the wire format.
	Encode(ctx context.Context, id int, value interface{}) ([]byte, error)

	// Decode unframes data and deserializes its payload with the schema
	// the frame references.
	Decode(ctx context.Context, data []byte) (interface{}, error)

	// RegistryIDBySchema returns the ID registered for the exact schema
	// content under subject.
	RegistryIDBySchema(ctx context.Context, subject string, schema Schema) (int, error)

	// SchemaByID returns the parsed codec for id, fetching on cache miss.
	SchemaByID(ctx context.Context, id int) (serde.Codec, error)

	// LatestVersion returns the latest schema version under subject.
	LatestVersion(ctx context.Context, subject string) (*Metadata, error)
}

// ensure interfaces are implemented
var _ Remote = (*Client)(nil)
var _ Registry = (*SchemaRegistry)(nil)
