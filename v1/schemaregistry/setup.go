package schemaregistry

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/seriouslag/confluent-schema-registry/v1/logger"
	"github.com/seriouslag/confluent-schema-registry/v1/observability"
	"github.com/seriouslag/confluent-schema-registry/v1/serde"
	"github.com/seriouslag/confluent-schema-registry/v1/wireformat"
)

// RegisteredSchema is the result of a successful Register call.
type RegisteredSchema struct {
	// ID is the registry ID the remote assigned to the schema content.
	ID int
}

// RegisterOptions carries optional parameters for Register.
type RegisterOptions struct {
	// Compatibility is the level to establish on the subject if none is
	// configured yet. Empty means the client's default (Backward unless
	// configured otherwise).
	Compatibility Compatibility
}

// SchemaRegistry orchestrates the registry client, the schema cache and the
// serialization backends into the register/encode/decode surface.
//
// Each instance owns its cache exclusively; nothing is shared across
// instances and there is no process-wide state. All methods are safe for
// concurrent use.
type SchemaRegistry struct {
	remote   Remote
	cache    *Cache
	observer observability.Observer
	log      *logger.Logger

	defaultCompatibility Compatibility
}

// NewSchemaRegistry creates a SchemaRegistry talking to the registry at
// cfg.URL, with the built-in Avro, JSON Schema and Protobuf backends.
func NewSchemaRegistry(cfg Config) (*SchemaRegistry, error) {
	client, err := NewClient(cfg)
	if err != nil {
		return nil, err
	}
	return NewSchemaRegistryWithRemote(client, cfg), nil
}

// NewSchemaRegistryWithRemote creates a SchemaRegistry over an existing
// Remote implementation. Used by tests and by embedders that bring their
// own transport.
func NewSchemaRegistryWithRemote(remote Remote, cfg Config) *SchemaRegistry {
	defaultCompat := cfg.DefaultCompatibility
	if defaultCompat == "" {
		defaultCompat = Backward
	}

	return &SchemaRegistry{
		remote:               remote,
		cache:                NewCache(remote, serde.NewRegistry()),
		defaultCompatibility: defaultCompat,
	}
}

// WithObserver attaches an observer for tracking operations.
// Returns the instance for chaining.
func (s *SchemaRegistry) WithObserver(observer observability.Observer) *SchemaRegistry {
	s.observer = observer
	return s
}

// WithLogger attaches a logger. Returns the instance for chaining.
func (s *SchemaRegistry) WithLogger(log *logger.Logger) *SchemaRegistry {
	s.log = log
	return s
}

// Cache exposes the schema cache owned by this instance, e.g. to clear it.
func (s *SchemaRegistry) Cache() *Cache {
	return s.cache
}

// Register registers schema under subject.
//
// The subject's compatibility level is negotiated first: if no level is
// configured, the requested level (or the client default, Backward) is
// established; if a level is configured and differs from the requested one,
// the call fails with *CompatibilityMismatchError and the remote
// configuration is left untouched. On success the resulting ID and parsed
// schema are stored in the cache.
//
// Registering identical content under the same subject again returns the
// same ID; the registry assigns IDs by exact content.
func (s *SchemaRegistry) Register(ctx context.Context, subject string, schema Schema, opts *RegisterOptions) (*RegisteredSchema, error) {
	start := time.Now()

	id, err := s.register(ctx, subject, schema, opts)
	s.observeOperation("register", subject, "", time.Since(start), err, 0, map[string]interface{}{
		"schema_type": schema.Type.String(),
	})
	if err != nil {
		return nil, err
	}

	if s.log != nil {
		s.log.Info("schema registered", ctx, map[string]interface{}{
			"subject": subject,
			"id":      id,
			"type":    schema.Type.String(),
		})
	}

	return &RegisteredSchema{ID: id}, nil
}

func (s *SchemaRegistry) register(ctx context.Context, subject string, schema Schema, opts *RegisterOptions) (int, error) {
	requested := s.defaultCompatibility
	if opts != nil && opts.Compatibility != "" {
		requested = opts.Compatibility
	}

	configured, isSet, err := s.remote.GetCompatibility(ctx, subject)
	if err != nil {
		return 0, err
	}

	if !isSet {
		if err := s.remote.SetCompatibility(ctx, subject, requested); err != nil {
			return 0, err
		}
	} else if configured != requested {
		return 0, &CompatibilityMismatchError{Configured: configured, Requested: requested}
	}

	id, err := s.remote.RegisterSchema(ctx, subject, schema)
	if err != nil {
		return 0, err
	}

	if _, err := s.cache.SetSchema(id, schema.Type, schema.Definition); err != nil {
		return 0, fmt.Errorf("schema registered as id %d but failed to parse locally: %w", id, err)
	}

	return id, nil
}

// Encode serializes value with the schema registered under id and frames the
// result in the wire format. An absent (non-positive) id fails with
// ErrInvalidRegistryID before any I/O or cache access.
func (s *SchemaRegistry) Encode(ctx context.Context, id int, value interface{}) ([]byte, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidRegistryID, id)
	}

	start := time.Now()
	data, err := s.encode(ctx, id, value)
	s.observeOperation("encode", "", strconv.Itoa(id), time.Since(start), err, int64(len(data)), nil)
	return data, err
}

func (s *SchemaRegistry) encode(ctx context.Context, id int, value interface{}) ([]byte, error) {
	codec, err := s.cache.Resolve(ctx, id)
	if err != nil {
		return nil, err
	}

	payload, err := codec.Encode(value)
	if err != nil {
		return nil, err
	}

	return wireformat.Frame(uint32(id), payload), nil
}

// Decode unframes data and deserializes its payload with the schema the
// frame references, fetching the schema on cache miss. A magic byte
// mismatch propagates unchanged as *wireformat.MagicByteError.
func (s *SchemaRegistry) Decode(ctx context.Context, data []byte) (interface{}, error) {
	start := time.Now()
	value, id, err := s.decode(ctx, data)
	s.observeOperation("decode", "", strconv.FormatUint(uint64(id), 10), time.Since(start), err, int64(len(data)), nil)
	return value, err
}

func (s *SchemaRegistry) decode(ctx context.Context, data []byte) (interface{}, uint32, error) {
	id, payload, err := wireformat.Unframe(data)
	if err != nil {
		return nil, 0, err
	}

	codec, err := s.cache.Resolve(ctx, int(id))
	if err != nil {
		return nil, id, err
	}

	value, err := codec.Decode(payload)
	return value, id, err
}

// RegistryIDBySchema returns the ID registered for the exact schema content
// under subject. ErrSubjectNotFound and ErrSchemaNotFoundForSubject
// propagate unchanged from the remote lookup.
func (s *SchemaRegistry) RegistryIDBySchema(ctx context.Context, subject string, schema Schema) (int, error) {
	start := time.Now()
	id, err := s.remote.FindRegistrationByContent(ctx, subject, schema)
	s.observeOperation("registry_id_by_schema", subject, "", time.Since(start), err, 0, nil)
	return id, err
}

// SchemaByID returns the parsed codec for id, fetching it from the remote
// registry on cache miss.
func (s *SchemaRegistry) SchemaByID(ctx context.Context, id int) (serde.Codec, error) {
	return s.cache.Resolve(ctx, id)
}

// LatestVersion returns the latest schema version under subject and stores
// its parsed form in the cache.
func (s *SchemaRegistry) LatestVersion(ctx context.Context, subject string) (*Metadata, error) {
	metadata, err := s.remote.FetchLatestVersion(ctx, subject)
	if err != nil {
		return nil, err
	}

	if _, err := s.cache.SetSchema(metadata.ID, schemaTypeOrAvro(metadata.Type), metadata.Schema); err != nil {
		return nil, err
	}

	return metadata, nil
}
