package kafka

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seriouslag/confluent-schema-registry/v1/schemaregistry"
	"github.com/seriouslag/confluent-schema-registry/v1/serde"
	"github.com/seriouslag/confluent-schema-registry/v1/wireformat"
)

const testAvroSchema = `{"type":"record","name":"Order","namespace":"shop","fields":[{"type":"string","name":"full_name"}]}`

// stubRemote serves a single Avro schema for every ID without any transport.
type stubRemote struct {
	schema schemaregistry.Schema
	err    error
}

func (r *stubRemote) RegisterSchema(ctx context.Context, subject string, schema schemaregistry.Schema) (int, error) {
	return 1, r.err
}

func (r *stubRemote) FetchSchemaByID(ctx context.Context, id int) (schemaregistry.Schema, error) {
	return r.schema, r.err
}

func (r *stubRemote) FetchLatestVersion(ctx context.Context, subject string) (*schemaregistry.Metadata, error) {
	return &schemaregistry.Metadata{ID: 1, Version: 1, Schema: r.schema.Definition}, r.err
}

func (r *stubRemote) GetCompatibility(ctx context.Context, subject string) (schemaregistry.Compatibility, bool, error) {
	return schemaregistry.Backward, true, r.err
}

func (r *stubRemote) SetCompatibility(ctx context.Context, subject string, level schemaregistry.Compatibility) error {
	return r.err
}

func (r *stubRemote) FindRegistrationByContent(ctx context.Context, subject string, schema schemaregistry.Schema) (int, error) {
	return 1, r.err
}

func newTestRegistry(t *testing.T) schemaregistry.Registry {
	t.Helper()
	remote := &stubRemote{
		schema: schemaregistry.Schema{
			Type:       serde.Avro,
			Definition: testAvroSchema,
		},
	}
	return schemaregistry.NewSchemaRegistryWithRemote(remote, schemaregistry.Config{})
}

func TestRegistrySerializerFramesPayload(t *testing.T) {
	registry := newTestRegistry(t)
	serializer := NewRegistrySerializer(registry, 1)

	data, err := serializer.Serialize(context.Background(), map[string]interface{}{
		"full_name": "John Doe",
	})
	require.NoError(t, err)

	id, payload, err := wireformat.Unframe(data)
	require.NoError(t, err)
	assert.Equal(t, uint32(1), id)
	assert.NotEmpty(t, payload)
	assert.Equal(t, 1, serializer.SchemaID())
}

func TestRegistryRoundTrip(t *testing.T) {
	registry := newTestRegistry(t)
	serializer := NewRegistrySerializer(registry, 1)
	deserializer := NewRegistryDeserializer(registry)

	data, err := serializer.Serialize(context.Background(), map[string]interface{}{
		"full_name": "Jane Doe",
	})
	require.NoError(t, err)

	value, err := deserializer.Deserialize(context.Background(), data)
	require.NoError(t, err)

	decoded, ok := value.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Jane Doe", decoded["full_name"])
}

func TestRegistrySerializerPropagatesFailure(t *testing.T) {
	remote := &stubRemote{err: errors.New("registry unavailable")}
	registry := schemaregistry.NewSchemaRegistryWithRemote(remote, schemaregistry.Config{})
	serializer := NewRegistrySerializer(registry, 1)

	_, err := serializer.Serialize(context.Background(), map[string]interface{}{
		"full_name": "John Doe",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "registry unavailable")
}

func TestRegistryDeserializerRejectsUnframedData(t *testing.T) {
	registry := newTestRegistry(t)
	deserializer := NewRegistryDeserializer(registry)

	_, err := deserializer.Deserialize(context.Background(), []byte(`{"full_name":"x"}`))
	require.Error(t, err)

	var magicErr *wireformat.MagicByteError
	assert.ErrorAs(t, err, &magicErr)
}
