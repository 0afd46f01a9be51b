package serde

import (
	"errors"
	"fmt"
)

// SchemaType identifies the schema language a schema definition is written in.
// The set of types is closed; adding a new one means adding a tag here and a
// backend implementing Serde, nothing else.
type SchemaType string

const (
	// Avro identifies Apache Avro schemas.
	Avro SchemaType = "AVRO"

	// JSON identifies JSON Schema definitions.
	JSON SchemaType = "JSON"

	// Protobuf identifies Protocol Buffers schema definitions.
	Protobuf SchemaType = "PROTOBUF"
)

func (t SchemaType) String() string {
	return string(t)
}

// ErrUnsupportedSchemaType is returned when no backend is registered for a
// schema type tag.
var ErrUnsupportedSchemaType = errors.New("unsupported schema type")

// Codec is a parsed schema ready to encode and decode values.
// Implementations are immutable and safe for concurrent use.
type Codec interface {
	// Encode serializes value according to the schema.
	Encode(value interface{}) ([]byte, error)

	// Decode deserializes data according to the schema.
	Decode(data []byte) (interface{}, error)

	// Schema returns the textual schema definition this codec was built from.
	Schema() string
}

// Serde is the capability a schema type backend provides: turning schema text
// into a Codec. The concrete encoding algorithm lives entirely behind this
// interface; the registry client is agnostic to it.
type Serde interface {
	Parse(schema string) (Codec, error)
}

// Registry maps schema type tags to their backends.
type Registry map[SchemaType]Serde

// NewRegistry returns a Registry with the built-in Avro, JSON Schema and
// Protobuf backends registered.
func NewRegistry() Registry {
	return Registry{
		Avro:     AvroSerde{},
		JSON:     JSONSerde{},
		Protobuf: ProtobufSerde{},
	}
}

// Parse resolves the backend for schemaType and parses schema with it.
func (r Registry) Parse(schemaType SchemaType, schema string) (Codec, error) {
	backend, ok := r[schemaType]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedSchemaType, schemaType)
	}
	return backend.Parse(schema)
}
