package serde

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
)

const avroPersonSchema = `{
	"type": "record",
	"name": "Person",
	"namespace": "example",
	"fields": [
		{"name": "full_name", "type": "string"},
		{"name": "age", "type": "int"}
	]
}`

const jsonPersonSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"properties": {
		"full_name": {"type": "string"},
		"age": {"type": "integer"}
	},
	"required": ["full_name"]
}`

const protoPersonSchema = `syntax = "proto3";
package example;

message Person {
	string full_name = 1;
	int32 age = 2;
}`

func TestRegistryDispatch(t *testing.T) {
	backends := NewRegistry()

	codec, err := backends.Parse(Avro, avroPersonSchema)
	require.NoError(t, err)
	require.NotNil(t, codec)

	_, err = backends.Parse(SchemaType("THRIFT"), avroPersonSchema)
	require.ErrorIs(t, err, ErrUnsupportedSchemaType)
}

func TestAvroRoundTrip(t *testing.T) {
	codec, err := AvroSerde{}.Parse(avroPersonSchema)
	require.NoError(t, err)

	value := map[string]interface{}{
		"full_name": "Ada Lovelace",
		"age":       36,
	}

	data, err := codec.Encode(value)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	decoded, err := codec.Decode(data)
	require.NoError(t, err)

	record, ok := decoded.(map[string]interface{})
	require.True(t, ok, "expected record to decode to a map")
	assert.Equal(t, "Ada Lovelace", record["full_name"])
	assert.EqualValues(t, 36, record["age"])
}

func TestAvroParseInvalidSchema(t *testing.T) {
	_, err := AvroSerde{}.Parse(`{"type": "nonsense"}`)
	require.Error(t, err)
}

func TestAvroEncodeWrongShape(t *testing.T) {
	codec, err := AvroSerde{}.Parse(avroPersonSchema)
	require.NoError(t, err)

	_, err = codec.Encode(map[string]interface{}{"unexpected": true})
	require.Error(t, err)
}

func TestJSONRoundTrip(t *testing.T) {
	codec, err := JSONSerde{}.Parse(jsonPersonSchema)
	require.NoError(t, err)

	data, err := codec.Encode(map[string]interface{}{
		"full_name": "Grace Hopper",
		"age":       85,
	})
	require.NoError(t, err)

	decoded, err := codec.Decode(data)
	require.NoError(t, err)

	record, ok := decoded.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Grace Hopper", record["full_name"])
}

func TestJSONEncodeRejectsInvalidValue(t *testing.T) {
	codec, err := JSONSerde{}.Parse(jsonPersonSchema)
	require.NoError(t, err)

	// full_name is required
	_, err = codec.Encode(map[string]interface{}{"age": 1})
	require.Error(t, err)

	// wrong type
	_, err = codec.Encode(map[string]interface{}{"full_name": 42})
	require.Error(t, err)
}

func TestJSONDecodeRejectsInvalidPayload(t *testing.T) {
	codec, err := JSONSerde{}.Parse(jsonPersonSchema)
	require.NoError(t, err)

	_, err = codec.Decode([]byte(`{"age": "not a number"}`))
	require.Error(t, err)

	_, err = codec.Decode([]byte(`{invalid json`))
	require.Error(t, err)
}

func TestProtobufRoundTrip(t *testing.T) {
	codec, err := ProtobufSerde{}.Parse(protoPersonSchema)
	require.NoError(t, err)

	data, err := codec.Encode(map[string]interface{}{
		"full_name": "Barbara Liskov",
		"age":       86,
	})
	require.NoError(t, err)
	require.NotEmpty(t, data)

	decoded, err := codec.Decode(data)
	require.NoError(t, err)

	msg, ok := decoded.(proto.Message)
	require.True(t, ok, "expected decoded value to be a proto.Message")

	reflected := msg.ProtoReflect()
	nameField := reflected.Descriptor().Fields().ByName(protoreflect.Name("full_name"))
	require.NotNil(t, nameField)
	assert.Equal(t, "Barbara Liskov", reflected.Get(nameField).String())
}

func TestProtobufParseInvalidSchema(t *testing.T) {
	_, err := ProtobufSerde{}.Parse(`syntax = "proto3"; message {`)
	require.Error(t, err)
}

func TestProtobufParseNoMessages(t *testing.T) {
	_, err := ProtobufSerde{}.Parse(`syntax = "proto3"; package empty;`)
	require.Error(t, err)
}

func TestProtobufEncodeRejectsUnknownField(t *testing.T) {
	codec, err := ProtobufSerde{}.Parse(protoPersonSchema)
	require.NoError(t, err)

	_, err = codec.Encode(map[string]interface{}{"no_such_field": "x"})
	require.Error(t, err)
}
