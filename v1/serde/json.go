package serde

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// JSONSerde is the JSON Schema backend. The byte form of a value is its JSON
// encoding; values are validated against the schema on both encode and decode
// so malformed payloads never cross the wire unnoticed.
type JSONSerde struct{}

// resource name under which the schema is registered with the compiler;
// never visible outside the codec.
const jsonSchemaResource = "schema.json"

// Parse compiles a JSON Schema definition into a Codec.
func (JSONSerde) Parse(schema string) (Codec, error) {
	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(schema))
	if err != nil {
		return nil, fmt.Errorf("failed to parse JSON schema: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(jsonSchemaResource, doc); err != nil {
		return nil, fmt.Errorf("failed to add JSON schema resource: %w", err)
	}

	compiled, err := compiler.Compile(jsonSchemaResource)
	if err != nil {
		return nil, fmt.Errorf("failed to compile JSON schema: %w", err)
	}

	return &jsonCodec{schema: compiled, raw: schema}, nil
}

type jsonCodec struct {
	schema *jsonschema.Schema
	raw    string
}

func (c *jsonCodec) Encode(value interface{}) ([]byte, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal JSON value: %w", err)
	}

	// Validate the canonical JSON form rather than the Go value so struct
	// and map inputs are treated identically.
	if err := c.validate(data); err != nil {
		return nil, err
	}

	return data, nil
}

func (c *jsonCodec) Decode(data []byte) (interface{}, error) {
	if err := c.validate(data); err != nil {
		return nil, err
	}

	var value interface{}
	if err := json.Unmarshal(data, &value); err != nil {
		return nil, fmt.Errorf("failed to unmarshal JSON value: %w", err)
	}
	return value, nil
}

func (c *jsonCodec) Schema() string {
	return c.raw
}

func (c *jsonCodec) validate(data []byte) error {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("invalid JSON payload: %w", err)
	}
	if err := c.schema.Validate(doc); err != nil {
		return fmt.Errorf("value does not conform to JSON schema: %w", err)
	}
	return nil
}
