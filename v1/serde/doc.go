// Package serde provides the pluggable serialization backends for the schema
// registry client.
//
// Each schema type supported by the registry (AVRO, JSON, PROTOBUF) is backed
// by a Serde implementation that turns schema text into a Codec, the parsed
// handle used to encode and decode payload bytes. The registry client and the
// surrounding packages dispatch purely on the SchemaType tag; no schema
// language leaks into them.
//
// Backends:
//   - Avro: github.com/linkedin/goavro/v2, encoding goavro native values
//   - JSON Schema: github.com/santhosh-tekuri/jsonschema/v6 for validation,
//     encoding/json for the byte form
//   - Protobuf: github.com/bufbuild/protocompile to compile .proto text,
//     google.golang.org/protobuf dynamic messages for encode/decode
//
// Usage:
//
//	backends := serde.NewRegistry()
//	codec, err := backends.Parse(serde.Avro, schemaText)
//	if err != nil {
//	    return err
//	}
//
//	data, err := codec.Encode(map[string]interface{}{"full_name": "Ada"})
//	value, err := codec.Decode(data)
//
// Codecs are immutable once parsed and safe for concurrent use, which is what
// allows the schema cache to hand the same codec to many goroutines.
package serde
