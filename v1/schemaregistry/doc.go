// Package schemaregistry provides a client for Confluent Schema Registry.
//
// The package covers the full producer/consumer protocol around the registry:
// registering schemas under subjects with compatibility negotiation, encoding
// values into the Confluent wire format, and decoding wire-format messages
// back into values without prior knowledge of the schema that produced them.
//
// Core Features:
//   - HTTP client for the Confluent Schema Registry v1 API
//   - Register/encode/decode with an in-memory schema cache
//   - Concurrency-safe fetch-on-miss with request coalescing: concurrent
//     lookups for the same missing ID share one outbound request
//   - Compatibility negotiation on register (Unset -> Set -> Enforced)
//   - Pluggable serialization backends for Avro, JSON Schema and Protobuf
//     (see the serde package)
//   - Reverse lookup from exact schema content to its registry ID
//
// Basic Usage:
//
//	import (
//	    "github.com/seriouslag/confluent-schema-registry/v1/schemaregistry"
//	    "github.com/seriouslag/confluent-schema-registry/v1/serde"
//	)
//
//	registry, err := schemaregistry.NewSchemaRegistry(schemaregistry.Config{
//	    URL: "http://localhost:8081",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	schema := schemaregistry.Schema{
//	    Type: serde.Avro,
//	    Definition: `{
//	        "type": "record",
//	        "name": "User",
//	        "fields": [
//	            {"name": "full_name", "type": "string"}
//	        ]
//	    }`,
//	}
//
//	result, err := registry.Register(ctx, "users-value", schema, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	encoded, err := registry.Encode(ctx, result.ID, map[string]interface{}{
//	    "full_name": "John Doe",
//	})
//	// encoded contains: [magic_byte][schema_id][avro_payload]
//
//	value, err := registry.Decode(ctx, encoded)
//
// Using with FX:
//
//	app := fx.New(
//	    schemaregistry.FXModule,
//	    fx.Provide(
//	        func() schemaregistry.Config {
//	            return schemaregistry.Config{
//	                URL:      os.Getenv("SCHEMA_REGISTRY_URL"),
//	                Username: os.Getenv("SCHEMA_REGISTRY_USER"),
//	                Password: os.Getenv("SCHEMA_REGISTRY_PASSWORD"),
//	            }
//	        },
//	    ),
//	    // Your application code that uses schemaregistry.Registry
//	)
//
// Wire Format:
//
// All encoded messages use the Confluent wire format:
//
//	[magic_byte (1 byte)] [schema_id (4 bytes, big-endian)] [payload]
//
// The magic byte is always 0x0. Decode rejects any other leading byte with a
// *wireformat.MagicByteError carrying both the observed and expected values.
//
// Compatibility Negotiation:
//
// The first successful Register on a subject establishes its compatibility
// level: the level passed in RegisterOptions, or Backward. Every later
// Register on that subject must request the same level; a differing request
// fails with *CompatibilityMismatchError and never mutates the remote
// configuration. Enforcement of the rule itself is the remote registry's
// job, not this client's.
//
// Schema Caching:
//
// Each SchemaRegistry instance owns an unbounded in-memory cache mapping
// registry IDs to parsed codecs. Entries are never evicted: a registry ID's
// content is immutable by protocol design. Concurrent Decode calls for the
// same uncached ID trigger exactly one registry fetch; every caller receives
// the identical result or failure. Cache().Clear() resets the cache
// wholesale.
//
// Failure Model:
//
// The client never retries and never recovers silently. Every failure is
// returned as a typed error (see errors.go); transport failures propagate
// wrapped but not reinterpreted. Retry, backoff and timeouts belong to the
// embedding application or its HTTP transport.
package schemaregistry
