package serde

import (
	"fmt"

	"github.com/linkedin/goavro/v2"
)

// AvroSerde is the Avro backend. Values are encoded from and decoded to
// goavro's native Go form (map[string]interface{} for records).
type AvroSerde struct{}

// Parse compiles an Avro schema definition into a Codec.
func (AvroSerde) Parse(schema string) (Codec, error) {
	codec, err := goavro.NewCodec(schema)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Avro schema: %w", err)
	}
	return &avroCodec{codec: codec}, nil
}

type avroCodec struct {
	codec *goavro.Codec
}

func (c *avroCodec) Encode(value interface{}) ([]byte, error) {
	data, err := c.codec.BinaryFromNative(nil, value)
	if err != nil {
		return nil, fmt.Errorf("failed to encode Avro value: %w", err)
	}
	return data, nil
}

func (c *avroCodec) Decode(data []byte) (interface{}, error) {
	native, remaining, err := c.codec.NativeFromBinary(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode Avro value: %w", err)
	}
	if len(remaining) > 0 {
		return nil, fmt.Errorf("trailing %d bytes after Avro value", len(remaining))
	}
	return native, nil
}

func (c *avroCodec) Schema() string {
	return c.codec.Schema()
}
