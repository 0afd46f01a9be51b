package serde

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/bufbuild/protocompile"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/dynamicpb"
)

// ProtobufSerde is the Protocol Buffers backend. The schema definition is the
// content of a .proto file; the codec is bound to the first top-level message
// type it declares, matching how the registry stores protobuf schemas.
type ProtobufSerde struct{}

const protoFileName = "schema.proto"

// Parse compiles a .proto definition into a Codec for its first message type.
func (ProtobufSerde) Parse(schema string) (Codec, error) {
	compiler := protocompile.Compiler{
		Resolver: protocompile.WithStandardImports(&protocompile.SourceResolver{
			Accessor: protocompile.SourceAccessorFromMap(map[string]string{
				protoFileName: schema,
			}),
		}),
	}

	files, err := compiler.Compile(context.Background(), protoFileName)
	if err != nil {
		return nil, fmt.Errorf("failed to compile protobuf schema: %w", err)
	}

	fd := files[0]
	if fd.Messages().Len() == 0 {
		return nil, errors.New("protobuf schema declares no message types")
	}

	return &protobufCodec{
		descriptor: fd.Messages().Get(0),
		raw:        schema,
	}, nil
}

type protobufCodec struct {
	descriptor protoreflect.MessageDescriptor
	raw        string
}

// Encode serializes value to protobuf binary. proto.Message values are
// marshaled directly; anything else is converted through its JSON form into
// a dynamic message first, so plain maps can be encoded without generated
// types.
func (c *protobufCodec) Encode(value interface{}) ([]byte, error) {
	if msg, ok := value.(proto.Message); ok {
		data, err := proto.Marshal(msg)
		if err != nil {
			return nil, fmt.Errorf("failed to encode protobuf message: %w", err)
		}
		return data, nil
	}

	jsonData, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal value for protobuf conversion: %w", err)
	}

	msg := dynamicpb.NewMessage(c.descriptor)
	if err := protojson.Unmarshal(jsonData, msg); err != nil {
		return nil, fmt.Errorf("value does not match protobuf schema: %w", err)
	}

	data, err := proto.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode protobuf message: %w", err)
	}
	return data, nil
}

// Decode deserializes data into a dynamic message for the schema's message
// type. The returned value implements proto.Message.
func (c *protobufCodec) Decode(data []byte) (interface{}, error) {
	msg := dynamicpb.NewMessage(c.descriptor)
	if err := proto.Unmarshal(data, msg); err != nil {
		return nil, fmt.Errorf("failed to decode protobuf message: %w", err)
	}
	return msg, nil
}

func (c *protobufCodec) Schema() string {
	return c.raw
}
