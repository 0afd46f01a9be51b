// Package wireformat implements the Confluent wire format envelope.
//
// Every message produced through the schema registry is framed as:
//
//	[magic_byte (1 byte)] [schema_id (4 bytes, big-endian)] [payload]
//
// The magic byte is always 0x0. Frame and Unframe are pure functions; the
// payload is never inspected or copied beyond slicing.
package wireformat

import (
	"encoding/binary"
	"fmt"
)

// MagicByte is the fixed leading byte identifying this wire format version.
const MagicByte byte = 0x0

// HeaderLength is the size of the envelope header in bytes.
const HeaderLength = 5

// MagicByteError reports a buffer whose leading byte is not the expected
// magic byte. It carries both the observed and expected values so the caller
// can tell corrupted input apart from messages in a different format.
type MagicByteError struct {
	Observed byte
	Expected byte
}

func (e *MagicByteError) Error() string {
	return fmt.Sprintf("invalid magic byte: expected 0x%x, got 0x%x", e.Expected, e.Observed)
}

// Frame prepends the wire format header to payload.
// The payload content is not validated.
func Frame(schemaID uint32, payload []byte) []byte {
	buf := make([]byte, HeaderLength, HeaderLength+len(payload))
	buf[0] = MagicByte
	binary.BigEndian.PutUint32(buf[1:], schemaID)
	return append(buf, payload...)
}

// Unframe splits data into its schema ID and payload.
// The payload is returned unconsumed; decoding it is the caller's
// responsibility. A leading byte other than MagicByte yields a
// *MagicByteError.
func Unframe(data []byte) (uint32, []byte, error) {
	if len(data) < HeaderLength {
		return 0, nil, fmt.Errorf("data too short: expected at least %d bytes, got %d", HeaderLength, len(data))
	}

	if data[0] != MagicByte {
		return 0, nil, &MagicByteError{Observed: data[0], Expected: MagicByte}
	}

	schemaID := binary.BigEndian.Uint32(data[1:HeaderLength])
	return schemaID, data[HeaderLength:], nil
}
