package wireformat

import (
	"bytes"
	"errors"
	"testing"
)

func TestFrameLayout(t *testing.T) {
	out := Frame(42, []byte{0xDE, 0xAD})

	expected := []byte{0x0, 0x0, 0x0, 0x0, 0x2A, 0xDE, 0xAD}
	if !bytes.Equal(out, expected) {
		t.Fatalf("expected %v, got %v", expected, out)
	}
}

func TestFrameEmptyPayload(t *testing.T) {
	out := Frame(1, nil)

	if len(out) != HeaderLength {
		t.Fatalf("expected %d bytes, got %d", HeaderLength, len(out))
	}
	if out[0] != MagicByte {
		t.Fatalf("expected magic byte 0x0, got 0x%x", out[0])
	}
}

func TestRoundTrip(t *testing.T) {
	payload := []byte("payload bytes")

	id, out, err := Unframe(Frame(123456, payload))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != 123456 {
		t.Fatalf("expected id 123456, got %d", id)
	}
	if !bytes.Equal(out, payload) {
		t.Fatalf("expected payload %q, got %q", payload, out)
	}
}

func TestUnframeMagicByteMismatch(t *testing.T) {
	_, _, err := Unframe([]byte{0x7, 0x0, 0x0, 0x0, 0x1, 0xFF})
	if err == nil {
		t.Fatal("expected error for bad magic byte")
	}

	var magicErr *MagicByteError
	if !errors.As(err, &magicErr) {
		t.Fatalf("expected *MagicByteError, got %T", err)
	}
	if magicErr.Observed != 0x7 {
		t.Fatalf("expected observed byte 0x7, got 0x%x", magicErr.Observed)
	}
	if magicErr.Expected != 0x0 {
		t.Fatalf("expected expected byte 0x0, got 0x%x", magicErr.Expected)
	}
}

func TestUnframeTooShort(t *testing.T) {
	for _, data := range [][]byte{nil, {}, {0x0}, {0x0, 0x0, 0x0, 0x1}} {
		if _, _, err := Unframe(data); err == nil {
			t.Fatalf("expected error for %d-byte buffer", len(data))
		}
	}
}

func TestUnframeHeaderOnly(t *testing.T) {
	id, payload, err := Unframe([]byte{0x0, 0x0, 0x0, 0x0, 0x9})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != 9 {
		t.Fatalf("expected id 9, got %d", id)
	}
	if len(payload) != 0 {
		t.Fatalf("expected empty payload, got %v", payload)
	}
}
