// Package entropy provides the 128-bit entropy values consumed by the
// program decoder.
//
// A Value is opaque random input. The decoder never interprets it beyond
// splitting it into two 64-bit instruction words.
package entropy

import (
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

// Size is the number of bytes in one entropy value.
const Size = 16

// ErrBadLength is returned when a byte slice cannot be split into whole
// entropy values.
var ErrBadLength = errors.New("entropy: length is not a multiple of 16")

// Value is a 128-bit entropy value.
type Value struct {
	Hi uint64 // Bits [127:64]
	Lo uint64 // Bits [63:0]
}

// Words returns the two instruction words carried by the value in byte
// order: the low word (bytes 0-7) first.
func (v Value) Words() (first, second int64) {
	return int64(v.Lo), int64(v.Hi)
}

// String renders the value as 32 lower-case hex digits, most significant
// digit first.
func (v Value) String() string {
	return fmt.Sprintf("%016x%016x", v.Hi, v.Lo)
}

// FromBytes splits b into little-endian 128-bit values. Bytes [0:8] of each
// chunk hold the low word and bytes [8:16] the high word.
func FromBytes(b []byte) ([]Value, error) {
	if len(b)%Size != 0 {
		return nil, fmt.Errorf("%w: got %d bytes", ErrBadLength, len(b))
	}

	values := make([]Value, len(b)/Size)
	for i := range values {
		chunk := b[i*Size : (i+1)*Size]
		values[i] = Value{
			Lo: binary.LittleEndian.Uint64(chunk[0:8]),
			Hi: binary.LittleEndian.Uint64(chunk[8:16]),
		}
	}

	return values, nil
}

// Bytes is the inverse of FromBytes for a single value.
func (v Value) Bytes() []byte {
	b := make([]byte, Size)
	binary.LittleEndian.PutUint64(b[0:8], v.Lo)
	binary.LittleEndian.PutUint64(b[8:16], v.Hi)
	return b
}

// ParseHex parses 32 hex digits (most significant first) into a Value. A
// leading "0x" is accepted.
func ParseHex(s string) (Value, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if len(s) != 2*Size {
		return Value{}, fmt.Errorf("entropy: want %d hex digits, got %d", 2*Size, len(s))
	}

	raw, err := hex.DecodeString(s)
	if err != nil {
		return Value{}, fmt.Errorf("failed to parse entropy value: %w", err)
	}

	return Value{
		Hi: binary.BigEndian.Uint64(raw[0:8]),
		Lo: binary.BigEndian.Uint64(raw[8:16]),
	}, nil
}
