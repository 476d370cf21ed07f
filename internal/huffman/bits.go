package huffman

import (
	"fmt"
	"strings"
)

// Bit is a single binary digit.
type Bit uint8

// Valid bit values.
const (
	Zero Bit = 0
	One  Bit = 1
)

// Bits is a sequence of binary digits, one element per bit.
// This is a logical representation; bits are not packed into bytes.
type Bits []Bit

// ParseBits parses a string of '0' and '1' characters.
// Whitespace is ignored so that long bit strings may be wrapped.
func ParseBits(s string) (Bits, error) {
	bits := make(Bits, 0, len(s))
	for i, r := range s {
		switch r {
		case '0':
			bits = append(bits, Zero)
		case '1':
			bits = append(bits, One)
		case ' ', '\t', '\n', '\r':
			// skip
		default:
			return nil, fmt.Errorf("unexpected character %q at offset %d", r, i)
		}
	}
	return bits, nil
}

// String renders the bits as '0' and '1' characters.
// Values other than Zero and One are rendered as '?'.
func (bs Bits) String() string {
	var sb strings.Builder
	sb.Grow(len(bs))
	for _, b := range bs {
		switch b {
		case Zero:
			sb.WriteByte('0')
		case One:
			sb.WriteByte('1')
		default:
			sb.WriteByte('?')
		}
	}
	return sb.String()
}

// HasPrefix reports whether bs starts with prefix.
func (bs Bits) HasPrefix(prefix Bits) bool {
	if len(prefix) > len(bs) {
		return false
	}
	for i, b := range prefix {
		if bs[i] != b {
			return false
		}
	}
	return true
}
