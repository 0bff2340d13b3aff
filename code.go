package huffman

import (
	"fmt"
	"strings"

	"github.com/chronos-tachyon/assert"
)

// MaxCodeSize is the longest code this package can represent.  A Huffman
// tree deeper than this requires more than Fib(66) input symbols.
const MaxCodeSize = 64

// Code represents a sequence of bits.
type Code struct {
	// Size holds the number of valid bits.
	Size byte

	// Bits holds the actual values of the bits.  The most significant of
	// the Size valid bits is the first bit, i.e. the bit nearest the root
	// of the tree.
	Bits uint64
}

// MakeCode is a convenience function that constructs a Code.
func MakeCode(size byte, bits uint64) Code {
	assert.Assertf(size <= MaxCodeSize, "code size %d > MaxCodeSize %d", size, MaxCodeSize)
	return Code{Size: size, Bits: bits & sizeMask(size)}
}

// ParseCode parses a string of '0' and '1' digits into a Code.
func ParseCode(str string) (Code, error) {
	if len(str) > MaxCodeSize {
		return Code{}, fmt.Errorf("code %q is longer than %d bits", str, MaxCodeSize)
	}
	var hc Code
	for i := 0; i < len(str); i++ {
		switch str[i] {
		case '0':
			hc = hc.Append(0)
		case '1':
			hc = hc.Append(1)
		default:
			return Code{}, fmt.Errorf("invalid bit %q at offset %d in code %q", str[i], i, str)
		}
	}
	return hc, nil
}

// Append returns the Code with one more bit added at the end.
func (hc Code) Append(bit uint) Code {
	assert.Assertf(hc.Size < MaxCodeSize, "cannot extend a code of %d bits", hc.Size)
	return Code{Size: hc.Size + 1, Bits: (hc.Bits << 1) | uint64(bit&1)}
}

// Bit returns the i'th bit of the code, counting from 0 at the root.
func (hc Code) Bit(i int) uint {
	assert.Assertf(i >= 0 && i < int(hc.Size), "bit index %d out of range [0, %d)", i, hc.Size)
	return uint(hc.Bits>>(int(hc.Size)-1-i)) & 1
}

// HasPrefix reports whether prefix is a prefix of this Code.  Every Code has
// itself and the empty Code as prefixes.
func (hc Code) HasPrefix(prefix Code) bool {
	if prefix.Size > hc.Size {
		return false
	}
	return hc.Bits>>(hc.Size-prefix.Size) == prefix.Bits
}

// AppendTo appends the code's digits to buf.
func (hc Code) AppendTo(buf []byte) []byte {
	for i := 0; i < int(hc.Size); i++ {
		buf = append(buf, '0'+byte(hc.Bit(i)))
	}
	return buf
}

// Digits returns the code as a string of '0' and '1' digits.
func (hc Code) Digits() string {
	return string(hc.AppendTo(make([]byte, 0, hc.Size)))
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	if hc.Size == 0 {
		return "\"\""
	}
	var sb strings.Builder
	sb.Grow(int(hc.Size) + 2)
	sb.WriteByte('"')
	sb.Write(hc.AppendTo(nil))
	sb.WriteByte('"')
	return sb.String()
}

var _ fmt.Stringer = Code{}

func sizeMask(size byte) uint64 {
	if size >= 64 {
		return ^uint64(0)
	}
	return (uint64(1) << size) - 1
}
