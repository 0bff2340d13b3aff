package huffman

import (
	"github.com/chronos-tachyon/assert"
)

// Bitstring is an encoded output: a sequence of '0' and '1' digits, one per
// bit, in transmission order.
type Bitstring string

// Len returns the length of the bitstring in bits.
func (bs Bitstring) Len() int {
	return len(bs)
}

// Bit returns the i'th bit.
func (bs Bitstring) Bit(i int) uint {
	assert.Assertf(i >= 0 && i < len(bs), "bit index %d out of range [0, %d)", i, len(bs))
	return uint(bs[i] - '0')
}

// Valid reports whether every character of bs is '0' or '1'.
func (bs Bitstring) Valid() bool {
	for i := 0; i < len(bs); i++ {
		if c := bs[i]; c != '0' && c != '1' {
			return false
		}
	}
	return true
}
