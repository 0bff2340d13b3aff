package huffman

import (
	"fmt"
	"strconv"
)

// Symbol is the constraint satisfied by any atomic unit of input.  Symbols
// are compared for equality only; they need not be ordered.
type Symbol interface {
	comparable
}

// Runes splits text into a sequence of rune symbols.
func Runes(text string) []rune {
	return []rune(text)
}

// Bytes splits text into a sequence of byte symbols.
func Bytes(text string) []byte {
	return []byte(text)
}

// FormatSymbol returns a programmer-readable representation of a symbol.
// Runes and bytes are quoted; anything else uses its default format.
func FormatSymbol[S Symbol](sym S) string {
	switch x := any(sym).(type) {
	case rune:
		return strconv.QuoteRune(x)
	case byte:
		return strconv.Quote(string([]byte{x}))
	case string:
		return strconv.Quote(x)
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprintf("%v", x)
	}
}
