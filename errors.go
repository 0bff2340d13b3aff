package huffman

import (
	"errors"
)

// ErrEmptyInput is returned by Build when the frequency table has no
// symbols.  No tree, codes, or encoded output exist for empty input.
var ErrEmptyInput = errors.New("huffman: empty input")

// ErrUnknownSymbol is returned by Encode and Trace when asked to encode a
// symbol that has no entry in the code table.  It means the code table was
// not derived from the same input.
var ErrUnknownSymbol = errors.New("huffman: unknown symbol")
