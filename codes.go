package huffman

import (
	"bytes"
	"fmt"
	"io"
)

// CodeTable maps each symbol of a tree to its bit code.  No code in a table
// is a prefix of another.
type CodeTable[S Symbol] struct {
	order   []S
	codes   map[S]Code
	minSize byte
	maxSize byte
}

// AssignCodes walks the tree and records, for each leaf, the path from the
// root to that leaf: 0 for each left branch, 1 for each right branch.
//
// A tree whose root is a leaf (single-symbol input) has no branches; its one
// symbol is assigned the code "0".
func AssignCodes[S Symbol](t *Tree[S]) CodeTable[S] {
	ct := CodeTable[S]{
		order: make([]S, t.numLeaves),
		codes: make(map[S]Code, t.numLeaves),
	}

	var hasMinMax bool
	t.Walk(func(n *Node[S], path Code) {
		if !n.IsLeaf() {
			return
		}
		if path.Size == 0 {
			path = MakeCode(1, 0)
		}

		ct.order[n.id] = n.symbol
		ct.codes[n.symbol] = path

		size := path.Size
		if !hasMinMax {
			hasMinMax = true
			ct.minSize = size
			ct.maxSize = size
		} else if ct.minSize > size {
			ct.minSize = size
		} else if ct.maxSize < size {
			ct.maxSize = size
		}
	})

	Logger().Debug("huffman: assigned codes",
		"symbols", len(ct.codes),
		"minSize", ct.minSize,
		"maxSize", ct.maxSize)
	return ct
}

// Len returns the number of symbols in the table.
func (ct CodeTable[S]) Len() int {
	return len(ct.order)
}

// Lookup returns the code for sym.
func (ct CodeTable[S]) Lookup(sym S) (Code, bool) {
	hc, found := ct.codes[sym]
	return hc, found
}

// Symbols returns the table's symbols in order of first occurrence in the
// input, for display.
func (ct CodeTable[S]) Symbols() []S {
	out := make([]S, len(ct.order))
	copy(out, ct.order)
	return out
}

// MinSize is the bit length of the shortest code.
func (ct CodeTable[S]) MinSize() byte {
	return ct.minSize
}

// MaxSize is the bit length of the longest code.
func (ct CodeTable[S]) MaxSize() byte {
	return ct.maxSize
}

// EncodedLen returns the length in bits of encoding an input with the given
// frequencies: the sum over symbols of count × code length.
func (ct CodeTable[S]) EncodedLen(ft FrequencyTable[S]) (uint64, error) {
	var total uint64
	for _, sym := range ft.order {
		hc, found := ct.codes[sym]
		if !found {
			return 0, fmt.Errorf("%w: %s", ErrUnknownSymbol, FormatSymbol(sym))
		}
		total += ft.counts[sym] * uint64(hc.Size)
	}
	return total, nil
}

// Dump writes a programmer-readable debugging dump of the table to the given
// writer.
func (ct CodeTable[S]) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", ct.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", ct.maxSize)
	for _, sym := range ct.order {
		fmt.Fprintf(&buf, "\tLookup(%s) = %s\n", FormatSymbol(sym), ct.codes[sym])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// Encode maps each symbol of seq through the code table and concatenates
// the results.  It returns an error wrapping ErrUnknownSymbol if seq holds a
// symbol that the table lacks.
func Encode[S Symbol](seq []S, ct CodeTable[S]) (Bitstring, error) {
	buf := make([]byte, 0, len(seq)*int(max(ct.minSize, 1)))
	for index, sym := range seq {
		hc, found := ct.codes[sym]
		if !found {
			return "", fmt.Errorf("%w: %s at index %d", ErrUnknownSymbol, FormatSymbol(sym), index)
		}
		buf = hc.AppendTo(buf)
	}
	return Bitstring(buf), nil
}
