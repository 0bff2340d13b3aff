package huffman

import (
	"fmt"
	"slices"

	"github.com/chronos-tachyon/assert"
)

// Step describes how one input symbol's code walks the tree.
type Step[S Symbol] struct {
	// Index is the symbol's position in the input.
	Index int

	// Symbol is the input symbol.
	Symbol S

	// Code is the symbol's code.
	Code Code

	// Path lists the IDs of the nodes visited, from the root to the
	// symbol's leaf inclusive.  Each Step owns its Path.
	Path []int
}

// Trace walks each symbol's code against the tree, for consumers that
// animate encoding one symbol at a time.  It only reads t and ct.
//
// For a tree whose root is a leaf, each Path is just the root.
func Trace[S Symbol](t *Tree[S], ct CodeTable[S], seq []S) ([]Step[S], error) {
	paths := make(map[S][]int, ct.Len())
	steps := make([]Step[S], 0, len(seq))
	for index, sym := range seq {
		hc, found := ct.codes[sym]
		if !found {
			return nil, fmt.Errorf("%w: %s at index %d", ErrUnknownSymbol, FormatSymbol(sym), index)
		}

		path, found := paths[sym]
		if !found {
			path = tracePath(t, hc)
			paths[sym] = path
		}

		steps = append(steps, Step[S]{Index: index, Symbol: sym, Code: hc, Path: slices.Clone(path)})
	}
	return steps, nil
}

func tracePath[S Symbol](t *Tree[S], hc Code) []int {
	n := t.root
	path := make([]int, 1, int(hc.Size)+1)
	path[0] = n.id
	if n.IsLeaf() {
		return path
	}
	for i := 0; i < int(hc.Size); i++ {
		n = n.Child(hc.Bit(i))
		assert.Assertf(n != nil, "code %s descends past a leaf", hc)
		path = append(path, n.id)
	}
	assert.Assertf(n.IsLeaf(), "code %s ends at internal node #%d", hc, n.id)
	return path
}
