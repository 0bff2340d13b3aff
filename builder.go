package huffman

import (
	"context"
	"log/slog"

	"github.com/chronos-tachyon/assert"
)

// Build constructs the Huffman tree for a frequency table.
//
// Build repeatedly removes the two nodes of lowest priority (see
// lessPriority), joins them under a new internal node whose left child is
// the first one removed, and inserts the new node back into the working set,
// until one node remains.  That node is the root.  With a single distinct
// symbol, the root is that symbol's leaf.
//
// Build returns ErrEmptyInput if the table is empty.
func Build[S Symbol](ft FrequencyTable[S]) (*Tree[S], error) {
	numLeaves := ft.Len()
	if numLeaves == 0 {
		return nil, ErrEmptyInput
	}

	logger := Logger()
	debug := logger.Enabled(context.Background(), slog.LevelDebug)

	// Node storage is a single arena; the ID of each node is its index.
	arena := make([]Node[S], 2*numLeaves-1)
	nodes := make([]*Node[S], 0, len(arena))

	h := nodeHeap[S]{list: make([]*Node[S], 0, numLeaves)}
	for id, sym := range ft.order {
		freq := ft.counts[sym]
		assert.Assertf(freq != 0, "symbol %s has frequency 0", FormatSymbol(sym))

		n := &arena[id]
		*n = Node[S]{id: id, freq: freq, symbol: sym}
		nodes = append(nodes, n)
		h.list = append(h.list, n)
	}
	h.Init()

	for h.Len() > 1 {
		a := h.PopNode()
		b := h.PopNode()

		freqSum := a.freq + b.freq
		assert.Assertf(freqSum >= a.freq, "frequency overflow merging #%d and #%d", a.id, b.id)

		id := len(nodes)
		n := &arena[id]
		*n = Node[S]{id: id, freq: freqSum, left: a, right: b}
		nodes = append(nodes, n)
		h.PushNode(n)

		if debug {
			logger.Debug("huffman: merged nodes",
				slog.Int("id", id),
				slog.Int("left", a.id),
				slog.Int("right", b.id),
				slog.Uint64("frequency", freqSum))
		}
	}

	root := h.PopNode()
	assert.Assertf(len(nodes) == len(arena), "built %d nodes, expected %d", len(nodes), len(arena))
	assert.Assertf(root.freq == ft.Total(), "root frequency %d != input length %d", root.freq, ft.Total())

	return &Tree[S]{root: root, nodes: nodes, numLeaves: numLeaves}, nil
}
