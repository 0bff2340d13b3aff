package huffman

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"golang.org/x/sync/errgroup"
)

// FrequencyTable maps each distinct symbol of an input to its number of
// occurrences.  Symbols are kept in order of first occurrence, which is the
// order Build uses to break ties.
//
// The zero value is an empty table.
type FrequencyTable[S Symbol] struct {
	order  []S
	counts map[S]uint64
}

// Count scans seq once and returns its FrequencyTable.  An empty seq yields
// an empty table.
func Count[S Symbol](seq []S) FrequencyTable[S] {
	var ft FrequencyTable[S]
	ft.add(seq)
	return ft
}

// CountParallel is like Count, but splits seq into up to numShards
// contiguous shards and counts them concurrently.  The shards are merged in
// input order, so the result is identical to Count(seq).
func CountParallel[S Symbol](ctx context.Context, seq []S, numShards int) (FrequencyTable[S], error) {
	if numShards > len(seq) {
		numShards = len(seq)
	}
	if numShards <= 1 {
		return Count(seq), nil
	}

	shardLen := (len(seq) + numShards - 1) / numShards
	shards := make([]FrequencyTable[S], numShards)

	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < numShards; i++ {
		lo := i * shardLen
		hi := min(lo+shardLen, len(seq))
		if lo >= hi {
			break
		}
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			shards[i].add(seq[lo:hi])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return FrequencyTable[S]{}, err
	}

	var ft FrequencyTable[S]
	for _, shard := range shards {
		ft.merge(shard)
	}
	Logger().Debug("huffman: counted shards", "shards", numShards, "symbols", ft.Len(), "total", ft.Total())
	return ft, nil
}

func (ft *FrequencyTable[S]) add(seq []S) {
	if ft.counts == nil {
		ft.counts = make(map[S]uint64)
	}
	for _, sym := range seq {
		n, found := ft.counts[sym]
		if !found {
			ft.order = append(ft.order, sym)
		}
		ft.counts[sym] = n + 1
	}
}

func (ft *FrequencyTable[S]) merge(other FrequencyTable[S]) {
	if ft.counts == nil {
		ft.counts = make(map[S]uint64, len(other.order))
	}
	for _, sym := range other.order {
		n, found := ft.counts[sym]
		if !found {
			ft.order = append(ft.order, sym)
		}
		ft.counts[sym] = n + other.counts[sym]
	}
}

// Len returns the number of distinct symbols.
func (ft FrequencyTable[S]) Len() int {
	return len(ft.order)
}

// Symbols returns the distinct symbols in order of first occurrence.
func (ft FrequencyTable[S]) Symbols() []S {
	out := make([]S, len(ft.order))
	copy(out, ft.order)
	return out
}

// Frequency returns the number of occurrences of sym, or 0 if sym never
// occurred.
func (ft FrequencyTable[S]) Frequency(sym S) uint64 {
	return ft.counts[sym]
}

// Total returns the length of the counted sequence.
func (ft FrequencyTable[S]) Total() uint64 {
	var sum uint64
	for _, n := range ft.counts {
		sum += n
	}
	return sum
}

// Dump writes a programmer-readable debugging dump of the table to the given
// writer.
func (ft FrequencyTable[S]) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("FrequencyTable{\n")
	fmt.Fprintf(&buf, "\tLen() = %d\n", ft.Len())
	fmt.Fprintf(&buf, "\tTotal() = %d\n", ft.Total())
	for _, sym := range ft.order {
		fmt.Fprintf(&buf, "\tFrequency(%s) = %d\n", FormatSymbol(sym), ft.counts[sym])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
