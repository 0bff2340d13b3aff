package huffman

import (
	"context"
)

// Result holds every product of one run of the pipeline.
type Result[S Symbol] struct {
	Input       []S
	Frequencies FrequencyTable[S]
	Tree        *Tree[S]
	Codes       CodeTable[S]
	Encoded     Bitstring
}

// Compress runs the full pipeline over seq: Count, Build, AssignCodes, and
// Encode.  For empty seq it returns ErrEmptyInput and no result.
func Compress[S Symbol](seq []S) (*Result[S], error) {
	return compress(seq, Count(seq))
}

// CompressString is Compress over the runes of text.
func CompressString(text string) (*Result[rune], error) {
	return Compress(Runes(text))
}

// CompressParallel is like Compress, but counts frequencies with
// CountParallel.  The result is identical to Compress(seq).
func CompressParallel[S Symbol](ctx context.Context, seq []S, numShards int) (*Result[S], error) {
	ft, err := CountParallel(ctx, seq, numShards)
	if err != nil {
		return nil, err
	}
	return compress(seq, ft)
}

func compress[S Symbol](seq []S, ft FrequencyTable[S]) (*Result[S], error) {
	tree, err := Build(ft)
	if err != nil {
		return nil, err
	}

	codes := AssignCodes(tree)
	encoded, err := Encode(seq, codes)
	if err != nil {
		return nil, err
	}

	return &Result[S]{
		Input:       seq,
		Frequencies: ft,
		Tree:        tree,
		Codes:       codes,
		Encoded:     encoded,
	}, nil
}

// Trace is Trace(r.Tree, r.Codes, r.Input).
func (r *Result[S]) Trace() ([]Step[S], error) {
	return Trace(r.Tree, r.Codes, r.Input)
}
