// Package huffman implements a deterministic Huffman prefix-code engine.
// Given a sequence of symbols, it counts symbol frequencies, builds a binary
// merge tree, assigns a bit code to every leaf, and encodes the sequence as a
// single bit string.
//
// The tree shape is a pure function of the input: ties between equal
// frequencies are broken by insertion order, where original leaves come first
// in order of first occurrence and merged nodes follow in the order they were
// created.  Two runs over the same input therefore always produce the same
// tree, the same code table, and the same encoded output.
//
// The pipeline is:
//
//	freqs := huffman.Count(seq)
//	tree, err := huffman.Build(freqs)
//	codes := huffman.AssignCodes(tree)
//	bits, err := huffman.Encode(seq, codes)
//
// or, equivalently, huffman.Compress(seq).
//
// References:
//
//	<https://en.wikipedia.org/wiki/Huffman_coding>
package huffman
