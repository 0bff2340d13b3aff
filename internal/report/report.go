// Package report runs the compression pipeline over text and renders the
// results for display: frequency table, tree, code table, and encoded
// output.
package report

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	huffman "github.com/chronos-tachyon/huffman-tree"
	"github.com/chronos-tachyon/huffman-tree/internal/textinput"
)

// FrequencyEntry is one row of the frequency table.
type FrequencyEntry struct {
	Symbol any    `json:"symbol"`
	Count  uint64 `json:"count"`
}

// CodeEntry is one row of the code table.
type CodeEntry struct {
	Symbol any    `json:"symbol"`
	Code   string `json:"code"`
}

// TraceStep is one symbol's walk through the tree.
type TraceStep struct {
	Index  int    `json:"index"`
	Symbol any    `json:"symbol"`
	Code   string `json:"code"`
	Path   []int  `json:"path"`
}

// Report is the symbol-type-independent rendering of one pipeline run.
// Frequencies and Codes are in order of first occurrence.
type Report struct {
	Input         string                  `json:"input"`
	Mode          textinput.Mode          `json:"symbols"`
	Normalization textinput.Normalization `json:"normalize"`
	Frequencies   []FrequencyEntry        `json:"frequencies"`
	Tree          huffman.TreeView        `json:"tree"`
	Codes         []CodeEntry             `json:"codes"`
	Encoded       huffman.Bitstring       `json:"encoded"`
	Bits          int                     `json:"bits"`
	Trace         []TraceStep             `json:"trace,omitempty"`

	dump func(io.Writer) error
}

// Options controls Generate.
type Options struct {
	textinput.Options

	// Shards is the number of concurrent frequency-counting shards.
	// Values below 2 count serially.
	Shards int

	// Trace includes the per-symbol tree walk in the report.
	Trace bool
}

// Generate normalizes text, splits it into symbols, and runs the pipeline.
// It returns huffman.ErrEmptyInput for empty text.
func Generate(ctx context.Context, text string, opts Options) (*Report, error) {
	if opts.Mode == "" {
		opts.Mode = textinput.ModeRune
	}
	if opts.Normalization == "" {
		opts.Normalization = textinput.NormalizeNone
	}

	text = textinput.Prepare(text, opts.Normalization)

	var (
		r   *Report
		err error
	)
	switch opts.Mode {
	case textinput.ModeRune:
		r, err = generate(ctx, huffman.Runes(text), opts)
	case textinput.ModeByte:
		r, err = generate(ctx, huffman.Bytes(text), opts)
	default:
		err = fmt.Errorf("unknown symbol mode %q", opts.Mode)
	}
	if err != nil {
		return nil, err
	}

	r.Input = text
	r.Mode = opts.Mode
	r.Normalization = opts.Normalization
	return r, nil
}

func generate[S huffman.Symbol](ctx context.Context, seq []S, opts Options) (*Report, error) {
	result, err := huffman.CompressParallel(ctx, seq, opts.Shards)
	if err != nil {
		return nil, err
	}

	r := &Report{
		Tree:    result.Tree.View(),
		Encoded: result.Encoded,
		Bits:    result.Encoded.Len(),
	}

	for _, sym := range result.Frequencies.Symbols() {
		r.Frequencies = append(r.Frequencies, FrequencyEntry{
			Symbol: huffman.SymbolValue(sym),
			Count:  result.Frequencies.Frequency(sym),
		})
	}

	for _, sym := range result.Codes.Symbols() {
		hc, _ := result.Codes.Lookup(sym)
		r.Codes = append(r.Codes, CodeEntry{
			Symbol: huffman.SymbolValue(sym),
			Code:   hc.Digits(),
		})
	}

	if opts.Trace {
		steps, err := result.Trace()
		if err != nil {
			return nil, err
		}
		r.Trace = make([]TraceStep, len(steps))
		for i, step := range steps {
			r.Trace[i] = TraceStep{
				Index:  step.Index,
				Symbol: huffman.SymbolValue(step.Symbol),
				Code:   step.Code.Digits(),
				Path:   step.Path,
			}
		}
	}

	r.dump = func(w io.Writer) error {
		_, err := result.Tree.Dump(w)
		return err
	}
	return r, nil
}

// WriteJSON writes the report as indented JSON.
func (r *Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// WriteText writes the report as human-readable tables.
func (r *Report) WriteText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)

	fmt.Fprintln(tw, "SYMBOL\tCOUNT\tCODE")
	for i, entry := range r.Frequencies {
		fmt.Fprintf(tw, "%q\t%d\t%s\n", entry.Symbol, entry.Count, r.Codes[i].Code)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(w)
	if r.dump != nil {
		if err := r.dump(w); err != nil {
			return err
		}
		fmt.Fprintln(w)
	}

	if _, err := fmt.Fprintf(w, "encoded (%d bits): %s\n", r.Bits, r.Encoded); err != nil {
		return err
	}

	if len(r.Trace) == 0 {
		return nil
	}
	fmt.Fprintln(w)
	tw = tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "INDEX\tSYMBOL\tCODE\tPATH")
	for _, step := range r.Trace {
		fmt.Fprintf(tw, "%d\t%q\t%s\t%s\n", step.Index, step.Symbol, step.Code, formatPath(step.Path))
	}
	return tw.Flush()
}

func formatPath(path []int) string {
	var sb strings.Builder
	for i, id := range path {
		if i != 0 {
			sb.WriteString(" -> ")
		}
		fmt.Fprintf(&sb, "#%d", id)
	}
	return sb.String()
}

// Write writes the report in the named format, "text" or "json".
func (r *Report) Write(w io.Writer, format string) error {
	switch format {
	case "", "text":
		return r.WriteText(w)
	case "json":
		return r.WriteJSON(w)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
