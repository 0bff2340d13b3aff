// Package textinput turns raw text into symbol sequences for the engine.
package textinput

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Normalization names a Unicode normalization form, or none.
type Normalization string

const (
	NormalizeNone Normalization = "none"
	NormalizeNFC  Normalization = "nfc"
	NormalizeNFD  Normalization = "nfd"
	NormalizeNFKC Normalization = "nfkc"
	NormalizeNFKD Normalization = "nfkd"
)

// ParseNormalization parses a normalization name, case-insensitively.  The
// empty string means NormalizeNone.
func ParseNormalization(str string) (Normalization, error) {
	switch n := Normalization(strings.ToLower(strings.TrimSpace(str))); n {
	case "":
		return NormalizeNone, nil
	case NormalizeNone, NormalizeNFC, NormalizeNFD, NormalizeNFKC, NormalizeNFKD:
		return n, nil
	default:
		return "", fmt.Errorf("unknown normalization %q", str)
	}
}

// Apply returns text in normalization form n.
func (n Normalization) Apply(text string) string {
	switch n {
	case NormalizeNFC:
		return norm.NFC.String(text)
	case NormalizeNFD:
		return norm.NFD.String(text)
	case NormalizeNFKC:
		return norm.NFKC.String(text)
	case NormalizeNFKD:
		return norm.NFKD.String(text)
	default:
		return text
	}
}

// Mode selects the symbol unit.
type Mode string

const (
	// ModeRune makes each Unicode code point one symbol.
	ModeRune Mode = "rune"

	// ModeByte makes each byte of the UTF-8 encoding one symbol.
	ModeByte Mode = "byte"
)

// ParseMode parses a symbol mode name.  The empty string means ModeRune.
func ParseMode(str string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(str))); m {
	case "":
		return ModeRune, nil
	case ModeRune, ModeByte:
		return m, nil
	default:
		return "", fmt.Errorf("unknown symbol mode %q", str)
	}
}

// Options controls how text is turned into symbols.
type Options struct {
	Mode          Mode
	Normalization Normalization
}

// Prepare returns text in normalization form n.  An empty n leaves text
// unchanged.  Callers then split the result with huffman.Runes or
// huffman.Bytes according to Options.Mode.
func Prepare(text string, n Normalization) string {
	return n.Apply(text)
}
