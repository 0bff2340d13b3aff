package textinput

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseNormalization(t *testing.T) {
	for _, str := range []string{"", "none", "NFC", " nfd ", "nfkc", "nfkd"} {
		_, err := ParseNormalization(str)
		require.NoError(t, err, "%q", str)
	}
	_, err := ParseNormalization("nfx")
	require.Error(t, err)
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("")
	require.NoError(t, err)
	require.Equal(t, ModeRune, m)

	m, err = ParseMode("BYTE")
	require.NoError(t, err)
	require.Equal(t, ModeByte, m)

	_, err = ParseMode("word")
	require.Error(t, err)
}

func TestPrepare(t *testing.T) {
	decomposed := "e\u0301"
	composed := "\u00e9"

	require.Equal(t, composed, Prepare(decomposed, NormalizeNFC))
	require.Equal(t, decomposed, Prepare(composed, NormalizeNFD))
	require.Equal(t, decomposed, Prepare(decomposed, NormalizeNone))
	require.Equal(t, "fi", Prepare("\ufb01", NormalizeNFKC))
	require.Equal(t, decomposed, Prepare(decomposed, ""))
}
