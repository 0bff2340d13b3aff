package huffman

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAssignCodes(t *testing.T) {
	seq := []byte(strings.Repeat("a", 5) + strings.Repeat("b", 9) + strings.Repeat("c", 12) +
		strings.Repeat("d", 13) + strings.Repeat("e", 16) + strings.Repeat("f", 45))
	codes := AssignCodes(mustBuild(t, seq))

	expectDump := strings.Join([]string{
		"CodeTable{\n",
		"\tMinSize() = 1\n",
		"\tMaxSize() = 4\n",
		"\tLookup(\"a\") = \"1100\"\n",
		"\tLookup(\"b\") = \"1101\"\n",
		"\tLookup(\"c\") = \"100\"\n",
		"\tLookup(\"d\") = \"101\"\n",
		"\tLookup(\"e\") = \"111\"\n",
		"\tLookup(\"f\") = \"0\"\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = codes.Dump(&buf)
	actualDump := buf.String()

	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}

	actualLen, err := codes.EncodedLen(Count(seq))
	require.NoError(t, err)
	require.Equal(t, uint64(5*4+9*4+12*3+13*3+16*3+45*1), actualLen)
}

func TestAssignCodes_SingleSymbol(t *testing.T) {
	codes := AssignCodes(mustBuild(t, Runes("aaaa")))
	hc, found := codes.Lookup('a')
	require.True(t, found)
	require.Equal(t, "0", hc.Digits())
	require.Equal(t, byte(1), codes.MinSize())
	require.Equal(t, byte(1), codes.MaxSize())

	bits, err := Encode(Runes("aaaa"), codes)
	require.NoError(t, err)
	require.Equal(t, Bitstring("0000"), bits)
}

func TestEncode(t *testing.T) {
	type testRow struct {
		input  string
		expect Bitstring
	}

	testData := [...]testRow{
		{"ab", "01"},
		{"ba", "01"},
		{"aaaa", "0000"},
		{"abacabad", "01001100100111"},
		{"aabbcc", "1010111100"},
	}
	for _, row := range testData {
		t.Run(row.input, func(t *testing.T) {
			seq := Runes(row.input)
			codes := AssignCodes(mustBuild(t, seq))
			actual, err := Encode(seq, codes)
			if err != nil {
				t.Fatalf("Encode failed: %v", err)
			}
			if actual != row.expect {
				t.Errorf("expected %q, got %q", row.expect, actual)
			}
		})
	}
}

func TestEncode_UnknownSymbol(t *testing.T) {
	codes := AssignCodes(mustBuild(t, Runes("abacabad")))

	bits, err := Encode(Runes("abz"), codes)
	require.Equal(t, Bitstring(""), bits)
	require.True(t, errors.Is(err, ErrUnknownSymbol))
	require.Contains(t, err.Error(), "'z' at index 2")

	_, err = codes.EncodedLen(Count(Runes("xyz")))
	require.ErrorIs(t, err, ErrUnknownSymbol)
}

func TestEncode_EmptySequence(t *testing.T) {
	codes := AssignCodes(mustBuild(t, Runes("ab")))
	bits, err := Encode([]rune{}, codes)
	require.NoError(t, err)
	require.Equal(t, 0, bits.Len())
}
