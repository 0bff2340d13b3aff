package huffman

import (
	"testing"
)

func TestCode_String(t *testing.T) {
	type testRow struct {
		size   byte
		bits   uint64
		expect string
	}

	testData := [...]testRow{
		{size: 0, bits: 0x00, expect: `""`},
		{size: 1, bits: 0x00, expect: `"0"`},
		{size: 1, bits: 0x01, expect: `"1"`},
		{size: 3, bits: 0x06, expect: `"110"`},
		{size: 4, bits: 0x03, expect: `"0011"`},
		{size: 2, bits: 0xff, expect: `"11"`},
	}
	for _, row := range testData {
		hc := MakeCode(row.size, row.bits)
		if actual := hc.String(); actual != row.expect {
			t.Errorf("MakeCode(%d, %#x).String(): expected %s, got %s", row.size, row.bits, row.expect, actual)
		}
	}
}

func TestCode_Append(t *testing.T) {
	var hc Code
	hc = hc.Append(1).Append(0).Append(1).Append(1)
	if expect := MakeCode(4, 0x0b); hc != expect {
		t.Errorf("expected %s, got %s", expect, hc)
	}

	expectBits := []uint{1, 0, 1, 1}
	for i, expect := range expectBits {
		if actual := hc.Bit(i); actual != expect {
			t.Errorf("Bit(%d): expected %d, got %d", i, expect, actual)
		}
	}
}

func TestParseCode(t *testing.T) {
	for _, str := range []string{"", "0", "1", "0110", "111111111111111111111111111111111111111111111111111111111111111"} {
		hc, err := ParseCode(str)
		if err != nil {
			t.Errorf("ParseCode(%q): unexpected error: %v", str, err)
			continue
		}
		if actual := hc.Digits(); actual != str {
			t.Errorf("ParseCode(%q).Digits(): got %q", str, actual)
		}
	}

	for _, str := range []string{"012", "abc", "00000000000000000000000000000000000000000000000000000000000000000"} {
		if _, err := ParseCode(str); err == nil {
			t.Errorf("ParseCode(%q): expected error", str)
		}
	}
}

func TestCode_HasPrefix(t *testing.T) {
	type testRow struct {
		code   string
		prefix string
		expect bool
	}

	testData := [...]testRow{
		{"110", "", true},
		{"110", "1", true},
		{"110", "11", true},
		{"110", "110", true},
		{"110", "10", false},
		{"110", "0", false},
		{"110", "1100", false},
		{"0", "1", false},
	}
	for _, row := range testData {
		hc, _ := ParseCode(row.code)
		prefix, _ := ParseCode(row.prefix)
		if actual := hc.HasPrefix(prefix); actual != row.expect {
			t.Errorf("%q.HasPrefix(%q): expected %v, got %v", row.code, row.prefix, row.expect, actual)
		}
	}
}

func TestBitstring(t *testing.T) {
	bs := Bitstring("0110")
	if bs.Len() != 4 {
		t.Errorf("Len(): expected 4, got %d", bs.Len())
	}
	if !bs.Valid() {
		t.Errorf("Valid(): expected true")
	}
	if bs.Bit(0) != 0 || bs.Bit(1) != 1 || bs.Bit(3) != 0 {
		t.Errorf("Bit(): wrong bits for %q", bs)
	}
	if Bitstring("01x").Valid() {
		t.Errorf("Valid(): expected false for %q", "01x")
	}
}
