package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	huffman "github.com/chronos-tachyon/huffman-tree"
)

func runForTest(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	defer huffman.SetLogger(nil)

	var stdout, stderr strings.Builder
	code := run(context.Background(), args, strings.NewReader(stdin), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun_Args(t *testing.T) {
	code, stdout, stderr := runForTest(t, "", "abacabad")
	require.Equal(t, 0, code, stderr)
	require.Contains(t, stdout, "encoded (14 bits): 01001100100111\n")
}

func TestRun_Stdin(t *testing.T) {
	code, stdout, _ := runForTest(t, "ab", "--format", "json")
	require.Equal(t, 0, code)
	require.Contains(t, stdout, `"encoded": "01"`)
}

func TestRun_InputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte("aaaa"), 0o644))

	code, stdout, _ := runForTest(t, "", "--input-file", path)
	require.Equal(t, 0, code)
	require.Contains(t, stdout, "encoded (4 bits): 0000\n")
}

func TestRun_Empty(t *testing.T) {
	code, stdout, stderr := runForTest(t, "")
	require.Equal(t, 1, code)
	require.Empty(t, stdout)
	require.Contains(t, stderr, "input text is empty")
}

func TestRun_BadFlags(t *testing.T) {
	code, _, stderr := runForTest(t, "", "--format", "xml", "abc")
	require.Equal(t, 2, code)
	require.Contains(t, stderr, "unknown output format")

	code, _, _ = runForTest(t, "", "--input", "abc", "def")
	require.Equal(t, 1, code)
}

func TestRun_Help(t *testing.T) {
	code, _, stderr := runForTest(t, "", "--help")
	require.Equal(t, 0, code)
	require.Contains(t, stderr, "usage: huffman")
}

func TestRun_TraceText(t *testing.T) {
	code, stdout, _ := runForTest(t, "", "--trace", "ab")
	require.Equal(t, 0, code)
	require.Contains(t, stdout, "INDEX  SYMBOL  CODE  PATH\n")
	require.Contains(t, stdout, "#2 -> #1\n")
}
