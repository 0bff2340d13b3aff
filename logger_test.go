package huffman

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLogger_DefaultIsSilent(t *testing.T) {
	l := Logger()
	require.NotNil(t, l)
	require.False(t, l.Enabled(context.Background(), slog.LevelError))
}

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	_, err := CompressString("abacabad")
	require.NoError(t, err)
	require.Contains(t, buf.String(), "huffman: merged nodes")
	require.Contains(t, buf.String(), "huffman: assigned codes")

	SetLogger(nil)
	require.False(t, Logger().Enabled(context.Background(), slog.LevelError))
}
