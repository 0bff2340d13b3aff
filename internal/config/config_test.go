package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/chronos-tachyon/huffman-tree/internal/textinput"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(Flags("test"), nil)
	require.NoError(t, err)

	require.Equal(t, textinput.ModeRune, cfg.Mode)
	require.Equal(t, textinput.NormalizeNone, cfg.Normalization)
	require.Equal(t, "text", cfg.Format)
	require.Equal(t, 1, cfg.Shards)
	require.False(t, cfg.Serve)
	require.Equal(t, ":8080", cfg.Listen)
	require.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
	require.Equal(t, int64(1<<20), cfg.MaxBodyBytes)
	require.Equal(t, slog.LevelInfo, cfg.LogLevel)
	require.Equal(t, "text", cfg.LogFormat)
}

func TestLoad_Flags(t *testing.T) {
	cfg, err := Load(Flags("test"), []string{
		"--input", "abacabad",
		"--symbols", "byte",
		"--normalize", "NFC",
		"--format", "json",
		"--shards", "4",
		"--log-level", "debug",
	})
	require.NoError(t, err)

	require.Equal(t, "abacabad", cfg.Input)
	require.Equal(t, textinput.ModeByte, cfg.Mode)
	require.Equal(t, textinput.NormalizeNFC, cfg.Normalization)
	require.Equal(t, "json", cfg.Format)
	require.Equal(t, 4, cfg.Shards)
	require.Equal(t, slog.LevelDebug, cfg.LogLevel)
	require.Equal(t, textinput.Options{Mode: textinput.ModeByte, Normalization: textinput.NormalizeNFC}, cfg.TextInput())
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("HUFFMAN_FORMAT", "json")
	t.Setenv("HUFFMAN_LOG_LEVEL", "warn")

	cfg, err := Load(Flags("test"), nil)
	require.NoError(t, err)
	require.Equal(t, "json", cfg.Format)
	require.Equal(t, slog.LevelWarn, cfg.LogLevel)

	// Flags take precedence over the environment.
	cfg, err = Load(Flags("test"), []string{"--format", "text"})
	require.NoError(t, err)
	require.Equal(t, "text", cfg.Format)
}

func TestLoad_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "huffman.yaml")
	data := "symbols: byte\nshards: 3\nlog:\n  format: json\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(Flags("test"), []string{"--config", path})
	require.NoError(t, err)
	require.Equal(t, textinput.ModeByte, cfg.Mode)
	require.Equal(t, 3, cfg.Shards)
	require.Equal(t, "json", cfg.LogFormat)

	_, err = Load(Flags("test"), []string{"--config", filepath.Join(t.TempDir(), "missing.yaml")})
	require.Error(t, err)
}

func TestLoad_Invalid(t *testing.T) {
	for _, args := range [][]string{
		{"--symbols", "word"},
		{"--normalize", "nfx"},
		{"--format", "xml"},
		{"--log-level", "loud"},
		{"--log-format", "xml"},
		{"--shards", "-1"},
		{"--max-body-bytes", "0"},
		{"--input", "x", "--input-file", "y"},
		{"--serve", "--listen", ""},
		{"--no-such-flag"},
	} {
		_, err := Load(Flags("test"), args)
		require.Error(t, err, "%v", args)
	}
}
