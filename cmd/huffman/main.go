// Command huffman builds a Huffman code for a text and prints the frequency
// table, code table, tree, and encoded bitstring.  With --serve it exposes
// the same pipeline over HTTP instead.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/pflag"

	huffman "github.com/chronos-tachyon/huffman-tree"
	"github.com/chronos-tachyon/huffman-tree/internal/config"
	"github.com/chronos-tachyon/huffman-tree/internal/report"
	"github.com/chronos-tachyon/huffman-tree/internal/server"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := config.Flags("huffman")
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "usage: huffman [flags] [text...]\n\nflags:\n")
		fs.PrintDefaults()
	}

	cfg, err := config.Load(fs, args)
	if errors.Is(err, pflag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(stderr, "huffman: %v\n", err)
		return 2
	}

	logger := newLogger(cfg, stderr)
	huffman.SetLogger(logger)

	if cfg.Serve {
		gin.SetMode(gin.ReleaseMode)
		handler := server.New(server.Options{
			Logger:       logger,
			Shards:       cfg.Shards,
			MaxBodyBytes: cfg.MaxBodyBytes,
		})
		logger.Info("listening", slog.String("addr", cfg.Listen))
		if err := server.ListenAndServe(ctx, cfg.Listen, handler, cfg.ShutdownTimeout); err != nil {
			logger.Error("server failed", slog.Any("error", err))
			return 1
		}
		return 0
	}

	text, err := readInput(cfg, fs.Args(), stdin)
	if err != nil {
		fmt.Fprintf(stderr, "huffman: %v\n", err)
		return 1
	}

	r, err := report.Generate(ctx, text, report.Options{
		Options: cfg.TextInput(),
		Shards:  cfg.Shards,
		Trace:   cfg.Trace,
	})
	if errors.Is(err, huffman.ErrEmptyInput) {
		fmt.Fprintln(stderr, "huffman: nothing to compress: the input text is empty")
		return 1
	}
	if err != nil {
		fmt.Fprintf(stderr, "huffman: %v\n", err)
		return 1
	}

	if err := r.Write(stdout, cfg.Format); err != nil {
		fmt.Fprintf(stderr, "huffman: %v\n", err)
		return 1
	}
	return 0
}

func readInput(cfg *config.Config, args []string, stdin io.Reader) (string, error) {
	switch {
	case len(args) != 0:
		if cfg.Input != "" || cfg.InputFile != "" {
			return "", errors.New("positional text conflicts with input or input_file")
		}
		return strings.Join(args, " "), nil
	case cfg.Input != "":
		return cfg.Input, nil
	case cfg.InputFile != "" && cfg.InputFile != "-":
		raw, err := os.ReadFile(cfg.InputFile)
		if err != nil {
			return "", err
		}
		return string(raw), nil
	default:
		raw, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(raw), nil
	}
}

func newLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
