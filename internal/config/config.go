// Package config loads command-line settings from defaults, an optional
// config file, HUFFMAN_* environment variables, and flags.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/chronos-tachyon/huffman-tree/internal/textinput"
)

// EnvPrefix is the prefix of environment variables read by Load.
const EnvPrefix = "HUFFMAN"

// Config holds validated settings.
type Config struct {
	Input         string
	InputFile     string
	Mode          textinput.Mode
	Normalization textinput.Normalization
	Format        string
	Shards        int
	Trace         bool

	Serve           bool
	Listen          string
	ShutdownTimeout time.Duration
	MaxBodyBytes    int64

	LogLevel  slog.Level
	LogFormat string
}

// Flags returns a flag set declaring every setting.
func Flags(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.String("config", "", "path to a config file (yaml, toml, or json)")
	fs.String("input", "", "text to compress")
	fs.String("input-file", "", "file holding the text to compress; \"-\" for stdin")
	fs.String("symbols", string(textinput.ModeRune), "symbol unit: rune or byte")
	fs.String("normalize", string(textinput.NormalizeNone), "unicode normalization: none, nfc, nfd, nfkc, or nfkd")
	fs.String("format", "text", "output format: text or json")
	fs.Int("shards", 1, "number of concurrent frequency-counting shards")
	fs.Bool("trace", false, "include the per-symbol tree walk in the output")
	fs.Bool("serve", false, "serve the HTTP API instead of compressing once")
	fs.String("listen", ":8080", "HTTP listen address")
	fs.Duration("shutdown-timeout", 5*time.Second, "HTTP graceful shutdown timeout")
	fs.Int64("max-body-bytes", 1<<20, "HTTP request body size limit")
	fs.String("log-level", "info", "log level: debug, info, warn, or error")
	fs.String("log-format", "text", "log format: text or json")
	return fs
}

// keys maps viper keys to flag names.
var keys = map[string]string{
	"input":            "input",
	"input_file":       "input-file",
	"symbols":          "symbols",
	"normalize":        "normalize",
	"format":           "format",
	"shards":           "shards",
	"trace":            "trace",
	"serve":            "serve",
	"listen":           "listen",
	"shutdown_timeout": "shutdown-timeout",
	"max_body_bytes":   "max-body-bytes",
	"log.level":        "log-level",
	"log.format":       "log-format",
}

// Load parses args into fs and resolves the settings.  fs must come from
// Flags.
func Load(fs *pflag.FlagSet, args []string) (*Config, error) {
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	for key, flagName := range keys {
		if err := v.BindPFlag(key, fs.Lookup(flagName)); err != nil {
			return nil, fmt.Errorf("binding flag --%s: %w", flagName, err)
		}
	}

	if path, _ := fs.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %q: %w", path, err)
		}
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Input:           v.GetString("input"),
		InputFile:       v.GetString("input_file"),
		Format:          strings.ToLower(v.GetString("format")),
		Shards:          v.GetInt("shards"),
		Trace:           v.GetBool("trace"),
		Serve:           v.GetBool("serve"),
		Listen:          v.GetString("listen"),
		ShutdownTimeout: v.GetDuration("shutdown_timeout"),
		MaxBodyBytes:    v.GetInt64("max_body_bytes"),
		LogFormat:       strings.ToLower(v.GetString("log.format")),
	}

	var err error
	if cfg.Mode, err = textinput.ParseMode(v.GetString("symbols")); err != nil {
		return nil, err
	}
	if cfg.Normalization, err = textinput.ParseNormalization(v.GetString("normalize")); err != nil {
		return nil, err
	}
	if err = cfg.LogLevel.UnmarshalText([]byte(v.GetString("log.level"))); err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	if err = cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks settings that have no parser of their own.
func (cfg *Config) Validate() error {
	var errs []error
	switch cfg.Format {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("unknown output format %q", cfg.Format))
	}
	switch cfg.LogFormat {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("unknown log format %q", cfg.LogFormat))
	}
	if cfg.Shards < 0 {
		errs = append(errs, fmt.Errorf("shards must not be negative, got %d", cfg.Shards))
	}
	if cfg.MaxBodyBytes <= 0 {
		errs = append(errs, fmt.Errorf("max_body_bytes must be positive, got %d", cfg.MaxBodyBytes))
	}
	if cfg.Input != "" && cfg.InputFile != "" {
		errs = append(errs, errors.New("input and input_file are mutually exclusive"))
	}
	if cfg.Serve && cfg.Listen == "" {
		errs = append(errs, errors.New("listen address is required to serve"))
	}
	return errors.Join(errs...)
}

// TextInput returns the options for turning input text into symbols.
func (cfg *Config) TextInput() textinput.Options {
	return textinput.Options{Mode: cfg.Mode, Normalization: cfg.Normalization}
}
