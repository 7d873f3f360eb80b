// Package config holds the runtime configuration, optionally read from a
// weave.yaml file.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"
	"gopkg.in/yaml.v3"
)

// FileName is the name LoadOptional looks for.
const FileName = "weave.yaml"

const (
	PanicIsolate   = "isolate"
	PanicPropagate = "propagate"
)

// Config represents the optional weave.yaml configuration.
type Config struct {
	Scheduler SchedulerConfig `yaml:"scheduler"`
	Log       LogConfig       `yaml:"log"`
}

// SchedulerConfig contains scheduler settings.
type SchedulerConfig struct {
	// PanicPolicy is either "isolate" (recover each runnable, keep draining)
	// or "propagate" (re-panic on the draining goroutine).
	PanicPolicy string `yaml:"panic_policy,omitempty"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	// Level is one of debug, info, warn, error. Empty disables logging.
	Level string `yaml:"level,omitempty"`
	// Format is one of text, json or auto (text on a terminal, json otherwise).
	Format string `yaml:"format,omitempty"`
}

// Default returns the configuration used when nothing is configured.
func Default() Config {
	return Config{
		Scheduler: SchedulerConfig{PanicPolicy: PanicIsolate},
		Log:       LogConfig{Format: "auto"},
	}
}

// Parse decodes YAML on top of the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadOptional reads weave.yaml from dir if present.
func LoadOptional(dir string) (Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("failed to read %s: %w", FileName, err)
	}
	return Parse(data)
}

var ErrInvalid = errors.New("invalid configuration")

func (c Config) Validate() error {
	switch c.Scheduler.PanicPolicy {
	case "", PanicIsolate, PanicPropagate:
	default:
		return fmt.Errorf("%w: scheduler.panic_policy %q", ErrInvalid, c.Scheduler.PanicPolicy)
	}
	if _, err := parseLevel(c.Log.Level); err != nil {
		return err
	}
	switch c.Log.Format {
	case "", "auto", "text", "json":
	default:
		return fmt.Errorf("%w: log.format %q", ErrInvalid, c.Log.Format)
	}
	return nil
}

// Propagate reports whether panics in scheduled work should escape the
// scheduler.
func (c SchedulerConfig) Propagate() bool {
	return c.PanicPolicy == PanicPropagate
}

// NewLogger builds a logger writing to f. With an empty level the returned
// logger discards everything.
func (c LogConfig) NewLogger(f *os.File) *slog.Logger {
	level, err := parseLevel(c.Level)
	if err != nil || c.Level == "" {
		return slog.New(slog.DiscardHandler)
	}

	opts := &slog.HandlerOptions{Level: level}
	var w io.Writer = f

	switch c.Format {
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts))
	case "text":
		return slog.New(slog.NewTextHandler(w, opts))
	default:
		if IsTerminal(f) {
			return slog.New(slog.NewTextHandler(w, opts))
		}
		return slog.New(slog.NewJSONHandler(w, opts))
	}
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%w: log.level %q", ErrInvalid, s)
	}
}
