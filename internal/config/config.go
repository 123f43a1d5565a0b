// Package config loads settings for the vecctl harness.
package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/joshuapare/policyvec/internal/logger"
)

// EnvPrefix prefixes every environment variable read by Load. Nested keys use a
// double underscore: POLICYVEC_LOG__LEVEL sets log.level.
const EnvPrefix = "POLICYVEC_"

// Strategy and output names accepted by Validate.
var (
	Allocators = []string{"heap", "pool", "mmap"}
	Locks      = []string{"none", "mutex", "assert"}
	Tracers    = []string{"discard", "text", "slog", "recorder"}
	Outputs    = []string{"table", "json"}
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid")

// Config holds harness settings.
type Config struct {
	Allocator string    `koanf:"allocator"`
	Lock      string    `koanf:"lock"`
	Trace     string    `koanf:"trace"`
	Threads   int       `koanf:"threads"`
	PerThread int       `koanf:"per_thread"`
	Output    string    `koanf:"output"`
	Log       LogConfig `koanf:"log"`
}

// LogConfig configures internal/logger.
type LogConfig struct {
	Enabled bool   `koanf:"enabled"`
	Level   string `koanf:"level"`
	Format  string `koanf:"format"`
	File    string `koanf:"file"`
}

// Defaults returns the settings used when nothing overrides them.
func Defaults() map[string]any {
	return map[string]any{
		"allocator":  "heap",
		"lock":       "mutex",
		"trace":      "discard",
		"threads":    4,
		"per_thread": 5,
		"output":     "table",
		"log": map[string]any{
			"enabled": false,
			"level":   "info",
			"format":  "text",
			"file":    "",
		},
	}
}

// Load builds a Config from, lowest priority first: defaults, the YAML file at
// path (skipped when path is empty), POLICYVEC_ environment variables, and the
// flags in fs that were explicitly set. The result is validated.
func Load(path string, fs *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(Defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", path, err)
		}
	}

	// POLICYVEC_PER_THREAD -> per_thread, POLICYVEC_LOG__LEVEL -> log.level
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		return strings.ReplaceAll(key, "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	if fs != nil {
		if err := k.Load(posflag.ProviderWithFlag(fs, ".", k, func(f *pflag.Flag) (string, any) {
			if !f.Changed {
				return "", nil
			}
			return flagKey(f.Name), posflag.FlagVal(fs, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// flagKey maps a kebab-case flag name to its config key: --per-thread sets
// per_thread and --log-level sets log.level.
func flagKey(name string) string {
	if rest, ok := strings.CutPrefix(name, "log-"); ok {
		return "log." + strings.ReplaceAll(rest, "-", "_")
	}
	return strings.ReplaceAll(name, "-", "_")
}

// Validate rejects unknown strategy names and non-positive counts.
func (c *Config) Validate() error {
	var errs []error
	check := func(field, value string, allowed []string) {
		if !slices.Contains(allowed, value) {
			errs = append(errs, fmt.Errorf("%w: %s %q (want one of %s)", ErrInvalid, field, value, strings.Join(allowed, ", ")))
		}
	}
	check("allocator", c.Allocator, Allocators)
	check("lock", c.Lock, Locks)
	check("trace", c.Trace, Tracers)
	check("output", c.Output, Outputs)
	check("log.format", c.Log.Format, []string{"text", "json"})

	if c.Threads <= 0 {
		errs = append(errs, fmt.Errorf("%w: threads must be positive, got %d", ErrInvalid, c.Threads))
	}
	if c.PerThread <= 0 {
		errs = append(errs, fmt.Errorf("%w: per_thread must be positive, got %d", ErrInvalid, c.PerThread))
	}
	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("%w: log.level: %w", ErrInvalid, err))
	}
	return errors.Join(errs...)
}

// LoggerOptions converts the log settings for logger.Init.
func (c *Config) LoggerOptions() logger.Options {
	level, _ := logger.ParseLevel(c.Log.Level)
	return logger.Options{
		Enabled: c.Log.Enabled,
		Format:  c.Log.Format,
		Level:   level,
		File:    c.Log.File,
	}
}
