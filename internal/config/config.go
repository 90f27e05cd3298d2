// SPDX-License-Identifier: MIT

// Package config loads kpaths settings from a TOML file and KPATHS_*
// environment variables. Precedence: defaults < file < environment < flags
// (flags are applied by the CLI).
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Config aggregates application configuration values.
type Config struct {
	Graph   GraphConfig   `toml:"graph"`
	Search  SearchConfig  `toml:"search"`
	Output  OutputConfig  `toml:"output"`
	Workers WorkersConfig `toml:"workers"`
	Metrics MetricsConfig `toml:"metrics"`
	Logging LoggingConfig `toml:"logging"`
}

// GraphConfig points at the adjacency document.
type GraphConfig struct {
	Path string `toml:"path"`
}

// SearchConfig bounds every k-shortest query.
type SearchConfig struct {
	K           int           `toml:"k"`
	MaxHops     int           `toml:"max_hops"`
	MaxFrontier int           `toml:"max_frontier"` // 0 = unbounded
	Timeout     time.Duration `toml:"timeout"`      // 0 = none
	BestEffort  bool          `toml:"best_effort"`
}

// OutputConfig controls report rendering.
type OutputConfig struct {
	Dir    string `toml:"dir"`
	Dated  bool   `toml:"dated"`  // write under dir/YYYY-MM-DD
	Format string `toml:"format"` // csv|text|both
}

// WorkersConfig sizes the batch pool.
type WorkersConfig struct {
	Size int `toml:"size"`
}

// MetricsConfig enables the Prometheus endpoint when Addr is set.
type MetricsConfig struct {
	Addr string `toml:"addr"`
}

// LoggingConfig controls structured logging settings.
type LoggingConfig struct {
	Level         string `toml:"level"`
	Format        string `toml:"format"` // text|json
	IncludeCaller bool   `toml:"include_caller"`
}

// Output formats.
const (
	FormatCSV  = "csv"
	FormatText = "text"
	FormatBoth = "both"
)

// MaxK is the largest search.k accepted. The engine itself takes any
// positive k; the ceiling keeps report files and memory bounded for operators.
const MaxK = 100_000

const (
	defaultK             = 10
	defaultMaxHops       = 10
	defaultOutputDir     = "reports"
	defaultOutputFormat  = FormatBoth
	defaultWorkers       = 4
	defaultLoggingLevel  = "info"
	defaultLoggingFormat = "text"
)

var (
	// ErrUnknownKey indicates keys in the file that no field consumes.
	ErrUnknownKey = errors.New("config: unknown key")

	// ErrInvalid indicates a value outside its allowed range.
	ErrInvalid = errors.New("config: invalid value")
)

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Search: SearchConfig{
			K:       defaultK,
			MaxHops: defaultMaxHops,
		},
		Output: OutputConfig{
			Dir:    defaultOutputDir,
			Dated:  true,
			Format: defaultOutputFormat,
		},
		Workers: WorkersConfig{Size: defaultWorkers},
		Logging: LoggingConfig{
			Level:  defaultLoggingLevel,
			Format: defaultLoggingFormat,
		},
	}
}

// Load starts from Default, decodes path (if non-empty) over it, applies
// environment overrides and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		md, err := toml.DecodeFile(path, &cfg)
		if err != nil {
			return Config{}, fmt.Errorf("config: load %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return Config{}, fmt.Errorf("%w in %s: %s", ErrUnknownKey, path, strings.Join(keys, ", "))
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks ranges and enumerations.
func (c Config) Validate() error {
	switch {
	case c.Search.K <= 0:
		return fmt.Errorf("%w: search.k=%d must be positive", ErrInvalid, c.Search.K)
	case c.Search.K > MaxK:
		return fmt.Errorf("%w: search.k=%d exceeds %d", ErrInvalid, c.Search.K, MaxK)
	case c.Search.MaxHops < 0:
		return fmt.Errorf("%w: search.max_hops=%d must be non-negative", ErrInvalid, c.Search.MaxHops)
	case c.Search.MaxFrontier < 0:
		return fmt.Errorf("%w: search.max_frontier=%d must be non-negative", ErrInvalid, c.Search.MaxFrontier)
	case c.Search.Timeout < 0:
		return fmt.Errorf("%w: search.timeout=%s must be non-negative", ErrInvalid, c.Search.Timeout)
	case c.Workers.Size <= 0:
		return fmt.Errorf("%w: workers.size=%d must be positive", ErrInvalid, c.Workers.Size)
	}
	switch strings.ToLower(c.Output.Format) {
	case FormatCSV, FormatText, FormatBoth:
	default:
		return fmt.Errorf("%w: output.format=%q (want csv, text or both)", ErrInvalid, c.Output.Format)
	}

	return nil
}

// applyEnv overrides cfg from KPATHS_* variables.
func applyEnv(cfg *Config) error {
	setString("KPATHS_GRAPH_PATH", &cfg.Graph.Path)
	setString("KPATHS_OUTPUT_DIR", &cfg.Output.Dir)
	setString("KPATHS_OUTPUT_FORMAT", &cfg.Output.Format)
	setString("KPATHS_METRICS_ADDR", &cfg.Metrics.Addr)
	setString("KPATHS_LOG_LEVEL", &cfg.Logging.Level)
	setString("KPATHS_LOG_FORMAT", &cfg.Logging.Format)

	for _, f := range []func() error{
		func() error { return setInt("KPATHS_K", &cfg.Search.K) },
		func() error { return setInt("KPATHS_MAX_HOPS", &cfg.Search.MaxHops) },
		func() error { return setInt("KPATHS_MAX_FRONTIER", &cfg.Search.MaxFrontier) },
		func() error { return setInt("KPATHS_WORKERS", &cfg.Workers.Size) },
		func() error { return setBool("KPATHS_BEST_EFFORT", &cfg.Search.BestEffort) },
		func() error { return setBool("KPATHS_OUTPUT_DATED", &cfg.Output.Dated) },
		func() error { return setBool("KPATHS_LOG_INCLUDE_CALLER", &cfg.Logging.IncludeCaller) },
		func() error { return setDuration("KPATHS_TIMEOUT", &cfg.Search.Timeout) },
	} {
		if err := f(); err != nil {
			return err
		}
	}

	return nil
}

func setString(key string, dst *string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(key string, dst *int) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("config: invalid %s value %q: %w", key, v, err)
	}
	*dst = n

	return nil
}

func setBool(key string, dst *bool) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fmt.Errorf("config: invalid %s value %q: %w", key, v, err)
	}
	*dst = b

	return nil
}

func setDuration(key string, dst *time.Duration) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fmt.Errorf("config: invalid %s value %q: %w", key, v, err)
	}
	*dst = d

	return nil
}
