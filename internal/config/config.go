// Package config holds the run configuration: substitution table, mode,
// length bounds, and pipeline settings. Values come from built-in defaults,
// optionally overridden by a .wordnum.toml file, optionally overridden by
// CLI flags.
package config

import (
	"runtime"

	"github.com/standardbeagle/wordnum/internal/subst"
)

// DefaultConfigFile is the config filename looked up in the working
// directory.
const DefaultConfigFile = ".wordnum.toml"

const (
	DefaultMinLen          = 6
	DefaultMaxLen          = 9
	DefaultCacheSize       = 4096
	DefaultWatchDebounceMs = 250
)

type Config struct {
	// Mode is "word" (whole-word substitution only) or "suffix" (every
	// suffix considered independently).
	Mode string `toml:"mode"`

	// MinLen and MaxLen bound the length of emitted digit-strings,
	// inclusive on both ends.
	MinLen int `toml:"min_len"`
	MaxLen int `toml:"max_len"`

	// Workers is the parallel worker count. 0 = NumCPU.
	Workers int `toml:"workers"`

	// Output is the destination file; empty derives <mode>_<min>_<max>.yaml
	// and "-" writes to stdout.
	Output string `toml:"output"`

	// CacheSize is the per-word result cache capacity. 0 disables caching.
	CacheSize int `toml:"cache_size"`

	// WatchDebounceMs is the settle time applied to file change events in
	// watch mode.
	WatchDebounceMs int `toml:"watch_debounce_ms"`

	// Table maps character-sequence keys to digit-string replacements.
	// When set it replaces the built-in table entirely.
	Table map[string]string `toml:"table"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Mode:            string(subst.ModeWord),
		MinLen:          DefaultMinLen,
		MaxLen:          DefaultMaxLen,
		Workers:         runtime.NumCPU(),
		CacheSize:       DefaultCacheSize,
		WatchDebounceMs: DefaultWatchDebounceMs,
		Table:           subst.DefaultPairs(),
	}
}
