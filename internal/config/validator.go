package config

import (
	"fmt"
	"runtime"
	"strconv"

	"github.com/standardbeagle/wordnum/internal/errors"
	"github.com/standardbeagle/wordnum/internal/subst"
)

// Validate fills defaults and rejects invalid values. It runs before any
// processing begins so configuration problems fail fast.
func (c *Config) Validate() error {
	if !subst.Mode(c.Mode).Valid() {
		return errors.NewConfigError("mode", c.Mode,
			fmt.Errorf("must be %q or %q", subst.ModeWord, subst.ModeSuffix))
	}
	if c.MinLen <= 0 {
		return errors.NewConfigError("min_len", strconv.Itoa(c.MinLen),
			fmt.Errorf("must be positive"))
	}
	if c.MaxLen <= 0 {
		return errors.NewConfigError("max_len", strconv.Itoa(c.MaxLen),
			fmt.Errorf("must be positive"))
	}
	if c.MinLen > c.MaxLen {
		return errors.NewConfigError("min_len", strconv.Itoa(c.MinLen),
			fmt.Errorf("must not exceed max_len (%d)", c.MaxLen))
	}
	if c.Workers < 0 {
		return errors.NewConfigError("workers", strconv.Itoa(c.Workers),
			fmt.Errorf("must not be negative"))
	}
	if c.Workers == 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.CacheSize < 0 {
		return errors.NewConfigError("cache_size", strconv.Itoa(c.CacheSize),
			fmt.Errorf("must not be negative"))
	}
	if c.WatchDebounceMs <= 0 {
		c.WatchDebounceMs = DefaultWatchDebounceMs
	}

	// Table contents are validated again by subst.NewTable; checking here
	// keeps all fail-fast reporting in one place.
	if len(c.Table) == 0 {
		return errors.NewConfigError("table", "", fmt.Errorf("substitution table is empty"))
	}
	if _, err := subst.NewTable(c.Table); err != nil {
		return err
	}
	return nil
}
