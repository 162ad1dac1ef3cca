package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/standardbeagle/wordnum/internal/errors"
)

// Load reads configuration from path, layered over the defaults. A missing
// file is not an error: the defaults are returned unchanged. An unreadable or
// malformed file is a ConfigError.
func Load(path string) (*Config, error) {
	cfg := Default()

	content, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, errors.NewConfigError("config", path, err)
	}

	// Unmarshal into a nil map so a [table] section replaces the built-in
	// table instead of merging with it.
	cfg.Table = nil
	if err := toml.Unmarshal(content, cfg); err != nil {
		return nil, errors.NewConfigError("config", path, fmt.Errorf("invalid TOML: %w", err))
	}
	if len(cfg.Table) == 0 {
		// A file without a [table] section keeps the built-in table.
		cfg.Table = Default().Table
	}
	return cfg, nil
}

// TOML renders the configuration as a TOML document, suitable for writing a
// starter config file.
func (c *Config) TOML() ([]byte, error) {
	return toml.Marshal(c)
}
