package config

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	wnerrors "github.com/standardbeagle/wordnum/internal/errors"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), ".wordnum.toml"))
	require.NoError(t, err)

	assert.Equal(t, "word", cfg.Mode)
	assert.Equal(t, DefaultMinLen, cfg.MinLen)
	assert.Equal(t, DefaultMaxLen, cfg.MaxLen)
	assert.Equal(t, DefaultCacheSize, cfg.CacheSize)
	assert.Equal(t, "17", cfg.Table["d"])
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".wordnum.toml")
	content := `
mode = "suffix"
min_len = 4
max_len = 7
workers = 2

[table]
o = "0"
l = "1"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "suffix", cfg.Mode)
	assert.Equal(t, 4, cfg.MinLen)
	assert.Equal(t, 7, cfg.MaxLen)
	assert.Equal(t, 2, cfg.Workers)

	// A [table] section replaces the built-in table, not merges with it.
	assert.Equal(t, map[string]string{"o": "0", "l": "1"}, cfg.Table)
}

func TestLoad_KeepsBuiltinTableWithoutTableSection(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".wordnum.toml")
	require.NoError(t, os.WriteFile(path, []byte("min_len = 5\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.MinLen)
	assert.Len(t, cfg.Table, 8)
}

func TestLoad_MalformedTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".wordnum.toml")
	require.NoError(t, os.WriteFile(path, []byte("mode = [unclosed\n"), 0644))

	_, err := Load(path)
	require.Error(t, err)

	var cfgErr *wnerrors.ConfigError
	assert.True(t, stderrors.As(err, &cfgErr))
}

func TestValidate_Defaults(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Positive(t, cfg.Workers)
}

func TestValidate_FailsFast(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"invalid mode", func(c *Config) { c.Mode = "prefix" }},
		{"zero min_len", func(c *Config) { c.MinLen = 0 }},
		{"negative min_len", func(c *Config) { c.MinLen = -1 }},
		{"zero max_len", func(c *Config) { c.MaxLen = 0 }},
		{"min greater than max", func(c *Config) { c.MinLen = 9; c.MaxLen = 6 }},
		{"negative workers", func(c *Config) { c.Workers = -1 }},
		{"negative cache", func(c *Config) { c.CacheSize = -1 }},
		{"empty table", func(c *Config) { c.Table = nil }},
		{"non-digit table value", func(c *Config) { c.Table = map[string]string{"a": "x"} }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)

			var cfgErr *wnerrors.ConfigError
			assert.True(t, stderrors.As(err, &cfgErr), "should be a ConfigError, got %T", err)
		})
	}
}

func TestValidate_ZeroWorkersAutoDetects(t *testing.T) {
	cfg := Default()
	cfg.Workers = 0
	require.NoError(t, cfg.Validate())
	assert.Positive(t, cfg.Workers)
}

func TestTOML_RoundTrip(t *testing.T) {
	content, err := Default().TOML()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), ".wordnum.toml")
	require.NoError(t, os.WriteFile(path, content, 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default().Table, cfg.Table)
	assert.Equal(t, Default().MinLen, cfg.MinLen)
}
