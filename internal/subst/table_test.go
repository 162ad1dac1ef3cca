package subst

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	wnerrors "github.com/standardbeagle/wordnum/internal/errors"
)

func TestNewTable_Default(t *testing.T) {
	table, err := NewTable(DefaultPairs())
	require.NoError(t, err)

	assert.Equal(t, 8, table.Len())
	assert.Equal(t, 1, table.MaxKeyLen(), "default table has single-character keys only")

	v, ok := table.Value("d")
	require.True(t, ok)
	assert.Equal(t, "17", v)
}

func TestNewTable_RejectsInvalidPairs(t *testing.T) {
	cases := []struct {
		name  string
		pairs map[string]string
	}{
		{"empty table", map[string]string{}},
		{"empty key", map[string]string{"": "1"}},
		{"empty value", map[string]string{"a": ""}},
		{"non-digit value", map[string]string{"a": "1x"}},
		{"letter value", map[string]string{"a": "b"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewTable(tc.pairs)
			require.Error(t, err)

			var cfgErr *wnerrors.ConfigError
			assert.True(t, stderrors.As(err, &cfgErr), "should be a ConfigError")
		})
	}
}

func TestLookup_LongestFirst(t *testing.T) {
	table, err := NewTable(map[string]string{
		"a":   "1",
		"ab":  "2",
		"abc": "3",
		"b":   "8",
	})
	require.NoError(t, err)

	matches := table.Lookup("abcd", 0)
	assert.Equal(t, []string{"abc", "ab", "a"}, matches)

	matches = table.Lookup("abcd", 1)
	assert.Equal(t, []string{"b"}, matches)

	assert.Nil(t, table.Lookup("abcd", 3), "no key matches at 'd'")
	assert.Nil(t, table.Lookup("abcd", 4), "offset past end")
	assert.Nil(t, table.Lookup("abcd", -1))
}

func TestLookup_ExactLiteralMatch(t *testing.T) {
	table, err := NewTable(map[string]string{"a": "4"})
	require.NoError(t, err)

	// No case folding: callers must pre-normalize.
	assert.Nil(t, table.Lookup("A", 0))
	assert.Equal(t, []string{"a"}, table.Lookup("a", 0))
}

func TestReplace_GreedyLongestFirst(t *testing.T) {
	table, err := NewTable(map[string]string{
		"a":  "1",
		"ab": "2",
		"b":  "8",
	})
	require.NoError(t, err)

	// "ab" wins over "a"+"b" at every offset where it matches.
	r, covered := table.Replace("abab")
	assert.True(t, covered)
	assert.Equal(t, "22", r)

	r, covered = table.Replace("ba")
	assert.True(t, covered)
	assert.Equal(t, "81", r)
}

func TestReplace_CopiesUnmatchedThrough(t *testing.T) {
	table, err := NewTable(DefaultPairs())
	require.NoError(t, err)

	r, covered := table.Replace("cab")
	assert.False(t, covered, "'c' starts no key")
	assert.Equal(t, "c48", r)

	r, covered = table.Replace("")
	assert.True(t, covered, "empty input is trivially covered")
	assert.Equal(t, "", r)
}
