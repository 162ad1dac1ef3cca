package subst

import (
	"fmt"
	"sort"
	"strings"

	"github.com/standardbeagle/wordnum/internal/errors"
)

// Table is an immutable mapping from character-sequence keys to digit-string
// replacements. It is constructed once at startup and shared read-only by all
// workers; no method mutates it.
type Table struct {
	repl      map[string]string
	keysByLen []string // all keys, longest first
	maxKeyLen int
}

// DefaultPairs returns the built-in substitution map. The letters chosen are
// the ones with an unambiguous digit look-alike.
func DefaultPairs() map[string]string {
	return map[string]string{
		"o": "0",
		"s": "5",
		"a": "4",
		"b": "8",
		"e": "3",
		"i": "1",
		"d": "17",
		"r": "12",
	}
}

// NewTable validates pairs and builds a Table. Every key must be non-empty
// and every value must be a non-empty string of digit characters 0-9.
func NewTable(pairs map[string]string) (*Table, error) {
	if len(pairs) == 0 {
		return nil, errors.NewConfigError("table", "", fmt.Errorf("substitution table is empty"))
	}

	repl := make(map[string]string, len(pairs))
	keys := make([]string, 0, len(pairs))
	maxLen := 0
	for key, value := range pairs {
		if key == "" {
			return nil, errors.NewConfigError("table", value, fmt.Errorf("empty substitution key"))
		}
		if value == "" {
			return nil, errors.NewConfigError("table", key, fmt.Errorf("empty replacement for key %q", key))
		}
		if !isDigits(value) {
			return nil, errors.NewConfigError("table", value,
				fmt.Errorf("replacement for key %q must contain only digits 0-9", key))
		}
		repl[key] = value
		keys = append(keys, key)
		if len(key) > maxLen {
			maxLen = len(key)
		}
	}

	// Longest first; ties broken lexically so Lookup order is stable.
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})

	return &Table{repl: repl, keysByLen: keys, maxKeyLen: maxLen}, nil
}

// MaxKeyLen returns the length of the longest key, bounding lookahead.
func (t *Table) MaxKeyLen() int {
	return t.maxKeyLen
}

// Len returns the number of keys in the table.
func (t *Table) Len() int {
	return len(t.repl)
}

// Value returns the replacement for key and whether key is in the table.
func (t *Table) Value(key string) (string, bool) {
	v, ok := t.repl[key]
	return v, ok
}

// Lookup returns the keys that match text at offset as exact literal
// substrings, longest first. Callers must pre-normalize case; matching does
// no folding.
func (t *Table) Lookup(text string, offset int) []string {
	if offset < 0 || offset >= len(text) {
		return nil
	}
	var matches []string
	for _, key := range t.keysByLen {
		if strings.HasPrefix(text[offset:], key) {
			matches = append(matches, key)
		}
	}
	return matches
}

// Replace performs a single greedy longest-key-first pass over s. Matched
// spans are replaced by their digit values; characters not starting any key
// are copied through unchanged. The second return reports whether every
// character was consumed by some key, i.e. the result is a pure substitution.
func (t *Table) Replace(s string) (string, bool) {
	var b strings.Builder
	b.Grow(len(s) * 2)
	covered := true
	for i := 0; i < len(s); {
		matched := false
		for _, key := range t.keysByLen {
			if strings.HasPrefix(s[i:], key) {
				b.WriteString(t.repl[key])
				i += len(key)
				matched = true
				break
			}
		}
		if !matched {
			b.WriteByte(s[i])
			covered = false
			i++
		}
	}
	return b.String(), covered
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return len(s) > 0
}
