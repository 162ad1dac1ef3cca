// Package aggregate merges per-word substitution results into the final
// digit-string to source-words grouping.
package aggregate

import (
	"sort"

	"github.com/standardbeagle/wordnum/internal/subst"
)

// Grouping maps a digit-string to the ordered list of source words that
// produced it. It is a multimap: the same word appears once per input
// occurrence that produced the key. The grouping is owned exclusively by the
// single goroutine performing the merge; workers never write to it.
type Grouping map[string][]string

// New returns an empty, non-nil Grouping.
func New() Grouping {
	return make(Grouping)
}

// Add appends word to the list at digits, creating the key if absent.
func (g Grouping) Add(digits, word string) {
	g[digits] = append(g[digits], word)
}

// Append merges one word's result pairs in their given order.
func (g Grouping) Append(pairs []subst.Pair) {
	for _, p := range pairs {
		g.Add(p.Digits, p.Word)
	}
}

// Keys returns all digit-string keys in sorted order.
func (g Grouping) Keys() []string {
	keys := make([]string, 0, len(g))
	for k := range g {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Words returns the total number of word entries across all keys.
func (g Grouping) Words() int {
	n := 0
	for _, words := range g {
		n += len(words)
	}
	return n
}
