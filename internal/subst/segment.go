package subst

import "sort"

// Mode selects which parts of a word are candidates for substitution.
type Mode string

const (
	// ModeWord considers only the entire word.
	ModeWord Mode = "word"
	// ModeSuffix considers every suffix of the word independently.
	ModeSuffix Mode = "suffix"
)

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	return m == ModeWord || m == ModeSuffix
}

// Segmenter derives length-bounded digit-strings from a word using a
// substitution table. It holds no per-word state and is safe for concurrent
// use.
type Segmenter struct {
	table *Table
}

// NewSegmenter creates a Segmenter over table.
func NewSegmenter(table *Table) *Segmenter {
	return &Segmenter{table: table}
}

// Reachable computes the feasibility table for word: reachable[i] is true iff
// word[i:] can be fully decomposed into consecutive table keys. reachable[N]
// is trivially true. Computed backward with an iterative dynamic program, no
// recursion.
func (s *Segmenter) Reachable(word string) []bool {
	n := len(word)
	reachable := make([]bool, n+1)
	reachable[n] = true

	for i := n - 1; i >= 0; i-- {
		for _, key := range s.table.keysByLen {
			end := i + len(key)
			if end <= n && reachable[end] && word[i:end] == key {
				reachable[i] = true
				break
			}
		}
	}
	return reachable
}

// Candidates returns the set of digit-strings derivable from word under mode,
// deduplicated and sorted, keeping only results whose length lies within
// [minLen, maxLen].
//
// The reachability table is a feasibility filter only: at each reachable
// offset the greedy longest-first Replace pass is re-run and is authoritative.
// Greedy replacement may pick a different decomposition than the one the DP
// proved exists, so a candidate whose greedy pass does not fully consume the
// suffix, or yields non-digits, is discarded rather than treated as an error.
func (s *Segmenter) Candidates(word string, mode Mode, minLen, maxLen int) []string {
	if word == "" {
		return nil
	}

	if mode == ModeWord {
		r, covered := s.table.Replace(word)
		if covered && isDigits(r) && minLen <= len(r) && len(r) <= maxLen {
			return []string{r}
		}
		return nil
	}

	// Suffix mode. Substitution never shrinks a suffix, so a word shorter
	// than minLen cannot produce a long enough result; skip the DP entirely.
	if len(word) < minLen {
		return nil
	}

	reachable := s.Reachable(word)
	set := make(map[string]struct{})
	for i := 0; i < len(word); i++ {
		if !reachable[i] {
			continue
		}
		r, covered := s.table.Replace(word[i:])
		if !covered || !isDigits(r) {
			continue
		}
		if minLen <= len(r) && len(r) <= maxLen {
			set[r] = struct{}{}
		}
	}

	if len(set) == 0 {
		return nil
	}
	results := make([]string, 0, len(set))
	for r := range set {
		results = append(results, r)
	}
	sort.Strings(results)
	return results
}
