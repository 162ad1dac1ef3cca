package subst

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// Pair associates a produced digit-string with the word it came from.
type Pair struct {
	Digits string
	Word   string
}

// Processor applies the Segmenter to single words. Process is a pure function
// of its inputs and safe to invoke concurrently for different words; the only
// shared state is the immutable table and the thread-safe result cache.
type Processor struct {
	segmenter *Segmenter
	cache     *lru.Cache[cacheKey, []string]
}

// cacheKey identifies one Process invocation. Real word lists repeat
// inflected duplicates, so caching by the full argument tuple pays off.
type cacheKey struct {
	word   string
	mode   Mode
	minLen int
	maxLen int
}

// NewProcessor creates a Processor over table. cacheSize is the maximum
// number of cached per-word results; 0 disables caching.
func NewProcessor(table *Table, cacheSize int) (*Processor, error) {
	p := &Processor{segmenter: NewSegmenter(table)}
	if cacheSize > 0 {
		cache, err := lru.New[cacheKey, []string](cacheSize)
		if err != nil {
			return nil, err
		}
		p.cache = cache
	}
	return p, nil
}

// Process returns every (digit-string, word) association word produces under
// mode within [minLen, maxLen]. A word that yields nothing returns an empty
// slice, never an error.
func (p *Processor) Process(word string, mode Mode, minLen, maxLen int) []Pair {
	digits := p.candidates(word, mode, minLen, maxLen)
	if len(digits) == 0 {
		return nil
	}
	pairs := make([]Pair, 0, len(digits))
	for _, d := range digits {
		pairs = append(pairs, Pair{Digits: d, Word: word})
	}
	return pairs
}

func (p *Processor) candidates(word string, mode Mode, minLen, maxLen int) []string {
	if p.cache == nil {
		return p.segmenter.Candidates(word, mode, minLen, maxLen)
	}
	key := cacheKey{word: word, mode: mode, minLen: minLen, maxLen: maxLen}
	if cached, ok := p.cache.Get(key); ok {
		return cached
	}
	digits := p.segmenter.Candidates(word, mode, minLen, maxLen)
	p.cache.Add(key, digits)
	return digits
}
