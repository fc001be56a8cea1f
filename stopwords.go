package papersum

import (
	"sort"
	"strings"
)

// Stopwords is an immutable set of lower-cased words that carry no topical
// meaning. A nil *Stopwords is an empty set.
type Stopwords struct {
	set map[string]struct{}
}

// NewStopwords builds a set from words. Words are lower-cased and trimmed;
// blanks are ignored.
func NewStopwords(words []string) *Stopwords {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		set[w] = struct{}{}
	}
	return &Stopwords{set: set}
}

// Contains reports whether the lower-cased word is in the set.
func (s *Stopwords) Contains(word string) bool {
	if s == nil {
		return false
	}
	_, ok := s.set[word]
	return ok
}

// Len returns the number of words in the set.
func (s *Stopwords) Len() int {
	if s == nil {
		return 0
	}
	return len(s.set)
}

// Words returns the set's words in sorted order.
func (s *Stopwords) Words() []string {
	if s == nil {
		return nil
	}
	words := make([]string, 0, len(s.set))
	for w := range s.set {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}
