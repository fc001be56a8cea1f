// Package frequency ranks the topic keywords of a text by raw word frequency.
package frequency

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/fwojciec/papersum"
)

// DefaultMinLength is the shortest word counted as a topic keyword.
const DefaultMinLength = 4

// Ensure Extractor implements papersum.KeywordExtractor at compile time.
var _ papersum.KeywordExtractor = (*Extractor)(nil)

// Extractor counts content words, skipping stop words and short tokens.
// It is safe for concurrent use.
type Extractor struct {
	stopwords *papersum.Stopwords
	minLength int
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithMinLength sets the shortest word counted, in characters.
// Defaults to DefaultMinLength if not specified.
func WithMinLength(n int) Option {
	return func(e *Extractor) {
		e.minLength = n
	}
}

// NewExtractor creates an Extractor that ignores the given stop words.
func NewExtractor(stopwords *papersum.Stopwords, opts ...Option) *Extractor {
	e := &Extractor{
		stopwords: stopwords,
		minLength: DefaultMinLength,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract returns up to n keywords, most frequent first. Words with equal
// counts keep the order of their first appearance.
func (e *Extractor) Extract(text string, n int) []string {
	if n <= 0 {
		n = papersum.DefaultTopicKeywords
	}

	counts := make(map[string]int)
	var order []string
	for _, word := range e.Words(text) {
		if counts[word] == 0 {
			order = append(order, word)
		}
		counts[word]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > n {
		order = order[:n]
	}
	return order
}

// Words splits text into lower-cased content words. Punctuation is removed
// without splitting, so "state-of-the-art" becomes "stateoftheart".
func (e *Extractor) Words(text string) []string {
	var words []string
	var current strings.Builder

	flush := func() {
		if current.Len() == 0 {
			return
		}
		word := current.String()
		current.Reset()
		if utf8.RuneCountInString(word) < e.minLength || e.stopwords.Contains(word) {
			return
		}
		words = append(words, word)
	}

	for _, r := range strings.ToLower(text) {
		switch {
		case unicode.IsSpace(r):
			flush()
		case unicode.IsLetter(r) || unicode.IsNumber(r) || r == '_':
			current.WriteRune(r)
		}
	}
	flush()

	return words
}
