// Package tfidf scores candidate topics against a text by the cosine
// similarity of their TF-IDF vectors.
//
// Weighting follows the defaults of the widely used scikit-learn vectorizer:
// lower-cased tokens of at least two word characters, raw term counts,
// smoothed inverse document frequency and L2-normalized vectors.
package tfidf

import (
	"math"
	"sort"
	"strings"
	"unicode"

	"github.com/fwojciec/papersum"
)

// Ensure Classifier implements papersum.Classifier at compile time.
var _ papersum.Classifier = (*Classifier)(nil)

// Classifier ranks topics by lexical similarity. It is stateless: every
// call fits a fresh vocabulary over the text and the topics.
type Classifier struct{}

// NewClassifier creates a Classifier.
func NewClassifier() *Classifier {
	return &Classifier{}
}

// Classify returns the best matching topics, highest score first.
func (c *Classifier) Classify(text string, topics []string) []papersum.TopicScore {
	if text == "" || len(topics) == 0 {
		return []papersum.TopicScore{}
	}

	corpus := make([]string, 0, len(topics)+1)
	corpus = append(corpus, text)
	corpus = append(corpus, topics...)
	vectors := Vectorize(corpus)

	// Rank on raw similarity; round only for output.
	scores := make([]papersum.TopicScore, len(topics))
	for i, topic := range topics {
		scores[i] = papersum.TopicScore{Topic: topic, Score: dot(vectors[0], vectors[i+1])}
	}
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Score > scores[j].Score
	})
	if len(scores) > papersum.MaxTopicScores {
		scores = scores[:papersum.MaxTopicScores]
	}
	for i := range scores {
		scores[i].Score = round(scores[i].Score)
	}
	return scores
}

// Vector is a sparse, L2-normalized term weight vector.
type Vector map[string]float64

// Vectorize returns the TF-IDF vector of every document in corpus.
// A document without tokens gets an empty vector.
func Vectorize(corpus []string) []Vector {
	counts := make([]map[string]int, len(corpus))
	df := make(map[string]int)
	for i, doc := range corpus {
		counts[i] = make(map[string]int)
		for _, tok := range Tokenize(doc) {
			if counts[i][tok] == 0 {
				df[tok]++
			}
			counts[i][tok]++
		}
	}

	n := float64(len(corpus))
	vectors := make([]Vector, len(corpus))
	for i, tf := range counts {
		v := make(Vector, len(tf))
		var norm float64
		for term, count := range tf {
			w := float64(count) * (math.Log((1+n)/(1+float64(df[term]))) + 1)
			v[term] = w
			norm += w * w
		}
		if norm > 0 {
			norm = math.Sqrt(norm)
			for term := range v {
				v[term] /= norm
			}
		}
		vectors[i] = v
	}
	return vectors
}

// Tokenize lower-cases text and splits it into runs of two or more word
// characters (letters, digits and underscore).
func Tokenize(text string) []string {
	var tokens []string
	var current strings.Builder
	runes := 0

	flush := func() {
		if runes >= 2 {
			tokens = append(tokens, current.String())
		}
		current.Reset()
		runes = 0
	}

	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsNumber(r) || r == '_' {
			current.WriteRune(r)
			runes++
			continue
		}
		flush()
	}
	flush()

	return tokens
}

func dot(a, b Vector) float64 {
	if len(b) < len(a) {
		a, b = b, a
	}
	var sum float64
	for term, w := range a {
		sum += w * b[term]
	}
	return sum
}

// round clamps s to [0, 1] and rounds it to four decimals.
func round(s float64) float64 {
	s = math.Max(0, math.Min(1, s))
	return math.Round(s*1e4) / 1e4
}
