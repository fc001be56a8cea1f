package mock

import (
	"context"

	"github.com/fwojciec/papersum"
)

var _ papersum.Summarizer = (*Summarizer)(nil)

// Summarizer is a mock implementation of papersum.Summarizer.
type Summarizer struct {
	SummarizeFn func(ctx context.Context, path string) (*papersum.Summary, error)
}

func (s *Summarizer) Summarize(ctx context.Context, path string) (*papersum.Summary, error) {
	return s.SummarizeFn(ctx, path)
}

var _ papersum.KeywordExtractor = (*KeywordExtractor)(nil)

// KeywordExtractor is a mock implementation of papersum.KeywordExtractor.
type KeywordExtractor struct {
	ExtractFn func(text string, n int) []string
}

func (e *KeywordExtractor) Extract(text string, n int) []string {
	return e.ExtractFn(text, n)
}
