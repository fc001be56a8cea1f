package mock

import (
	"context"

	"github.com/fwojciec/papersum"
)

var _ papersum.PaperSearcher = (*PaperSearcher)(nil)

// PaperSearcher is a mock implementation of papersum.PaperSearcher.
type PaperSearcher struct {
	SearchFn func(ctx context.Context, query string) ([]papersum.Paper, error)
}

func (s *PaperSearcher) Search(ctx context.Context, query string) ([]papersum.Paper, error) {
	return s.SearchFn(ctx, query)
}
