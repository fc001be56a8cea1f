package mock

import (
	"context"

	"github.com/fwojciec/papersum"
)

var _ papersum.PageSource = (*PageSource)(nil)

// PageSource is a mock implementation of papersum.PageSource.
type PageSource struct {
	PagesFn func(ctx context.Context, path string) ([]string, error)
}

func (s *PageSource) Pages(ctx context.Context, path string) ([]string, error) {
	return s.PagesFn(ctx, path)
}
