package mock

import (
	"context"
	"io"

	"github.com/fwojciec/papersum"
)

var _ papersum.UploadStore = (*UploadStore)(nil)

// UploadStore is a mock implementation of papersum.UploadStore.
type UploadStore struct {
	SaveFn func(ctx context.Context, name string, r io.Reader) (string, error)
}

func (s *UploadStore) Save(ctx context.Context, name string, r io.Reader) (string, error) {
	return s.SaveFn(ctx, name, r)
}
