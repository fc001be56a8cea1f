package papersum

import (
	"context"
	"io"
)

// UploadStore keeps uploaded paper files on disk so that a PageSource can
// read them by path.
type UploadStore interface {
	// Save stores the content read from r and returns the stored path. The
	// extension of name is kept; returns EINVALID for an unsupported one.
	Save(ctx context.Context, name string, r io.Reader) (string, error)
}
