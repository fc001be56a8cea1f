package fs

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/papersum"
)

// Ensure UploadStore implements papersum.UploadStore at compile time.
var _ papersum.UploadStore = (*UploadStore)(nil)

// UploadStore saves uploads under a content-addressed name: the xxhash64 of
// the content followed by the original extension. Uploading the same file
// twice yields the same path. Files are written to a temporary file first
// and renamed into place, so a reader never sees a partial upload.
type UploadStore struct {
	dir      string
	supports func(name string) bool
}

// NewUploadStore creates an UploadStore writing to dir. supports reports
// whether a file name has an accepted extension; nil accepts every name.
func NewUploadStore(dir string, supports func(name string) bool) *UploadStore {
	return &UploadStore{dir: dir, supports: supports}
}

// Save stores the content of r and returns its path.
func (s *UploadStore) Save(ctx context.Context, name string, r io.Reader) (string, error) {
	if s.supports != nil && !s.supports(name) {
		return "", papersum.Errorf(papersum.EINVALID, "unsupported file type: %s", filepath.Base(name))
	}
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return "", err
	}

	tmp, err := os.CreateTemp(s.dir, "upload-*.tmp")
	if err != nil {
		return "", err
	}
	defer os.Remove(tmp.Name())

	h := xxhash.New()
	if _, err := io.Copy(io.MultiWriter(tmp, h), r); err != nil {
		tmp.Close()
		return "", fmt.Errorf("write upload: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	ext := strings.ToLower(filepath.Ext(name))
	path := filepath.Join(s.dir, fmt.Sprintf("%016x%s", h.Sum64(), ext))
	if err := os.Rename(tmp.Name(), path); err != nil {
		return "", err
	}
	return path, nil
}
