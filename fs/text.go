// Package fs provides file-system implementations: a plain-text page source,
// extension-based routing between page sources, and storage for uploads.
package fs

import (
	"context"
	"os"
	"strings"

	"github.com/fwojciec/papersum"
)

// Ensure TextSource implements papersum.PageSource at compile time.
var _ papersum.PageSource = (*TextSource)(nil)

// TextSource reads text files that were already converted from PDF, with
// pages separated by form feeds as produced by pdftotext.
type TextSource struct{}

// NewTextSource creates a new TextSource.
func NewTextSource() *TextSource {
	return &TextSource{}
}

// Pages returns the form-feed separated pages of the file at path.
func (s *TextSource) Pages(ctx context.Context, path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, papersum.Errorf(papersum.EDECODE, "%v", err)
	}
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	return strings.Split(text, "\f"), nil
}
