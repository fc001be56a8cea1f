// Package pdf provides a papersum.PageSource backed by github.com/ledongthuc/pdf.
package pdf

import (
	"context"

	"github.com/fwojciec/papersum"
	"github.com/ledongthuc/pdf"
)

// Ensure PageSource implements papersum.PageSource at compile time.
var _ papersum.PageSource = (*PageSource)(nil)

// PageSource extracts the plain text of each page of a PDF file.
type PageSource struct{}

// NewPageSource creates a new PageSource.
func NewPageSource() *PageSource {
	return &PageSource{}
}

// Pages returns the text of every page. A page whose text cannot be
// extracted yields an empty string. The decoding library panics on some
// malformed files; such panics are returned as EDECODE errors.
func (s *PageSource) Pages(ctx context.Context, path string) (pages []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			pages, err = nil, papersum.Errorf(papersum.EDECODE, "%v", r)
		}
	}()

	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, papersum.Errorf(papersum.EDECODE, "%v", err)
	}
	defer f.Close()

	n := r.NumPage()
	pages = make([]string, 0, n)
	for i := 1; i <= n; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		p := r.Page(i)
		if p.V.IsNull() {
			pages = append(pages, "")
			continue
		}
		text, err := p.GetPlainText(nil)
		if err != nil {
			text = ""
		}
		pages = append(pages, text)
	}
	return pages, nil
}

