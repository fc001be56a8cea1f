// Package pdfcpu provides a papersum.PageSource that reads page content
// streams with github.com/pdfcpu/pdfcpu and decodes their text operators.
package pdfcpu

import (
	"context"
	"io"
	"os"

	"github.com/fwojciec/papersum"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// Ensure PageSource implements papersum.PageSource at compile time.
var _ papersum.PageSource = (*PageSource)(nil)

// PageSource extracts page text from PDF content streams. It recovers the
// line structure from text positioning operators and works without font
// metrics, so text drawn with composite fonts may come out garbled.
type PageSource struct {
	conf *model.Configuration
}

// NewPageSource creates a new PageSource with pdfcpu's default configuration.
func NewPageSource() *PageSource {
	return &PageSource{conf: model.NewDefaultConfiguration()}
}

// Pages returns the text of every page. A page without a readable content
// stream yields an empty string.
func (s *PageSource) Pages(ctx context.Context, path string) (pages []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			pages, err = nil, papersum.Errorf(papersum.EDECODE, "%v", r)
		}
	}()

	f, err := os.Open(path)
	if err != nil {
		return nil, papersum.Errorf(papersum.EDECODE, "%v", err)
	}
	defer f.Close()

	pdfCtx, err := api.ReadValidateAndOptimize(f, s.conf)
	if err != nil {
		return nil, papersum.Errorf(papersum.EDECODE, "%v", err)
	}

	pages = make([]string, 0, pdfCtx.PageCount)
	for pageNr := 1; pageNr <= pdfCtx.PageCount; pageNr++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		pages = append(pages, pageText(pdfCtx, pageNr))
	}
	return pages, nil
}

func pageText(pdfCtx *model.Context, pageNr int) string {
	r, err := pdfcpu.ExtractPageContent(pdfCtx, pageNr)
	if err != nil || r == nil {
		return ""
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return ""
	}
	return ParseContent(data)
}
