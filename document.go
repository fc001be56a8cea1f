package papersum

import (
	"context"
	"regexp"
	"strings"
)

// PageSource extracts the text of every page of a document file.
// Implementations hide the PDF (or other format) decoding library.
type PageSource interface {
	// Pages returns one string per page, in document order.
	// A page without extractable text (e.g. a scanned image) yields "".
	// Returns EDECODE if the file cannot be decoded.
	Pages(ctx context.Context, path string) ([]string, error)
}

// hyphenBreakRe matches a word broken across lines by a hyphen.
var hyphenBreakRe = regexp.MustCompile(`([\p{L}\p{N}_])-[ \t]*\n([\p{L}\p{N}_])`)

// Normalize joins per-page text into one logical document string.
// Words hyphenated across a line break are rejoined, all other line breaks
// are kept, and every page is terminated by a newline. Pages without text
// are skipped, so a document with no extractable text yields "".
func Normalize(pages []string) string {
	var sb strings.Builder
	for _, page := range pages {
		if strings.TrimSpace(page) == "" {
			continue
		}
		sb.WriteString(hyphenBreakRe.ReplaceAllString(page, "$1$2"))
		sb.WriteByte('\n')
	}
	return sb.String()
}
