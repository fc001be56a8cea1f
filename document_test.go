package papersum_test

import (
	"testing"

	"github.com/fwojciec/papersum"
	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		pages []string
		want  string
	}{
		{"no pages", nil, ""},
		{"joins hyphenated word", []string{"base-\nline"}, "baseline\n"},
		{"joins hyphen with trailing spaces", []string{"contra-  \ndiction here"}, "contradiction here\n"},
		{"keeps hyphen before blank line", []string{"word-\n\nnext"}, "word-\n\nnext\n"},
		{"keeps plain line breaks", []string{"first line\nsecond line"}, "first line\nsecond line\n"},
		{"keeps dash between words", []string{"state - of the art"}, "state - of the art\n"},
		{"terminates each page", []string{"page one", "page two"}, "page one\npage two\n"},
		{"skips empty pages", []string{"page one", "", "  \n ", "page three"}, "page one\npage three\n"},
		{"all pages empty", []string{"", " "}, ""},
		{"unicode letters", []string{"naï-\nve"}, "naïve\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, papersum.Normalize(tt.pages))
		})
	}
}
