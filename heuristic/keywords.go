package heuristic

import (
	"regexp"
	"strings"

	"github.com/fwojciec/papersum"
)

var (
	keywordsMarkerRe = regexp.MustCompile(`(?i)key\s*words[\s:]+`)

	// keywordsEndRe matches what may follow the keyword lines.
	keywordsEndRe = regexp.MustCompile(`(?i)^(?:\n\n|\n\d|\nintroduction)`)

	newlinesRe = regexp.MustCompile(`\n+`)
)

const (
	maxKeywordLines     = 3
	minKeywordsOnMarker = 10
	maxKeywordsOnMarker = 500
)

var keywordsStrategies = []strategy{
	keywordLines,
	keywordsOnMarkerLine,
}

// Keywords returns the author-supplied keywords or papersum.KeywordsNotFound.
func Keywords(text string) string {
	if out, ok := firstMatch(text, keywordsStrategies); ok {
		return out
	}
	return papersum.KeywordsNotFound
}

// keywordLines accepts the fewest (one to three) non-empty lines after a
// keywords marker that are followed by a blank line, a numbered heading or
// the introduction.
func keywordLines(text string) (string, bool) {
	for _, loc := range keywordsMarkerRe.FindAllStringIndex(text, -1) {
		end := loc[1]
		for n := 0; n < maxKeywordLines; n++ {
			if n > 0 {
				// Continue onto the next line, which must not be empty.
				if end+1 >= len(text) || text[end+1] == '\n' {
					break
				}
				end++
			}
			nl := strings.IndexByte(text[end:], '\n')
			if nl <= 0 {
				break
			}
			end += nl
			if keywordsEndRe.MatchString(text[end:]) {
				return cleanKeywords(text[loc[1]:end])
			}
		}
	}
	return "", false
}

// keywordsOnMarkerLine accepts the rest of the marker's line if it is long
// enough to hold keywords.
func keywordsOnMarkerLine(text string) (string, bool) {
	for _, loc := range keywordsMarkerRe.FindAllStringIndex(text, -1) {
		rest := text[loc[1]:]
		if nl := strings.IndexByte(rest, '\n'); nl >= 0 {
			rest = rest[:nl]
		}
		if runeLen(rest) < minKeywordsOnMarker {
			continue
		}
		return cleanKeywords(truncateRunes(rest, maxKeywordsOnMarker))
	}
	return "", false
}

func cleanKeywords(s string) (string, bool) {
	s = newlinesRe.ReplaceAllString(strings.TrimSpace(s), " ")
	return s, s != ""
}
