package heuristic

import (
	"regexp"
	"strings"

	"github.com/fwojciec/papersum"
)

const (
	minAbstractLength = 50
	maxAbstractLength = 2000

	// abstractExcerptLength is the window searched by the paragraph fallback.
	abstractExcerptLength = 1500
)

var (
	abstractMarkerRe = regexp.MustCompile(`(?i)abstract[\s:]+`)
	abstractWordRe   = regexp.MustCompile(`(?i)abstract`)

	// abstractEndRe matches a blank line, a numbered heading or the introduction.
	abstractEndRe = regexp.MustCompile(`(?i)\n\n|\n\d|\nintroduction|\ni\. introduction`)

	paragraphEndRe = regexp.MustCompile(`\n\n`)

	// sectionHeadingRe matches a paragraph that opens the next section.
	sectionHeadingRe = regexp.MustCompile(`(?i)^(?:(?:\d+\.?|[IVXLC]+\.)\s+)?(?:introduction|background|keywords|key words|index terms)\b|^\d+\.?\s`)
)

var abstractStrategies = []strategy{
	abstractUntil(abstractEndRe),
	abstractUntil(paragraphEndRe),
	abstractSecondParagraph,
}

// Abstract returns the whitespace-collapsed abstract or papersum.AbstractNotFound.
func Abstract(text string) string {
	if out, ok := firstMatch(text, abstractStrategies); ok {
		return out
	}
	return papersum.AbstractNotFound
}

// abstractUntil returns a strategy capturing the text after the first
// "abstract" marker up to the first end match, accepted only if its length
// is plausible for an abstract.
func abstractUntil(end *regexp.Regexp) strategy {
	return func(text string) (string, bool) {
		loc := abstractMarkerRe.FindStringIndex(text)
		if loc == nil {
			return "", false
		}
		stop := end.FindStringIndex(text[loc[1]:])
		if stop == nil {
			return "", false
		}
		abstract := collapseSpace(text[loc[1] : loc[1]+stop[0]])
		if n := runeLen(abstract); n < minAbstractLength || n > maxAbstractLength {
			return "", false
		}
		return abstract, true
	}
}

// abstractSecondParagraph returns the paragraph after the one holding the
// first "abstract", searched within a fixed window. When that paragraph opens
// the next section, the text following the marker in the first paragraph is
// returned instead.
func abstractSecondParagraph(text string) (string, bool) {
	loc := abstractWordRe.FindStringIndex(text)
	if loc == nil {
		return "", false
	}
	excerpt := truncateRunes(text[loc[0]:], abstractExcerptLength)
	paragraphs := strings.Split(excerpt, "\n\n")
	if len(paragraphs) < 2 {
		return "", false
	}
	abstract := strings.TrimSpace(paragraphs[1])
	if !sectionHeadingRe.MatchString(abstract) {
		return abstract, abstract != ""
	}
	marker := abstractMarkerRe.FindStringIndex(paragraphs[0])
	if marker == nil {
		return "", false
	}
	abstract = collapseSpace(paragraphs[0][marker[1]:])
	return abstract, abstract != ""
}
