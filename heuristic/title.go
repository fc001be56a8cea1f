package heuristic

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/fwojciec/papersum"
)

var (
	// titleFollowerRe matches the start of a line expected a few lines below the title.
	titleFollowerRe = regexp.MustCompile(`(?i)^(?:abstract|introduction|authors?|\d{4})`)

	// affiliationFollowerRe matches an e-mail, a university line or the abstract.
	affiliationFollowerRe = regexp.MustCompile(`(?i)^(?:\w+@|\w+\s+university|abstract)`)

	// citationRe matches reference markers such as [3] or [3,4] and DOI labels.
	citationRe = regexp.MustCompile(`(?i)\[\d+\]|\[\d+,\d+\]|doi:`)
)

var titleStrategies = []strategy{
	titleBeforeAbstract,
	titleBeforeAffiliation,
	titleFirstLine,
}

// Title returns the paper title or papersum.TitleNotFound.
func Title(text string) string {
	if out, ok := firstMatch(text, titleStrategies); ok {
		return out
	}
	return papersum.TitleNotFound
}

// titleBeforeAbstract accepts a first line followed within five lines by a
// line opening the abstract, introduction, author list or a year.
func titleBeforeAbstract(text string) (string, bool) {
	starts := lineStarts(text)
	if len(starts) < 2 || !isTitleLength(lineAt(text, starts, 0)) {
		return "", false
	}
	for k := 1; k <= 5 && k+1 < len(starts); k++ {
		if titleFollowerRe.MatchString(text[starts[k+1]:]) {
			return cleanTitle(lineAt(text, starts, 0))
		}
	}
	return "", false
}

// titleBeforeAffiliation accepts a capitalized line followed within three
// lines by an e-mail address, a university or the abstract.
func titleBeforeAffiliation(text string) (string, bool) {
	starts := lineStarts(text)
	for i := 0; i+1 < len(starts); i++ {
		line := lineAt(text, starts, i)
		if !isTitleLength(line) || !startsUpper(line) {
			continue
		}
		for k := 1; k <= 3 && i+k+1 < len(starts); k++ {
			if affiliationFollowerRe.MatchString(text[starts[i+k+1]:]) {
				if out, ok := cleanTitle(line); ok {
					return out, true
				}
				break
			}
		}
	}
	return "", false
}

// titleFirstLine accepts the first line if it has a plausible title length.
func titleFirstLine(text string) (string, bool) {
	starts := lineStarts(text)
	if len(starts) < 2 || !isTitleLength(lineAt(text, starts, 0)) {
		return "", false
	}
	return cleanTitle(lineAt(text, starts, 0))
}

// cleanTitle removes reference markers, links and DOI labels.
func cleanTitle(title string) (string, bool) {
	title = citationRe.ReplaceAllString(title, "")
	title = urlRe.ReplaceAllString(title, "")
	title = strings.TrimSpace(title)
	return title, title != ""
}

func isTitleLength(line string) bool {
	n := runeLen(line)
	return n >= 10 && n <= 200
}

func startsUpper(s string) bool {
	for _, r := range s {
		return unicode.IsUpper(r)
	}
	return false
}

// lineAt returns line i of text without its newline.
func lineAt(text string, starts []int, i int) string {
	end := len(text)
	if i+1 < len(starts) {
		end = starts[i+1] - 1
	}
	return text[starts[i]:end]
}
