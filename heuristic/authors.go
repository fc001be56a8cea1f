package heuristic

import (
	"regexp"
	"strings"

	"github.com/fwojciec/papersum"
)

var (
	// authorsMarkerRe matches the line that follows the author block.
	authorsMarkerRe = regexp.MustCompile(`(?i)^(?:abstract|keywords)`)

	affiliationRe = regexp.MustCompile(`(?i)university|institute|college|school|department|lab`)

	nameLineRe = regexp.MustCompile(`^[A-Za-z\s.,]+$`)

	// authorsNoiseRe matches markup and bracketed notes such as affiliation marks.
	authorsNoiseRe = regexp.MustCompile(`<[^\n]*?>|\([^\n]*?\)|\{[^\n]*?\}|\[[^\n]*?\]`)

	emailRe = regexp.MustCompile(`\S*@\S+`)
)

var authorsStrategies = []strategy{
	authorsBeforeMarker,
	authorsAffiliationBlock,
	authorsNameBlock,
}

// Authors returns the author block of the paper or papersum.AuthorsNotFound.
func Authors(text string) string {
	if out, ok := firstMatch(text, authorsStrategies); ok {
		return out
	}
	return papersum.AuthorsNotFound
}

// authorsBeforeMarker accepts a short capitalized line, other than the first,
// separated only by blank lines from a line opening the abstract or keywords.
func authorsBeforeMarker(text string) (string, bool) {
	lines := strings.Split(text, "\n")
	for i := 1; i < len(lines); i++ {
		line := lines[i]
		if line == "" || runeLen(line) > 100 || !startsUpper(line) || authorsMarkerRe.MatchString(line) {
			continue
		}
		j := i + 1
		for j < len(lines) && lines[j] == "" {
			j++
		}
		if j < len(lines) && authorsMarkerRe.MatchString(lines[j]) {
			if out, ok := cleanAuthors(line); ok {
				return out, true
			}
		}
	}
	return "", false
}

// authorsAffiliationBlock accepts up to five affiliation lines directly
// above a line opening the abstract or keywords.
func authorsAffiliationBlock(text string) (string, bool) {
	return blockAboveMarker(text, 0, 5, affiliationRe.MatchString)
}

// authorsNameBlock accepts up to three lines made of letters and
// punctuation directly above the marker, below at least one other line.
func authorsNameBlock(text string) (string, bool) {
	return blockAboveMarker(text, 1, 3, nameLineRe.MatchString)
}

// blockAboveMarker collects the lines directly above each marker line that
// satisfy keep, at most max of them and none before line min.
func blockAboveMarker(text string, min, max int, keep func(string) bool) (string, bool) {
	lines := strings.Split(text, "\n")
	for m := 1; m < len(lines); m++ {
		if !authorsMarkerRe.MatchString(lines[m]) {
			continue
		}
		first := m
		for first > min && m-first < max && keep(lines[first-1]) {
			first--
		}
		if first == m {
			continue
		}
		if out, ok := cleanAuthors(strings.Join(lines[first:m], "\n")); ok {
			return out, true
		}
	}
	return "", false
}

// cleanAuthors strips bracketed notes, links and e-mail addresses.
func cleanAuthors(authors string) (string, bool) {
	authors = authorsNoiseRe.ReplaceAllString(authors, "")
	authors = urlRe.ReplaceAllString(authors, "")
	authors = emailRe.ReplaceAllString(authors, "")
	authors = strings.TrimSpace(authors)
	return authors, authors != ""
}
