// Package heuristic recovers the structure of a paper from its normalized
// text. Each field is located by an ordered list of independent strategies;
// the first strategy that succeeds wins and a field that no strategy can
// locate yields its not-found sentinel.
package heuristic

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"mvdan.cc/xurls/v2"
)

// strategy is one matching pass over the normalized text.
type strategy func(text string) (string, bool)

// firstMatch runs strategies in order and returns the first success.
func firstMatch(text string, strategies []strategy) (string, bool) {
	for _, s := range strategies {
		if out, ok := s(text); ok {
			return out, true
		}
	}
	return "", false
}

// urlRe matches http and https links.
var urlRe = mustURLRegexp()

func mustURLRegexp() *regexp.Regexp {
	re, err := xurls.StrictMatchingScheme(`https?://`)
	if err != nil {
		panic(err)
	}
	return re
}

// runeLen returns the length of s in characters.
func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}

// truncateRunes returns the first n characters of s.
func truncateRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}

// collapseSpace replaces every run of whitespace with a single space.
func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// lineStarts returns the byte offset at which each line of text begins.
func lineStarts(text string) []int {
	starts := []int{0}
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return starts
}
