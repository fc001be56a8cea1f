package heuristic

import (
	"regexp"
	"sort"
	"strings"

	"github.com/fwojciec/papersum"
)

// sectionPrefix matches a numeric ("3.", "3 ") or roman ("IV. ") header prefix.
const sectionPrefix = `(?:(?:\d+\.?|[IVXLC]+\.)\s+)?`

// headerEnd ends a header line without consuming the line that follows it.
const headerEnd = `(?:[ \t]*\n|[ \t]+)`

// Locate returns the content of the section described by spec, or the
// section's not-found sentinel.
//
// A section starts at a line that begins with one of the section's headers and
// runs up to the next line that begins with a stop header (or one of the
// section's own headers) or to the end of the text. Content longer than the
// section's limit is cut and marked with papersum.TruncationMarker.
func Locate(text string, spec papersum.SectionSpec) string {
	if len(spec.Headers) == 0 {
		return papersum.SectionNotFound(spec.Headers)
	}
	if out, ok := firstMatch(text, sectionStrategies(spec)); ok {
		return limit(out, spec.Limit())
	}
	return papersum.SectionNotFound(spec.Headers)
}

func sectionStrategies(spec papersum.SectionSpec) []strategy {
	headers := alternation(spec.Headers, false)
	upper := alternation(spec.Headers, true)
	stops := alternation(spec.StopSet(), false)

	prefixedStop := regexp.MustCompile(`(?i)(?:^|\n)` + sectionPrefix + `(?:` + stops + `)\s`)
	plainStop := regexp.MustCompile(`(?i)(?:^|\n)(?:` + stops + `)\s`)

	return []strategy{
		// Numbered or plain header, numbered or plain stop header.
		sectionBetween(regexp.MustCompile(`(?i)(?:^|\n)`+sectionPrefix+`(?:`+headers+`)`+headerEnd), prefixedStop),
		// All-caps header.
		sectionBetween(regexp.MustCompile(`(?:^|\n)(?:`+upper+`)`+headerEnd), plainStop),
		// Plain header, plain stop header.
		sectionBetween(regexp.MustCompile(`(?i)(?:^|\n)(?:`+headers+`)`+headerEnd), plainStop),
		paragraphFallback(spec.Headers),
	}
}

// sectionBetween returns a strategy capturing the text after the first start
// match with non-empty content, up to the next stop match or the end of text.
func sectionBetween(start, stop *regexp.Regexp) strategy {
	return func(text string) (string, bool) {
		for _, loc := range start.FindAllStringIndex(text, -1) {
			from := loc[1]
			if from >= len(text) {
				continue
			}
			to := len(text)
			if end := stop.FindStringIndex(text[from:]); end != nil {
				to = from + end[0]
			}
			if content := strings.TrimSpace(text[from:to]); content != "" {
				return content, true
			}
		}
		return "", false
	}
}

// paragraphFallback returns a strategy keeping up to three blank-line
// separated paragraphs that mention any word of the header names.
func paragraphFallback(headers []string) strategy {
	keywords := make(map[string]struct{})
	for _, h := range headers {
		for _, w := range strings.Fields(strings.ToLower(h)) {
			keywords[w] = struct{}{}
		}
	}
	return func(text string) (string, bool) {
		var relevant []string
		for _, para := range strings.Split(text, "\n\n") {
			if len(relevant) == 3 {
				break
			}
			for _, w := range strings.Fields(strings.ToLower(para)) {
				if _, ok := keywords[w]; ok {
					relevant = append(relevant, para)
					break
				}
			}
		}
		if len(relevant) == 0 {
			return "", false
		}
		content := strings.TrimSpace(strings.Join(relevant, "\n\n"))
		return content, content != ""
	}
}

// limit cuts content to max characters and appends the truncation marker.
func limit(content string, max int) string {
	if runeLen(content) <= max {
		return content
	}
	return truncateRunes(content, max) + papersum.TruncationMarker
}

// alternation quotes names into a regexp alternation, longest first so that
// "Data Collection" is preferred over "Data".
func alternation(names []string, upper bool) string {
	quoted := make([]string, 0, len(names))
	for _, n := range names {
		if upper {
			n = strings.ToUpper(n)
		}
		quoted = append(quoted, regexp.QuoteMeta(n))
	}
	sort.SliceStable(quoted, func(i, j int) bool {
		return len(quoted[i]) > len(quoted[j])
	})
	return strings.Join(quoted, "|")
}
