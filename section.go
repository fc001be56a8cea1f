package papersum

import (
	"strings"
)

// Summary field names. These match the JSON keys of Summary.
const (
	FieldTitle         = "title"
	FieldAuthors       = "authors"
	FieldAbstract      = "abstract"
	FieldKeywords      = "keywords"
	FieldTopicKeywords = "topic_keywords"
	FieldIntroduction  = "introduction"
	FieldMethodology   = "methodology"
	FieldDataset       = "dataset"
	FieldResults       = "results"
	FieldDiscussion    = "discussion"
	FieldConclusion    = "conclusion"
)

// DefaultMaxSectionLength is the maximum number of characters kept from a
// located section before it is truncated.
const DefaultMaxSectionLength = 20000

// TruncationMarker is appended to a section cut at its maximum length.
const TruncationMarker = "... (section truncated due to length)"

// DefaultStopHeaders terminate a section when a SectionSpec names none.
var DefaultStopHeaders = []string{
	"References", "Conclusion", "Discussion", "Results",
	"Acknowledgements", "Appendix", "Bibliography",
}

// SectionSpec describes how to locate one body section of a paper.
type SectionSpec struct {
	// Field is the Summary field the located content is stored in.
	Field string `json:"field"`

	// Headers are the alternative header names that begin the section.
	Headers []string `json:"headers"`

	// StopHeaders begin the next section. Nil means DefaultStopHeaders.
	StopHeaders []string `json:"stop_headers,omitempty"`

	// MaxLength is the maximum content length in characters.
	// Zero means DefaultMaxSectionLength.
	MaxLength int `json:"max_length,omitempty"`
}

// Validate returns an error if the SectionSpec cannot be used to locate a section.
func (s *SectionSpec) Validate() error {
	if !IsSectionField(s.Field) {
		return Errorf(EINVALID, "unknown section field: %q", s.Field)
	}
	if len(s.Headers) == 0 {
		return Errorf(EINVALID, "section %s requires at least one header", s.Field)
	}
	for _, h := range s.Headers {
		if strings.TrimSpace(h) == "" {
			return Errorf(EINVALID, "section %s has an empty header", s.Field)
		}
	}
	if s.MaxLength < 0 {
		return Errorf(EINVALID, "section %s has a negative max length", s.Field)
	}
	return nil
}

// StopSet returns the headers that end the section: the stop headers
// (or the defaults) followed by the section's own headers.
func (s *SectionSpec) StopSet() []string {
	stops := s.StopHeaders
	if stops == nil {
		stops = DefaultStopHeaders
	}
	set := make([]string, 0, len(stops)+len(s.Headers))
	set = append(set, stops...)
	set = append(set, s.Headers...)
	return set
}

// Limit returns the effective maximum content length.
func (s *SectionSpec) Limit() int {
	if s.MaxLength <= 0 {
		return DefaultMaxSectionLength
	}
	return s.MaxLength
}

// IsSectionField reports whether field names one of the located body sections.
func IsSectionField(field string) bool {
	switch field {
	case FieldIntroduction, FieldMethodology, FieldDataset,
		FieldResults, FieldDiscussion, FieldConclusion:
		return true
	}
	return false
}

// DefaultSections returns the built-in section table, one spec per body
// section in Summary order. The returned slice is a fresh copy.
func DefaultSections() []SectionSpec {
	return []SectionSpec{
		{
			Field:       FieldIntroduction,
			Headers:     []string{"Introduction", "1. Introduction", "I. Introduction", "Background"},
			StopHeaders: []string{"Method", "Methodology", "Data", "Approach", "2.", "II."},
		},
		{
			Field:       FieldMethodology,
			Headers:     []string{"Method", "Methodology", "Approach", "Proposed Method", "2. Method", "III. Methodology", "Our Approach"},
			StopHeaders: []string{"Experimental", "Evaluation", "Results", "3.", "IV."},
		},
		{
			Field:       FieldDataset,
			Headers:     []string{"Dataset", "Data", "Data Collection", "Experimental Setup", "3. Dataset", "Data Description"},
			StopHeaders: []string{"Results", "Evaluation", "4.", "V."},
		},
		{
			Field:       FieldResults,
			Headers:     []string{"Results", "Evaluation", "Experiments", "4. Results", "Experimental Results", "Performance"},
			StopHeaders: []string{"Discussion", "Conclusion", "5.", "VI."},
		},
		{
			Field:       FieldDiscussion,
			Headers:     []string{"Discussion", "Analysis", "5. Discussion"},
			StopHeaders: []string{"Conclusion", "Future Work", "6.", "VII."},
		},
		{
			Field:       FieldConclusion,
			Headers:     []string{"Conclusion", "Conclusions", "6. Conclusion", "Summary", "Final Remarks"},
			StopHeaders: []string{"References", "Acknowledgement", "Appendix"},
		},
	}
}

// SectionNotFound returns the sentinel stored when no strategy locates a
// section with the given header names.
func SectionNotFound(headers []string) string {
	return "Section not found: " + strings.Join(headers, ", ")
}

// IsSectionNotFound reports whether content is a not-found sentinel.
func IsSectionNotFound(content string) bool {
	return strings.HasPrefix(content, "Section not found: ")
}
