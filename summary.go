package papersum

import (
	"context"
	"encoding/json"
)

// Not-found sentinels stored in a Summary when a field cannot be located.
const (
	TitleNotFound    = "Title not found"
	AuthorsNotFound  = "Authors not found"
	AbstractNotFound = "Abstract not found"
	KeywordsNotFound = "Keywords not found"
)

// DefaultTopicKeywords is the number of topic keywords in a Summary.
const DefaultTopicKeywords = 10

// Summary is the structured record extracted from one paper.
// Every field is always populated, with a sentinel when nothing was found.
type Summary struct {
	Title         string   `json:"title"`
	Authors       string   `json:"authors"`
	Abstract      string   `json:"abstract"`
	Keywords      string   `json:"keywords"`
	TopicKeywords []string `json:"topic_keywords"`
	Introduction  string   `json:"introduction"`
	Methodology   string   `json:"methodology"`
	Dataset       string   `json:"dataset"`
	Results       string   `json:"results"`
	Discussion    string   `json:"discussion"`
	Conclusion    string   `json:"conclusion"`
}

// MarshalJSON encodes the summary with topic_keywords always an array.
func (s Summary) MarshalJSON() ([]byte, error) {
	type summary Summary
	out := summary(s)
	if out.TopicKeywords == nil {
		out.TopicKeywords = []string{}
	}
	return json.Marshal(out)
}

// SetSection stores content in the body section named by field.
// It returns false if field is not a body section.
func (s *Summary) SetSection(field, content string) bool {
	switch field {
	case FieldIntroduction:
		s.Introduction = content
	case FieldMethodology:
		s.Methodology = content
	case FieldDataset:
		s.Dataset = content
	case FieldResults:
		s.Results = content
	case FieldDiscussion:
		s.Discussion = content
	case FieldConclusion:
		s.Conclusion = content
	default:
		return false
	}
	return true
}

// Summarizer produces a structured summary of a paper file.
type Summarizer interface {
	// Summarize returns ENOTFOUND if the file does not exist and EDECODE
	// if its text cannot be extracted. A field that cannot be located is
	// never an error.
	Summarize(ctx context.Context, path string) (*Summary, error)
}

// KeywordExtractor ranks the most frequent content words of a text.
type KeywordExtractor interface {
	// Extract returns up to n keywords, most frequent first.
	// A non-positive n means DefaultTopicKeywords.
	Extract(text string, n int) []string
}
