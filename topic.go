package papersum

// MaxTopicScores is the maximum number of scores returned by a Classifier.
const MaxTopicScores = 5

// TopicScore is the similarity of one candidate topic to a text.
type TopicScore struct {
	Topic string  `json:"topic"`
	Score float64 `json:"score"`
}

// Classifier ranks candidate topics by similarity to a text.
type Classifier interface {
	// Classify returns at most MaxTopicScores scores sorted by descending
	// score. Each score lies in [0, 1] and is rounded to four decimals.
	// An empty text or topic list yields an empty slice.
	Classify(text string, topics []string) []TopicScore
}
