package mock

import "github.com/fwojciec/papersum"

var _ papersum.Classifier = (*Classifier)(nil)

// Classifier is a mock implementation of papersum.Classifier.
type Classifier struct {
	ClassifyFn func(text string, topics []string) []papersum.TopicScore
}

func (c *Classifier) Classify(text string, topics []string) []papersum.TopicScore {
	return c.ClassifyFn(text, topics)
}
