package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/papersum"
)

// Ensure LoggingClassifier implements papersum.Classifier.
var _ papersum.Classifier = (*LoggingClassifier)(nil)

// LoggingClassifier wraps a Classifier with logging.
type LoggingClassifier struct {
	next   papersum.Classifier
	logger *slog.Logger
}

// NewLoggingClassifier creates a new LoggingClassifier.
func NewLoggingClassifier(next papersum.Classifier, logger *slog.Logger) *LoggingClassifier {
	return &LoggingClassifier{next: next, logger: logger}
}

// Classify delegates to the wrapped classifier and logs the best topic.
func (c *LoggingClassifier) Classify(text string, topics []string) []papersum.TopicScore {
	begin := time.Now()
	scores := c.next.Classify(text, topics)
	best := "(none)"
	if len(scores) > 0 {
		best = scores[0].Topic
	}
	c.logger.Info("classify",
		"topics", len(topics),
		"best", best,
		"duration", time.Since(begin),
	)
	return scores
}
