package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/papersum"
)

// Ensure LoggingSummarizer implements papersum.Summarizer.
var _ papersum.Summarizer = (*LoggingSummarizer)(nil)

// LoggingSummarizer wraps a Summarizer with logging.
type LoggingSummarizer struct {
	next   papersum.Summarizer
	logger *slog.Logger
}

// NewLoggingSummarizer creates a new LoggingSummarizer.
func NewLoggingSummarizer(next papersum.Summarizer, logger *slog.Logger) *LoggingSummarizer {
	return &LoggingSummarizer{next: next, logger: logger}
}

// Summarize delegates to the wrapped summarizer and logs which sections were found.
func (s *LoggingSummarizer) Summarize(ctx context.Context, path string) (summary *papersum.Summary, err error) {
	defer func(begin time.Time) {
		attrs := []any{"path", path}
		if summary != nil {
			attrs = append(attrs,
				"title", summary.Title,
				"missing", missingSections(summary),
				"topic_keywords", len(summary.TopicKeywords),
			)
		}
		attrs = append(attrs, "duration", time.Since(begin), "err", err)
		s.logger.Info("summarize", attrs...)
	}(time.Now())
	return s.next.Summarize(ctx, path)
}

// missingSections counts the section fields that hold a not-found message.
func missingSections(s *papersum.Summary) int {
	var n int
	for _, v := range []string{s.Introduction, s.Methodology, s.Dataset, s.Results, s.Discussion, s.Conclusion} {
		if papersum.IsSectionNotFound(v) {
			n++
		}
	}
	return n
}
