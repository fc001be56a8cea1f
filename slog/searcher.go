package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/papersum"
)

// Ensure LoggingSearcher implements papersum.PaperSearcher.
var _ papersum.PaperSearcher = (*LoggingSearcher)(nil)

// LoggingSearcher wraps a PaperSearcher with logging.
type LoggingSearcher struct {
	next   papersum.PaperSearcher
	logger *slog.Logger
}

// NewLoggingSearcher creates a new LoggingSearcher.
func NewLoggingSearcher(next papersum.PaperSearcher, logger *slog.Logger) *LoggingSearcher {
	return &LoggingSearcher{next: next, logger: logger}
}

// Search delegates to the wrapped searcher and logs the result count.
func (s *LoggingSearcher) Search(ctx context.Context, query string) (papers []papersum.Paper, err error) {
	defer func(begin time.Time) {
		s.logger.Info("paper search",
			"query", query,
			"count", len(papers),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Search(ctx, query)
}
