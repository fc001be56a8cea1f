// Package slog provides logging decorators for papersum services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/papersum"
)

// Ensure LoggingPageSource implements papersum.PageSource.
var _ papersum.PageSource = (*LoggingPageSource)(nil)

// LoggingPageSource wraps a PageSource with logging.
type LoggingPageSource struct {
	next   papersum.PageSource
	logger *slog.Logger
}

// NewLoggingPageSource creates a new LoggingPageSource.
func NewLoggingPageSource(next papersum.PageSource, logger *slog.Logger) *LoggingPageSource {
	return &LoggingPageSource{next: next, logger: logger}
}

// Pages delegates to the wrapped source and logs the page count.
func (s *LoggingPageSource) Pages(ctx context.Context, path string) (pages []string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("extract pages",
			"path", path,
			"pages", len(pages),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Pages(ctx, path)
}
