// Package slog provides logging decorators for rolodex interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/rolodex"
)

// Ensure LoggingFetcher implements rolodex.Fetcher at compile time.
var _ rolodex.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with debug logging.
type LoggingFetcher struct {
	next   rolodex.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next rolodex.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the operation.
func (f *LoggingFetcher) Fetch(ctx context.Context, source string) (result *rolodex.FetchResult, err error) {
	defer func(begin time.Time) {
		var bytes int
		if result != nil {
			bytes = len(result.HTML)
		}
		f.logger.Info("fetch",
			"source", source,
			"bytes", bytes,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, source)
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
