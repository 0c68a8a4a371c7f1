// Package slog provides logging decorators for the ragingest service
// interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/ragtools/ragingest"
)

// Ensure LoggingFetcher implements ragingest.Fetcher.
var _ ragingest.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with per-request logging.
type LoggingFetcher struct {
	next   ragingest.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next ragingest.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the operation.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (res *ragingest.FetchResult, err error) {
	defer func(begin time.Time) {
		var size int
		if res != nil {
			size = len(res.Body)
		}
		f.logger.Debug("fetch",
			"url", url,
			"bytes", size,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}
