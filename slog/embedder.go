package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/ragtools/ragingest"
)

// Ensure LoggingEmbedder implements ragingest.Embedder.
var _ ragingest.Embedder = (*LoggingEmbedder)(nil)

// LoggingEmbedder wraps an Embedder with per-batch logging.
type LoggingEmbedder struct {
	next   ragingest.Embedder
	logger *slog.Logger
}

// NewLoggingEmbedder creates a new LoggingEmbedder.
func NewLoggingEmbedder(next ragingest.Embedder, logger *slog.Logger) *LoggingEmbedder {
	return &LoggingEmbedder{next: next, logger: logger}
}

// Embed delegates to the wrapped embedder and logs the batch outcome,
// including how many items came back without a vector.
func (e *LoggingEmbedder) Embed(ctx context.Context, texts []string) (vectors [][]float32, err error) {
	defer func(begin time.Time) {
		var failed int
		for _, v := range vectors {
			if v == nil {
				failed++
			}
		}
		e.logger.Info("embed batch",
			"texts", len(texts),
			"failed", failed,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Embed(ctx, texts)
}
