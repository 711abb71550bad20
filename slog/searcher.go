package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/kamar"
)

// Ensure LoggingSearcher implements kamar.Searcher.
var _ kamar.Searcher = (*LoggingSearcher)(nil)

// LoggingSearcher wraps a Searcher with logging.
type LoggingSearcher struct {
	next   kamar.Searcher
	logger *slog.Logger
}

// NewLoggingSearcher creates a new LoggingSearcher.
func NewLoggingSearcher(next kamar.Searcher, logger *slog.Logger) *LoggingSearcher {
	return &LoggingSearcher{next: next, logger: logger}
}

// Search delegates to the wrapped searcher and logs the operation.
func (s *LoggingSearcher) Search(ctx context.Context, query string, opts kamar.SearchOptions) (results []kamar.SearchResult, err error) {
	defer func(begin time.Time) {
		s.logger.Info("search",
			"query", query,
			"language", opts.Language,
			"country", opts.Country,
			"count", len(results),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Search(ctx, query, opts)
}
