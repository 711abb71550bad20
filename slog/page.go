package slog

import (
	"context"
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/fwojciec/kamar"
)

// Ensure LoggingPageReader implements kamar.PageReader.
var _ kamar.PageReader = (*LoggingPageReader)(nil)

// LoggingPageReader wraps a PageReader with logging.
type LoggingPageReader struct {
	next   kamar.PageReader
	logger *slog.Logger
}

// NewLoggingPageReader creates a new LoggingPageReader.
func NewLoggingPageReader(next kamar.PageReader, logger *slog.Logger) *LoggingPageReader {
	return &LoggingPageReader{next: next, logger: logger}
}

// ReadPage delegates to the wrapped reader and logs the operation.
func (r *LoggingPageReader) ReadPage(ctx context.Context, url string) (page *kamar.Page, err error) {
	defer func(begin time.Time) {
		chars := 0
		if page != nil {
			chars = utf8.RuneCountInString(page.Text)
		}
		r.logger.Info("read page",
			"url", url,
			"chars", chars,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.ReadPage(ctx, url)
}
