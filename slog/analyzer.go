package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/kamar"
)

// Ensure LoggingAnalyzer implements kamar.Analyzer.
var _ kamar.Analyzer = (*LoggingAnalyzer)(nil)

// LoggingAnalyzer wraps an Analyzer with logging. Superseded analyses are
// logged at debug level since they are expected.
type LoggingAnalyzer struct {
	next   kamar.Analyzer
	logger *slog.Logger
}

// NewLoggingAnalyzer creates a new LoggingAnalyzer.
func NewLoggingAnalyzer(next kamar.Analyzer, logger *slog.Logger) *LoggingAnalyzer {
	return &LoggingAnalyzer{next: next, logger: logger}
}

// Analyze delegates to the wrapped analyzer and logs the operation.
func (a *LoggingAnalyzer) Analyze(ctx context.Context, keyword string) (result *kamar.AnalysisResult, err error) {
	defer func(begin time.Time) {
		level := slog.LevelInfo
		if kamar.ErrorCode(err) == kamar.ECANCELED {
			level = slog.LevelDebug
		}
		attrs := []any{
			"keyword", keyword,
			"duration", time.Since(begin),
			"err", err,
		}
		if result != nil {
			attrs = append(attrs, "links", len(result.TopLinks), "headings", len(result.Outline))
		}
		a.logger.Log(ctx, level, "analyze", attrs...)
	}(time.Now())
	return a.next.Analyze(ctx, keyword)
}
