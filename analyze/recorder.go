package analyze

import (
	"context"
	"log/slog"

	"github.com/fwojciec/kamar"
)

var _ kamar.Analyzer = (*Recorder)(nil)

// Recorder wraps an Analyzer and saves every successful result to a store.
// Results arriving after ctx is done are returned but not saved. Failing to
// save is logged and does not fail the analysis.
type Recorder struct {
	next   kamar.Analyzer
	store  kamar.AnalysisStore
	logger *slog.Logger
}

// NewRecorder creates a new Recorder. A nil logger discards save failures.
func NewRecorder(next kamar.Analyzer, store kamar.AnalysisStore, logger *slog.Logger) *Recorder {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Recorder{next: next, store: store, logger: logger}
}

// Analyze delegates to the wrapped analyzer and records the result.
func (r *Recorder) Analyze(ctx context.Context, keyword string) (*kamar.AnalysisResult, error) {
	result, err := r.next.Analyze(ctx, keyword)
	if err != nil {
		return nil, err
	}
	if ctx.Err() != nil {
		return result, nil
	}
	if _, err := r.store.SaveAnalysis(ctx, result); err != nil {
		r.logger.Warn("analysis not saved", "keyword", keyword, "err", err)
	}
	return result, nil
}
