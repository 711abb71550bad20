package mock

import (
	"context"

	"github.com/fwojciec/kamar"
)

var _ kamar.Analyzer = (*Analyzer)(nil)

// Analyzer is a mock implementation of kamar.Analyzer.
type Analyzer struct {
	AnalyzeFn func(ctx context.Context, keyword string) (*kamar.AnalysisResult, error)
}

func (a *Analyzer) Analyze(ctx context.Context, keyword string) (*kamar.AnalysisResult, error) {
	return a.AnalyzeFn(ctx, keyword)
}
