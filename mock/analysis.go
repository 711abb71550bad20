package mock

import (
	"context"

	"github.com/fwojciec/kamar"
)

var _ kamar.AnalysisStore = (*AnalysisStore)(nil)

// AnalysisStore is a mock implementation of kamar.AnalysisStore.
type AnalysisStore struct {
	SaveAnalysisFn     func(ctx context.Context, result *kamar.AnalysisResult) (*kamar.AnalysisRecord, error)
	FindAnalysisByIDFn func(ctx context.Context, id string) (*kamar.AnalysisRecord, error)
	FindAnalysesFn     func(ctx context.Context, filter kamar.AnalysisFilter) ([]*kamar.AnalysisRecord, error)
}

func (s *AnalysisStore) SaveAnalysis(ctx context.Context, result *kamar.AnalysisResult) (*kamar.AnalysisRecord, error) {
	return s.SaveAnalysisFn(ctx, result)
}

func (s *AnalysisStore) FindAnalysisByID(ctx context.Context, id string) (*kamar.AnalysisRecord, error) {
	return s.FindAnalysisByIDFn(ctx, id)
}

func (s *AnalysisStore) FindAnalyses(ctx context.Context, filter kamar.AnalysisFilter) ([]*kamar.AnalysisRecord, error) {
	return s.FindAnalysesFn(ctx, filter)
}
