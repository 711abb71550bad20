package mock

import (
	"context"

	"github.com/fwojciec/kamar"
)

var _ kamar.Searcher = (*Searcher)(nil)

// Searcher is a mock implementation of kamar.Searcher.
type Searcher struct {
	SearchFn func(ctx context.Context, query string, opts kamar.SearchOptions) ([]kamar.SearchResult, error)
}

func (s *Searcher) Search(ctx context.Context, query string, opts kamar.SearchOptions) ([]kamar.SearchResult, error) {
	return s.SearchFn(ctx, query, opts)
}
