package mock_test

import (
	"context"
	"testing"

	"github.com/fwojciec/kamar"
	"github.com/fwojciec/kamar/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearcher_Search(t *testing.T) {
	t.Parallel()

	t.Run("delegates to SearchFn", func(t *testing.T) {
		t.Parallel()

		var gotQuery string
		var gotOpts kamar.SearchOptions
		want := []kamar.SearchResult{{Title: "T", Snippet: "S", Link: "https://example.com"}}
		s := &mock.Searcher{
			SearchFn: func(_ context.Context, query string, opts kamar.SearchOptions) ([]kamar.SearchResult, error) {
				gotQuery, gotOpts = query, opts
				return want, nil
			},
		}

		results, err := s.Search(context.Background(), "هواتف", kamar.SearchOptions{Num: 10, Language: "ar"})

		require.NoError(t, err)
		assert.Equal(t, want, results)
		assert.Equal(t, "هواتف", gotQuery)
		assert.Equal(t, kamar.SearchOptions{Num: 10, Language: "ar"}, gotOpts)
	})
}
