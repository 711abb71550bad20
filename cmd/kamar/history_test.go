package main_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/fwojciec/kamar"
	main "github.com/fwojciec/kamar/cmd/kamar"
	"github.com/fwojciec/kamar/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists analyses with ID and keyword", func(t *testing.T) {
		t.Parallel()

		var gotFilter kamar.AnalysisFilter
		store := &mock.AnalysisStore{
			FindAnalysesFn: func(_ context.Context, filter kamar.AnalysisFilter) ([]*kamar.AnalysisRecord, error) {
				gotFilter = filter
				return []*kamar.AnalysisRecord{
					{ID: "id-2", Keyword: "هواتف", CreatedAt: time.Date(2025, 1, 16, 11, 0, 0, 0, time.UTC)},
					{ID: "id-1", Keyword: "حواسيب", CreatedAt: time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)},
				}, nil
			},
		}
		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: &bytes.Buffer{}, History: store}
		cmd := &main.HistoryCmd{Keyword: "هواتف", Limit: 5}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "id-2")
		assert.Contains(t, stdout.String(), "حواسيب")
		require.NotNil(t, gotFilter.Keyword)
		assert.Equal(t, "هواتف", *gotFilter.Keyword)
		assert.Equal(t, 5, gotFilter.Limit)
	})

	t.Run("shows helpful message when history is empty", func(t *testing.T) {
		t.Parallel()

		store := &mock.AnalysisStore{
			FindAnalysesFn: func(_ context.Context, filter kamar.AnalysisFilter) ([]*kamar.AnalysisRecord, error) {
				assert.Nil(t, filter.Keyword)
				return nil, nil
			},
		}
		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: &bytes.Buffer{}, History: store}

		err := (&main.HistoryCmd{Limit: 20}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No analyses found")
	})

	t.Run("shows a single analysis", func(t *testing.T) {
		t.Parallel()

		store := &mock.AnalysisStore{
			FindAnalysisByIDFn: func(_ context.Context, id string) (*kamar.AnalysisRecord, error) {
				return &kamar.AnalysisRecord{ID: id, Keyword: "هواتف", Result: sampleResult("هواتف")}, nil
			},
		}
		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: &bytes.Buffer{}, History: store}

		err := (&main.HistoryCmd{ID: "id-1", Format: "text"}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Keyword: هواتف")
	})

	t.Run("reports unknown ID", func(t *testing.T) {
		t.Parallel()

		store := &mock.AnalysisStore{
			FindAnalysisByIDFn: func(_ context.Context, id string) (*kamar.AnalysisRecord, error) {
				return nil, kamar.Errorf(kamar.ENOTFOUND, "analysis %s not found", id)
			},
		}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: &bytes.Buffer{}, Stderr: stderr, History: store}

		err := (&main.HistoryCmd{ID: "nope"}).Run(deps)

		assert.Equal(t, kamar.ENOTFOUND, kamar.ErrorCode(err))
		assert.Contains(t, stderr.String(), "analysis nope not found")
	})
}
