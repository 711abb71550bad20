package sqlite_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/fwojciec/kamar"
	"github.com/fwojciec/kamar/mock"
	"github.com/fwojciec/kamar/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingReader returns a reader serving text for every URL and a
// pointer to its call count.
func countingReader(text string) (*mock.PageReader, *int) {
	calls := 0
	return &mock.PageReader{
		ReadPageFn: func(_ context.Context, url string) (*kamar.Page, error) {
			calls++
			return &kamar.Page{URL: url, Title: "T", Text: text}, nil
		},
	}, &calls
}

func TestPageCache_ReadPage(t *testing.T) {
	t.Parallel()

	t.Run("reads through on a miss and serves hits", func(t *testing.T) {
		t.Parallel()

		next, calls := countingReader("نص الصفحة")
		cache := sqlite.NewPageCache(openDB(t), next)
		ctx := context.Background()

		first, err := cache.ReadPage(ctx, "https://a.com")
		require.NoError(t, err)
		second, err := cache.ReadPage(ctx, "https://a.com")
		require.NoError(t, err)

		assert.Equal(t, 1, *calls)
		assert.Equal(t, first, second)
		assert.Equal(t, "نص الصفحة", second.Text)
	})

	t.Run("reads again after the TTL", func(t *testing.T) {
		t.Parallel()

		next, calls := countingReader("text")
		cache := sqlite.NewPageCache(openDB(t), next)
		now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
		cache.Now = func() time.Time { return now }
		cache.TTL = time.Hour
		ctx := context.Background()

		_, err := cache.ReadPage(ctx, "https://a.com")
		require.NoError(t, err)

		now = now.Add(30 * time.Minute)
		_, err = cache.ReadPage(ctx, "https://a.com")
		require.NoError(t, err)
		assert.Equal(t, 1, *calls)

		now = now.Add(time.Hour)
		_, err = cache.ReadPage(ctx, "https://a.com")
		require.NoError(t, err)
		assert.Equal(t, 2, *calls)
	})

	t.Run("stores changed text", func(t *testing.T) {
		t.Parallel()

		text := "old"
		next := &mock.PageReader{
			ReadPageFn: func(_ context.Context, url string) (*kamar.Page, error) {
				return &kamar.Page{URL: url, Text: text}, nil
			},
		}
		cache := sqlite.NewPageCache(openDB(t), next)
		now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
		cache.Now = func() time.Time { return now }
		ctx := context.Background()

		_, err := cache.ReadPage(ctx, "https://a.com")
		require.NoError(t, err)

		text = "new"
		now = now.Add(48 * time.Hour)
		_, err = cache.ReadPage(ctx, "https://a.com")
		require.NoError(t, err)

		now = now.Add(time.Minute)
		page, err := cache.ReadPage(ctx, "https://a.com")
		require.NoError(t, err)
		assert.Equal(t, "new", page.Text)
	})

	t.Run("does not cache failures", func(t *testing.T) {
		t.Parallel()

		calls := 0
		next := &mock.PageReader{
			ReadPageFn: func(context.Context, string) (*kamar.Page, error) {
				calls++
				return nil, errors.New("boom")
			},
		}
		cache := sqlite.NewPageCache(openDB(t), next)
		ctx := context.Background()

		_, err := cache.ReadPage(ctx, "https://a.com")
		require.Error(t, err)
		_, err = cache.ReadPage(ctx, "https://a.com")
		require.Error(t, err)

		assert.Equal(t, 2, calls)
	})

	t.Run("returns the page when saving fails", func(t *testing.T) {
		t.Parallel()

		db := openDB(t)
		ctx := context.Background()
		_, err := db.ExecContext(ctx, `
			CREATE TRIGGER pages_full BEFORE INSERT ON pages
			BEGIN SELECT RAISE(ABORT, 'disk full'); END
		`)
		require.NoError(t, err)

		var logs bytes.Buffer
		next, calls := countingReader("نص الصفحة")
		cache := sqlite.NewPageCache(db, next)
		cache.Logger = slog.New(slog.NewTextHandler(&logs, nil))

		page, err := cache.ReadPage(ctx, "https://a.com")

		require.NoError(t, err)
		assert.Equal(t, "نص الصفحة", page.Text)
		assert.Equal(t, 1, *calls)
		assert.Contains(t, logs.String(), "page cache save failed")
	})

	t.Run("reads through when lookup fails", func(t *testing.T) {
		t.Parallel()

		db := openDB(t)
		ctx := context.Background()
		_, err := db.ExecContext(ctx, `DROP TABLE pages`)
		require.NoError(t, err)

		var logs bytes.Buffer
		next, calls := countingReader("text")
		cache := sqlite.NewPageCache(db, next)
		cache.Logger = slog.New(slog.NewTextHandler(&logs, nil))

		page, err := cache.ReadPage(ctx, "https://a.com")

		require.NoError(t, err)
		assert.Equal(t, "text", page.Text)
		assert.Equal(t, 1, *calls)
		assert.Contains(t, logs.String(), "page cache lookup failed")
	})
}

func TestPageCache_Purge(t *testing.T) {
	t.Parallel()

	next, _ := countingReader("text")
	cache := sqlite.NewPageCache(openDB(t), next)
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	cache.Now = func() time.Time { return now }
	cache.TTL = time.Hour
	ctx := context.Background()

	_, err := cache.ReadPage(ctx, "https://old.com")
	require.NoError(t, err)
	now = now.Add(2 * time.Hour)
	_, err = cache.ReadPage(ctx, "https://new.com")
	require.NoError(t, err)

	n, err := cache.Purge(ctx)

	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}
