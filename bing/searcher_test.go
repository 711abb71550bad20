package bing_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fwojciec/kamar"
	"github.com/fwojciec/kamar/bing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const feed = `<?xml version="1.0" encoding="utf-8"?>
<rss version="2.0">
  <channel>
    <title>Bing: هواتف</title>
    <item>
      <title>أفضل الهواتف 2024</title>
      <link>https://a.com</link>
      <description>دليل شامل لأفضل الهواتف الذكية في السوق</description>
    </item>
    <item>
      <title>No link</title>
      <description>skipped</description>
    </item>
    <item>
      <title>مقارنة الهواتف</title>
      <link> https://b.com </link>
      <description>مقارنة تفصيلية بين أحدث الهواتف الذكية</description>
    </item>
  </channel>
</rss>`

func newSearcher(t *testing.T, handler http.HandlerFunc) *bing.Searcher {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	s := bing.NewSearcher(srv.Client())
	s.BaseURL = srv.URL
	return s
}

func TestSearcher_Search(t *testing.T) {
	t.Parallel()

	t.Run("parses feed items", func(t *testing.T) {
		t.Parallel()

		s := newSearcher(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(feed))
		})

		results, err := s.Search(context.Background(), "هواتف", kamar.SearchOptions{})

		require.NoError(t, err)
		assert.Equal(t, []kamar.SearchResult{
			{Title: "أفضل الهواتف 2024", Snippet: "دليل شامل لأفضل الهواتف الذكية في السوق", Link: "https://a.com"},
			{Title: "مقارنة الهواتف", Snippet: "مقارنة تفصيلية بين أحدث الهواتف الذكية", Link: "https://b.com"},
		}, results)
	})

	t.Run("sends query and locale", func(t *testing.T) {
		t.Parallel()

		var query map[string][]string
		s := newSearcher(t, func(w http.ResponseWriter, r *http.Request) {
			query = r.URL.Query()
			_, _ = w.Write([]byte(feed))
		})

		_, err := s.Search(context.Background(), "هواتف", kamar.SearchOptions{Num: 5, Language: "ar", Country: "sa"})

		require.NoError(t, err)
		assert.Equal(t, []string{"rss"}, query["format"])
		assert.Equal(t, []string{"هواتف"}, query["q"])
		assert.Equal(t, []string{"5"}, query["count"])
		assert.Equal(t, []string{"ar-SA"}, query["mkt"])
	})

	t.Run("honors the result limit", func(t *testing.T) {
		t.Parallel()

		s := newSearcher(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(feed))
		})

		results, err := s.Search(context.Background(), "هواتف", kamar.SearchOptions{Num: 1})

		require.NoError(t, err)
		assert.Len(t, results, 1)
	})

	t.Run("returns an empty slice for an empty channel", func(t *testing.T) {
		t.Parallel()

		s := newSearcher(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<rss><channel></channel></rss>`))
		})

		results, err := s.Search(context.Background(), "x", kamar.SearchOptions{})

		require.NoError(t, err)
		assert.NotNil(t, results)
		assert.Empty(t, results)
	})

	t.Run("returns unavailable on non-200", func(t *testing.T) {
		t.Parallel()

		s := newSearcher(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		})

		_, err := s.Search(context.Background(), "x", kamar.SearchOptions{})

		assert.Equal(t, kamar.EUNAVAILABLE, kamar.ErrorCode(err))
		assert.Contains(t, kamar.ErrorMessage(err), "429")
	})

	t.Run("returns unavailable on malformed XML", func(t *testing.T) {
		t.Parallel()

		s := newSearcher(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<html><body>captcha</body>`))
		})

		_, err := s.Search(context.Background(), "x", kamar.SearchOptions{})

		assert.Equal(t, kamar.EUNAVAILABLE, kamar.ErrorCode(err))
	})

	t.Run("returns context error when canceled", func(t *testing.T) {
		t.Parallel()

		s := bing.NewSearcher(nil)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := s.Search(ctx, "x", kamar.SearchOptions{})

		assert.ErrorIs(t, err, context.Canceled)
	})
}
