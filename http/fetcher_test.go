package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/fwojciec/kamar"
	kamarhttp "github.com/fwojciec/kamar/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("returns HTML body from server", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html")
			_, _ = w.Write([]byte("<html><body>مرحبا</body></html>"))
		}))
		defer server.Close()

		fetcher := kamarhttp.NewFetcher()
		defer fetcher.Close()

		html, err := fetcher.Fetch(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Equal(t, "<html><body>مرحبا</body></html>", html)
	})

	t.Run("sends the user agent", func(t *testing.T) {
		t.Parallel()

		var got string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got = r.UserAgent()
		}))
		defer server.Close()

		fetcher := kamarhttp.NewFetcher(kamarhttp.WithUserAgent("test-agent"))

		_, err := fetcher.Fetch(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Equal(t, "test-agent", got)
	})

	t.Run("cuts bodies at the size limit", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(strings.Repeat("x", 100)))
		}))
		defer server.Close()

		fetcher := kamarhttp.NewFetcher(kamarhttp.WithMaxBodySize(10))

		html, err := fetcher.Fetch(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Len(t, html, 10)
	})

	t.Run("respects custom timeout option", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(100 * time.Millisecond)
			_, _ = w.Write([]byte("response"))
		}))
		defer server.Close()

		fetcher := kamarhttp.NewFetcher(kamarhttp.WithTimeout(10 * time.Millisecond))

		_, err := fetcher.Fetch(context.Background(), server.URL)
		require.Error(t, err)
		assert.Equal(t, kamar.EUNAVAILABLE, kamar.ErrorCode(err))
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(100 * time.Millisecond)
		}))
		defer server.Close()

		fetcher := kamarhttp.NewFetcher()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := fetcher.Fetch(ctx, server.URL)
		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("returns invalid for a malformed URL", func(t *testing.T) {
		t.Parallel()

		fetcher := kamarhttp.NewFetcher()

		_, err := fetcher.Fetch(context.Background(), "http://[::1")
		assert.Equal(t, kamar.EINVALID, kamar.ErrorCode(err))
	})

	t.Run("returns unavailable for non-existent host", func(t *testing.T) {
		t.Parallel()

		fetcher := kamarhttp.NewFetcher(kamarhttp.WithTimeout(100 * time.Millisecond))

		_, err := fetcher.Fetch(context.Background(), "http://non-existent-host.invalid/page")
		assert.Equal(t, kamar.EUNAVAILABLE, kamar.ErrorCode(err))
	})

	t.Run("returns unavailable for non-200 status codes", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		fetcher := kamarhttp.NewFetcher()

		_, err := fetcher.Fetch(context.Background(), server.URL)
		require.Error(t, err)
		assert.Equal(t, kamar.EUNAVAILABLE, kamar.ErrorCode(err))
		assert.Contains(t, kamar.ErrorMessage(err), "503")
	})

	t.Run("returns not found for missing pages", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		fetcher := kamarhttp.NewFetcher()

		_, err := fetcher.Fetch(context.Background(), server.URL)
		assert.Equal(t, kamar.ENOTFOUND, kamar.ErrorCode(err))
	})
}
