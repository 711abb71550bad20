package crawl

import (
	"context"
	"time"

	"github.com/fwojciec/kamar"
)

// FetchFunc is the signature for a fetch function.
type FetchFunc func(ctx context.Context, url string) (string, error)

// LogFunc is the signature for a logging function.
type LogFunc func(format string, args ...any)

// DefaultRetryDelays returns the backoff delays for fetch retries: 500ms, 1s.
// Result pages are read while a user waits, so retries are kept short.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{500 * time.Millisecond, 1 * time.Second}
}

// FetchWithRetry fetches url with DefaultRetryDelays.
func FetchWithRetry(ctx context.Context, url string, fetch FetchFunc, logger LogFunc) (string, error) {
	return FetchWithRetryDelays(ctx, url, fetch, logger, DefaultRetryDelays())
}

// FetchWithRetryDelays calls fetch until it succeeds, waiting delays[i]
// before retry i. Errors that cannot improve on retry (EINVALID and
// ENOTFOUND) and context errors are returned at once. The logger, if
// provided, is called before each retry.
func FetchWithRetryDelays(ctx context.Context, url string, fetch FetchFunc, logger LogFunc, delays []time.Duration) (string, error) {
	for attempt := 0; ; attempt++ {
		html, err := fetch(ctx, url)
		if err == nil {
			return html, nil
		}
		if attempt == len(delays) || !retryable(err) {
			return "", err
		}
		if ctx.Err() != nil {
			return "", ctx.Err()
		}

		if logger != nil {
			logger("retry %s (attempt %d): %v", url, attempt+2, err)
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}
}

func retryable(err error) bool {
	switch kamar.ErrorCode(err) {
	case kamar.EINVALID, kamar.ENOTFOUND, kamar.ECANCELED:
		return false
	}
	return true
}
