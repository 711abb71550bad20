// Package rod fetches result pages that need JavaScript to render their
// content, using a headless Chrome driven by go-rod.
package rod

import (
	"context"
	"sync"
	"time"

	"github.com/fwojciec/kamar"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// DefaultFetchTimeout bounds navigation and load of a single page.
const DefaultFetchTimeout = 10 * time.Second

// DefaultMaxPages is the number of pages served before the browser is
// restarted. Chrome's memory baseline grows with every page and never
// returns to its initial level.
const DefaultMaxPages = 75

// Ensure Fetcher implements kamar.Fetcher at compile time.
var _ kamar.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML from URLs using Chrome browser automation.
// Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	timeout  time.Duration
	maxPages int

	mu       sync.Mutex
	browser  *rod.Browser
	launcher *launcher.Launcher
	pages    int
	closed   bool
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the per-page timeout.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithMaxPages sets how many pages are fetched before the browser restarts.
func WithMaxPages(n int) Option {
	return func(f *Fetcher) {
		f.maxPages = n
	}
}

// NewFetcher launches a headless Chrome browser.
// Close must be called when the Fetcher is no longer needed.
//
// Returns EUNAVAILABLE if Chrome/Chromium cannot be found or launched.
func NewFetcher(opts ...Option) (*Fetcher, error) {
	f := &Fetcher{
		timeout:  DefaultFetchTimeout,
		maxPages: DefaultMaxPages,
	}
	for _, opt := range opts {
		opt(f)
	}
	if err := f.launch(); err != nil {
		return nil, err
	}
	return f, nil
}

// Fetch navigates to the URL and returns the rendered HTML.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	browser, err := f.acquire()
	if err != nil {
		return "", err
	}

	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", kamar.Errorf(kamar.EUNAVAILABLE, "opening page: %v", err)
	}
	defer page.Close()

	page = page.Context(ctx).Timeout(f.timeout)

	if err := page.Navigate(url); err != nil {
		return "", fetchError(ctx, url, err)
	}
	if err := page.WaitLoad(); err != nil {
		return "", fetchError(ctx, url, err)
	}

	html, err := page.HTML()
	if err != nil {
		return "", fetchError(ctx, url, err)
	}
	return html, nil
}

// Close releases browser resources. Close is safe to call multiple times.
func (f *Fetcher) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return nil
	}
	f.closed = true
	return f.shutdown()
}

// acquire returns the browser for one page, restarting it once the page
// budget is spent. A failed restart keeps the old browser.
func (f *Fetcher) acquire() (*rod.Browser, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return nil, kamar.Errorf(kamar.EUNAVAILABLE, "browser is closed")
	}
	if f.pages >= f.maxPages {
		oldBrowser, oldLauncher := f.browser, f.launcher
		if err := f.launch(); err == nil {
			_ = oldBrowser.Close()
			oldLauncher.Kill()
			f.pages = 0
		}
	}
	f.pages++
	return f.browser, nil
}

// launch starts a browser with flags that keep background tabs from being
// throttled. Must be called with mu held or before f is shared.
func (f *Fetcher) launch() error {
	l := launcher.New().
		Set("disable-background-timer-throttling").
		Set("disable-renderer-backgrounding").
		Set("disable-dev-shm-usage").
		Leakless(true).
		Headless(true)

	u, err := l.Launch()
	if err != nil {
		return kamar.Errorf(kamar.EUNAVAILABLE, "launching browser: %v", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill()
		return kamar.Errorf(kamar.EUNAVAILABLE, "connecting to browser: %v", err)
	}

	f.browser, f.launcher = browser, l
	return nil
}

// shutdown must be called with mu held.
func (f *Fetcher) shutdown() error {
	var err error
	if f.browser != nil {
		err = f.browser.Close()
		f.browser = nil
	}
	if f.launcher != nil {
		f.launcher.Kill()
		f.launcher = nil
	}
	return err
}

// fetchError keeps cancellation visible to callers and reports every
// other failure as the site being unavailable.
func fetchError(ctx context.Context, url string, err error) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}
	return kamar.Errorf(kamar.EUNAVAILABLE, "rendering %s: %v", url, err)
}
