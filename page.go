package kamar

import "context"

// Page holds the readable text of a fetched result page.
type Page struct {
	URL   string `json:"url"`
	Title string `json:"title"`
	Text  string `json:"text"`
}

// PageReader retrieves the readable text of a web page.
// Implementations hide fetching, retry logic, content extraction,
// conversion to text and truncation.
type PageReader interface {
	// ReadPage returns the page at url with markup removed.
	// The context controls timeout and cancellation.
	ReadPage(ctx context.Context, url string) (*Page, error)
}

// DomainLimiter provides per-domain rate limiting.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}
