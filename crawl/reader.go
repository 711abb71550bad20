// Package crawl reads result pages: it fetches them politely, extracts
// their main content and reduces it to bounded plain text.
package crawl

import (
	"context"
	"net/url"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/fwojciec/kamar"
)

// Page text limits, in runes.
const (
	// DefaultMaxTextLength caps the text kept per page.
	DefaultMaxTextLength = 5000

	// DefaultMinTextLength is the text length under which a page is
	// assumed to need JavaScript and is fetched again with the fallback.
	DefaultMinTextLength = 200
)

var _ kamar.PageReader = (*Reader)(nil)

// Reader implements kamar.PageReader on top of a Fetcher, an Extractor and
// a Converter.
type Reader struct {
	Fetcher   kamar.Fetcher
	Extractor kamar.Extractor
	Converter kamar.Converter

	// Fallback, when set, re-fetches pages whose primary fetch failed or
	// yielded too little text, typically with a browser.
	Fallback kamar.Fetcher

	// RateLimiter spaces requests to one domain. Nil disables limiting.
	RateLimiter kamar.DomainLimiter

	// RetryDelays are the waits between primary fetch attempts.
	// Nil means DefaultRetryDelays.
	RetryDelays []time.Duration

	// MaxTextLength and MinTextLength override the defaults when positive.
	MaxTextLength int
	MinTextLength int

	// Logger is called before each retry.
	Logger LogFunc
}

// ReadPage fetches rawURL and returns its readable text.
// Returns EINVALID for a URL that is not absolute http(s).
func (r *Reader) ReadPage(ctx context.Context, rawURL string) (*kamar.Page, error) {
	u, err := url.Parse(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, kamar.Errorf(kamar.EINVALID, "invalid page URL %q", rawURL)
	}

	if r.RateLimiter != nil {
		if err := r.RateLimiter.Wait(ctx, u.Host); err != nil {
			return nil, err
		}
	}

	delays := r.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	html, err := FetchWithRetryDelays(ctx, rawURL, r.Fetcher.Fetch, r.Logger, delays)

	var page *kamar.Page
	if err == nil {
		page, err = r.process(rawURL, html)
	}

	if r.Fallback == nil || ctx.Err() != nil || kamar.ErrorCode(err) == kamar.EINVALID {
		return page, err
	}
	if err == nil && utf8.RuneCountInString(page.Text) >= r.minTextLength() {
		return page, nil
	}

	fallback, ferr := r.readFallback(ctx, rawURL)
	switch {
	case ferr == nil && (page == nil || len(fallback.Text) > len(page.Text)):
		return fallback, nil
	case page != nil:
		return page, nil
	default:
		return nil, err
	}
}

func (r *Reader) readFallback(ctx context.Context, rawURL string) (*kamar.Page, error) {
	html, err := r.Fallback.Fetch(ctx, rawURL)
	if err != nil {
		return nil, err
	}
	return r.process(rawURL, html)
}

// process runs extraction and conversion on fetched HTML.
func (r *Reader) process(rawURL, html string) (*kamar.Page, error) {
	extracted, err := r.Extractor.Extract(html)
	if err != nil {
		return nil, err
	}

	text, err := r.Converter.Convert(extracted.ContentHTML)
	if err != nil {
		return nil, err
	}

	return &kamar.Page{
		URL:   rawURL,
		Title: strings.TrimSpace(extracted.Title),
		Text:  TruncateText(strings.TrimSpace(text), r.maxTextLength()),
	}, nil
}

func (r *Reader) maxTextLength() int {
	if r.MaxTextLength > 0 {
		return r.MaxTextLength
	}
	return DefaultMaxTextLength
}

func (r *Reader) minTextLength() int {
	if r.MinTextLength > 0 {
		return r.MinTextLength
	}
	return DefaultMinTextLength
}

// TruncateText shortens s to at most max runes, cutting at the last
// whitespace so no word is split. A first word longer than max is cut hard.
func TruncateText(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	cut := max
	for i := max; i > 0; i-- {
		if unicode.IsSpace(runes[i]) {
			cut = i
			break
		}
	}
	return strings.TrimRightFunc(string(runes[:cut]), unicode.IsSpace)
}
