// Package bing implements kamar.Searcher on top of Bing's RSS result feed.
// It needs no credentials and serves as a fallback provider.
package bing

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/kamar"
)

// DefaultBaseURL is the Bing search endpoint.
const DefaultBaseURL = "https://www.bing.com/search"

// Ensure Searcher implements kamar.Searcher.
var _ kamar.Searcher = (*Searcher)(nil)

// Searcher queries Bing and parses the RSS rendering of the result page.
type Searcher struct {
	// BaseURL overrides DefaultBaseURL, mainly for tests.
	BaseURL string

	client *http.Client
}

// NewSearcher creates a new Searcher with the given HTTP client.
// If client is nil, http.DefaultClient is used.
func NewSearcher(client *http.Client) *Searcher {
	if client == nil {
		client = http.DefaultClient
	}
	return &Searcher{BaseURL: DefaultBaseURL, client: client}
}

// Search returns at most opts.Num results for query.
func (s *Searcher) Search(ctx context.Context, query string, opts kamar.SearchOptions) ([]kamar.SearchResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	body, err := s.fetch(ctx, s.requestURL(query, opts))
	if err != nil {
		return nil, err
	}
	defer body.Close()

	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(body); err != nil {
		return nil, kamar.Errorf(kamar.EUNAVAILABLE, "parsing Bing RSS: %v", err)
	}

	channel := doc.FindElement("//channel")
	if channel == nil {
		return nil, kamar.Errorf(kamar.EUNAVAILABLE, "Bing RSS has no channel")
	}

	return parseItems(channel, opts.Num), nil
}

func (s *Searcher) requestURL(query string, opts kamar.SearchOptions) string {
	v := url.Values{}
	v.Set("format", "rss")
	v.Set("q", query)
	if opts.Num > 0 {
		v.Set("count", strconv.Itoa(opts.Num))
	}
	if opts.Language != "" && opts.Country != "" {
		v.Set("setlang", opts.Language)
		v.Set("cc", opts.Country)
		v.Set("mkt", opts.Language+"-"+strings.ToUpper(opts.Country))
	}
	return s.BaseURL + "?" + v.Encode()
}

// parseItems extracts results from the <item> children of channel.
// Items without a link are skipped.
func parseItems(channel *etree.Element, limit int) []kamar.SearchResult {
	results := []kamar.SearchResult{}
	for _, item := range channel.SelectElements("item") {
		if limit > 0 && len(results) == limit {
			break
		}
		link := childText(item, "link")
		if link == "" {
			continue
		}
		results = append(results, kamar.SearchResult{
			Title:   childText(item, "title"),
			Snippet: childText(item, "description"),
			Link:    link,
		})
	}
	return results
}

func childText(el *etree.Element, tag string) string {
	child := el.SelectElement(tag)
	if child == nil {
		return ""
	}
	return strings.TrimSpace(child.Text())
}

// fetch fetches a URL and returns the response body.
func (s *Searcher) fetch(ctx context.Context, target string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/rss+xml")

	resp, err := s.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, kamar.Errorf(kamar.EUNAVAILABLE, "Bing request failed: %v", err)
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, kamar.Errorf(kamar.EUNAVAILABLE, "HTTP %d from Bing", resp.StatusCode)
	}

	return resp.Body, nil
}
