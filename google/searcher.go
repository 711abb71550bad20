// Package google implements kamar.Searcher with the Google Custom Search
// JSON API.
package google

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/fwojciec/kamar"
	"golang.org/x/text/language"
)

// DefaultBaseURL is the Custom Search JSON API endpoint.
const DefaultBaseURL = "https://www.googleapis.com/customsearch/v1"

// DefaultTimeout bounds a single search request.
const DefaultTimeout = 15 * time.Second

// MaxNum is the largest page size the API accepts.
const MaxNum = 10

// Ensure Searcher implements kamar.Searcher at compile time.
var _ kamar.Searcher = (*Searcher)(nil)

// Searcher queries the Custom Search JSON API.
type Searcher struct {
	// BaseURL overrides DefaultBaseURL, mainly for tests.
	BaseURL string

	apiKey string
	cx     string
	client *http.Client
}

// Option configures a Searcher.
type Option func(*Searcher)

// WithHTTPClient sets the client used for requests.
func WithHTTPClient(c *http.Client) Option {
	return func(s *Searcher) {
		s.client = c
	}
}

// NewSearcher creates a Searcher for the given API key and search engine ID.
// Returns EINVALID if either credential is missing.
func NewSearcher(apiKey, cx string, opts ...Option) (*Searcher, error) {
	if apiKey == "" || cx == "" {
		return nil, kamar.Errorf(kamar.EINVALID, "Google API key and search engine ID are required")
	}
	s := &Searcher{
		BaseURL: DefaultBaseURL,
		apiKey:  apiKey,
		cx:      cx,
		client:  &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

type response struct {
	Items []struct {
		Title   string `json:"title"`
		Snippet string `json:"snippet"`
		Link    string `json:"link"`
	} `json:"items"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// Search returns the results for query in the provider's order. A response
// without items yields an empty slice.
func (s *Searcher) Search(ctx context.Context, query string, opts kamar.SearchOptions) ([]kamar.SearchResult, error) {
	target, err := s.requestURL(query, opts)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, err
		}
		return nil, kamar.Errorf(kamar.EUNAVAILABLE, "Google request failed: %v", redact(err, s.apiKey))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, kamar.Errorf(kamar.EUNAVAILABLE, "reading Google response: %v", err)
	}

	var r response
	decodeErr := json.Unmarshal(body, &r)

	if resp.StatusCode != http.StatusOK {
		msg := http.StatusText(resp.StatusCode)
		if decodeErr == nil && r.Error != nil && r.Error.Message != "" {
			msg = r.Error.Message
		}
		return nil, kamar.Errorf(kamar.EUNAVAILABLE, "HTTP %d: %s", resp.StatusCode, msg)
	}
	if decodeErr != nil {
		return nil, kamar.Errorf(kamar.EUNAVAILABLE, "decoding Google response: %v", decodeErr)
	}

	results := make([]kamar.SearchResult, 0, len(r.Items))
	for _, item := range r.Items {
		results = append(results, kamar.SearchResult{
			Title:   item.Title,
			Snippet: item.Snippet,
			Link:    item.Link,
		})
	}
	return results, nil
}

// requestURL builds the API URL. Language and country are validated as
// BCP 47 and ISO 3166 codes before they are sent.
func (s *Searcher) requestURL(query string, opts kamar.SearchOptions) (string, error) {
	v := url.Values{}
	v.Set("key", s.apiKey)
	v.Set("cx", s.cx)
	v.Set("q", query)
	if opts.Num > 0 {
		v.Set("num", strconv.Itoa(min(opts.Num, MaxNum)))
	}
	if opts.Language != "" {
		tag, err := language.Parse(opts.Language)
		if err != nil {
			return "", kamar.Errorf(kamar.EINVALID, "invalid language %q", opts.Language)
		}
		base, _ := tag.Base()
		v.Set("hl", base.String())
	}
	if opts.Country != "" {
		region, err := language.ParseRegion(opts.Country)
		if err != nil {
			return "", kamar.Errorf(kamar.EINVALID, "invalid country %q", opts.Country)
		}
		v.Set("gl", strings.ToLower(region.String()))
	}
	return s.BaseURL + "?" + v.Encode(), nil
}

// redact keeps the API key out of error messages; url.Error includes the
// full request URL.
func redact(err error, secret string) string {
	return strings.ReplaceAll(err.Error(), secret, "REDACTED")
}
