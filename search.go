package kamar

import "context"

// SearchResult is a single web search result as returned by the provider.
type SearchResult struct {
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
	Link    string `json:"link"`
}

// SearchOptions configures a search request.
type SearchOptions struct {
	// Maximum number of results to return.
	Num int `json:"num,omitempty"`

	// Interface language hint, e.g. "ar".
	Language string `json:"language,omitempty"`

	// Country to geolocate results for, e.g. "sa".
	Country string `json:"country,omitempty"`
}

// Searcher queries a web search provider.
type Searcher interface {
	// Search returns results in the provider's relevance order.
	// An empty slice is not an error; callers decide what no results mean.
	// Returns EUNAVAILABLE if the provider cannot be reached or responds
	// with a non-2xx status.
	Search(ctx context.Context, query string, opts SearchOptions) ([]SearchResult, error)
}
