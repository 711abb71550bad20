// Package bloom de-duplicates result URLs using a Bloom filter. Search
// providers often return the same page under cosmetic URL variants.
package bloom

import (
	"net/url"
	"strings"

	"github.com/bits-and-blooms/bloom/v3"
)

// Filter remembers normalized URLs.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a new Bloom filter sized for n expected items
// with the given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Add adds a URL to the filter.
func (f *Filter) Add(rawURL string) {
	f.f.AddString(Normalize(rawURL))
}

// Test returns true if the URL might be in the filter.
// False positives are possible; false negatives are not.
func (f *Filter) Test(rawURL string) bool {
	return f.f.TestString(Normalize(rawURL))
}

// Seen reports whether the URL might already be in the filter and adds it.
func (f *Filter) Seen(rawURL string) bool {
	return f.f.TestAndAddString(Normalize(rawURL))
}

// Normalize reduces a URL to the form used for de-duplication: lower-case
// scheme and host, no "www." prefix, no fragment and no trailing slash.
// Unparseable input is returned trimmed.
func Normalize(rawURL string) string {
	rawURL = strings.TrimSpace(rawURL)
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return rawURL
	}
	u.Scheme = strings.ToLower(u.Scheme)
	u.Host = strings.TrimPrefix(strings.ToLower(u.Host), "www.")
	u.Fragment = ""
	u.RawFragment = ""
	u.Path = strings.TrimSuffix(u.Path, "/")
	u.RawPath = ""
	return u.String()
}
