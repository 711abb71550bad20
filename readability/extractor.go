// Package readability extracts the main content of result pages with
// go-readability. It is the lighter alternative to the trafilatura
// extractor.
package readability

import (
	"net/url"
	"strings"

	"github.com/fwojciec/kamar"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements kamar.Extractor at compile time.
var _ kamar.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct {
	// PageURL, when set, lets readability resolve relative links.
	PageURL *url.URL
}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content.
// Returns EINVALID for empty input and ENOTFOUND when the page holds no
// readable article.
func (e *Extractor) Extract(rawHTML string) (*kamar.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, kamar.Errorf(kamar.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), e.PageURL)
	if err != nil {
		return nil, kamar.Errorf(kamar.ENOTFOUND, "no readable content: %v", err)
	}
	if strings.TrimSpace(article.Content) == "" {
		return nil, kamar.Errorf(kamar.ENOTFOUND, "no readable content")
	}

	return &kamar.ExtractResult{
		Title:       article.Title,
		ContentHTML: article.Content,
	}, nil
}
