// Package trafilatura extracts the main content of result pages with
// go-trafilatura.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/kamar"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements kamar.Extractor at compile time.
var _ kamar.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
type Extractor struct {
	// Language is an optional ISO 639-1 code. Pages detected in another
	// language are rejected by trafilatura.
	Language string
}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content.
// Returns EINVALID for empty input and ENOTFOUND when no main content
// could be identified.
func (e *Extractor) Extract(rawHTML string) (*kamar.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, kamar.Errorf(kamar.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback:  true,
		ExcludeComments: true,
		TargetLanguage:  e.Language,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, kamar.Errorf(kamar.ENOTFOUND, "no main content: %v", err)
	}
	if result.ContentNode == nil || strings.TrimSpace(result.ContentText) == "" {
		return nil, kamar.Errorf(kamar.ENOTFOUND, "no main content")
	}

	contentHTML, err := renderNode(result.ContentNode)
	if err != nil {
		return nil, err
	}

	return &kamar.ExtractResult{
		Title:       result.Metadata.Title,
		ContentHTML: contentHTML,
	}, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
