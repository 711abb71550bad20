// Package htmltomarkdown converts extracted page content to Markdown.
// Headings keep their "#" markers, which the outline extractor strips.
package htmltomarkdown

import (
	"regexp"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/kamar"
)

// Ensure Converter implements kamar.Converter at compile time.
var _ kamar.Converter = (*Converter)(nil)

var (
	imagePattern = regexp.MustCompile(`!\[[^\]]*\]\([^)]*\)`)
	linkPattern  = regexp.MustCompile(`\[([^\]]*)\]\([^)]*\)`)
	blankLines   = regexp.MustCompile(`\n{3,}`)
)

// Converter wraps html-to-markdown to convert HTML to Markdown.
type Converter struct {
	conv *converter.Converter

	// KeepLinks keeps link targets and images in the output. By default
	// links are reduced to their text so URLs do not pollute term counts.
	KeepLinks bool
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms HTML content into Markdown.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", kamar.Errorf(kamar.EINVALID, "empty HTML input")
	}

	result, err := c.conv.ConvertString(html)
	if err != nil {
		return "", kamar.Errorf(kamar.EINVALID, "converting HTML: %v", err)
	}

	if !c.KeepLinks {
		result = imagePattern.ReplaceAllString(result, "")
		result = linkPattern.ReplaceAllString(result, "$1")
		result = blankLines.ReplaceAllString(result, "\n\n")
	}

	return strings.TrimSpace(result), nil
}
