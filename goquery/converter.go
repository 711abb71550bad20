// Package goquery converts clean HTML into plain text lines using goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/kamar"
)

// blockSelector matches the elements that become one line of text each.
const blockSelector = "h1, h2, h3, h4, h5, h6, p, li, blockquote, pre, dt, dd, th, td, figcaption, caption"

// noiseSelector matches elements whose text is never content.
const noiseSelector = "script, style, noscript, template, svg, iframe, nav, footer, form, button"

// Ensure Converter implements kamar.Converter at compile time.
var _ kamar.Converter = (*Converter)(nil)

// Converter renders HTML as plain text with one block element per line.
// Headings are prefixed with markdown hashes so their level survives.
type Converter struct {
	// MarkHeadings prefixes heading lines with "#" markers.
	MarkHeadings bool
}

// NewConverter creates a Converter that marks headings.
func NewConverter() *Converter {
	return &Converter{MarkHeadings: true}
}

// Convert returns the text of every innermost block element of html in
// document order. Blocks that contain other blocks contribute only through
// their children. When html has no block elements its whole text is
// returned as a single line.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", kamar.Errorf(kamar.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", kamar.Errorf(kamar.EINVALID, "failed to parse HTML: %v", err)
	}
	doc.Find(noiseSelector).Remove()

	var lines []string
	doc.Find(blockSelector).Each(func(_ int, sel *goquery.Selection) {
		if sel.Find(blockSelector).Length() > 0 {
			return
		}
		text := collapse(sel.Text())
		if text == "" {
			return
		}
		if c.MarkHeadings {
			if level := headingLevel(goquery.NodeName(sel)); level > 0 {
				text = strings.Repeat("#", level) + " " + text
			}
		}
		lines = append(lines, text)
	})

	if len(lines) == 0 {
		if text := collapse(doc.Text()); text != "" {
			lines = append(lines, text)
		}
	}

	return strings.Join(lines, "\n"), nil
}

// headingLevel returns 1-6 for h1-h6 and 0 otherwise.
func headingLevel(name string) int {
	if len(name) == 2 && name[0] == 'h' && name[1] >= '1' && name[1] <= '6' {
		return int(name[1] - '0')
	}
	return 0
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
