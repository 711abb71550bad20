package kamar

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// Outline heading levels.
const (
	SectionLevel    = 2
	SubsectionLevel = 3
)

// headingMarkers are stripped from the start of a text line: markdown
// heading hashes, block quotes and list bullets.
const headingMarkers = "#>*-+• \t"

// GenerateOutline suggests an article outline. When texts contain
// heading-like lines the outline is extracted from them; otherwise it is
// built from a fixed template around the keyword and result titles.
// The outline is never empty.
func (p *Pipeline) GenerateOutline(keyword string, titles []string, texts []string) []Heading {
	if outline := p.ExtractOutline(texts); len(outline) > 0 {
		return outline
	}
	return p.TemplateOutline(keyword, titles)
}

// TemplateOutline returns an introduction, one section with a detail
// subsection per leading result title, and a conclusion.
func (p *Pipeline) TemplateOutline(keyword string, titles []string) []Heading {
	keyword = collapseSpace(keyword)
	outline := []Heading{{Level: SectionLevel, Text: p.fillHeading(p.config.IntroHeading, keyword, 0)}}

	n := 0
	for _, title := range titles {
		if n == p.config.OutlineTemplateResults {
			break
		}
		title = collapseSpace(title)
		if title == "" {
			continue
		}
		n++
		outline = append(outline,
			Heading{Level: SectionLevel, Text: title},
			Heading{Level: SubsectionLevel, Text: p.fillHeading(p.config.DetailHeading, keyword, n)},
		)
	}

	return append(outline, Heading{Level: SectionLevel, Text: p.fillHeading(p.config.ConclusionHeading, keyword, 0)})
}

func (p *Pipeline) fillHeading(template, keyword string, n int) string {
	s := strings.ReplaceAll(template, KeywordPlaceholder, keyword)
	s = strings.ReplaceAll(s, NumberPlaceholder, strconv.Itoa(n))
	return collapseSpace(s)
}

// ExtractOutline scans texts for heading-like lines, keeping lines whose
// length falls within the configured band. Lines are de-duplicated across
// texts and capped; levels alternate between section and subsection.
// It returns nil when no line qualifies.
func (p *Pipeline) ExtractOutline(texts []string) []Heading {
	var outline []Heading
	seen := make(map[string]struct{})
	for _, text := range texts {
		for _, line := range strings.Split(text, "\n") {
			line = cleanHeadingLine(line)
			n := utf8.RuneCountInString(line)
			if n < p.config.OutlineMinLine || n > p.config.OutlineMaxLine {
				continue
			}
			if _, ok := seen[line]; ok {
				continue
			}
			seen[line] = struct{}{}

			level := SectionLevel
			if len(outline)%2 == 1 {
				level = SubsectionLevel
			}
			outline = append(outline, Heading{Level: level, Text: line})
			if len(outline) == p.config.OutlineMaxHeadings {
				return outline
			}
		}
	}
	return outline
}

// cleanHeadingLine strips markdown markers and emphasis from a line and
// collapses its whitespace.
func cleanHeadingLine(line string) string {
	line = strings.TrimLeft(strings.TrimSpace(line), headingMarkers)
	line = strings.TrimRight(line, "#*_ \t")
	line = strings.ReplaceAll(line, "**", "")
	return collapseSpace(line)
}
