package kamar

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// sentenceEnd lists the marks that end a sentence in Latin and Arabic text.
const sentenceEnd = ".!?؟"

// GenerateMeta builds a meta description from snippets: the snippets are
// joined in order, whitespace is collapsed, buzzwords are removed and the
// result is cut at a word boundary to fit the configured length, ellipsis
// included. When nothing is left the configured default is returned.
func (p *Pipeline) GenerateMeta(snippets []string) string {
	text := p.removeBuzzwords(strings.Join(snippets, " "))
	if text == "" {
		text = p.config.DefaultMeta
	}
	return truncateText(text, p.config.MetaMaxLength)
}

// GenerateSnippet returns the first sentence of the joined snippets, cleaned
// and truncated with the same rules as GenerateMeta. It returns an empty
// string when there is no text.
func (p *Pipeline) GenerateSnippet(snippets []string) string {
	text := collapseSpace(strings.Join(snippets, " "))
	if i := strings.IndexAny(text, sentenceEnd); i >= 0 {
		text = text[:i]
	}
	text = p.removeBuzzwords(text)
	if text == "" {
		return ""
	}
	return truncateText(text, p.config.MetaMaxLength)
}

// removeBuzzwords strips every whole-word buzzword and collapses whitespace.
// Removal repeats until stable: adjacent occurrences share an edge, so one
// pass can only remove every other one.
func (p *Pipeline) removeBuzzwords(text string) string {
	text = collapseSpace(text)
	if p.buzz == nil {
		return text
	}
	for {
		next := collapseSpace(p.buzz.ReplaceAllString(text, "${1} ${2}"))
		if next == text {
			return text
		}
		text = next
	}
}

// truncateText shortens s to at most max runes including the ellipsis.
// The cut is made at the last whitespace boundary that leaves room for the
// ellipsis; a first word longer than that is cut hard.
func truncateText(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	budget := max - utf8.RuneCountInString(Ellipsis)
	cut := lastBoundary(runes, budget)
	out := strings.TrimRightFunc(string(runes[:cut]), unicode.IsSpace)
	return out + Ellipsis
}
