// Package markdown renders analysis results as Markdown documents.
package markdown

import (
	"io"
	"strconv"
	"strings"

	"github.com/fwojciec/kamar"
	"github.com/nao1215/markdown"
)

// ReportWriter writes AnalysisResults as Markdown.
type ReportWriter struct {
	output io.Writer
}

// NewReportWriter creates a ReportWriter that outputs to w.
func NewReportWriter(w io.Writer) *ReportWriter {
	return &ReportWriter{output: w}
}

// Write renders result. The outline keeps its heading levels so the
// document can be used directly as an article skeleton.
func (w *ReportWriter) Write(result *kamar.AnalysisResult) error {
	if result == nil {
		return kamar.Errorf(kamar.EINVALID, "analysis result required")
	}

	md := markdown.NewMarkdown(w.output)
	md.H1(result.Keyword)
	md.PlainText("")

	writeSummary(md, result)
	writeOutline(md, result.Outline)
	writeTerms(md, result)
	writeLinks(md, result.TopLinks)

	return md.Build()
}

func writeSummary(md *markdown.Markdown, result *kamar.AnalysisResult) {
	rows := [][]string{
		{"Suggested title", escapeCell(result.SuggestedTitle)},
		{"Meta description", escapeCell(result.MetaDescription)},
	}
	if result.FeaturedSnippet != "" {
		rows = append(rows, []string{"Featured snippet", escapeCell(result.FeaturedSnippet)})
	}
	md.Table(markdown.TableSet{
		Header: []string{"Field", "Suggestion"},
		Rows:   rows,
	})
	md.PlainText("")
}

func writeOutline(md *markdown.Markdown, outline []kamar.Heading) {
	if len(outline) == 0 {
		return
	}
	md.H2("Outline")
	md.PlainText("")
	for _, h := range outline {
		if h.Level > kamar.SectionLevel {
			md.PlainText(strings.Repeat("  ", h.Level-kamar.SectionLevel) + "- " + h.Text)
			continue
		}
		md.PlainText("- **" + h.Text + "**")
	}
	md.PlainText("")
}

func writeTerms(md *markdown.Markdown, result *kamar.AnalysisResult) {
	sections := []struct {
		header string
		items  []string
	}{
		{"Related terms", result.RelatedTerms},
		{"NLP keywords", result.NLPKeywords},
		{"Key phrases", result.KeyPhrases},
		{"Domains", result.Domains},
	}
	for _, s := range sections {
		if len(s.items) == 0 {
			continue
		}
		md.H2(s.header)
		md.PlainText("")
		md.BulletList(s.items...)
		md.PlainText("")
	}
}

func writeLinks(md *markdown.Markdown, links []kamar.Link) {
	if len(links) == 0 {
		return
	}
	md.H2("Top links")
	md.PlainText("")
	items := make([]string, len(links))
	for i, l := range links {
		items[i] = "[" + escapeLinkText(l.Title) + "](" + l.URL + ")"
	}
	md.OrderedList(items...)
	md.PlainText("")
	md.PlainText("*" + strconv.Itoa(len(links)) + " results analyzed*")
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

func escapeLinkText(s string) string {
	return strings.NewReplacer("[", `\[`, "]", `\]`).Replace(s)
}
