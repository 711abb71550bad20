package kamar

import (
	"strconv"
	"strings"
)

// FormatAnalysis formats result as plain text for terminal display.
// Outline entries are indented by level and empty lists are omitted.
func FormatAnalysis(result *AnalysisResult) string {
	if result == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString("Keyword: " + result.Keyword + "\n")
	writeField(&b, "Suggested title", result.SuggestedTitle)
	writeField(&b, "Meta description", result.MetaDescription)
	writeField(&b, "Featured snippet", result.FeaturedSnippet)

	if len(result.Outline) > 0 {
		b.WriteString("\nOutline:\n")
		for _, h := range result.Outline {
			indent := strings.Repeat("  ", max(h.Level-1, 1))
			b.WriteString(indent + h.Text + "\n")
		}
	}

	writeList(&b, "Related terms", result.RelatedTerms)
	writeList(&b, "NLP keywords", result.NLPKeywords)
	writeList(&b, "Key phrases", result.KeyPhrases)

	if len(result.TopLinks) > 0 {
		b.WriteString("\nTop links:\n")
		for i, l := range result.TopLinks {
			b.WriteString("  " + strconv.Itoa(i+1) + ". " + l.Title)
			if l.URL != "" && l.URL != l.Title {
				b.WriteString(" <" + l.URL + ">")
			}
			b.WriteString("\n")
		}
	}

	writeList(&b, "Domains", result.Domains)
	return strings.TrimRight(b.String(), "\n")
}

func writeField(b *strings.Builder, name, value string) {
	if value == "" {
		return
	}
	b.WriteString(name + ": " + value + "\n")
}

func writeList(b *strings.Builder, name string, items []string) {
	if len(items) == 0 {
		return
	}
	b.WriteString("\n" + name + ": " + strings.Join(items, "، ") + "\n")
}
