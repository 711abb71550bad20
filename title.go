package kamar

import (
	"strings"
	"unicode"
)

// GenerateTitle composes a page title of the form "<keyword> | <terms>"
// from the highest ranked terms. Terms equal to the keyword are skipped.
// Without terms it uses the most information-dense result title, and
// without titles it appends the fallback suffix to the keyword. The title
// never exceeds the configured length and is only cut between words.
func (p *Pipeline) GenerateTitle(keyword string, terms []string, titles []string) string {
	keyword = collapseSpace(keyword)

	picked := make([]string, 0, p.config.TitleTerms)
	for _, term := range terms {
		if len(picked) == p.config.TitleTerms {
			break
		}
		if strings.EqualFold(term, keyword) {
			continue
		}
		picked = append(picked, term)
	}

	var title string
	if len(picked) > 0 {
		title = joinTitle(keyword, strings.Join(picked, " "))
	} else if best := p.densestTitle(titles); best != "" {
		title = joinTitle(keyword, best)
	} else {
		title = keyword + p.config.TitleFallbackSuffix
	}
	return truncateWords(title, p.config.TitleMaxLength)
}

func joinTitle(keyword, rest string) string {
	if keyword == "" {
		return rest
	}
	return keyword + " | " + rest
}

// densestTitle returns the title with the most distinct ranked tokens.
// Ties go to the earlier title.
func (p *Pipeline) densestTitle(titles []string) string {
	best, bestScore := "", -1
	for _, title := range titles {
		title = collapseSpace(title)
		if title == "" {
			continue
		}
		seen := make(map[string]struct{})
		for token := range Tokenize(title, p.ranker.MinLength) {
			if !p.ranker.isStopWord(token) {
				seen[token] = struct{}{}
			}
		}
		if len(seen) > bestScore {
			best, bestScore = title, len(seen)
		}
	}
	return best
}

// titleSeparators are trimmed from the end of a cut title so it does not
// end on a dangling separator.
const titleSeparators = " |:-–—،"

// truncateWords shortens s to at most max runes, cutting at the last
// whitespace boundary. A single word longer than max is cut hard.
func truncateWords(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	cut := lastBoundary(runes, max)
	out := strings.TrimRight(string(runes[:cut]), titleSeparators)
	if out == "" {
		return string(runes[:max])
	}
	return out
}

// lastBoundary returns the largest cut position at or before max that
// falls on whitespace, or max when the first word is longer than max.
func lastBoundary(runes []rune, max int) int {
	if max < len(runes) && unicode.IsSpace(runes[max]) {
		return max
	}
	for i := max - 1; i > 0; i-- {
		if unicode.IsSpace(runes[i]) {
			return i
		}
	}
	return max
}
