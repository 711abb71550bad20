package kamar

import (
	"cmp"
	"net/url"
	"regexp"
	"slices"
	"strings"
)

// Pipeline turns search results and page texts into an AnalysisResult.
// It holds no mutable state and is safe for concurrent use.
type Pipeline struct {
	config Config
	ranker *Ranker

	// buzz matches any configured buzzword; nil when there are none.
	buzz *regexp.Regexp
}

// NewPipeline validates cfg and builds a Pipeline from it.
func NewPipeline(cfg Config) (*Pipeline, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Pipeline{
		config: cfg,
		ranker: &Ranker{
			MinLength: cfg.MinTokenLength,
			StopWords: NewStopWordSet(cfg.StopWords...),
		},
		buzz: compileBuzzwords(cfg.Buzzwords),
	}, nil
}

// Config returns the configuration the pipeline was built with.
func (p *Pipeline) Config() Config {
	return p.config
}

// Rank returns at most limit terms from sources using the pipeline's
// token length and stop words.
func (p *Pipeline) Rank(sources []string, limit int) []string {
	return p.ranker.Rank(sources, limit)
}

// Run derives the full set of suggestions for keyword. Pages are optional;
// without them the outline falls back to the template built from titles.
func (p *Pipeline) Run(keyword string, results []SearchResult, pages []*Page) *AnalysisResult {
	keyword = collapseSpace(keyword)

	titles := make([]string, 0, len(results))
	snippets := make([]string, 0, len(results))
	links := make([]Link, 0, len(results))
	for _, r := range results {
		title := collapseSpace(r.Title)
		snippet := collapseSpace(r.Snippet)
		if title != "" {
			titles = append(titles, title)
		}
		if snippet != "" {
			snippets = append(snippets, snippet)
		}

		display := title
		if display == "" {
			display = r.Link
		}
		links = append(links, Link{Title: display, URL: r.Link})
	}

	var texts []string
	for _, page := range pages {
		if page != nil && strings.TrimSpace(page.Text) != "" {
			texts = append(texts, page.Text)
		}
	}

	cfg := p.config
	titleTerms := p.ranker.Rank(titles, cfg.TitleTerms+1)

	return &AnalysisResult{
		Keyword:         keyword,
		TopLinks:        links,
		RelatedTerms:    p.ranker.Rank(concat(titles, snippets), cfg.TermLimit),
		SuggestedTitle:  p.GenerateTitle(keyword, titleTerms, titles),
		MetaDescription: p.GenerateMeta(snippets),
		FeaturedSnippet: p.GenerateSnippet(snippets),
		Outline:         p.GenerateOutline(keyword, titles, texts),
		NLPKeywords:     p.ranker.Rank(concat(snippets, texts), cfg.NLPLimit),
		KeyPhrases:      p.ranker.RankPhrases(concat(titles, snippets, texts), cfg.PhraseLimit),
		Domains:         domains(results),
	}
}

// domains returns the distinct host names of the result links in rank order.
func domains(results []SearchResult) []string {
	hosts := make([]string, 0, len(results))
	for _, r := range results {
		u, err := url.Parse(r.Link)
		if err != nil || u.Hostname() == "" {
			continue
		}
		host := strings.ToLower(u.Hostname())
		if !slices.Contains(hosts, host) {
			hosts = append(hosts, host)
		}
	}
	return hosts
}

func concat(groups ...[]string) []string {
	return slices.Concat(groups...)
}

// compileBuzzwords builds one case-insensitive alternation of the literal
// phrases, longest first so overlapping phrases are removed whole. A phrase
// only matches between whitespace, punctuation or the text edges so words
// containing it stay intact. The edges are captured for the replacement.
func compileBuzzwords(phrases []string) *regexp.Regexp {
	quoted := make([]string, 0, len(phrases))
	for _, phrase := range phrases {
		if phrase = strings.TrimSpace(phrase); phrase != "" {
			quoted = append(quoted, regexp.QuoteMeta(phrase))
		}
	}
	if len(quoted) == 0 {
		return nil
	}
	slices.SortStableFunc(quoted, func(a, b string) int {
		return cmp.Compare(len(b), len(a))
	})
	return regexp.MustCompile(`(?i)(^|[\s\p{P}])(?:` + strings.Join(quoted, "|") + `)([\s\p{P}]|$)`)
}
