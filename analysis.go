package kamar

import (
	"context"
	"time"
)

// Link is a top-ranked result shown to the user.
type Link struct {
	Title string `json:"title"`
	URL   string `json:"link"`
}

// Heading is one entry of a suggested article outline.
type Heading struct {
	Level int    `json:"level"`
	Text  string `json:"text"`
}

// AnalysisResult holds the content suggestions derived for a keyword.
// It is fully derived from the search results and page texts it was built
// from; the same inputs and configuration always produce the same result.
type AnalysisResult struct {
	Keyword         string    `json:"keyword"`
	TopLinks        []Link    `json:"topLinks"`
	RelatedTerms    []string  `json:"relatedTerms"`
	SuggestedTitle  string    `json:"suggestedTitle"`
	MetaDescription string    `json:"metaDescription"`
	FeaturedSnippet string    `json:"featuredSnippet"`
	Outline         []Heading `json:"outline"`
	NLPKeywords     []string  `json:"nlpKeywords"`
	KeyPhrases      []string  `json:"keyPhrases"`
	Domains         []string  `json:"domains"`
}

// Analyzer produces content suggestions for a keyword.
type Analyzer interface {
	// Analyze searches for keyword and derives suggestions from the results.
	// Returns EINVALID for an empty keyword, ENOTFOUND when the search
	// yields no results and EUNAVAILABLE when the search provider fails.
	Analyze(ctx context.Context, keyword string) (*AnalysisResult, error)
}

// AnalysisRecord is a stored analysis.
type AnalysisRecord struct {
	ID        string          `json:"id"`
	Keyword   string          `json:"keyword"`
	Result    *AnalysisResult `json:"result"`
	CreatedAt time.Time       `json:"createdAt"`
}

// AnalysisFilter selects stored analyses. Zero fields match everything.
type AnalysisFilter struct {
	Keyword *string
	Limit   int
	Offset  int
}

// AnalysisStore keeps a history of analyses.
type AnalysisStore interface {
	// SaveAnalysis stores result and returns the new record.
	SaveAnalysis(ctx context.Context, result *AnalysisResult) (*AnalysisRecord, error)

	// FindAnalysisByID returns ENOTFOUND if no record has the ID.
	FindAnalysisByID(ctx context.Context, id string) (*AnalysisRecord, error)

	// FindAnalyses returns matching records, newest first.
	FindAnalyses(ctx context.Context, filter AnalysisFilter) ([]*AnalysisRecord, error)
}
