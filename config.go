package kamar

import "unicode/utf8"

// Default pipeline parameters.
const (
	// DefaultMinTokenLength drops words of three characters or fewer, which
	// in Arabic and English are almost always particles and prepositions.
	DefaultMinTokenLength = 4

	// DefaultTermLimit caps the related terms list.
	DefaultTermLimit = 20

	// DefaultNLPLimit caps the NLP keyword list.
	DefaultNLPLimit = 30

	// DefaultPhraseLimit caps the two-word key phrase list.
	DefaultPhraseLimit = 12

	// DefaultTitleTerms is the number of ranked terms appended to the keyword
	// in a suggested title.
	DefaultTitleTerms = 3

	// DefaultTitleMaxLength keeps suggested titles within what search engines
	// display without truncation.
	DefaultTitleMaxLength = 60

	// DefaultMetaMaxLength is the meta description length search engines
	// display without truncation.
	DefaultMetaMaxLength = 160

	// DefaultOutlineMinLine and DefaultOutlineMaxLine bound the length of a
	// page text line considered heading-like.
	DefaultOutlineMinLine = 20
	DefaultOutlineMaxLine = 80

	// DefaultOutlineMaxHeadings caps an extracted outline.
	DefaultOutlineMaxHeadings = 6

	// DefaultOutlineTemplateResults is the number of result titles turned
	// into sections by the template outline.
	DefaultOutlineTemplateResults = 5
)

// Ellipsis marks a truncated meta description.
const Ellipsis = "…"

// Placeholders substituted into outline heading templates.
const (
	KeywordPlaceholder = "{keyword}"
	NumberPlaceholder  = "{n}"
)

// Config holds the named parameters of the text pipeline.
// The zero value is not usable; start from DefaultConfig.
type Config struct {
	// MinTokenLength is the minimum number of runes a token must have.
	MinTokenLength int `json:"minTokenLength" yaml:"min_token_length"`

	// TermLimit caps AnalysisResult.RelatedTerms.
	TermLimit int `json:"termLimit" yaml:"term_limit"`

	// NLPLimit caps AnalysisResult.NLPKeywords.
	NLPLimit int `json:"nlpLimit" yaml:"nlp_limit"`

	// PhraseLimit caps AnalysisResult.KeyPhrases.
	PhraseLimit int `json:"phraseLimit" yaml:"phrase_limit"`

	// TitleTerms is the number of ranked terms used in a suggested title.
	TitleTerms int `json:"titleTerms" yaml:"title_terms"`

	// TitleMaxLength is the maximum title length in runes.
	TitleMaxLength int `json:"titleMaxLength" yaml:"title_max_length"`

	// MetaMaxLength is the maximum meta description length in runes,
	// including the ellipsis marker.
	MetaMaxLength int `json:"metaMaxLength" yaml:"meta_max_length"`

	// OutlineMinLine and OutlineMaxLine bound heading-like lines in runes.
	OutlineMinLine int `json:"outlineMinLine" yaml:"outline_min_line"`
	OutlineMaxLine int `json:"outlineMaxLine" yaml:"outline_max_line"`

	// OutlineMaxHeadings caps an outline extracted from page text.
	OutlineMaxHeadings int `json:"outlineMaxHeadings" yaml:"outline_max_headings"`

	// OutlineTemplateResults is the number of result titles used by the
	// template outline.
	OutlineTemplateResults int `json:"outlineTemplateResults" yaml:"outline_template_results"`

	// Outline heading templates. {keyword} is replaced by the keyword and
	// {n} by the section number.
	IntroHeading      string `json:"introHeading" yaml:"intro_heading"`
	DetailHeading     string `json:"detailHeading" yaml:"detail_heading"`
	ConclusionHeading string `json:"conclusionHeading" yaml:"conclusion_heading"`

	// TitleFallbackSuffix is appended to the keyword when no terms or
	// titles are available.
	TitleFallbackSuffix string `json:"titleFallbackSuffix" yaml:"title_fallback_suffix"`

	// DefaultMeta is used when no snippet text survives buzzword removal.
	DefaultMeta string `json:"defaultMeta" yaml:"default_meta"`

	// StopWords are excluded from every ranked list. Exact, case-sensitive match.
	StopWords []string `json:"stopWords" yaml:"stop_words"`

	// Buzzwords are cliché phrases removed from descriptions.
	// Matching is literal and case-insensitive.
	Buzzwords []string `json:"buzzwords" yaml:"buzzwords"`
}

// DefaultConfig returns the default pipeline configuration.
func DefaultConfig() Config {
	return Config{
		MinTokenLength:         DefaultMinTokenLength,
		TermLimit:              DefaultTermLimit,
		NLPLimit:               DefaultNLPLimit,
		PhraseLimit:            DefaultPhraseLimit,
		TitleTerms:             DefaultTitleTerms,
		TitleMaxLength:         DefaultTitleMaxLength,
		MetaMaxLength:          DefaultMetaMaxLength,
		OutlineMinLine:         DefaultOutlineMinLine,
		OutlineMaxLine:         DefaultOutlineMaxLine,
		OutlineMaxHeadings:     DefaultOutlineMaxHeadings,
		OutlineTemplateResults: DefaultOutlineTemplateResults,
		IntroHeading:           "مقدمة عن " + KeywordPlaceholder,
		DetailHeading:          "تفاصيل " + NumberPlaceholder,
		ConclusionHeading:      "الخاتمة: " + KeywordPlaceholder,
		TitleFallbackSuffix:    ": دليلك الشامل",
		DefaultMeta:            "وصف Meta مُحسّن لجذب الزوار.",
		StopWords:              append([]string(nil), defaultStopWords...),
		Buzzwords:              append([]string(nil), defaultBuzzwords...),
	}
}

// Validate returns an error if the configuration cannot drive the pipeline.
func (c *Config) Validate() error {
	positive := []struct {
		name  string
		value int
	}{
		{"min token length", c.MinTokenLength},
		{"term limit", c.TermLimit},
		{"NLP limit", c.NLPLimit},
		{"phrase limit", c.PhraseLimit},
		{"title terms", c.TitleTerms},
		{"title max length", c.TitleMaxLength},
		{"meta max length", c.MetaMaxLength},
		{"outline min line", c.OutlineMinLine},
		{"outline max line", c.OutlineMaxLine},
		{"outline max headings", c.OutlineMaxHeadings},
		{"outline template results", c.OutlineTemplateResults},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return Errorf(EINVALID, "%s must be positive, got %d", p.name, p.value)
		}
	}
	if c.OutlineMinLine > c.OutlineMaxLine {
		return Errorf(EINVALID, "outline min line (%d) exceeds outline max line (%d)", c.OutlineMinLine, c.OutlineMaxLine)
	}
	if c.MetaMaxLength <= utf8.RuneCountInString(Ellipsis) {
		return Errorf(EINVALID, "meta max length must leave room for the ellipsis, got %d", c.MetaMaxLength)
	}
	return nil
}
