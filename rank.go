package kamar

import (
	"cmp"
	"slices"
	"strings"
)

// FrequencyTable counts token occurrences and remembers the order in which
// tokens were first seen.
type FrequencyTable struct {
	counts map[string]int
	order  []string
}

// NewFrequencyTable returns an empty table.
func NewFrequencyTable() *FrequencyTable {
	return &FrequencyTable{counts: make(map[string]int)}
}

// Add counts one occurrence of token.
func (t *FrequencyTable) Add(token string) {
	if _, ok := t.counts[token]; !ok {
		t.order = append(t.order, token)
	}
	t.counts[token]++
}

// Count returns the number of occurrences of token.
func (t *FrequencyTable) Count(token string) int {
	return t.counts[token]
}

// Len returns the number of distinct tokens.
func (t *FrequencyTable) Len() int {
	return len(t.order)
}

// Ranked returns at most limit tokens ordered by descending count.
// Tokens with equal counts keep their first-seen order.
func (t *FrequencyTable) Ranked(limit int) []string {
	tokens := make([]string, len(t.order))
	copy(tokens, t.order)
	slices.SortStableFunc(tokens, func(a, b string) int {
		return cmp.Compare(t.counts[b], t.counts[a])
	})
	if limit < 0 {
		limit = 0
	}
	if len(tokens) > limit {
		tokens = tokens[:limit]
	}
	return tokens
}

// Ranker builds frequency-ranked term lists from text sources.
type Ranker struct {
	// MinLength is the minimum token length in runes.
	MinLength int

	// StopWords excludes tokens from ranking. Nil excludes nothing.
	StopWords StopWordFilter
}

// Rank tokenizes every source, drops stop words and returns at most limit
// terms by descending frequency, ties broken by first occurrence.
func (r *Ranker) Rank(sources []string, limit int) []string {
	table := NewFrequencyTable()
	for _, src := range sources {
		for token := range Tokenize(src, r.MinLength) {
			if r.isStopWord(token) {
				continue
			}
			table.Add(token)
		}
	}
	return table.Ranked(limit)
}

// RankPhrases counts two-word phrases made of adjacent words that both
// survive tokenization and stop-word filtering, and returns at most limit
// phrases by descending frequency. Phrases never span two sources.
func (r *Ranker) RankPhrases(sources []string, limit int) []string {
	table := NewFrequencyTable()
	for _, src := range sources {
		prev := ""
		for field := range strings.FieldsSeq(src) {
			word := cleanWord(field)
			if !isToken(word, r.MinLength) || r.isStopWord(word) {
				prev = ""
				continue
			}
			if prev != "" {
				table.Add(prev + " " + word)
			}
			prev = word
		}
	}
	return table.Ranked(limit)
}

func (r *Ranker) isStopWord(token string) bool {
	return r.StopWords != nil && r.StopWords.IsStopWord(token)
}

// Rank ranks the tokens of sources using the default stop words.
func Rank(sources []string, limit, minLength int) []string {
	r := &Ranker{MinLength: minLength, StopWords: DefaultStopWords()}
	return r.Rank(sources, limit)
}
