package kamar_test

import (
	"math/rand/v2"
	"slices"
	"strings"
	"testing"

	"github.com/fwojciec/kamar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRanker_Rank(t *testing.T) {
	t.Parallel()

	t.Run("orders by descending frequency", func(t *testing.T) {
		t.Parallel()

		r := &kamar.Ranker{MinLength: 4}

		terms := r.Rank([]string{"apple banana apple", "cherry banana apple"}, 10)

		assert.Equal(t, []string{"apple", "banana", "cherry"}, terms)
	})

	t.Run("breaks ties by first occurrence", func(t *testing.T) {
		t.Parallel()

		r := &kamar.Ranker{MinLength: 4}

		assert.Equal(t, []string{"delta", "alpha", "gamma"}, r.Rank([]string{"delta alpha gamma"}, 10))
		assert.Equal(t, []string{"zeta", "alpha", "beta"}, r.Rank([]string{"zeta alpha alpha zeta beta"}, 10))
	})

	t.Run("honors the limit", func(t *testing.T) {
		t.Parallel()

		r := &kamar.Ranker{MinLength: 4}
		sources := []string{"zeta alpha alpha zeta beta"}

		assert.Equal(t, []string{"zeta", "alpha"}, r.Rank(sources, 2))
		assert.Empty(t, r.Rank(sources, 0))
		assert.Empty(t, r.Rank(sources, -1))
	})

	t.Run("excludes stop words", func(t *testing.T) {
		t.Parallel()

		r := &kamar.Ranker{MinLength: 4, StopWords: kamar.NewStopWordSet("alpha")}

		assert.Equal(t, []string{"zeta", "beta"}, r.Rank([]string{"zeta alpha alpha zeta beta"}, 10))
	})

	t.Run("returns an empty list for empty sources", func(t *testing.T) {
		t.Parallel()

		r := &kamar.Ranker{MinLength: 4}

		terms := r.Rank(nil, 10)

		require.NotNil(t, terms)
		assert.Empty(t, terms)
	})
}

func TestRanker_Rank_Properties(t *testing.T) {
	t.Parallel()

	vocab := []string{
		"الهواتف", "الذكية", "مقارنة", "التي", "هذا", "يمكن", "في", "من",
		"battery", "camera", "with", "that", "screen", "اسعار", "ذلك", "أحدث",
	}
	stops := kamar.DefaultStopWords()
	r := &kamar.Ranker{MinLength: kamar.DefaultMinTokenLength, StopWords: stops}
	rng := rand.New(rand.NewPCG(1, 2))

	for range 50 {
		sources := make([]string, rng.IntN(5))
		for i := range sources {
			words := make([]string, rng.IntN(20))
			for j := range words {
				words[j] = vocab[rng.IntN(len(vocab))]
			}
			sources[i] = strings.Join(words, " ")
		}
		limit := rng.IntN(8)

		terms := r.Rank(sources, limit)

		counts := make(map[string]int)
		for _, src := range sources {
			for token := range kamar.Tokenize(src, kamar.DefaultMinTokenLength) {
				counts[token]++
			}
		}

		assert.LessOrEqual(t, len(terms), limit)
		assert.Len(t, slices.Compact(slices.Sorted(slices.Values(terms))), len(terms), "duplicates in %v", terms)
		for i, term := range terms {
			assert.False(t, stops.IsStopWord(term), term)
			assert.Greater(t, len([]rune(term)), 3, term)
			if i > 0 {
				assert.GreaterOrEqual(t, counts[terms[i-1]], counts[term])
			}
		}
	}
}

func TestRanker_RankPhrases(t *testing.T) {
	t.Parallel()

	t.Run("counts adjacent pairs", func(t *testing.T) {
		t.Parallel()

		r := &kamar.Ranker{MinLength: 4}

		phrases := r.RankPhrases([]string{"best cheap phones"}, 10)

		assert.Equal(t, []string{"best cheap", "cheap phones"}, phrases)
	})

	t.Run("stop words break phrases", func(t *testing.T) {
		t.Parallel()

		r := &kamar.Ranker{MinLength: 4, StopWords: kamar.NewStopWordSet("with")}

		phrases := r.RankPhrases([]string{"smart phones with smart phones", "smart phones"}, 10)

		assert.Equal(t, []string{"smart phones"}, phrases)
	})

	t.Run("phrases never span sources", func(t *testing.T) {
		t.Parallel()

		r := &kamar.Ranker{MinLength: 4}

		assert.Empty(t, r.RankPhrases([]string{"alpha", "bravo"}, 10))
	})
}

func TestFrequencyTable(t *testing.T) {
	t.Parallel()

	table := kamar.NewFrequencyTable()
	for _, token := range []string{"b", "a", "b", "c", "a", "b"} {
		table.Add(token)
	}

	assert.Equal(t, 3, table.Len())
	assert.Equal(t, 3, table.Count("b"))
	assert.Equal(t, 0, table.Count("z"))
	assert.Equal(t, []string{"b", "a", "c"}, table.Ranked(10))
	assert.Equal(t, []string{"b"}, table.Ranked(1))
}

func TestRank_DefaultStopWords(t *testing.T) {
	t.Parallel()

	terms := kamar.Rank([]string{"الهواتف التي يمكن الهواتف"}, 10, 4)

	assert.Equal(t, []string{"الهواتف"}, terms)
}
