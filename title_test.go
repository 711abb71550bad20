package kamar_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/fwojciec/kamar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPipeline_GenerateTitle(t *testing.T) {
	t.Parallel()

	t.Run("joins keyword and top terms", func(t *testing.T) {
		t.Parallel()

		p := newPipeline(t)

		title := p.GenerateTitle("phones", []string{"mobile", "phones", "review", "prices"}, nil)

		assert.Equal(t, "phones | mobile review prices", title)
	})

	t.Run("skips terms equal to the keyword ignoring case", func(t *testing.T) {
		t.Parallel()

		p := newPipeline(t)

		title := p.GenerateTitle("Phones", []string{"phones", "camera"}, nil)

		assert.Equal(t, "Phones | camera", title)
	})

	t.Run("falls back to the densest result title", func(t *testing.T) {
		t.Parallel()

		p := newPipeline(t)

		title := p.GenerateTitle("phones", nil, []string{"Top", "Best Android phones compared in detail"})

		assert.Equal(t, "phones | Best Android phones compared in detail", title)
	})

	t.Run("falls back to the keyword with a suffix", func(t *testing.T) {
		t.Parallel()

		p := newPipeline(t)

		title := p.GenerateTitle("هواتف", nil, nil)

		assert.Equal(t, "هواتف: دليلك الشامل", title)
	})

	t.Run("cuts long titles between words", func(t *testing.T) {
		t.Parallel()

		cfg := kamar.DefaultConfig()
		cfg.TitleMaxLength = 30
		p, err := kamar.NewPipeline(cfg)
		require.NoError(t, err)

		title := p.GenerateTitle("phones", []string{"extraordinarily", "comprehensive", "international"}, nil)

		assert.Equal(t, "phones | extraordinarily", title)
	})

	t.Run("cuts a single long word hard", func(t *testing.T) {
		t.Parallel()

		p := newPipeline(t)
		keyword := strings.Repeat("a", 70)

		title := p.GenerateTitle(keyword, nil, nil)

		assert.Equal(t, strings.Repeat("a", kamar.DefaultTitleMaxLength), title)
	})

	t.Run("never exceeds the maximum length", func(t *testing.T) {
		t.Parallel()

		p := newPipeline(t)
		terms := []string{"الهواتف", "الذكية", "مقارنة", "تفصيلية", "الأسعار", "الكاميرا"}

		for i := range len(terms) {
			title := p.GenerateTitle("أفضل الهواتف الذكية في السوق السعودي لهذا العام", terms[i:], nil)
			assert.LessOrEqual(t, utf8.RuneCountInString(title), kamar.DefaultTitleMaxLength, title)
		}
	})
}
