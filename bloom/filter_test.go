package bloom_test

import (
	"testing"

	"github.com/fwojciec/kamar/bloom"
	"github.com/stretchr/testify/assert"
)

func TestFilter_AddAndTest(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(100, 0.01)

	assert.False(t, f.Test("https://example.com/page1"))

	f.Add("https://example.com/page1")

	assert.True(t, f.Test("https://example.com/page1"))
	assert.False(t, f.Test("https://example.com/page2"))
}

func TestFilter_Seen(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(100, 0.01)

	assert.False(t, f.Seen("https://a.com/x"))
	assert.True(t, f.Seen("https://www.A.com/x/#top"))
	assert.False(t, f.Seen("https://a.com/y"))
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"https://Example.com/Page", "https://example.com/Page"},
		{"https://www.example.com/page/", "https://example.com/page"},
		{"https://example.com/page#section", "https://example.com/page"},
		{"HTTPS://example.com/", "https://example.com"},
		{"https://example.com/search?q=1", "https://example.com/search?q=1"},
		{"  not a url  ", "not a url"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, bloom.Normalize(tt.in))
		})
	}
}
