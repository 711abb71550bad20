package mock

import "github.com/fwojciec/kamar"

var _ kamar.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of kamar.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*kamar.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*kamar.ExtractResult, error) {
	return e.ExtractFn(html)
}
