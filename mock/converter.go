package mock

import "github.com/fwojciec/kamar"

var _ kamar.Converter = (*Converter)(nil)

// Converter is a mock implementation of kamar.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
