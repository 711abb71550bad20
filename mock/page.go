package mock

import (
	"context"

	"github.com/fwojciec/kamar"
)

var _ kamar.PageReader = (*PageReader)(nil)

// PageReader is a mock implementation of kamar.PageReader.
type PageReader struct {
	ReadPageFn func(ctx context.Context, url string) (*kamar.Page, error)
}

func (r *PageReader) ReadPage(ctx context.Context, url string) (*kamar.Page, error) {
	return r.ReadPageFn(ctx, url)
}
