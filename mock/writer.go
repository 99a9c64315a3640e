package mock

import (
	"context"

	"github.com/fwojciec/wxr2md"
)

var _ wxr2md.PostWriter = (*PostWriter)(nil)

// PostWriter is a mock implementation of wxr2md.PostWriter.
type PostWriter struct {
	PrepareFn   func() error
	WritePostFn func(ctx context.Context, post *wxr2md.Post) error
}

func (w *PostWriter) Prepare() error {
	if w.PrepareFn == nil {
		return nil
	}
	return w.PrepareFn()
}

func (w *PostWriter) WritePost(ctx context.Context, post *wxr2md.Post) error {
	return w.WritePostFn(ctx, post)
}
