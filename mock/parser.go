package mock

import (
	"io"

	"github.com/fwojciec/wxr2md"
)

var _ wxr2md.BlogParser = (*BlogParser)(nil)

// BlogParser is a mock implementation of wxr2md.BlogParser.
type BlogParser struct {
	ParseFn func(r io.Reader) (*wxr2md.Blog, error)
}

func (p *BlogParser) Parse(r io.Reader) (*wxr2md.Blog, error) {
	return p.ParseFn(r)
}
