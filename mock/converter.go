package mock

import "github.com/fwojciec/wxr2md"

var _ wxr2md.Converter = (*Converter)(nil)

// Converter is a mock implementation of wxr2md.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
