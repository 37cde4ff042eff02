package mock

import "github.com/fwojciec/urth"

var _ urth.Converter = (*Converter)(nil)

// Converter is a mock implementation of urth.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
