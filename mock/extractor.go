package mock

import "github.com/fwojciec/urth"

var _ urth.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of urth.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*urth.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*urth.ExtractResult, error) {
	return e.ExtractFn(html)
}
