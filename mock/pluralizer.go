package mock

import "github.com/fwojciec/urth"

var _ urth.Pluralizer = (*Pluralizer)(nil)

// Pluralizer is a mock implementation of urth.Pluralizer.
type Pluralizer struct {
	PluralFn func(word string) (string, error)
}

func (p *Pluralizer) Plural(word string) (string, error) {
	return p.PluralFn(word)
}
