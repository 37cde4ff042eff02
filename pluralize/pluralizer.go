// Package pluralize computes English plural forms using go-pluralize.
package pluralize

import (
	"strings"
	"unicode"

	"github.com/fwojciec/urth"
	"github.com/gertd/go-pluralize"
)

// Ensure Pluralizer implements urth.Pluralizer at compile time.
var _ urth.Pluralizer = (*Pluralizer)(nil)

// Pluralizer wraps a go-pluralize client.
type Pluralizer struct {
	client *pluralize.Client
}

// NewPluralizer creates a new Pluralizer.
func NewPluralizer() *Pluralizer {
	return &Pluralizer{client: pluralize.NewClient()}
}

// Plural returns the plural form of word.
// Words without letters (numbers, symbols) are rejected with EINVALID;
// for a phrase only the last word is inflected.
func (p *Pluralizer) Plural(word string) (string, error) {
	word = strings.TrimSpace(word)
	if word == "" {
		return "", urth.Errorf(urth.EINVALID, "empty word")
	}
	if !strings.ContainsFunc(word, unicode.IsLetter) {
		return "", urth.Errorf(urth.EINVALID, "word %q has no letters", word)
	}

	idx := strings.LastIndexFunc(word, unicode.IsSpace)
	if idx < 0 {
		return p.client.Plural(word), nil
	}
	head, last := word[:idx+1], word[idx+1:]
	return head + p.client.Plural(last), nil
}
