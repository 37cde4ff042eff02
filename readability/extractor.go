// Package readability strips page boilerplate from input documents before
// normalization using go-readability.
package readability

import (
	"strings"

	"github.com/fwojciec/urth"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements urth.Extractor at compile time.
var _ urth.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract the main content of a document.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the document's main content wrapped in a body element
// so it can be handed to a normalizer.
func (e *Extractor) Extract(rawHTML string) (*urth.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, urth.Errorf(urth.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	return &urth.ExtractResult{
		Title:       strings.TrimSpace(article.Title),
		ContentHTML: "<html><body>" + article.Content + "</body></html>",
	}, nil
}
