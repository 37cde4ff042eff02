package slog

import (
	"log/slog"

	"github.com/fwojciec/urth"
)

// Ensure LoggingPluralizer implements urth.Pluralizer.
var _ urth.Pluralizer = (*LoggingPluralizer)(nil)

// LoggingPluralizer wraps a Pluralizer with debug logging.
// Failures surface as run warnings, so they are not repeated at warn level.
type LoggingPluralizer struct {
	next   urth.Pluralizer
	logger *slog.Logger
}

// NewLoggingPluralizer creates a new LoggingPluralizer.
func NewLoggingPluralizer(next urth.Pluralizer, logger *slog.Logger) *LoggingPluralizer {
	return &LoggingPluralizer{next: next, logger: logger}
}

// Plural delegates to the wrapped pluralizer.
func (p *LoggingPluralizer) Plural(word string) (string, error) {
	plural, err := p.next.Plural(word)
	if err != nil {
		p.logger.Debug("pluralize", "word", word, "err", err)
		return plural, err
	}
	p.logger.Debug("pluralize", "word", word, "plural", plural)
	return plural, nil
}
