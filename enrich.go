package urth

import "fmt"

// Pluralizer computes the plural surface form of a word.
type Pluralizer interface {
	Plural(word string) (string, error)
}

// Enricher adds a plural variant key to single-key entries.
type Enricher struct {
	Pluralizer Pluralizer
}

// NewEnricher creates a new Enricher.
func NewEnricher(p Pluralizer) *Enricher {
	return &Enricher{Pluralizer: p}
}

// Variant returns the plural form of key and true, or false when there is
// no usable variant: the pluralizer failed, returned an empty form, or
// returned key unchanged.
func (e *Enricher) Variant(key string) (string, bool, error) {
	plural, err := e.Pluralizer.Plural(key)
	if err != nil {
		return "", false, err
	}
	if plural == "" || plural == key {
		return "", false, nil
	}
	return plural, true, nil
}

// Enrich expands the key set of every single-key entry with its variant.
// Returns the number of entries that gained a key and a warning for every
// failed variant. Definitions are never touched.
func (e *Enricher) Enrich(entries []*Entry) (int, []Warning) {
	var enriched int
	var warnings []Warning

	for _, entry := range entries {
		if len(entry.Keys) != 1 {
			continue
		}
		key := entry.Keys[0]

		plural, ok, err := e.Variant(key)
		if err != nil {
			warnings = append(warnings, Warning{
				Code:    WarnVariant,
				Message: fmt.Sprintf("no variant for %q: %v", key, err),
			})
			continue
		}
		if !ok {
			continue
		}

		entry.Keys = []string{key, plural}
		enriched++
	}

	return enriched, warnings
}
