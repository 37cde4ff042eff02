package urth

// DefinitionFormat tags the content type of a definition.
// The tag is taken from configuration and never inferred from content.
type DefinitionFormat string

// DefinitionFormat constants. The values match the single-letter codes used
// by common glossary tooling.
const (
	FormatPlain DefinitionFormat = "m"
	FormatHTML  DefinitionFormat = "h"
)

// ParseDefinitionFormat maps a user-facing name to a DefinitionFormat.
func ParseDefinitionFormat(s string) (DefinitionFormat, error) {
	switch s {
	case "plain", "text", string(FormatPlain):
		return FormatPlain, nil
	case "html", string(FormatHTML):
		return FormatHTML, nil
	}
	return "", Errorf(EINVALID, "unknown definition format %q", s)
}

// Entry is a single dictionary entry.
// Keys are ordered headword first, variant form second.
type Entry struct {
	Keys       []string         `json:"keys"`
	Definition string           `json:"definition"`
	Format     DefinitionFormat `json:"format"`
}

// Headword returns the entry's primary key.
func (e *Entry) Headword() string {
	if len(e.Keys) == 0 {
		return ""
	}
	return e.Keys[0]
}

// Validate returns an error if the entry contains invalid fields.
func (e *Entry) Validate() error {
	if len(e.Keys) == 0 {
		return Errorf(EINVALID, "entry key required")
	}
	if len(e.Keys) > 2 {
		return Errorf(EINVALID, "entry %q has %d keys, at most 2 allowed", e.Keys[0], len(e.Keys))
	}
	seen := make(map[string]bool, len(e.Keys))
	for _, k := range e.Keys {
		if k == "" {
			return Errorf(EINVALID, "entry key must not be empty")
		}
		if seen[k] {
			return Errorf(EINVALID, "entry key %q repeated", k)
		}
		seen[k] = true
	}
	return nil
}
