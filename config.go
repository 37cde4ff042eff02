package urth

// DefaultTruncate marks the end of an entry body in delimiter-stream mode.
const DefaultTruncate = "\n\n\n"

// DedupPolicy decides what happens when a headword recurs.
type DedupPolicy string

// DedupPolicy constants.
const (
	// DedupOverwrite replaces the earlier entry's content; the entry keeps the
	// position of its first appearance.
	DedupOverwrite DedupPolicy = "overwrite"
	// DedupKeepFirst ignores later entries with an already seen headword.
	DedupKeepFirst DedupPolicy = "keep-first"
	// DedupAppend keeps every entry, duplicates included.
	DedupAppend DedupPolicy = "append"
)

// Config holds extraction settings supplied by the operator.
type Config struct {
	// Delimiter wraps headwords in delimiter-stream mode.
	Delimiter string `yaml:"delimiter"`

	// Sentinel is the last headword of the dictionary. Extraction stops
	// after its entry. Empty means run to the end of input.
	Sentinel string `yaml:"sentinel"`

	// Format is propagated to every entry.
	Format DefinitionFormat `yaml:"format"`

	// Truncate cuts a stream-mode definition at its first occurrence.
	// Ignored when NoTruncate is set.
	Truncate   string `yaml:"truncate"`
	NoTruncate bool   `yaml:"no_truncate"`

	// LineBreak joins definition fragments in tree-walk mode.
	// Defaults depend on Format.
	LineBreak string `yaml:"line_break"`

	Dedup DedupPolicy `yaml:"dedup"`
}

// DefaultConfig returns a Config with defaults for every field except
// Delimiter and Sentinel.
func DefaultConfig() Config {
	return Config{
		Format:   FormatPlain,
		Truncate: DefaultTruncate,
		Dedup:    DedupOverwrite,
	}
}

// Validate returns an error if the config contains invalid fields.
func (c *Config) Validate() error {
	switch c.Format {
	case "", FormatPlain, FormatHTML:
	default:
		return Errorf(EINVALID, "unknown definition format %q", c.Format)
	}
	switch c.Dedup {
	case "", DedupOverwrite, DedupKeepFirst, DedupAppend:
	default:
		return Errorf(EINVALID, "unknown dedup policy %q", c.Dedup)
	}
	return nil
}

func (c Config) format() DefinitionFormat {
	if c.Format == "" {
		return FormatPlain
	}
	return c.Format
}

func (c Config) truncate() string {
	if c.NoTruncate {
		return ""
	}
	if c.Truncate == "" {
		return DefaultTruncate
	}
	return c.Truncate
}

func (c Config) lineBreak() string {
	if c.LineBreak != "" {
		return c.LineBreak
	}
	if c.format() == FormatHTML {
		return "<br/>"
	}
	return "\n"
}

func (c Config) dedup() DedupPolicy {
	if c.Dedup == "" {
		return DedupOverwrite
	}
	return c.Dedup
}
