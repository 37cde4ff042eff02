package urth

// Warning codes reported in Result.Warnings.
const (
	WarnNoEntries        = "no_entries"
	WarnSentinelNotFound = "sentinel_not_found"
	WarnNoSentinel       = "no_sentinel"
	WarnDuplicate        = "duplicate_headword"
	WarnVariant          = "variant_failed"
)

// Warning is a recoverable condition observed during a run.
type Warning struct {
	Code    string
	Message string
}

// Result holds the outcome of one extraction run.
type Result struct {
	Entries []*Entry

	// Parsed is the number of entries extracted.
	Parsed int

	// Enriched is the number of entries that gained a variant key.
	Enriched int

	// Terminated reports whether the sentinel stopped extraction.
	Terminated bool

	Warnings []Warning

	index *Collection
}

// Lookup returns the entry reachable under key, variant keys included,
// or nil.
func (r *Result) Lookup(key string) *Entry {
	if r.index == nil {
		return nil
	}
	return r.index.Lookup(key)
}
