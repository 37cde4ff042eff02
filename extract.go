package urth

import (
	"fmt"
	"strings"
)

// ExtractStream extracts entries from text in which every headword is
// wrapped in cfg.Delimiter on both sides.
// Text before the first delimiter is discarded.
func ExtractStream(text string, cfg Config) (*Result, error) {
	if cfg.Delimiter == "" {
		return nil, Errorf(EINVALID, "delimiter required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	a := newAssembler(cfg, joinStream(cfg.truncate()))

	tokens := strings.Split(text, cfg.Delimiter)
	for i := 1; i < len(tokens) && !a.done; i += 2 {
		var body string
		if i+1 < len(tokens) {
			body = tokens[i+1]
		}

		if headword := strings.TrimSpace(tokens[i]); headword != "" {
			a.start(headword)
		}
		a.add(body)
		a.checkSentinel()
	}

	return a.finish(), nil
}

// ExtractTree extracts entries from a sequence of sibling elements.
// An element with direct headword-marker children starts a new entry;
// the element's remaining text is appended to the active entry.
func ExtractTree(elements []Element, cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	a := newAssembler(cfg, joinTree(cfg.lineBreak()))

	for _, el := range elements {
		if a.done {
			break
		}
		if headword := HeadwordText(el); headword != "" {
			a.start(headword)
		}
		if fragment := strings.TrimSpace(DefinitionText(el)); fragment != "" {
			a.add(fragment)
		}
		a.checkSentinel()
	}

	return a.finish(), nil
}

// joinFunc turns accumulated fragments into a definition.
type joinFunc func(fragments []string) string

// joinStream concatenates fragments and cuts the body at marker.
func joinStream(marker string) joinFunc {
	return func(fragments []string) string {
		body := strings.TrimSpace(strings.Join(fragments, ""))
		if marker != "" {
			if idx := strings.Index(body, marker); idx >= 0 {
				body = body[:idx]
			}
		}
		return strings.TrimSpace(body)
	}
}

// joinTree joins fragments with a line-break marker.
func joinTree(lineBreak string) joinFunc {
	return func(fragments []string) string {
		return strings.Join(fragments, lineBreak)
	}
}

// assembler accumulates fragments for the active headword and flushes
// finished entries into a collection.
type assembler struct {
	cfg       Config
	join      joinFunc
	entries   *Collection
	warnings  []Warning
	headword  string
	fragments []string
	active    bool
	done      bool
}

func newAssembler(cfg Config, join joinFunc) *assembler {
	return &assembler{
		cfg:     cfg,
		join:    join,
		entries: NewCollection(cfg.dedup()),
	}
}

// start flushes the active entry and begins a new one.
func (a *assembler) start(headword string) {
	a.flush()
	a.headword = headword
	a.fragments = nil
	a.active = true
}

// add appends a fragment to the active entry. Fragments seen before any
// headword are dropped.
func (a *assembler) add(fragment string) {
	if !a.active {
		return
	}
	a.fragments = append(a.fragments, fragment)
}

// checkSentinel flushes the active entry and stops extraction when the
// active headword is the sentinel.
func (a *assembler) checkSentinel() {
	if !a.active || a.cfg.Sentinel == "" || a.headword != a.cfg.Sentinel {
		return
	}
	a.flush()
	a.done = true
}

func (a *assembler) flush() {
	if !a.active {
		return
	}
	a.active = false

	entry := &Entry{
		Keys:       []string{a.headword},
		Definition: a.join(a.fragments),
		Format:     a.cfg.format(),
	}
	if a.entries.Lookup(a.headword) != nil {
		a.warnings = append(a.warnings, Warning{
			Code:    WarnDuplicate,
			Message: fmt.Sprintf("headword %q appears more than once (policy %s)", a.headword, a.entries.policy),
		})
	}
	a.entries.Add(entry)
	a.fragments = nil
}

func (a *assembler) finish() *Result {
	a.flush()

	switch {
	case a.cfg.Sentinel == "":
		a.warnings = append(a.warnings, Warning{
			Code:    WarnNoSentinel,
			Message: "no sentinel configured, extracted to end of input",
		})
	case !a.done:
		a.warnings = append(a.warnings, Warning{
			Code:    WarnSentinelNotFound,
			Message: fmt.Sprintf("sentinel %q not found", a.cfg.Sentinel),
		})
	}
	if a.entries.Len() == 0 {
		a.warnings = append(a.warnings, Warning{
			Code:    WarnNoEntries,
			Message: "no entries extracted",
		})
	}

	return &Result{
		Entries:    a.entries.Entries(),
		Parsed:     a.entries.Len(),
		Terminated: a.done,
		Warnings:   a.warnings,
		index:      a.entries,
	}
}
