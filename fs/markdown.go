package fs

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fwojciec/urth"
)

// Ensure MarkdownWriter implements urth.GlossaryWriter at compile time.
var _ urth.GlossaryWriter = (*MarkdownWriter)(nil)

// MarkdownWriter writes a glossary as a single Markdown document with one
// section per entry.
type MarkdownWriter struct {
	path      string
	converter urth.Converter
}

// NewMarkdownWriter creates a new MarkdownWriter writing to path.
// HTML definitions are converted with converter; a nil converter writes
// them unchanged.
func NewMarkdownWriter(path string, converter urth.Converter) *MarkdownWriter {
	return &MarkdownWriter{path: path, converter: converter}
}

// Write writes the glossary to the writer's path.
func (w *MarkdownWriter) Write(ctx context.Context, g *urth.Glossary) error {
	if err := g.Validate(); err != nil {
		return err
	}

	var b strings.Builder
	if g.Info.Title != "" {
		fmt.Fprintf(&b, "# %s\n\n", g.Info.Title)
	}
	if g.Info.Author != "" {
		fmt.Fprintf(&b, "_%s_\n\n", g.Info.Author)
	}
	if g.Info.Description != "" {
		fmt.Fprintf(&b, "%s\n\n", g.Info.Description)
	}

	for _, e := range g.Entries {
		if err := ctx.Err(); err != nil {
			return err
		}
		section, err := w.formatEntry(e)
		if err != nil {
			return fmt.Errorf("entry %q: %w", e.Headword(), err)
		}
		b.WriteString(section)
	}

	return writeAtomic(w.path, func(out io.Writer) error {
		_, err := io.WriteString(out, b.String())
		return err
	})
}

func (w *MarkdownWriter) formatEntry(e *urth.Entry) (string, error) {
	definition := e.Definition
	if e.Format == urth.FormatHTML && w.converter != nil && strings.TrimSpace(definition) != "" {
		md, err := w.converter.Convert(definition)
		if err != nil {
			return "", err
		}
		definition = md
	}

	var b strings.Builder
	fmt.Fprintf(&b, "## %s\n\n", e.Headword())
	if len(e.Keys) > 1 {
		fmt.Fprintf(&b, "*Also: %s*\n\n", strings.Join(e.Keys[1:], ", "))
	}
	if definition = strings.TrimSpace(definition); definition != "" {
		b.WriteString(definition)
		b.WriteString("\n\n")
	}
	return b.String(), nil
}
