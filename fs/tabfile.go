package fs

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fwojciec/urth"
)

// tabEscaper escapes characters that would break the one-entry-per-line layout.
var tabEscaper = strings.NewReplacer(
	`\`, `\\`,
	"\n", `\n`,
	"\t", `\t`,
	"\r", "",
)

// FormatTabLine formats an entry as a single tab-separated line.
// Keys are joined with "|".
func FormatTabLine(e *urth.Entry) string {
	keys := make([]string, len(e.Keys))
	for i, k := range e.Keys {
		keys[i] = tabEscaper.Replace(k)
	}
	return strings.Join(keys, "|") + "\t" + tabEscaper.Replace(e.Definition) + "\n"
}

// Ensure TabfileWriter implements urth.GlossaryWriter at compile time.
var _ urth.GlossaryWriter = (*TabfileWriter)(nil)

// TabfileWriter writes a glossary as a tab-separated text file.
// Info fields are written as "##name<TAB>value" header lines.
type TabfileWriter struct {
	path string
}

// NewTabfileWriter creates a new TabfileWriter writing to path.
func NewTabfileWriter(path string) *TabfileWriter {
	return &TabfileWriter{path: path}
}

// Write writes the glossary to the writer's path.
func (w *TabfileWriter) Write(ctx context.Context, g *urth.Glossary) error {
	if err := g.Validate(); err != nil {
		return err
	}

	return writeAtomic(w.path, func(out io.Writer) error {
		for _, field := range [][2]string{
			{"title", g.Info.Title},
			{"author", g.Info.Author},
			{"description", g.Info.Description},
		} {
			if field[1] == "" {
				continue
			}
			if _, err := fmt.Fprintf(out, "##%s\t%s\n", field[0], tabEscaper.Replace(field[1])); err != nil {
				return err
			}
		}

		for _, e := range g.Entries {
			if err := ctx.Err(); err != nil {
				return err
			}
			if _, err := io.WriteString(out, FormatTabLine(e)); err != nil {
				return err
			}
		}
		return nil
	})
}
