// Package goldmark renders Markdown input documents to HTML with goldmark.
// Bold text (**word**) becomes a <strong> headword marker.
package goldmark

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/fwojciec/urth"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// Ensure Renderer implements urth.MarkdownRenderer at compile time.
var _ urth.MarkdownRenderer = (*Renderer)(nil)

// meta is the front matter recognized at the top of a Markdown document.
type meta struct {
	Title       string `yaml:"title" toml:"title" json:"title"`
	Author      string `yaml:"author" toml:"author" json:"author"`
	Description string `yaml:"description" toml:"description" json:"description"`
	Sentinel    string `yaml:"sentinel" toml:"sentinel" json:"sentinel"`
}

// Renderer converts Markdown to HTML. It is stateless and safe to reuse.
type Renderer struct {
	md goldmark.Markdown
}

// NewRenderer creates a new Renderer with GFM tables and raw HTML allowed.
func NewRenderer() *Renderer {
	return &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.Table, extension.Strikethrough),
			goldmark.WithRendererOptions(html.WithUnsafe()),
		),
	}
}

// Render parses optional front matter and renders the body to HTML.
func (r *Renderer) Render(markdown []byte) (*urth.MarkdownDocument, error) {
	if len(bytes.TrimSpace(markdown)) == 0 {
		return nil, urth.Errorf(urth.EINVALID, "empty Markdown input")
	}

	var m meta
	body, err := frontmatter.Parse(bytes.NewReader(markdown), &m)
	if err != nil {
		return nil, urth.Errorf(urth.EINVALID, "invalid front matter: %v", err)
	}

	var buf bytes.Buffer
	if err := r.md.Convert(body, &buf); err != nil {
		return nil, fmt.Errorf("markdown render: %w", err)
	}

	return &urth.MarkdownDocument{
		HTML: "<html><body>" + buf.String() + "</body></html>",
		Info: urth.Info{
			Title:       strings.TrimSpace(m.Title),
			Author:      strings.TrimSpace(m.Author),
			Description: strings.TrimSpace(m.Description),
		},
		Sentinel: strings.TrimSpace(m.Sentinel),
	}, nil
}
