// Package etree writes glossaries as XDXF documents using etree.
package etree

import (
	"context"
	"os"
	"path/filepath"

	"github.com/beevik/etree"
	"github.com/fwojciec/urth"
)

// Ensure XDXFWriter implements urth.GlossaryWriter at compile time.
var _ urth.GlossaryWriter = (*XDXFWriter)(nil)

// XDXFWriter writes a glossary in the XDXF "visual" format.
// Every entry becomes an <ar> article with one <k> element per key.
type XDXFWriter struct {
	path     string
	langFrom string
	langTo   string
}

// Option configures an XDXFWriter.
type Option func(*XDXFWriter)

// WithLanguages sets the lang_from and lang_to attributes.
// Both default to "ENG".
func WithLanguages(from, to string) Option {
	return func(w *XDXFWriter) {
		w.langFrom = from
		w.langTo = to
	}
}

// NewXDXFWriter creates a new XDXFWriter writing to path.
func NewXDXFWriter(path string, opts ...Option) *XDXFWriter {
	w := &XDXFWriter{
		path:     path,
		langFrom: "ENG",
		langTo:   "ENG",
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Build returns the XDXF document for g.
func (w *XDXFWriter) Build(g *urth.Glossary) *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("xdxf")
	root.CreateAttr("lang_from", w.langFrom)
	root.CreateAttr("lang_to", w.langTo)
	root.CreateAttr("format", "visual")

	if g.Info.Title != "" {
		root.CreateElement("full_name").SetText(g.Info.Title)
	}
	if g.Info.Description != "" || g.Info.Author != "" {
		desc := g.Info.Description
		if g.Info.Author != "" {
			if desc != "" {
				desc += "\n"
			}
			desc += "Author: " + g.Info.Author
		}
		root.CreateElement("description").SetText(desc)
	}

	for _, e := range g.Entries {
		ar := root.CreateElement("ar")
		for _, k := range e.Keys {
			ar.CreateElement("k").SetText(k)
		}
		if e.Definition != "" {
			ar.CreateText("\n" + e.Definition)
		}
	}

	doc.Indent(2)
	return doc
}

// Write writes the glossary to the writer's path. The document is written
// to a temporary file first and renamed into place.
func (w *XDXFWriter) Write(ctx context.Context, g *urth.Glossary) error {
	if err := g.Validate(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	doc := w.Build(g)

	if err := os.MkdirAll(filepath.Dir(w.path), 0755); err != nil {
		return err
	}
	tmp := w.path + ".tmp"
	if err := doc.WriteToFile(tmp); err != nil {
		os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, w.path)
}
