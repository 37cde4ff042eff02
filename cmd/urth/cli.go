package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/fwojciec/urth"
	"github.com/fwojciec/urth/etree"
	"github.com/fwojciec/urth/fs"
	"github.com/fwojciec/urth/goquery"
	"github.com/fwojciec/urth/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx        context.Context
	Stdout     io.Writer
	Stderr     io.Writer
	Logger     *slog.Logger
	Fetcher    urth.Fetcher
	Renderer   urth.MarkdownRenderer
	Extractor  urth.Extractor
	Detector   *goquery.Detector
	Pluralizer urth.Pluralizer

	// NewBrowser launches a fetcher that renders pages in a headless browser.
	NewBrowser func() (urth.Fetcher, error)

	// NewWriter returns the glossary writer for an output format and path.
	NewWriter func(format, path string) (urth.GlossaryWriter, error)
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log extraction details to stderr"`

	Convert ConvertCmd `cmd:"" help:"Extract entries from a document and write a glossary"`
	Version VersionCmd `cmd:"" help:"Print the version"`
}

// ConvertCmd is the "convert" subcommand.
// Settings left empty fall back to the --config profile, then to the input's
// front matter, then to defaults.
type ConvertCmd struct {
	Input  string `arg:"" help:"Input document path (.html or .md) or http(s) URL"`
	Output string `arg:"" optional:"" help:"Output path (default: derived from the glossary title)"`

	Config string `short:"c" type:"path" help:"YAML profile with extraction settings"`

	Sentinel     string `short:"s" help:"Last headword; extraction stops after its entry"`
	Mode         string `short:"m" help:"Extraction mode: tree or stream (default: tree)"`
	Delimiter    string `short:"d" help:"Headword delimiter for stream mode (default: @@@)"`
	Marker       string `help:"CSS selector of headword markers, or 'auto' (default: auto)"`
	Container    string `help:"CSS selector of the element whose children are scanned (default: body)"`
	Format       string `help:"Definition format: plain or html (default: plain)"`
	OutputFormat string `short:"f" name:"output-format" help:"Output format: tabfile, xdxf, sqlite or markdown (default: tabfile)"`
	Dedup        string `help:"Duplicate headwords: overwrite, keep-first or append (default: overwrite)"`
	Truncate     string `help:"Stream mode cuts definitions at this marker (default: three newlines)"`
	NoTruncate   bool   `help:"Keep stream-mode definitions whole"`
	Plural       bool   `short:"p" help:"Add plural forms as extra lookup keys"`
	Readability  bool   `short:"r" help:"Strip page boilerplate before extraction"`
	Render       bool   `help:"Render URL inputs in headless Chrome before extraction"`

	Title       string `help:"Glossary title"`
	Author      string `help:"Glossary author"`
	Description string `help:"Glossary description"`
}

// outputExtensions maps output formats to file extensions.
var outputExtensions = map[string]string{
	"tabfile":  ".txt",
	"xdxf":     ".xdxf",
	"sqlite":   ".db",
	"markdown": ".md",
}

// newWriter returns the glossary writer for format.
func newWriter(format, path string, converter urth.Converter) (urth.GlossaryWriter, error) {
	switch format {
	case "tabfile":
		return fs.NewTabfileWriter(path), nil
	case "xdxf":
		return etree.NewXDXFWriter(path), nil
	case "sqlite":
		return sqlite.NewGlossaryWriter(path), nil
	case "markdown":
		return fs.NewMarkdownWriter(path, converter), nil
	}
	return nil, urth.Errorf(urth.EINVALID, "unknown output format %q", format)
}
