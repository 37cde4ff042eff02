package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/fwojciec/urth"
	"github.com/fwojciec/urth/goquery"
	urthhttp "github.com/fwojciec/urth/http"
	urthslog "github.com/fwojciec/urth/slog"
	"github.com/gosimple/slug"
)

// Defaults applied when neither flags nor the profile set a value.
const (
	defaultDelimiter    = "@@@"
	defaultMode         = "tree"
	defaultOutputFormat = "tabfile"
	autoMarker          = "auto"
)

// source is an input document normalized to HTML.
type source struct {
	html     string
	title    string
	info     urth.Info
	sentinel string
}

// Run executes the convert command.
func (c *ConvertCmd) Run(deps *Dependencies) error {
	if err := c.run(deps); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", urth.ErrorMessage(err))
		return err
	}
	return nil
}

func (c *ConvertCmd) run(deps *Dependencies) error {
	logger := deps.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	profile := &Profile{}
	if c.Config != "" {
		var err error
		if profile, err = LoadProfile(c.Config); err != nil {
			return err
		}
	}

	mode := first(c.Mode, profile.Mode, defaultMode)
	if mode != "tree" && mode != "stream" {
		return urth.Errorf(urth.EINVALID, "unknown mode %q: use tree or stream", mode)
	}
	outputFormat := first(c.OutputFormat, profile.OutputFormat, defaultOutputFormat)
	ext, ok := outputExtensions[outputFormat]
	if !ok {
		return urth.Errorf(urth.EINVALID, "unknown output format %q", outputFormat)
	}

	src, err := c.load(deps, profile.Readability)
	if err != nil {
		return err
	}

	cfg, err := c.config(profile, src)
	if err != nil {
		return err
	}

	container := first(c.Container, profile.Container, goquery.DefaultContainer)
	marker := first(c.Marker, profile.Marker, autoMarker)
	if marker == autoMarker {
		detector := deps.Detector
		if detector == nil {
			detector = goquery.NewDetector()
		}
		marker = detector.DetectMarker(src.html, container)
		logger.Debug("detected headword marker", "marker", marker)
	}
	normalizer := goquery.NewNormalizer(goquery.WithMarker(marker), goquery.WithContainer(container))

	var enricher *urth.Enricher
	if c.Plural || profile.Plural {
		if deps.Pluralizer == nil {
			return urth.Errorf(urth.EINTERNAL, "no pluralizer configured")
		}
		enricher = urth.NewEnricher(deps.Pluralizer)
	}
	pipeline := urth.NewPipeline(cfg, enricher)

	begin := time.Now()
	var result *urth.Result
	switch mode {
	case "stream":
		text, err := normalizer.DelimitedText(src.html, cfg.Delimiter)
		if err != nil {
			return err
		}
		if result, err = pipeline.ExtractStream(text); err != nil {
			return err
		}
	default:
		elements, err := normalizer.Elements(src.html)
		if err != nil {
			return err
		}
		if result, err = pipeline.ExtractTree(elements); err != nil {
			return err
		}
	}
	urthslog.LogResult(logger, mode, result, time.Since(begin))

	fmt.Fprintf(deps.Stdout, "Parsed %d entries\n", result.Parsed)
	fmt.Fprintf(deps.Stdout, "Enriched %d entries\n", result.Enriched)

	if len(result.Entries) == 0 {
		fmt.Fprintln(deps.Stderr, "warning: no entries extracted, nothing written")
		return nil
	}

	info := urth.Info{
		Title:       first(c.Title, profile.Title, src.info.Title, src.title, normalizer.Title(src.html), baseName(c.Input)),
		Author:      first(c.Author, profile.Author, src.info.Author),
		Description: first(c.Description, profile.Description, src.info.Description),
	}

	output := c.Output
	if output == "" {
		name := slug.Make(info.Title)
		if name == "" {
			name = "glossary"
		}
		output = name + ext
	}

	w, err := deps.NewWriter(outputFormat, output)
	if err != nil {
		return err
	}
	werr := w.Write(deps.Ctx, &urth.Glossary{Info: info, Entries: result.Entries})

	// Writers are atomic, so a missing artifact is the authoritative failure signal.
	if _, statErr := os.Stat(output); werr != nil || statErr != nil {
		reason := "output file was not created"
		if werr != nil {
			reason = urth.ErrorMessage(werr)
		}
		fmt.Fprintf(deps.Stderr, "warning: failed to write %s: %s\n", output, reason)
		return nil
	}

	fmt.Fprintf(deps.Stdout, "Wrote %s\n", output)
	return nil
}

// load reads the input document and normalizes it to HTML.
func (c *ConvertCmd) load(deps *Dependencies, profileReadability bool) (*source, error) {
	raw, err := c.read(deps)
	if err != nil {
		return nil, err
	}

	src := &source{html: raw}
	if isMarkdown(c.Input) {
		doc, err := deps.Renderer.Render([]byte(raw))
		if err != nil {
			return nil, err
		}
		src.html = doc.HTML
		src.info = doc.Info
		src.sentinel = doc.Sentinel
	}

	if c.Readability || profileReadability {
		res, err := deps.Extractor.Extract(src.html)
		if err != nil {
			return nil, err
		}
		src.html = res.ContentHTML
		src.title = res.Title
	}

	return src, nil
}

func (c *ConvertCmd) read(deps *Dependencies) (string, error) {
	if urthhttp.IsURL(c.Input) && c.Render {
		if deps.NewBrowser == nil {
			return "", urth.Errorf(urth.EINTERNAL, "no browser configured")
		}
		browser, err := deps.NewBrowser()
		if err != nil {
			return "", err
		}
		defer browser.Close()
		return browser.Fetch(deps.Ctx, c.Input)
	}
	if urthhttp.IsURL(c.Input) {
		if deps.Fetcher == nil {
			return "", urth.Errorf(urth.EINTERNAL, "no fetcher configured")
		}
		return deps.Fetcher.Fetch(deps.Ctx, c.Input)
	}

	fi, err := os.Stat(c.Input)
	if errors.Is(err, fs.ErrNotExist) {
		return "", urth.Errorf(urth.ENOTFOUND, "input file not found: %s", c.Input)
	} else if err != nil {
		return "", err
	}
	if !fi.Mode().IsRegular() {
		return "", urth.Errorf(urth.EINVALID, "input is not a regular file: %s", c.Input)
	}

	data, err := os.ReadFile(c.Input)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// config merges flags over the profile over front matter over defaults.
func (c *ConvertCmd) config(profile *Profile, src *source) (urth.Config, error) {
	cfg := urth.DefaultConfig()
	if profile.Format != "" {
		cfg.Format = profile.Format
	}
	if profile.Truncate != "" {
		cfg.Truncate = profile.Truncate
	}
	if profile.Dedup != "" {
		cfg.Dedup = profile.Dedup
	}
	cfg.NoTruncate = profile.NoTruncate || c.NoTruncate
	cfg.LineBreak = profile.LineBreak

	cfg.Sentinel = first(c.Sentinel, profile.Sentinel, src.sentinel)
	cfg.Delimiter = first(c.Delimiter, profile.Delimiter, defaultDelimiter)

	if c.Format != "" {
		f, err := urth.ParseDefinitionFormat(c.Format)
		if err != nil {
			return urth.Config{}, err
		}
		cfg.Format = f
	}
	if c.Dedup != "" {
		cfg.Dedup = urth.DedupPolicy(c.Dedup)
	}
	if c.Truncate != "" {
		cfg.Truncate = c.Truncate
	}

	if err := cfg.Validate(); err != nil {
		return urth.Config{}, err
	}
	return cfg, nil
}

// first returns the first non-empty value.
func first(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func inputPath(input string) string {
	if urthhttp.IsURL(input) {
		if u, err := url.Parse(input); err == nil {
			return u.Path
		}
	}
	return input
}

func isMarkdown(input string) bool {
	switch strings.ToLower(path.Ext(inputPath(input))) {
	case ".md", ".markdown":
		return true
	}
	return false
}

func baseName(input string) string {
	p := inputPath(input)
	if urthhttp.IsURL(input) {
		p = path.Base(p)
	} else {
		p = filepath.Base(p)
	}
	return strings.TrimSuffix(p, path.Ext(p))
}
