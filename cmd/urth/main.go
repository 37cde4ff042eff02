package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/urth"
	"github.com/fwojciec/urth/goldmark"
	"github.com/fwojciec/urth/goquery"
	"github.com/fwojciec/urth/htmltomarkdown"
	urthhttp "github.com/fwojciec/urth/http"
	"github.com/fwojciec/urth/pluralize"
	"github.com/fwojciec/urth/readability"
	"github.com/fwojciec/urth/rod"
	urthslog "github.com/fwojciec/urth/slog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("urth"),
		kong.Description("Extract dictionary entries from marked-up documents into glossary files"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'urth --help' to see available commands")
	}

	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	deps.Fetcher = urthslog.NewLoggingFetcher(urthhttp.NewFetcher(), deps.Logger)
	defer deps.Fetcher.Close()
	deps.NewBrowser = func() (urth.Fetcher, error) {
		f, err := rod.NewFetcher()
		if err != nil {
			return nil, err
		}
		return urthslog.NewLoggingFetcher(f, deps.Logger), nil
	}
	deps.Renderer = goldmark.NewRenderer()
	deps.Extractor = readability.NewExtractor()
	deps.Detector = goquery.NewDetector()
	deps.Pluralizer = urthslog.NewLoggingPluralizer(pluralize.NewPluralizer(), deps.Logger)
	deps.NewWriter = func(format, path string) (urth.GlossaryWriter, error) {
		w, err := newWriter(format, path, htmltomarkdown.NewConverter())
		if err != nil {
			return nil, err
		}
		return urthslog.NewLoggingGlossaryWriter(w, format, deps.Logger), nil
	}

	return kongCtx.Run(deps)
}
