package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/urth"
)

// Ensure LoggingGlossaryWriter implements urth.GlossaryWriter.
var _ urth.GlossaryWriter = (*LoggingGlossaryWriter)(nil)

// LoggingGlossaryWriter wraps a GlossaryWriter with logging.
type LoggingGlossaryWriter struct {
	next   urth.GlossaryWriter
	format string
	logger *slog.Logger
}

// NewLoggingGlossaryWriter creates a new LoggingGlossaryWriter.
// format names the output format in log records.
func NewLoggingGlossaryWriter(next urth.GlossaryWriter, format string, logger *slog.Logger) *LoggingGlossaryWriter {
	return &LoggingGlossaryWriter{next: next, format: format, logger: logger}
}

// Write delegates to the wrapped writer and logs the operation.
func (w *LoggingGlossaryWriter) Write(ctx context.Context, g *urth.Glossary) (err error) {
	defer func(begin time.Time) {
		w.logger.Info("write glossary",
			"format", w.format,
			"entries", len(g.Entries),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.Write(ctx, g)
}
