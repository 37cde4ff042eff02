package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/urth"
)

// LogResult logs the metrics of an extraction run and every warning it
// collected.
func LogResult(logger *slog.Logger, mode string, result *urth.Result, duration time.Duration) {
	logger.Info("extract",
		"mode", mode,
		"parsed", result.Parsed,
		"enriched", result.Enriched,
		"terminated", result.Terminated,
		"duration", duration,
	)
	for _, w := range result.Warnings {
		logger.Warn(w.Message, "code", w.Code)
	}
}
