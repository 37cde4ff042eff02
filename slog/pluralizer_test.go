package slog_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/urth/mock"
	urthslog "github.com/fwojciec/urth/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingPluralizer_Plural(t *testing.T) {
	t.Parallel()

	t.Run("logs plural at debug level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		inner := &mock.Pluralizer{
			PluralFn: func(word string) (string, error) {
				return word + "s", nil
			},
		}

		plural, err := urthslog.NewLoggingPluralizer(inner, logger).Plural("cat")

		require.NoError(t, err)
		assert.Equal(t, "cats", plural)
		assert.Contains(t, buf.String(), "plural=cats")
	})

	t.Run("passes errors through", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		inner := &mock.Pluralizer{
			PluralFn: func(word string) (string, error) {
				return "", errors.New("no letters")
			},
		}

		_, err := urthslog.NewLoggingPluralizer(inner, logger).Plural("1984")

		require.Error(t, err)
		assert.Contains(t, buf.String(), "word=1984")
		assert.Contains(t, buf.String(), "err=\"no letters\"")
	})
}
