package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/urth"
	"github.com/fwojciec/urth/mock"
	urthslog "github.com/fwojciec/urth/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingGlossaryWriter_Write(t *testing.T) {
	t.Parallel()

	t.Run("logs format and entry count", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		var written *urth.Glossary
		inner := &mock.GlossaryWriter{
			WriteFn: func(ctx context.Context, g *urth.Glossary) error {
				written = g
				return nil
			},
		}
		g := &urth.Glossary{Entries: []*urth.Entry{{Keys: []string{"a"}}, {Keys: []string{"b"}}}}

		err := urthslog.NewLoggingGlossaryWriter(inner, "tabfile", logger).Write(context.Background(), g)

		require.NoError(t, err)
		assert.Same(t, g, written)
		output := buf.String()
		assert.Contains(t, output, "write glossary")
		assert.Contains(t, output, "format=tabfile")
		assert.Contains(t, output, "entries=2")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.GlossaryWriter{
			WriteFn: func(ctx context.Context, g *urth.Glossary) error {
				return errors.New("disk full")
			},
		}

		err := urthslog.NewLoggingGlossaryWriter(inner, "xdxf", logger).Write(context.Background(), &urth.Glossary{})

		require.Error(t, err)
		assert.Contains(t, buf.String(), "err=\"disk full\"")
	})
}
