package mock

import (
	"context"

	"github.com/fwojciec/urth"
)

var _ urth.GlossaryWriter = (*GlossaryWriter)(nil)

// GlossaryWriter is a mock implementation of urth.GlossaryWriter.
type GlossaryWriter struct {
	WriteFn func(ctx context.Context, g *urth.Glossary) error
}

func (w *GlossaryWriter) Write(ctx context.Context, g *urth.Glossary) error {
	return w.WriteFn(ctx, g)
}
