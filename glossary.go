package urth

import "context"

// Info holds glossary metadata.
type Info struct {
	Title       string `json:"title" yaml:"title"`
	Author      string `json:"author" yaml:"author"`
	Description string `json:"description" yaml:"description"`
}

// Glossary is the unit handed to a GlossaryWriter.
type Glossary struct {
	Info    Info
	Entries []*Entry
}

// Validate returns an error if the glossary cannot be written.
func (g *Glossary) Validate() error {
	if len(g.Entries) == 0 {
		return Errorf(EINVALID, "glossary has no entries")
	}
	for _, e := range g.Entries {
		if err := e.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// GlossaryWriter serializes a glossary to an output artifact.
// Implementations must not leave a partial artifact behind on failure.
type GlossaryWriter interface {
	Write(ctx context.Context, g *Glossary) error
}
