package urth

// Normalizer turns a markup document into extraction input.
type Normalizer interface {
	// Elements returns the sibling elements scanned in tree-walk mode.
	Elements(html string) ([]Element, error)

	// DelimitedText flattens the document to plain text with every headword
	// marker wrapped in delimiter. Returns ECONFLICT if the delimiter already
	// occurs in the document text.
	DelimitedText(html string, delimiter string) (string, error)

	// Title returns the document title, or "" if it has none.
	Title(html string) string
}

// MarkdownDocument is a Markdown source rendered to HTML.
type MarkdownDocument struct {
	HTML string

	// Info and Sentinel come from the document's front matter, if any.
	Info     Info
	Sentinel string
}

// MarkdownRenderer renders Markdown sources to HTML.
type MarkdownRenderer interface {
	Render(markdown []byte) (*MarkdownDocument, error)
}
