package urth

// ExtractResult holds the main content of an HTML document.
type ExtractResult struct {
	// Title is the document title extracted from metadata.
	Title string

	// ContentHTML is the main content as clean HTML.
	// Boilerplate (nav, footer, sidebar) has been removed; inline
	// formatting that marks headwords is preserved.
	ContentHTML string
}

// Extractor extracts main content from HTML documents, removing boilerplate.
type Extractor interface {
	Extract(html string) (*ExtractResult, error)
}
