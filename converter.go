package urth

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms an HTML definition into Markdown.
	Convert(html string) (string, error)
}
