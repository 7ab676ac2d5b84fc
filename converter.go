package dochub

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown so that HTML documents
	// can be split into sections like any other document.
	Convert(html string) (string, error)
}
