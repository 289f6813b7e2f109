package jobparse

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	// The input should be clean HTML (e.g., readability article content).
	Convert(html string) (string, error)
}
