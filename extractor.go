package jobparse

// Extraction method names, in the order the scrape package tries them by default.
const (
	MethodTrafilatura = "trafilatura"
	MethodReadability = "readability"
	MethodGoquery     = "goquery"
)

// ExtractResult holds the extracted content from an HTML page.
type ExtractResult struct {
	// Title is the page title.
	Title string

	// Content is the main textual content of the page.
	// Boilerplate (nav, footer, sidebar, ads) has been removed.
	Content string
}

// Extractor extracts main content from HTML pages, removing boilerplate.
// Implementations are interchangeable strategies behind one capability.
type Extractor interface {
	// Name identifies the extraction method, e.g. "trafilatura".
	Name() string

	// Extract processes raw HTML and returns the page title and main content.
	Extract(html string) (*ExtractResult, error)
}
