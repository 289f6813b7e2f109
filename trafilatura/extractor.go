// Package trafilatura provides the statistical extraction strategy, backed by
// go-trafilatura.
package trafilatura

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/jobparse"
	"github.com/markusmobius/go-trafilatura"
)

// Ensure Extractor implements jobparse.Extractor at compile time.
var _ jobparse.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
type Extractor struct {
	opts trafilatura.Options
}

// NewExtractor creates a new Extractor. Comments and images are excluded;
// tables and links are kept.
func NewExtractor() *Extractor {
	return &Extractor{
		opts: trafilatura.Options{
			EnableFallback:  true,
			ExcludeComments: true,
			ExcludeTables:   false,
			IncludeLinks:    true,
			IncludeImages:   false,
		},
	}
}

// Name returns the extraction method name.
func (e *Extractor) Name() string {
	return jobparse.MethodTrafilatura
}

// Extract processes raw HTML and returns the main content as plain text.
func (e *Extractor) Extract(rawHTML string) (*jobparse.ExtractResult, error) {
	if rawHTML == "" {
		return nil, jobparse.Errorf(jobparse.EINVALID, "empty HTML input")
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), e.opts)
	if err != nil {
		return nil, err
	}

	content := result.ContentText
	if content == "" && result.ContentNode != nil {
		content = goquery.NewDocumentFromNode(result.ContentNode).Text()
	}

	// trafilatura can miss the title, so read the <title> element as well.
	title := result.Metadata.Title
	if title == "" {
		title = documentTitle(rawHTML)
	}

	return &jobparse.ExtractResult{
		Title:   title,
		Content: strings.TrimSpace(content),
	}, nil
}

func documentTitle(rawHTML string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(doc.Find("title").First().Text())
}
