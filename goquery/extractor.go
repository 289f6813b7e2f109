// Package goquery provides the tag-stripping extraction strategy, backed by
// goquery CSS selectors.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/jobparse"
	"golang.org/x/net/html"
)

// Ensure Extractor implements jobparse.Extractor at compile time.
var _ jobparse.Extractor = (*Extractor)(nil)

// StrippedElements are removed from the document before text is collected.
var StrippedElements = []string{"script", "style", "iframe", "nav", "footer", "header"}

// ContentSelectors are tried in order; the first match provides the content.
var ContentSelectors = []string{
	"article",
	"main",
	".content",
	"#content",
	".post",
	".job-description",
	".vacancy-description",
}

// Extractor strips non-content elements and reads text from the first
// matching content selector, falling back to the whole body when nothing
// matches or the match holds no text.
type Extractor struct {
	selectors []string
}

// NewExtractor creates a new Extractor using ContentSelectors.
func NewExtractor() *Extractor {
	return &Extractor{selectors: ContentSelectors}
}

// Name returns the extraction method name.
func (e *Extractor) Name() string {
	return jobparse.MethodGoquery
}

// Extract processes raw HTML and returns the title and main text.
// Text nodes are trimmed, blank ones dropped, and the rest joined by newlines.
func (e *Extractor) Extract(rawHTML string) (*jobparse.ExtractResult, error) {
	if rawHTML == "" {
		return nil, jobparse.Errorf(jobparse.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, jobparse.Errorf(jobparse.EINVALID, "failed to parse HTML: %v", err)
	}

	doc.Find(strings.Join(StrippedElements, ", ")).Remove()

	title := strings.TrimSpace(doc.Find("title").First().Text())

	var content string
	for _, selector := range e.selectors {
		sel := doc.Find(selector).First()
		if sel.Length() == 0 {
			continue
		}
		content = textOf(sel)
		break
	}

	if content == "" {
		content = textOf(doc.Find("body"))
	}

	return &jobparse.ExtractResult{
		Title:   title,
		Content: content,
	}, nil
}

// textOf collects the trimmed, non-empty text nodes under sel, one per line.
func textOf(sel *goquery.Selection) string {
	var parts []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			if s := strings.TrimSpace(n.Data); s != "" {
				parts = append(parts, s)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range sel.Nodes {
		walk(n)
	}
	return strings.Join(parts, "\n")
}
