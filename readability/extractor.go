// Package readability provides the readability-style extraction strategy,
// backed by go-readability.
package readability

import (
	"strings"

	"github.com/fwojciec/jobparse"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements jobparse.Extractor at compile time.
var _ jobparse.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct {
	converter jobparse.Converter
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithConverter renders the article HTML through conv (typically Markdown)
// instead of using readability's plain text.
func WithConverter(conv jobparse.Converter) Option {
	return func(e *Extractor) {
		e.converter = conv
	}
}

// NewExtractor creates a new Extractor.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Name returns the extraction method name.
func (e *Extractor) Name() string {
	return jobparse.MethodReadability
}

// Extract processes raw HTML and returns the article title and content.
func (e *Extractor) Extract(rawHTML string) (*jobparse.ExtractResult, error) {
	if rawHTML == "" {
		return nil, jobparse.Errorf(jobparse.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	content := article.TextContent
	if e.converter != nil && strings.TrimSpace(article.Content) != "" {
		content, err = e.converter.Convert(article.Content)
		if err != nil {
			return nil, err
		}
	}

	return &jobparse.ExtractResult{
		Title:   article.Title,
		Content: strings.TrimSpace(content),
	}, nil
}
