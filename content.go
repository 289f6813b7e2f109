package jobparse

import "context"

// FailureMessage is returned in place of content when no extraction method succeeds.
const FailureMessage = "Failed to extract content from the webpage"

// WebContent is the cleaned main content of a web page, as produced by the
// first extraction method that succeeded.
type WebContent struct {
	URL     string `json:"url"`
	Method  string `json:"method"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// ContentParser fetches a page and extracts its cleaned main content.
type ContentParser interface {
	// ParseContent returns the content of the first extraction method that
	// produced non-empty text.
	// Returns EUNAVAILABLE if the page cannot be fetched and ENOTFOUND if
	// every extraction method failed.
	ParseContent(ctx context.Context, url string) (*WebContent, error)
}

// DomainLimiter rate-limits requests per domain.
type DomainLimiter interface {
	// Wait blocks until a request to the domain is allowed.
	Wait(ctx context.Context, domain string) error
}
