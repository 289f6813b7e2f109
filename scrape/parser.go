// Package scrape fetches a web page once and runs it through an ordered chain
// of extraction strategies until one yields non-empty cleaned content.
package scrape

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/fwojciec/jobparse"
)

// DefaultExtractorOrder is the preferred order of extraction methods.
var DefaultExtractorOrder = []string{
	jobparse.MethodTrafilatura,
	jobparse.MethodReadability,
	jobparse.MethodGoquery,
}

// methodAliases maps alternative method names to an extractor's Name.
var methodAliases = map[string]string{
	"beautifulsoup": jobparse.MethodGoquery,
}

// OrderExtractors returns exts arranged by order, matching names
// case-insensitively. Extractors not named in order are dropped.
func OrderExtractors(exts []jobparse.Extractor, order []string) []jobparse.Extractor {
	ordered := make([]jobparse.Extractor, 0, len(order))
	for _, name := range order {
		for _, ext := range exts {
			if strings.EqualFold(ext.Name(), name) {
				ordered = append(ordered, ext)
				break
			}
		}
	}
	return ordered
}

// Ensure Parser implements jobparse.ContentParser at compile time.
var _ jobparse.ContentParser = (*Parser)(nil)

// Result is the outcome of a single extraction method.
// When Err is set, Content is empty and must be ignored.
type Result struct {
	Method  string
	Title   string
	Content string
	Err     error
}

// Parser orchestrates fetching, extraction, and cleaning.
type Parser struct {
	// Fetcher retrieves page HTML.
	Fetcher jobparse.Fetcher

	// Extractors are tried in order by ParseContent.
	Extractors []jobparse.Extractor

	// RateLimiter, if set, is waited on per host before each fetch.
	RateLimiter jobparse.DomainLimiter
}

// ParseWebpage fetches the page and runs only the named extraction method.
// Failures are reported in Result.Err, never returned.
func (p *Parser) ParseWebpage(ctx context.Context, rawURL, method string) *Result {
	ext := p.extractor(method)
	if ext == nil {
		return &Result{
			Method: method,
			Err:    jobparse.Errorf(jobparse.EINVALID, "invalid extraction method %q", method),
		}
	}

	html, err := p.fetch(ctx, rawURL)
	if err != nil {
		return &Result{Method: ext.Name(), Err: err}
	}

	return p.extract(ext, html)
}

// ParseContent fetches the page once and returns the content of the first
// extraction method that succeeds with non-empty cleaned content.
// Returns EUNAVAILABLE when the fetch fails and ENOTFOUND when every method fails.
func (p *Parser) ParseContent(ctx context.Context, rawURL string) (*jobparse.WebContent, error) {
	html, err := p.fetch(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	var errs []error
	var reasons []string
	for _, ext := range p.Extractors {
		res := p.extract(ext, html)
		if res.Err == nil && res.Content == "" {
			res.Err = jobparse.Errorf(jobparse.ENOTFOUND, "empty content")
		}
		if res.Err != nil {
			errs = append(errs, res.Err)
			reasons = append(reasons, fmt.Sprintf("%s: %s", res.Method, jobparse.ErrorMessage(res.Err)))
			continue
		}

		return &jobparse.WebContent{
			URL:     rawURL,
			Method:  res.Method,
			Title:   res.Title,
			Content: res.Content,
		}, nil
	}

	msg := "no extraction method produced content"
	if len(reasons) > 0 {
		msg += " (" + strings.Join(reasons, "; ") + ")"
	}
	return nil, &jobparse.Error{Code: jobparse.ENOTFOUND, Message: msg, Err: errors.Join(errs...)}
}

// GetVacancyAnnouncement returns the cleaned announcement text for the URL,
// or jobparse.FailureMessage when it cannot be fetched or extracted.
func (p *Parser) GetVacancyAnnouncement(ctx context.Context, rawURL string) string {
	content, err := p.ParseContent(ctx, rawURL)
	if err != nil {
		return jobparse.FailureMessage
	}
	return content.Content
}

func (p *Parser) extractor(method string) jobparse.Extractor {
	if name, ok := methodAliases[strings.ToLower(method)]; ok {
		method = name
	}
	for _, ext := range p.Extractors {
		if strings.EqualFold(ext.Name(), method) {
			return ext
		}
	}
	return nil
}

func (p *Parser) fetch(ctx context.Context, rawURL string) (string, error) {
	if p.RateLimiter != nil {
		if u, err := url.Parse(rawURL); err == nil && u.Host != "" {
			if err := p.RateLimiter.Wait(ctx, u.Host); err != nil {
				return "", jobparse.WrapError(jobparse.EUNAVAILABLE, err, "failed to fetch webpage")
			}
		}
	}

	html, err := p.Fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return "", jobparse.WrapError(jobparse.EUNAVAILABLE, err, "failed to fetch webpage")
	}
	if strings.TrimSpace(html) == "" {
		return "", jobparse.Errorf(jobparse.EUNAVAILABLE, "failed to fetch webpage: empty response")
	}
	return html, nil
}

// extract runs one method and cleans its content. A panicking extractor is
// reported as a failed extraction.
func (p *Parser) extract(ext jobparse.Extractor, html string) (res *Result) {
	res = &Result{Method: ext.Name()}

	defer func() {
		if r := recover(); r != nil {
			res.Title, res.Content = "", ""
			res.Err = jobparse.Errorf(jobparse.EINTERNAL, "extraction failed: %v", r)
		}
	}()

	out, err := ext.Extract(html)
	if err != nil {
		res.Err = jobparse.WrapError(jobparse.EINTERNAL, err, "extraction failed")
		return res
	}
	if out == nil {
		return res
	}

	res.Title = strings.TrimSpace(out.Title)
	res.Content = jobparse.CleanText(out.Content)
	return res
}
