package mock

import (
	"context"

	"github.com/fwojciec/jobparse"
)

var _ jobparse.ContentParser = (*ContentParser)(nil)

// ContentParser is a mock implementation of jobparse.ContentParser.
type ContentParser struct {
	ParseContentFn func(ctx context.Context, url string) (*jobparse.WebContent, error)
}

func (p *ContentParser) ParseContent(ctx context.Context, url string) (*jobparse.WebContent, error) {
	return p.ParseContentFn(ctx, url)
}

var _ jobparse.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of jobparse.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return l.WaitFn(ctx, domain)
}
