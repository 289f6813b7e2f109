package mock

import "github.com/fwojciec/jobparse"

var _ jobparse.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of jobparse.Extractor.
type Extractor struct {
	NameFn    func() string
	ExtractFn func(html string) (*jobparse.ExtractResult, error)
}

func (e *Extractor) Name() string {
	return e.NameFn()
}

func (e *Extractor) Extract(html string) (*jobparse.ExtractResult, error) {
	return e.ExtractFn(html)
}
