package mock

import "github.com/fwojciec/jobparse"

var _ jobparse.Converter = (*Converter)(nil)

// Converter is a mock implementation of jobparse.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
