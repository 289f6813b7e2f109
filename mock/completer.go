package mock

import (
	"context"

	"github.com/fwojciec/jobparse"
)

var _ jobparse.Completer = (*Completer)(nil)

// Completer is a mock implementation of jobparse.Completer.
type Completer struct {
	CompleteFn func(ctx context.Context, req *jobparse.CompletionRequest) (string, error)
}

func (c *Completer) Complete(ctx context.Context, req *jobparse.CompletionRequest) (string, error) {
	return c.CompleteFn(ctx, req)
}
