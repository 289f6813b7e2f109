package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/jobparse"
)

// Ensure LoggingCompleter implements jobparse.Completer.
var _ jobparse.Completer = (*LoggingCompleter)(nil)

// LoggingCompleter wraps a Completer with logging. Message contents are
// not logged, only their sizes.
type LoggingCompleter struct {
	next   jobparse.Completer
	logger *slog.Logger
}

// NewLoggingCompleter creates a new LoggingCompleter.
func NewLoggingCompleter(next jobparse.Completer, logger *slog.Logger) *LoggingCompleter {
	return &LoggingCompleter{next: next, logger: logger}
}

// Complete logs the request shape and reply size.
func (c *LoggingCompleter) Complete(ctx context.Context, req *jobparse.CompletionRequest) (reply string, err error) {
	defer func(begin time.Time) {
		c.logger.Log(ctx, level(err), "complete",
			"name", req.Name,
			"structured", req.Schema != nil,
			"input_bytes", len(req.System)+len(req.User),
			"output_bytes", len(reply),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.Complete(ctx, req)
}
