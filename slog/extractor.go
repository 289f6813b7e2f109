package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/jobparse"
)

// Ensure LoggingExtractor implements jobparse.Extractor.
var _ jobparse.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with logging.
type LoggingExtractor struct {
	next   jobparse.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next jobparse.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Name delegates to the wrapped extractor.
func (e *LoggingExtractor) Name() string {
	return e.next.Name()
}

// Extract logs the method and extracted size.
func (e *LoggingExtractor) Extract(html string) (result *jobparse.ExtractResult, err error) {
	defer func(begin time.Time) {
		bytes := 0
		if result != nil {
			bytes = len(result.Content)
		}
		e.logger.Log(context.Background(), level(err), "extract",
			"method", e.next.Name(),
			"bytes", bytes,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(html)
}
