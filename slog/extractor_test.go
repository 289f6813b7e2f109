package slog_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/jobparse"
	"github.com/fwojciec/jobparse/mock"
	jobslog "github.com/fwojciec/jobparse/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("logs method and content size", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Extractor{
			NameFn: func() string { return jobparse.MethodReadability },
			ExtractFn: func(_ string) (*jobparse.ExtractResult, error) {
				return &jobparse.ExtractResult{Title: "Nurse", Content: "Provide care."}, nil
			},
		}

		ext := jobslog.NewLoggingExtractor(inner, logger)
		result, err := ext.Extract("<html></html>")

		require.NoError(t, err)
		assert.Equal(t, "Provide care.", result.Content)
		assert.Equal(t, jobparse.MethodReadability, ext.Name())
		output := buf.String()
		assert.Contains(t, output, "msg=extract")
		assert.Contains(t, output, "method=readability")
		assert.Contains(t, output, "bytes=13")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Extractor{
			NameFn: func() string { return jobparse.MethodTrafilatura },
			ExtractFn: func(_ string) (*jobparse.ExtractResult, error) {
				return nil, errors.New("no content node")
			},
		}

		_, err := jobslog.NewLoggingExtractor(inner, logger).Extract("<html></html>")

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "bytes=0")
		assert.Contains(t, output, "level=WARN")
		assert.Contains(t, output, "err=\"no content node\"")
	})

	t.Run("success is hidden at warn level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))
		inner := &mock.Extractor{
			NameFn: func() string { return jobparse.MethodGoquery },
			ExtractFn: func(_ string) (*jobparse.ExtractResult, error) {
				return &jobparse.ExtractResult{Content: "Field Nurse"}, nil
			},
		}

		_, err := jobslog.NewLoggingExtractor(inner, logger).Extract("<html></html>")

		require.NoError(t, err)
		assert.Empty(t, buf.String())
	})
}
