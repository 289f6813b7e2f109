// Package pipeline parses batches of vacancy URLs, extracting page content
// and turning it into structured vacancies with bounded concurrency.
package pipeline

import (
	"context"

	"github.com/fwojciec/jobparse"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of URLs processed at once when
// Concurrency is not set.
const DefaultConcurrency = 1

// Pipeline runs content extraction and vacancy parsing for many URLs.
type Pipeline struct {
	Content     jobparse.ContentParser
	Vacancies   jobparse.VacancyParser
	Concurrency int
}

// Outcome is the result for one URL. Exactly one of Vacancy and Err is set.
type Outcome struct {
	URL     string
	Vacancy *jobparse.Vacancy
	Err     error
}

// ProgressEvent reports progress during a pipeline run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting pipeline progress.
type ProgressFunc func(event ProgressEvent)

type indexedOutcome struct {
	position int
	outcome  *Outcome
}

// Run processes every URL and returns one Outcome per URL in input order.
// A failing URL does not stop the others. Progress events, if a callback is
// provided, are delivered from the calling goroutine.
func (p *Pipeline) Run(ctx context.Context, urls []string, progress ProgressFunc) []*Outcome {
	concurrency := p.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	total := len(urls)
	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	resultCh := make(chan indexedOutcome, total)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, url := range urls {
			g.Go(func() error {
				resultCh <- indexedOutcome{position: i, outcome: p.process(gctx, url)}
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	outcomes := make([]*Outcome, total)
	completed := 0
	for r := range resultCh {
		completed++
		outcomes[r.position] = r.outcome

		if progress == nil {
			continue
		}
		event := ProgressEvent{
			Type:      ProgressCompleted,
			Completed: completed,
			Total:     total,
			URL:       r.outcome.URL,
		}
		if r.outcome.Err != nil {
			event.Type = ProgressFailed
			event.Error = r.outcome.Err
		}
		progress(event)
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}

	return outcomes
}

func (p *Pipeline) process(ctx context.Context, url string) *Outcome {
	out := &Outcome{URL: url}

	if err := ctx.Err(); err != nil {
		out.Err = err
		return out
	}

	content, err := p.Content.ParseContent(ctx, url)
	if err != nil {
		out.Err = err
		return out
	}

	v, err := p.Vacancies.ParseVacancy(ctx, url, content.Content)
	if err != nil {
		out.Err = err
		return out
	}

	out.Vacancy = v
	return out
}

// Failed counts the outcomes that carry an error.
func Failed(outcomes []*Outcome) int {
	n := 0
	for _, o := range outcomes {
		if o.Err != nil {
			n++
		}
	}
	return n
}
