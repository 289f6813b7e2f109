package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fwojciec/jobparse"
	"github.com/fwojciec/jobparse/pipeline"
)

// Run executes the parse command.
func (c *ParseCmd) Run(deps *Dependencies) error {
	p := &pipeline.Pipeline{
		Content:     deps.Parser,
		Vacancies:   deps.Vacancies,
		Concurrency: c.Concurrency,
	}

	outcomes := p.Run(deps.Ctx, c.URLs, func(e pipeline.ProgressEvent) {
		switch e.Type {
		case pipeline.ProgressCompleted:
			deps.Logger.Debug("parsed", "url", e.URL, "completed", e.Completed, "total", e.Total)
		case pipeline.ProgressFailed:
			deps.Logger.Debug("failed", "url", e.URL, "completed", e.Completed, "total", e.Total, "err", e.Error)
		}
	})

	var writeErr error
	vacancies := make([]*jobparse.Vacancy, 0, len(outcomes))
	for _, o := range outcomes {
		if o.Err != nil {
			reason := strings.TrimPrefix(jobparse.ErrorMessage(o.Err), "failed to parse vacancy: ")
			fmt.Fprintf(deps.Stderr, "Failed to parse vacancy: %s: %s\n", o.URL, reason)
			continue
		}
		vacancies = append(vacancies, o.Vacancy)

		if deps.Writer != nil {
			path, err := deps.Writer.WriteVacancy(deps.Ctx, o.Vacancy)
			if err != nil {
				fmt.Fprintf(deps.Stderr, "error: writing %s: %s\n", o.URL, jobparse.ErrorMessage(err))
				writeErr = err
				continue
			}
			deps.Logger.Debug("saved", "url", o.URL, "path", path)
		}
	}

	if c.JSON {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(vacancies); err != nil {
			return err
		}
	} else if len(vacancies) > 0 {
		fmt.Fprintln(deps.Stdout, jobparse.FormatVacancies(vacancies))
	}

	if failed := pipeline.Failed(outcomes); failed > 0 {
		return jobparse.Errorf(jobparse.EPARSE, "%d of %d vacancies failed to parse", failed, len(outcomes))
	}
	return writeErr
}
