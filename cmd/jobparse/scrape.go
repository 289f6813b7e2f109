package main

import (
	"fmt"

	"github.com/fwojciec/jobparse"
)

// Run executes the scrape command.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	if c.Method != "" {
		res := deps.Parser.ParseWebpage(deps.Ctx, c.URL, c.Method)
		if res.Err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", jobparse.ErrorMessage(res.Err))
			return res.Err
		}
		fmt.Fprintln(deps.Stdout, res.Content)
		return nil
	}

	content, err := deps.Parser.ParseContent(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintln(deps.Stdout, jobparse.FailureMessage)
		fmt.Fprintf(deps.Stderr, "error: %s\n", jobparse.ErrorMessage(err))
		return err
	}

	deps.Logger.Debug("extracted", "url", c.URL, "method", content.Method, "bytes", len(content.Content))
	fmt.Fprintln(deps.Stdout, content.Content)
	return nil
}
