package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/jobparse"
)

// Run executes the event command.
func (c *EventCmd) Run(deps *Dependencies) error {
	event, err := deps.Events.ParseEvent(deps.Ctx, c.Text)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", jobparse.ErrorMessage(err))
		return err
	}

	if c.JSON {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(event)
	}

	fmt.Fprintln(deps.Stdout, jobparse.FormatEvent(event))
	return nil
}
