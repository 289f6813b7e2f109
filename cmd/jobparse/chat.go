package main

import (
	"fmt"

	"github.com/fwojciec/jobparse"
)

// Run executes the chat command.
func (c *ChatCmd) Run(deps *Dependencies) error {
	system := c.System
	if system == "" {
		system = DefaultSystemPrompt
	}

	reply, err := deps.Completer.Complete(deps.Ctx, &jobparse.CompletionRequest{
		Name:   "chat",
		System: system,
		User:   c.Prompt,
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", jobparse.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, reply)
	return nil
}
