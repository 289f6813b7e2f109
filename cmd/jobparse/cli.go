package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/jobparse"
	"github.com/fwojciec/jobparse/scrape"
)

// Supported completion providers.
const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

// DefaultSystemPrompt is the system message for the chat command.
const DefaultSystemPrompt = "You are a helpful assistant."

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Parser    *scrape.Parser
	Vacancies jobparse.VacancyParser
	Events    jobparse.EventParser
	Completer jobparse.Completer
	Writer    jobparse.VacancyWriter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Provider string        `enum:"openai,gemini" default:"openai" env:"JOBPARSE_PROVIDER" help:"Completion provider (openai, gemini)"`
	Model    string        `env:"JOBPARSE_MODEL" help:"Model name (default: gpt-4o for openai, gemini-2.5-flash for gemini)"`
	Timeout  time.Duration `short:"t" default:"10s" help:"Fetch timeout per page"`
	Browser  bool          `short:"b" help:"Render pages in headless Chrome"`
	Rate     float64       `default:"1" help:"Maximum fetches per second per domain (0 disables)"`
	Verbose  bool          `short:"v" help:"Log fetches, extractions, and completions to stderr"`

	Scrape ScrapeCmd `cmd:"" help:"Print the cleaned text of a job posting"`
	Parse  ParseCmd  `cmd:"" help:"Parse job postings into structured vacancies"`
	Event  EventCmd  `cmd:"" help:"Extract a calendar event from text"`
	Chat   ChatCmd   `cmd:"" help:"Send a prompt to the model"`
}

// ScrapeCmd is the "scrape" subcommand.
type ScrapeCmd struct {
	URL    string `arg:"" help:"Job posting URL"`
	Method string `short:"m" help:"Run only this extraction method (trafilatura, readability, goquery; beautifulsoup is an alias for goquery)"`
}

// ParseCmd is the "parse" subcommand.
type ParseCmd struct {
	URLs        []string `arg:"" name:"url" help:"Job posting URLs"`
	JSON        bool     `short:"j" name:"json" help:"Print vacancies as JSON"`
	Concurrency int      `short:"c" default:"1" help:"Number of postings processed at once"`
	Out         string   `short:"o" type:"path" help:"Also write each vacancy as markdown under this directory"`
}

// EventCmd is the "event" subcommand.
type EventCmd struct {
	Text string `arg:"" help:"Text describing the event"`
	JSON bool   `short:"j" name:"json" help:"Print the event as JSON"`
}

// ChatCmd is the "chat" subcommand.
type ChatCmd struct {
	Prompt string `arg:"" help:"Prompt to send"`
	System string `short:"s" help:"System prompt (defaults to a generic assistant prompt)"`
}
