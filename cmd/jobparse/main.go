package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/jobparse"
	"github.com/fwojciec/jobparse/agent"
	"github.com/fwojciec/jobparse/fs"
	"github.com/fwojciec/jobparse/gemini"
	"github.com/fwojciec/jobparse/goquery"
	"github.com/fwojciec/jobparse/htmltomarkdown"
	jobhttp "github.com/fwojciec/jobparse/http"
	"github.com/fwojciec/jobparse/openai"
	"github.com/fwojciec/jobparse/readability"
	"github.com/fwojciec/jobparse/rod"
	"github.com/fwojciec/jobparse/scrape"
	jobslog "github.com/fwojciec/jobparse/slog"
	"github.com/fwojciec/jobparse/trafilatura"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Getenv looks up environment variables such as API keys.
	Getenv func(string) string

	// Services for end-to-end testing. When nil, real implementations
	// are constructed from flags and environment.
	Fetcher   jobparse.Fetcher
	Completer jobparse.Completer
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{Getenv: os.Getenv}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("jobparse"),
		kong.Description("Extract job postings from web pages into structured vacancies"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'jobparse --help' to see available commands")
	}

	if len(args) == 1 && (args[0] == "help" || args[0] == "--help" || args[0] == "-h") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	cmd := kongCtx.Selected().Name

	if cmd == "scrape" || cmd == "parse" {
		fetcher, err := m.fetcher(cli, stderr)
		if err != nil {
			return err
		}
		defer fetcher.Close()

		deps.Parser = newParser(jobslog.NewLoggingFetcher(fetcher, deps.Logger), cli.Rate, deps.Logger)
	}

	if cmd == "parse" || cmd == "event" || cmd == "chat" {
		completer, err := m.completer(ctx, cli, stderr)
		if err != nil {
			return err
		}
		completer = jobslog.NewLoggingCompleter(completer, deps.Logger)

		deps.Completer = completer
		deps.Vacancies = agent.NewVacancyParser(completer)
		deps.Events = agent.NewEventParser(completer)
	}

	if cmd == "parse" && cli.Parse.Out != "" {
		deps.Writer = fs.NewWriter(cli.Parse.Out)
	}

	return kongCtx.Run(deps)
}

func (m *Main) fetcher(cli *CLI, stderr io.Writer) (jobparse.Fetcher, error) {
	if m.Fetcher != nil {
		return m.Fetcher, nil
	}

	timeout := cli.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	if !cli.Browser {
		return jobhttp.NewFetcher(jobhttp.WithTimeout(timeout)), nil
	}

	fetcher, err := rod.NewFetcher(rod.WithFetchTimeout(timeout))
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
		return nil, fmt.Errorf("failed to start browser: %w", err)
	}
	return fetcher, nil
}

func (m *Main) completer(ctx context.Context, cli *CLI, stderr io.Writer) (jobparse.Completer, error) {
	if m.Completer != nil {
		return m.Completer, nil
	}

	getenv := m.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}

	switch cli.Provider {
	case ProviderGemini:
		apiKey := getenv("GEMINI_API_KEY")
		if apiKey == "" {
			fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
			return nil, fmt.Errorf("GEMINI_API_KEY not set")
		}

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
		}
		return gemini.NewCompleter(client.Models, cli.Model), nil

	default:
		apiKey := getenv("OPENAI_API_KEY")
		if apiKey == "" {
			fmt.Fprintln(stderr, "OPENAI_API_KEY environment variable not set. Create a key at https://platform.openai.com/api-keys")
			return nil, fmt.Errorf("OPENAI_API_KEY not set")
		}
		return openai.NewCompleter(openai.NewClient(apiKey, getenv("OPENAI_BASE_URL")), cli.Model), nil
	}
}

// newParser builds the extraction chain in scrape.DefaultExtractorOrder.
func newParser(fetcher jobparse.Fetcher, rps float64, logger *slog.Logger) *scrape.Parser {
	extractors := scrape.OrderExtractors([]jobparse.Extractor{
		goquery.NewExtractor(),
		readability.NewExtractor(readability.WithConverter(htmltomarkdown.NewConverter())),
		trafilatura.NewExtractor(),
	}, scrape.DefaultExtractorOrder)
	for i, ext := range extractors {
		extractors[i] = jobslog.NewLoggingExtractor(ext, logger)
	}

	p := &scrape.Parser{
		Fetcher:    fetcher,
		Extractors: extractors,
	}
	if rps > 0 {
		p.RateLimiter = scrape.NewDomainLimiter(rps)
	}
	return p
}
