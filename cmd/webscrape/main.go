package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/alecthomas/kong"
	webscraper "github.com/baluchebolu1975/webscraper-ai"
	"github.com/baluchebolu1975/webscraper-ai/excelize"
	"github.com/baluchebolu1975/webscraper-ai/fs"
	"github.com/baluchebolu1975/webscraper-ai/gemini"
	"github.com/baluchebolu1975/webscraper-ai/goquery"
	wshttp "github.com/baluchebolu1975/webscraper-ai/http"
	"github.com/baluchebolu1975/webscraper-ai/htmltomarkdown"
	"github.com/baluchebolu1975/webscraper-ai/readability"
	"github.com/baluchebolu1975/webscraper-ai/rod"
	"github.com/baluchebolu1975/webscraper-ai/scrape"
	wsslog "github.com/baluchebolu1975/webscraper-ai/slog"
	"github.com/baluchebolu1975/webscraper-ai/sqlite"
	"github.com/baluchebolu1975/webscraper-ai/trafilatura"
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
	// History database path. Set before calling Run().
	DBPath string

	// SQLite database, opened only when history access is needed.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
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
		kong.Name("webscrape"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'webscrape --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	logger := slog.New(slog.DiscardHandler)
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, nil))
	}

	deps.Sitemaps = wshttp.NewSitemapService(nil)
	deps.Writers = map[webscraper.Format]webscraper.ResultWriter{
		webscraper.FormatJSON:     fs.NewJSONWriter(),
		webscraper.FormatCSV:      fs.NewCSVWriter(),
		webscraper.FormatXLSX:     excelize.NewWriter(),
		webscraper.FormatMarkdown: fs.NewMarkdownWriter(),
	}

	// Open the history database only for commands that touch it
	if cmd == "history" || (cmd == "scrape" && cli.Scrape.SaveHistory) {
		m.DB = sqlite.NewDB(m.DBPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set WEBSCRAPE_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
		}
		defer m.Close()
		deps.Results = sqlite.NewResultService(m.DB)
	}

	if cmd == "scrape" {
		scraper, closeFetcher, err := m.buildScraper(cli, deps, logger, stderr)
		if err != nil {
			return err
		}
		defer closeFetcher()
		deps.Scraper = scraper
	}

	// Analysis needs a Gemini client
	if cmd == "analyze" || (cmd == "scrape" && cli.Scrape.Analyze != "") {
		analyzer, err := newAnalyzer(ctx, stderr)
		if err != nil {
			return err
		}
		if cli.Verbose {
			deps.Analyzer = wsslog.NewLoggingAnalyzer(analyzer, logger)
		} else {
			deps.Analyzer = analyzer
		}
	}

	return kongCtx.Run(deps)
}

// buildScraper assembles the scraping pipeline from the parsed flags.
// The returned func releases the fetcher's resources.
func (m *Main) buildScraper(cli *CLI, deps *Dependencies, logger *slog.Logger, stderr io.Writer) (*scrape.Scraper, func(), error) {
	var fetcher webscraper.Fetcher
	if cli.Scrape.Render {
		f, err := rod.NewFetcher()
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed for --render")
			return nil, nil, fmt.Errorf("failed to start browser: %w", err)
		}
		fetcher = f
	} else {
		opts := []wshttp.Option{
			wshttp.WithTimeout(time.Duration(cli.Scrape.Timeout) * time.Second),
		}
		if cli.Scrape.UserAgent != "" {
			opts = append(opts, wshttp.WithUserAgent(cli.Scrape.UserAgent))
		}
		fetcher = wshttp.NewFetcher(opts...)
	}
	if cli.Verbose {
		fetcher = wsslog.NewLoggingFetcher(fetcher, logger)
	}

	scraper := &scrape.Scraper{
		Fetcher:     fetcher,
		Pages:       goquery.NewExtractor(),
		Results:     deps.Results,
		RetryDelays: scrape.RetryDelaysFor(cli.Scrape.Retries),
	}

	if cli.Scrape.Delay > 0 {
		scraper.Limiter = scrape.NewDomainLimiter(1.0 / cli.Scrape.Delay)
	}

	if cli.Scrape.Markdown {
		if cli.Scrape.Extractor == "readability" {
			scraper.Articles = readability.NewExtractor()
		} else {
			scraper.Articles = trafilatura.NewExtractor()
		}
		scraper.Converter = htmltomarkdown.NewConverter()
	}

	return scraper, func() { _ = fetcher.Close() }, nil
}

// newAnalyzer creates the Gemini-backed analyzer from the environment.
func newAnalyzer(ctx context.Context, stderr io.Writer) (webscraper.Analyzer, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
		return nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
	}

	opts := []gemini.Option{}
	if tokenCounter, err := gemini.NewTokenCounter(gemini.DefaultModel); err == nil {
		opts = append(opts, gemini.WithTokenCounter(tokenCounter, maxInputTokens))
	}

	return gemini.NewAnalyzer(client, opts...), nil
}

// maxInputTokens bounds the prompt text sent to the model.
const maxInputTokens = 100_000

func defaultDBPath() string {
	if path := os.Getenv("WEBSCRAPE_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "webscrape.db"
	}
	dir := filepath.Join(home, ".webscrape")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "webscrape.db")
}
