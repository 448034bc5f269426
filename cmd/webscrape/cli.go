package main

import (
	"context"
	"io"

	webscraper "github.com/baluchebolu1975/webscraper-ai"
	"github.com/baluchebolu1975/webscraper-ai/scrape"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Scraper  *scrape.Scraper
	Sitemaps webscraper.SitemapService
	Analyzer webscraper.Analyzer
	Results  webscraper.ResultService
	Writers  map[webscraper.Format]webscraper.ResultWriter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log fetch and analysis activity to stderr"`

	Scrape  ScrapeCmd  `cmd:"" help:"Scrape one or more URLs"`
	Analyze AnalyzeCmd `cmd:"" help:"Analyze previously scraped JSON results"`
	Urls    UrlsCmd    `cmd:"" help:"Preview URLs discovered from a site's sitemap"`
	History HistoryCmd `cmd:"" help:"List archived scrape results"`
}

// ScrapeCmd is the "scrape" subcommand.
type ScrapeCmd struct {
	URLs        []string          `arg:"" help:"URLs to scrape (site URLs with --from-sitemap)"`
	Selector    map[string]string `short:"s" help:"Named CSS selector as name=css (repeatable)"`
	Format      string            `short:"f" default:"json" env:"WEBSCRAPE_FORMAT" help:"Output format: json, csv, xlsx, markdown"`
	OutputDir   string            `default:"scraped_data" env:"WEBSCRAPE_OUTPUT_DIR" help:"Output directory"`
	Out         string            `short:"o" help:"Output filename (defaults to a timestamped name)"`
	Delay       float64           `default:"1.0" env:"WEBSCRAPE_DELAY" help:"Seconds between requests to the same domain"`
	Timeout     int               `default:"30" env:"WEBSCRAPE_TIMEOUT" help:"Fetch timeout in seconds"`
	Retries     int               `default:"3" env:"WEBSCRAPE_RETRIES" help:"Fetch retry attempts"`
	UserAgent   string            `env:"WEBSCRAPE_USER_AGENT" help:"User-Agent header for plain HTTP fetches"`
	Render      bool              `help:"Render pages in a headless browser before extraction"`
	Markdown    bool              `help:"Extract main content and include it as markdown"`
	Extractor   string            `default:"trafilatura" enum:"trafilatura,readability" help:"Main content extractor for --markdown"`
	Analyze     string            `help:"Run analysis: full, summary, sentiment, entities"`
	Category    []string          `short:"c" help:"Classification category (repeatable, needs --analyze)"`
	FromSitemap bool              `help:"Expand each URL argument via its sitemap"`
	Filter      []string          `short:"F" help:"Filter sitemap URLs by regex (repeatable)"`
	SaveHistory bool              `help:"Archive results in the local history database"`
}

// AnalyzeCmd is the "analyze" subcommand.
type AnalyzeCmd struct {
	File     string   `arg:"" help:"JSON results file, or - for stdin"`
	Kind     string   `short:"k" default:"full" help:"Analysis kind: full, summary, sentiment, entities"`
	Category []string `short:"c" help:"Classification category (repeatable)"`
}

// UrlsCmd is the "urls" subcommand.
type UrlsCmd struct {
	URL    string   `arg:"" help:"Site URL"`
	Filter []string `short:"F" help:"Filter URLs by regex (repeatable)"`
}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	URL   string `help:"Only results for this URL"`
	Limit int    `default:"20" help:"Maximum number of results"`
	Full  bool   `help:"Show full results as JSON"`
}
