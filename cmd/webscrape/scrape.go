package main

import (
	"fmt"

	webscraper "github.com/baluchebolu1975/webscraper-ai"
	"github.com/baluchebolu1975/webscraper-ai/fs"
	"github.com/baluchebolu1975/webscraper-ai/scrape"
)

// Run executes the scrape command.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	format, err := webscraper.ParseFormat(c.Format)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", webscraper.ErrorMessage(err))
		return err
	}
	writer := deps.Writers[format]

	var kind webscraper.AnalysisKind
	if c.Analyze != "" {
		kind, err = webscraper.ParseAnalysisKind(c.Analyze)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", webscraper.ErrorMessage(err))
			return err
		}
	}

	urls := c.URLs
	if c.FromSitemap {
		urls, err = c.expandURLs(deps)
		if err != nil {
			return err
		}
		if len(urls) == 0 {
			fmt.Fprintln(deps.Stdout, "No URLs discovered.")
			return nil
		}
	}

	progress := func(event scrape.ProgressEvent) {
		switch event.Type {
		case scrape.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Scraping %d URLs\n", event.Total)
		case scrape.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  failed %s: %v\n", webscraper.TruncateURL(event.URL, 80), event.Error)
		}
	}

	pages, err := deps.Scraper.ScrapeAll(deps.Ctx, urls, c.Selector, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", webscraper.ErrorMessage(err))
		return err
	}

	if c.Analyze != "" {
		analyzePages(deps, pages, kind, c.Category)
	}

	path := fs.OutputPath(c.OutputDir, c.Out, format)
	if err := writer.Write(path, pages); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", webscraper.ErrorMessage(err))
		return err
	}

	var failed int
	for _, page := range pages {
		if page.Failed() {
			failed++
		}
	}
	fmt.Fprintf(deps.Stdout, "Saved %d pages (%d failed) to %s\n", len(pages)-failed, failed, path)

	return nil
}

// expandURLs resolves the URL arguments through sitemap discovery.
func (c *ScrapeCmd) expandURLs(deps *Dependencies) ([]string, error) {
	filter, err := compileFilter(c.Filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return nil, err
	}

	var urls []string
	for _, site := range c.URLs {
		discovered, err := deps.Sitemaps.DiscoverURLs(deps.Ctx, site, filter)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", webscraper.ErrorMessage(err))
			return nil, err
		}
		urls = append(urls, discovered...)
	}
	return urls, nil
}

// analyzePages attaches analysis results to each successfully scraped page.
// Analysis failures degrade per page rather than aborting the run.
func analyzePages(deps *Dependencies, pages []*webscraper.Page, kind webscraper.AnalysisKind, categories []string) {
	for _, page := range pages {
		if page.Failed() {
			continue
		}

		analysis, err := webscraper.Analyze(deps.Ctx, deps.Analyzer, page, kind)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "  analysis failed for %s: %v\n", page.URL, err)
			continue
		}

		if len(categories) > 0 && page.Text != "" {
			// Classification errors leave the field empty
			if classification, err := deps.Analyzer.Classify(deps.Ctx, page.Text, categories); err == nil {
				analysis.Classification = classification
			}
		}

		page.Analysis = analysis
	}
}
