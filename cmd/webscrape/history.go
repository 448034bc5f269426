package main

import (
	"encoding/json"
	"fmt"
	"time"

	webscraper "github.com/baluchebolu1975/webscraper-ai"
)

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	filter := webscraper.ResultFilter{Limit: c.Limit}
	if c.URL != "" {
		filter.URL = &c.URL
	}

	pages, err := deps.Results.FindResults(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", webscraper.ErrorMessage(err))
		return err
	}

	if len(pages) == 0 {
		fmt.Fprintln(deps.Stdout, "No archived results. Use 'webscrape scrape --save-history' to archive.")
		return nil
	}

	if c.Full {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(pages)
	}

	for _, p := range pages {
		status := p.Title
		if p.Failed() {
			status = "error: " + p.Error
		}
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  %s\n",
			p.ID, p.FetchedAt.Format(time.RFC3339), p.URL, status)
	}

	return nil
}
