package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	webscraper "github.com/baluchebolu1975/webscraper-ai"
)

// Run executes the analyze command.
func (c *AnalyzeCmd) Run(deps *Dependencies) error {
	kind, err := webscraper.ParseAnalysisKind(c.Kind)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", webscraper.ErrorMessage(err))
		return err
	}

	pages, err := c.readPages()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	analyzePages(deps, pages, kind, c.Category)

	analyses := make([]*webscraper.Analysis, 0, len(pages))
	for _, page := range pages {
		if page.Analysis != nil {
			analyses = append(analyses, page.Analysis)
		}
	}

	enc := json.NewEncoder(deps.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(analyses)
}

// readPages loads scraped pages from the input file or stdin.
func (c *AnalyzeCmd) readPages() ([]*webscraper.Page, error) {
	var data []byte
	var err error
	if c.File == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(c.File)
	}
	if err != nil {
		return nil, err
	}

	var pages []*webscraper.Page
	if err := json.Unmarshal(data, &pages); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", c.File, err)
	}
	return pages, nil
}
