package main

import (
	"fmt"
	"regexp"

	webscraper "github.com/baluchebolu1975/webscraper-ai"
)

// Run executes the urls command.
func (c *UrlsCmd) Run(deps *Dependencies) error {
	filter, err := compileFilter(c.Filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	urls, err := deps.Sitemaps.DiscoverURLs(deps.Ctx, c.URL, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", webscraper.ErrorMessage(err))
		return err
	}

	for _, u := range urls {
		fmt.Fprintln(deps.Stdout, u)
	}

	return nil
}

// compileFilter builds a URLFilter from regex include patterns.
// Returns nil when no patterns are given.
func compileFilter(patterns []string) (*webscraper.URLFilter, error) {
	if len(patterns) == 0 {
		return nil, nil
	}

	filter := &webscraper.URLFilter{}
	for _, pattern := range patterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid filter pattern %q: %w", pattern, err)
		}
		filter.Include = append(filter.Include, re)
	}
	return filter, nil
}
