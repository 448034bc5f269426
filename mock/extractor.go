package mock

import (
	webscraper "github.com/baluchebolu1975/webscraper-ai"
)

var _ webscraper.PageExtractor = (*PageExtractor)(nil)

// PageExtractor is a mock implementation of webscraper.PageExtractor.
type PageExtractor struct {
	ExtractPageFn func(html, baseURL string, selectors map[string]string) (*webscraper.Page, error)
}

func (e *PageExtractor) ExtractPage(html, baseURL string, selectors map[string]string) (*webscraper.Page, error) {
	return e.ExtractPageFn(html, baseURL, selectors)
}

var _ webscraper.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of webscraper.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*webscraper.Article, error)
}

func (e *Extractor) Extract(html string) (*webscraper.Article, error) {
	return e.ExtractFn(html)
}
