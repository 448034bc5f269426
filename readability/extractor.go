// Package readability provides a webscraper.Extractor backed by go-readability.
package readability

import (
	"strings"

	webscraper "github.com/baluchebolu1975/webscraper-ai"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements webscraper.Extractor at compile time.
var _ webscraper.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content.
func (e *Extractor) Extract(rawHTML string) (*webscraper.Article, error) {
	if rawHTML == "" {
		return nil, webscraper.Errorf(webscraper.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	return &webscraper.Article{
		Title:       article.Title,
		ContentHTML: article.Content,
	}, nil
}
