package mock

import (
	webscraper "github.com/baluchebolu1975/webscraper-ai"
)

var _ webscraper.Converter = (*Converter)(nil)

// Converter is a mock implementation of webscraper.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
