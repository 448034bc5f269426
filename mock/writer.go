package mock

import (
	webscraper "github.com/baluchebolu1975/webscraper-ai"
)

var _ webscraper.ResultWriter = (*ResultWriter)(nil)

// ResultWriter is a mock implementation of webscraper.ResultWriter.
type ResultWriter struct {
	WriteFn func(path string, pages []*webscraper.Page) error
}

func (w *ResultWriter) Write(path string, pages []*webscraper.Page) error {
	return w.WriteFn(path, pages)
}
