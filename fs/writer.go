// Package fs provides file-based writers for scrape results.
package fs

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	webscraper "github.com/baluchebolu1975/webscraper-ai"
)

// OutputPath builds the output file path for a scrape run. The filename is
// reduced to its base name so callers cannot escape dir, and an empty name
// gets a timestamped default like scrape_20260102_150405.json.
func OutputPath(dir, name string, format webscraper.Format) string {
	if name == "" {
		name = "scrape_" + webscraper.Timestamp(time.Now()) + "." + format.Ext()
	}
	return filepath.Join(dir, filepath.Base(name))
}

// writeFile writes data to path, creating parent directories as needed.
func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0644)
}

// Ensure writers implement webscraper.ResultWriter at compile time.
var (
	_ webscraper.ResultWriter = (*JSONWriter)(nil)
	_ webscraper.ResultWriter = (*CSVWriter)(nil)
	_ webscraper.ResultWriter = (*MarkdownWriter)(nil)
)

// JSONWriter writes pages as an indented JSON array.
type JSONWriter struct{}

// NewJSONWriter creates a new JSONWriter.
func NewJSONWriter() *JSONWriter {
	return &JSONWriter{}
}

// Write saves the pages as JSON. Zero pages produce an empty array.
func (w *JSONWriter) Write(path string, pages []*webscraper.Page) error {
	if pages == nil {
		pages = []*webscraper.Page{}
	}

	data, err := json.MarshalIndent(pages, "", "  ")
	if err != nil {
		return err
	}

	return writeFile(path, append(data, '\n'))
}

// CSVHeader lists the columns written by CSVWriter, in order.
// Spreadsheet output uses the same columns.
var CSVHeader = []string{
	"url", "title", "text", "links", "images", "fields",
	"content_hash", "fetched_at", "error",
}

// CSVRecord flattens a page into a CSV row matching CSVHeader.
// Multi-valued fields are newline-joined within their cell.
func CSVRecord(page *webscraper.Page) []string {
	images := make([]string, 0, len(page.Images))
	for _, img := range page.Images {
		if img.Alt != "" {
			images = append(images, img.URL+"|"+img.Alt)
		} else {
			images = append(images, img.URL)
		}
	}

	fields := make([]string, 0, len(page.Fields))
	for _, name := range sortedKeys(page.Fields) {
		fields = append(fields, name+"="+strings.Join(page.Fields[name], "; "))
	}

	fetchedAt := ""
	if !page.FetchedAt.IsZero() {
		fetchedAt = page.FetchedAt.Format(time.RFC3339)
	}

	return []string{
		page.URL,
		page.Title,
		page.Text,
		strings.Join(page.Links, "\n"),
		strings.Join(images, "\n"),
		strings.Join(fields, "\n"),
		page.ContentHash,
		fetchedAt,
		page.Error,
	}
}

// sortedKeys returns map keys in sorted order for stable output.
func sortedKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// CSVWriter writes pages as CSV with one row per page.
type CSVWriter struct{}

// NewCSVWriter creates a new CSVWriter.
func NewCSVWriter() *CSVWriter {
	return &CSVWriter{}
}

// Write saves the pages as CSV. Zero pages produce a header-only file.
func (w *CSVWriter) Write(path string, pages []*webscraper.Page) error {
	var b strings.Builder
	cw := csv.NewWriter(&b)

	if err := cw.Write(CSVHeader); err != nil {
		return err
	}
	for _, page := range pages {
		if err := cw.Write(CSVRecord(page)); err != nil {
			return err
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return err
	}

	return writeFile(path, []byte(b.String()))
}

// MarkdownWriter writes pages as a single markdown document, one section
// per page with frontmatter-style metadata.
type MarkdownWriter struct{}

// NewMarkdownWriter creates a new MarkdownWriter.
func NewMarkdownWriter() *MarkdownWriter {
	return &MarkdownWriter{}
}

// FormatPage formats a single page as a markdown section.
func FormatPage(page *webscraper.Page) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("source: ")
	b.WriteString(page.URL)
	if page.Title != "" {
		b.WriteString("\ntitle: ")
		b.WriteString(page.Title)
	}
	if !page.FetchedAt.IsZero() {
		b.WriteString("\nfetched: ")
		b.WriteString(page.FetchedAt.Format("2006-01-02"))
	}
	if page.Error != "" {
		b.WriteString("\nerror: ")
		b.WriteString(page.Error)
	}
	b.WriteString("\n---\n\n")

	switch {
	case page.Markdown != "":
		b.WriteString(page.Markdown)
	case page.Text != "":
		b.WriteString(page.Text)
	}
	b.WriteString("\n")
	return b.String()
}

// Write saves the pages as markdown.
func (w *MarkdownWriter) Write(path string, pages []*webscraper.Page) error {
	sections := make([]string, 0, len(pages))
	for _, page := range pages {
		sections = append(sections, FormatPage(page))
	}
	return writeFile(path, []byte(strings.Join(sections, "\n")))
}
