package webscraper

import "time"

// Image describes an image found on a scraped page.
// The URL has been resolved to an absolute URL against the page URL.
type Image struct {
	URL   string `json:"url"`
	Alt   string `json:"alt"`
	Title string `json:"title,omitempty"`
}

// Page holds the structured data extracted from a single scraped page.
//
// A failed scrape is still represented as a Page: URL and Error are set and
// the remaining fields are zero. Failures never abort a multi-URL run.
type Page struct {
	ID          string              `json:"id,omitempty"`
	URL         string              `json:"url"`
	Title       string              `json:"title"`
	Text        string              `json:"text"`
	Links       []string            `json:"links"`
	Images      []Image             `json:"images"`
	Fields      map[string][]string `json:"fields,omitempty"`
	Markdown    string              `json:"markdown,omitempty"`
	ContentHash string              `json:"contentHash,omitempty"`
	FetchedAt   time.Time           `json:"fetchedAt"`
	Error       string              `json:"error,omitempty"`

	// Analysis is attached when language-model analysis was requested.
	// It is part of the output document but is not archived.
	Analysis *Analysis `json:"analysis,omitempty"`
}

// Validate returns an error if the page contains invalid fields.
func (p *Page) Validate() error {
	if p.URL == "" {
		return Errorf(EINVALID, "page URL required")
	}
	return nil
}

// Failed reports whether the page represents a failed scrape.
func (p *Page) Failed() bool {
	return p.Error != ""
}

// PageExtractor extracts structured fields from raw HTML.
type PageExtractor interface {
	// ExtractPage parses HTML and returns the page title, whitespace-normalized
	// text, absolute links and images, and the cleaned text of all matches for
	// each named CSS selector. Relative URLs are resolved against baseURL.
	ExtractPage(html string, baseURL string, selectors map[string]string) (*Page, error)
}
