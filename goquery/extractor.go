// Package goquery provides the goquery-based implementation of
// webscraper.PageExtractor.
package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	webscraper "github.com/baluchebolu1975/webscraper-ai"
)

// Ensure Extractor implements webscraper.PageExtractor at compile time.
var _ webscraper.PageExtractor = (*Extractor)(nil)

// Extractor extracts structured fields from HTML using goquery.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractPage parses HTML and returns title, whitespace-normalized body text,
// links, images, and custom selector matches. Relative link and image URLs are
// resolved against baseURL. Links appear in document order; no deduplication
// is performed.
func (e *Extractor) ExtractPage(html string, baseURL string, selectors map[string]string) (*webscraper.Page, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, webscraper.Errorf(webscraper.EINVALID, "invalid base URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, webscraper.Errorf(webscraper.EINVALID, "failed to parse HTML: %v", err)
	}

	page := &webscraper.Page{
		URL:    baseURL,
		Title:  webscraper.CleanText(doc.Find("title").First().Text()),
		Text:   webscraper.CleanText(doc.Find("body").Text()),
		Links:  extractLinks(doc, base),
		Images: extractImages(doc, base),
	}

	// Whole-document fallback for fragments without a <body>
	if page.Text == "" {
		page.Text = webscraper.CleanText(doc.Text())
	}

	if len(selectors) > 0 {
		page.Fields = make(map[string][]string, len(selectors))
		for name, selector := range selectors {
			var values []string
			doc.Find(selector).Each(func(_ int, sel *goquery.Selection) {
				values = append(values, webscraper.CleanText(sel.Text()))
			})
			page.Fields[name] = values
		}
	}

	return page, nil
}

// extractLinks collects every a[href] in document order, resolved to an
// absolute URL. Non-HTTP schemes (javascript:, mailto:, tel:, data:) are
// skipped. External links are kept.
func extractLinks(doc *goquery.Document, base *url.URL) []string {
	var links []string
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, exists := sel.Attr("href")
		if !exists || href == "" {
			return
		}
		if isNonHTTPLink(href) {
			return
		}
		if resolved := resolveURL(base, href); resolved != "" {
			links = append(links, resolved)
		}
	})
	return links
}

// extractImages collects every img[src] with its resolved URL, alt text, and title.
func extractImages(doc *goquery.Document, base *url.URL) []webscraper.Image {
	var images []webscraper.Image
	doc.Find("img").Each(func(_ int, sel *goquery.Selection) {
		src, exists := sel.Attr("src")
		if !exists || src == "" {
			return
		}
		resolved := resolveURL(base, src)
		if resolved == "" {
			return
		}
		images = append(images, webscraper.Image{
			URL:   resolved,
			Alt:   sel.AttrOr("alt", ""),
			Title: sel.AttrOr("title", ""),
		})
	})
	return images
}

// resolveURL resolves a relative URL against a base URL.
// Returns empty string if the href cannot be parsed.
func resolveURL(base *url.URL, href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	return base.ResolveReference(ref).String()
}

// isNonHTTPLink checks if a href is a non-HTTP link that should be skipped.
func isNonHTTPLink(href string) bool {
	href = strings.ToLower(strings.TrimSpace(href))
	return strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "mailto:") ||
		strings.HasPrefix(href, "tel:") ||
		strings.HasPrefix(href, "data:")
}
