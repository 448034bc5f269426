// Package scrape provides scraping orchestration. It coordinates fetching,
// extraction, optional markdown conversion, and archiving of pages.
package scrape

import (
	"context"
	"fmt"
	"net/url"
	"time"

	webscraper "github.com/baluchebolu1975/webscraper-ai"
	"github.com/cespare/xxhash/v2"
)

// Scraper orchestrates the scraping of web pages.
//
// Fetcher and Pages are required. Articles and Converter are optional and
// enable main-content markdown output. Results is optional and archives
// every scraped page. Limiter is optional and paces requests per domain.
type Scraper struct {
	Fetcher     webscraper.Fetcher
	Pages       webscraper.PageExtractor
	Articles    webscraper.Extractor
	Converter   webscraper.Converter
	Results     webscraper.ResultService
	Limiter     webscraper.Limiter
	RetryDelays []time.Duration
	Logger      LogFunc
}

// ProgressEvent reports progress during a multi-URL scrape.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting scrape progress.
type ProgressFunc func(event ProgressEvent)

// ScrapeURL fetches and extracts a single page. A failed scrape is reported
// through the returned page's Error field, never as an error value, so one
// bad URL cannot abort a run. The returned page always has URL set.
func (s *Scraper) ScrapeURL(ctx context.Context, rawURL string, selectors map[string]string) *webscraper.Page {
	if s.Limiter != nil {
		if domain := urlDomain(rawURL); domain != "" {
			if err := s.Limiter.Wait(ctx, domain); err != nil {
				return failedPage(rawURL, err)
			}
		}
	}

	var html string
	var err error
	if s.RetryDelays == nil {
		html, err = FetchWithRetry(ctx, rawURL, s.Fetcher.Fetch, s.Logger)
	} else {
		html, err = FetchWithRetryDelays(ctx, rawURL, s.Fetcher.Fetch, s.Logger, s.RetryDelays)
	}
	if err != nil {
		return failedPage(rawURL, err)
	}

	page, err := s.Pages.ExtractPage(html, rawURL, selectors)
	if err != nil {
		return failedPage(rawURL, err)
	}

	page.Markdown = s.convertMarkdown(html)
	page.ContentHash = computeHash(page)
	page.FetchedAt = time.Now().UTC()

	return page
}

// ScrapeAll scrapes the URLs sequentially, preserving input order in the
// result. The progress callback, if provided, receives events as scraping
// proceeds. Only context cancellation and archive failures abort the run.
func (s *Scraper) ScrapeAll(ctx context.Context, urls []string, selectors map[string]string, progress ProgressFunc) ([]*webscraper.Page, error) {
	total := len(urls)
	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	pages := make([]*webscraper.Page, 0, total)
	for i, rawURL := range urls {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		page := s.ScrapeURL(ctx, rawURL, selectors)
		if page.Failed() {
			// Limiter waits fail only on context cancellation
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		if s.Results != nil {
			if err := s.Results.CreateResult(ctx, page); err != nil {
				return nil, fmt.Errorf("archiving result for %s: %w", rawURL, err)
			}
		}

		pages = append(pages, page)

		if progress != nil {
			event := ProgressEvent{
				Type:      ProgressCompleted,
				Completed: i + 1,
				Total:     total,
				URL:       rawURL,
			}
			if page.Failed() {
				event.Type = ProgressFailed
				event.Error = fmt.Errorf("%s", page.Error)
			}
			progress(event)
		}
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}

	return pages, nil
}

// convertMarkdown runs the optional article extraction and markdown
// conversion pipeline. Failures leave the markdown empty: the structured
// page data is still useful without it.
func (s *Scraper) convertMarkdown(html string) string {
	if s.Articles == nil || s.Converter == nil {
		return ""
	}

	article, err := s.Articles.Extract(html)
	if err != nil {
		if s.Logger != nil {
			s.Logger("  article extraction failed: %v", err)
		}
		return ""
	}

	markdown, err := s.Converter.Convert(article.ContentHTML)
	if err != nil {
		if s.Logger != nil {
			s.Logger("  markdown conversion failed: %v", err)
		}
		return ""
	}

	return markdown
}

// computeHash returns a hash of the page's extracted content, used to
// detect content changes between runs.
func computeHash(page *webscraper.Page) string {
	h := xxhash.New()
	_, _ = h.WriteString(page.Title)
	_, _ = h.WriteString(page.Text)
	return fmt.Sprintf("%x", h.Sum64())
}

// failedPage represents a scrape failure as a page record.
func failedPage(url string, err error) *webscraper.Page {
	return &webscraper.Page{
		URL:       url,
		Error:     err.Error(),
		FetchedAt: time.Now().UTC(),
	}
}

// urlDomain extracts the host from a URL for rate limiting.
func urlDomain(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return u.Host
}
