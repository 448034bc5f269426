package main_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	webscraper "github.com/baluchebolu1975/webscraper-ai"
	main "github.com/baluchebolu1975/webscraper-ai/cmd/webscrape"
	"github.com/baluchebolu1975/webscraper-ai/mock"
	"github.com/baluchebolu1975/webscraper-ai/scrape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testScraper builds a Scraper whose fetcher returns fixed HTML and whose
// extractor echoes the URL as the title.
func testScraper() *scrape.Scraper {
	return &scrape.Scraper{
		Fetcher: &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "<html><body>hello</body></html>", nil
			},
		},
		Pages: &mock.PageExtractor{
			ExtractPageFn: func(html, baseURL string, selectors map[string]string) (*webscraper.Page, error) {
				return &webscraper.Page{URL: baseURL, Title: "Title", Text: "hello"}, nil
			},
		},
		RetryDelays: []time.Duration{},
	}
}

func TestScrapeCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("writes scraped pages to output", func(t *testing.T) {
		t.Parallel()

		var writtenPath string
		var writtenPages []*webscraper.Page
		writer := &mock.ResultWriter{
			WriteFn: func(path string, pages []*webscraper.Page) error {
				writtenPath = path
				writtenPages = pages
				return nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  &bytes.Buffer{},
			Scraper: testScraper(),
			Writers: map[webscraper.Format]webscraper.ResultWriter{
				webscraper.FormatJSON: writer,
			},
		}

		cmd := &main.ScrapeCmd{
			URLs:      []string{"https://example.com/a", "https://example.com/b"},
			Format:    "json",
			OutputDir: "out",
			Out:       "results.json",
		}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, writtenPath, "results.json")
		require.Len(t, writtenPages, 2)
		assert.Equal(t, "https://example.com/a", writtenPages[0].URL)
		assert.Contains(t, stdout.String(), "Saved 2 pages (0 failed)")
	})

	t.Run("rejects invalid format", func(t *testing.T) {
		t.Parallel()

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: &bytes.Buffer{},
		}

		cmd := &main.ScrapeCmd{
			URLs:   []string{"https://example.com"},
			Format: "yaml",
		}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, webscraper.EINVALID, webscraper.ErrorCode(err))
	})

	t.Run("reports failed pages in summary", func(t *testing.T) {
		t.Parallel()

		scraper := testScraper()
		scraper.Fetcher = &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				if url == "https://example.com/bad" {
					return "", errors.New("status 500")
				}
				return "<html></html>", nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  stderr,
			Scraper: scraper,
			Writers: map[webscraper.Format]webscraper.ResultWriter{
				webscraper.FormatJSON: &mock.ResultWriter{
					WriteFn: func(path string, pages []*webscraper.Page) error { return nil },
				},
			},
		}

		cmd := &main.ScrapeCmd{
			URLs:      []string{"https://example.com/a", "https://example.com/bad"},
			Format:    "json",
			OutputDir: "out",
			Out:       "results.json",
		}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Saved 1 pages (1 failed)")
		assert.Contains(t, stderr.String(), "failed https://example.com/bad")
	})

	t.Run("shortens long URLs in failure output", func(t *testing.T) {
		t.Parallel()

		longURL := "https://example.com/very/deeply/nested/path/that/keeps/going/and/going/far/past/eighty/characters/article"

		scraper := testScraper()
		scraper.Fetcher = &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "", errors.New("status 500")
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  &bytes.Buffer{},
			Stderr:  stderr,
			Scraper: scraper,
			Writers: map[webscraper.Format]webscraper.ResultWriter{
				webscraper.FormatJSON: &mock.ResultWriter{
					WriteFn: func(path string, pages []*webscraper.Page) error { return nil },
				},
			},
		}

		cmd := &main.ScrapeCmd{
			URLs:      []string{longURL},
			Format:    "json",
			OutputDir: "out",
			Out:       "results.json",
		}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.NotContains(t, stderr.String(), longURL)
		assert.Contains(t, stderr.String(), "failed ..."+longURL[len(longURL)-77:])
	})

	t.Run("expands URLs from sitemap", func(t *testing.T) {
		t.Parallel()

		var writtenPages []*webscraper.Page
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  &bytes.Buffer{},
			Stderr:  &bytes.Buffer{},
			Scraper: testScraper(),
			Sitemaps: &mock.SitemapService{
				DiscoverURLsFn: func(ctx context.Context, baseURL string, filter *webscraper.URLFilter) ([]string, error) {
					return []string{baseURL + "/page1", baseURL + "/page2"}, nil
				},
			},
			Writers: map[webscraper.Format]webscraper.ResultWriter{
				webscraper.FormatJSON: &mock.ResultWriter{
					WriteFn: func(path string, pages []*webscraper.Page) error {
						writtenPages = pages
						return nil
					},
				},
			},
		}

		cmd := &main.ScrapeCmd{
			URLs:        []string{"https://example.com"},
			Format:      "json",
			OutputDir:   "out",
			Out:         "results.json",
			FromSitemap: true,
		}

		err := cmd.Run(deps)

		require.NoError(t, err)
		require.Len(t, writtenPages, 2)
		assert.Equal(t, "https://example.com/page1", writtenPages[0].URL)
	})

	t.Run("sitemap with no URLs skips writing", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  &bytes.Buffer{},
			Scraper: testScraper(),
			Sitemaps: &mock.SitemapService{
				DiscoverURLsFn: func(ctx context.Context, baseURL string, filter *webscraper.URLFilter) ([]string, error) {
					return []string{}, nil
				},
			},
			Writers: map[webscraper.Format]webscraper.ResultWriter{
				webscraper.FormatJSON: &mock.ResultWriter{
					WriteFn: func(path string, pages []*webscraper.Page) error {
						t.Fatal("writer should not be called")
						return nil
					},
				},
			},
		}

		cmd := &main.ScrapeCmd{
			URLs:        []string{"https://example.com"},
			Format:      "json",
			FromSitemap: true,
		}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No URLs discovered")
	})

	t.Run("attaches analysis to scraped pages", func(t *testing.T) {
		t.Parallel()

		var writtenPages []*webscraper.Page
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  &bytes.Buffer{},
			Stderr:  &bytes.Buffer{},
			Scraper: testScraper(),
			Analyzer: &mock.Analyzer{
				SummarizeFn: func(ctx context.Context, text string, maxWords int) (string, error) {
					return "a summary", nil
				},
				ClassifyFn: func(ctx context.Context, text string, categories []string) (string, error) {
					return "news", nil
				},
			},
			Writers: map[webscraper.Format]webscraper.ResultWriter{
				webscraper.FormatJSON: &mock.ResultWriter{
					WriteFn: func(path string, pages []*webscraper.Page) error {
						writtenPages = pages
						return nil
					},
				},
			},
		}

		cmd := &main.ScrapeCmd{
			URLs:      []string{"https://example.com"},
			Format:    "json",
			OutputDir: "out",
			Out:       "results.json",
			Analyze:   "summary",
			Category:  []string{"news", "opinion"},
		}

		err := cmd.Run(deps)

		require.NoError(t, err)
		require.Len(t, writtenPages, 1)
		require.NotNil(t, writtenPages[0].Analysis)
		assert.Equal(t, "a summary", writtenPages[0].Analysis.Summary)
		assert.Equal(t, "news", writtenPages[0].Analysis.Classification)
	})

	t.Run("rejects invalid analysis kind", func(t *testing.T) {
		t.Parallel()

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: &bytes.Buffer{},
		}

		cmd := &main.ScrapeCmd{
			URLs:    []string{"https://example.com"},
			Format:  "json",
			Analyze: "vibes",
		}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, webscraper.EINVALID, webscraper.ErrorCode(err))
	})
}
