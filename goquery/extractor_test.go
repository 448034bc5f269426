package goquery_test

import (
	"testing"

	webscraper "github.com/baluchebolu1975/webscraper-ai"
	"github.com/baluchebolu1975/webscraper-ai/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleHTML = `<!DOCTYPE html>
<html>
<head><title>  Test   Page </title></head>
<body>
	<h1>Welcome</h1>
	<p class="intro">First   paragraph.</p>
	<p class="intro">Second paragraph.</p>
	<a href="/docs/intro">Intro</a>
	<a href="https://other.example.org/external">External</a>
	<a href="mailto:someone@example.com">Mail</a>
	<a href="/docs/intro">Intro again</a>
	<img src="/img/logo.png" alt="Logo" title="The Logo">
	<img src="https://cdn.example.com/banner.jpg" alt="">
	<img alt="no source">
</body>
</html>`

func TestExtractor_ExtractPage(t *testing.T) {
	t.Parallel()

	t.Run("extracts title, text, links, and images", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewExtractor()
		page, err := e.ExtractPage(sampleHTML, "https://example.com/docs/", nil)

		require.NoError(t, err)
		assert.Equal(t, "https://example.com/docs/", page.URL)
		assert.Equal(t, "Test Page", page.Title)
		assert.Contains(t, page.Text, "Welcome First paragraph. Second paragraph.")

		// Links in document order, duplicates kept, mailto skipped
		assert.Equal(t, []string{
			"https://example.com/docs/intro",
			"https://other.example.org/external",
			"https://example.com/docs/intro",
		}, page.Links)

		require.Len(t, page.Images, 2)
		assert.Equal(t, webscraper.Image{
			URL:   "https://example.com/img/logo.png",
			Alt:   "Logo",
			Title: "The Logo",
		}, page.Images[0])
		assert.Equal(t, "https://cdn.example.com/banner.jpg", page.Images[1].URL)
	})

	t.Run("extracts custom selector fields with cleaned text", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewExtractor()
		page, err := e.ExtractPage(sampleHTML, "https://example.com", map[string]string{
			"headline":   "h1",
			"paragraphs": "p.intro",
			"missing":    ".does-not-exist",
		})

		require.NoError(t, err)
		assert.Equal(t, []string{"Welcome"}, page.Fields["headline"])
		assert.Equal(t, []string{"First paragraph.", "Second paragraph."}, page.Fields["paragraphs"])
		assert.Empty(t, page.Fields["missing"])
	})

	t.Run("no selectors leaves Fields nil", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewExtractor()
		page, err := e.ExtractPage(sampleHTML, "https://example.com", nil)

		require.NoError(t, err)
		assert.Nil(t, page.Fields)
	})

	t.Run("missing title yields empty string", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewExtractor()
		page, err := e.ExtractPage("<html><body><p>no title</p></body></html>", "https://example.com", nil)

		require.NoError(t, err)
		assert.Equal(t, "", page.Title)
		assert.Equal(t, "no title", page.Text)
	})

	t.Run("invalid base URL is rejected", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewExtractor()
		_, err := e.ExtractPage(sampleHTML, "://bad", nil)

		require.Error(t, err)
		assert.Equal(t, webscraper.EINVALID, webscraper.ErrorCode(err))
	})
}
