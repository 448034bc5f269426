package gemini_test

import (
	"context"
	"strings"
	"testing"

	webscraper "github.com/baluchebolu1975/webscraper-ai"
	"github.com/baluchebolu1975/webscraper-ai/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzer_Summarize_ShortTextSkipsAPI(t *testing.T) {
	t.Parallel()

	// nil client ok: short input returns before any API call
	analyzer := gemini.NewAnalyzer(nil)

	text := "Just a few words here."
	summary, err := analyzer.Summarize(context.Background(), text, 200)

	require.NoError(t, err)
	assert.Equal(t, text, summary)
}

func TestAnalyzer_Summarize_LongTextWithoutClientFails(t *testing.T) {
	t.Parallel()

	analyzer := gemini.NewAnalyzer(nil)

	longText := strings.Repeat("word ", 300)
	_, err := analyzer.Summarize(context.Background(), longText, 200)

	require.Error(t, err)
	assert.Equal(t, webscraper.EUNAVAILABLE, webscraper.ErrorCode(err))
}

func TestAnalyzer_Classify_RequiresCategories(t *testing.T) {
	t.Parallel()

	analyzer := gemini.NewAnalyzer(nil)

	_, err := analyzer.Classify(context.Background(), "some text", nil)

	require.Error(t, err)
	assert.Equal(t, webscraper.EINVALID, webscraper.ErrorCode(err))
}

func TestSummaryPrompt(t *testing.T) {
	t.Parallel()

	prompt := gemini.SummaryPrompt("the text", 150)

	assert.Contains(t, prompt, "approximately 150 words")
	assert.Contains(t, prompt, "the text")
}

func TestSentimentPrompt(t *testing.T) {
	t.Parallel()

	prompt := gemini.SentimentPrompt("great product")

	assert.Contains(t, prompt, "Overall sentiment (positive/negative/neutral)")
	assert.Contains(t, prompt, "Text: great product")
}

func TestEntitiesPrompt(t *testing.T) {
	t.Parallel()

	prompt := gemini.EntitiesPrompt("Jane works at Acme in Berlin")

	assert.Contains(t, prompt, "People (names of persons)")
	assert.Contains(t, prompt, "Organizations (companies, institutions)")
	assert.Contains(t, prompt, "Jane works at Acme in Berlin")
}

func TestClassifyPrompt(t *testing.T) {
	t.Parallel()

	prompt := gemini.ClassifyPrompt("the text", []string{"news", "opinion", "review"})

	assert.Contains(t, prompt, "news, opinion, review")
	assert.Contains(t, prompt, "confidence score (0-1)")
}

func TestKeywordsPrompt(t *testing.T) {
	t.Parallel()

	prompt := gemini.KeywordsPrompt("the text", 7)

	assert.Contains(t, prompt, "7 most important keywords")
	assert.Contains(t, prompt, "comma-separated list")
}

func TestParseKeywords(t *testing.T) {
	t.Parallel()

	t.Run("splits and trims", func(t *testing.T) {
		t.Parallel()

		keywords := gemini.ParseKeywords("go, web scraping , html parsing", 10)
		assert.Equal(t, []string{"go", "web scraping", "html parsing"}, keywords)
	})

	t.Run("caps at n", func(t *testing.T) {
		t.Parallel()

		keywords := gemini.ParseKeywords("a, b, c, d", 2)
		assert.Equal(t, []string{"a", "b"}, keywords)
	})

	t.Run("skips empty entries", func(t *testing.T) {
		t.Parallel()

		keywords := gemini.ParseKeywords("a, , b,", 10)
		assert.Equal(t, []string{"a", "b"}, keywords)
	})

	t.Run("empty response yields nil", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, gemini.ParseKeywords("", 10))
	})
}
