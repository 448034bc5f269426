package webscraper_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	webscraper "github.com/baluchebolu1975/webscraper-ai"
	"github.com/baluchebolu1975/webscraper-ai/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAnalysisKind(t *testing.T) {
	t.Parallel()

	t.Run("accepts known kinds", func(t *testing.T) {
		t.Parallel()

		for _, s := range []string{"full", "summary", "sentiment", "entities"} {
			kind, err := webscraper.ParseAnalysisKind(s)
			require.NoError(t, err)
			assert.Equal(t, webscraper.AnalysisKind(s), kind)
		}
	})

	t.Run("rejects unknown kinds", func(t *testing.T) {
		t.Parallel()

		_, err := webscraper.ParseAnalysisKind("keywords")
		require.Error(t, err)
		assert.Equal(t, webscraper.EINVALID, webscraper.ErrorCode(err))
	})
}

func TestAnalyze(t *testing.T) {
	t.Parallel()

	page := &webscraper.Page{
		URL:   "https://example.com",
		Title: "Example",
		Text:  "Some scraped text about Go.",
	}

	t.Run("full runs summary, sentiment, entities, and keywords", func(t *testing.T) {
		t.Parallel()

		analyzer := &mock.Analyzer{
			SummarizeFn: func(_ context.Context, text string, maxWords int) (string, error) {
				assert.Equal(t, webscraper.DefaultSummaryWords, maxWords)
				return "summary", nil
			},
			SentimentFn: func(_ context.Context, text string) (string, error) {
				return "positive", nil
			},
			EntitiesFn: func(_ context.Context, text string) (string, error) {
				return "Go (product)", nil
			},
			KeywordsFn: func(_ context.Context, text string, n int) ([]string, error) {
				assert.Equal(t, webscraper.DefaultKeywordCount, n)
				return []string{"go", "scraping"}, nil
			},
		}

		result, err := webscraper.Analyze(context.Background(), analyzer, page, webscraper.AnalysisFull)

		require.NoError(t, err)
		assert.Equal(t, "https://example.com", result.URL)
		assert.Equal(t, "Example", result.Title)
		assert.Equal(t, "summary", result.Summary)
		assert.Equal(t, "positive", result.Sentiment)
		assert.Equal(t, "Go (product)", result.Entities)
		assert.Equal(t, []string{"go", "scraping"}, result.Keywords)
	})

	t.Run("summary kind only calls Summarize", func(t *testing.T) {
		t.Parallel()

		analyzer := &mock.Analyzer{
			SummarizeFn: func(_ context.Context, text string, maxWords int) (string, error) {
				return "summary", nil
			},
			SentimentFn: func(_ context.Context, text string) (string, error) {
				t.Error("Sentiment should not be called")
				return "", nil
			},
			EntitiesFn: func(_ context.Context, text string) (string, error) {
				t.Error("Entities should not be called")
				return "", nil
			},
			KeywordsFn: func(_ context.Context, text string, n int) ([]string, error) {
				t.Error("Keywords should not be called")
				return nil, nil
			},
		}

		result, err := webscraper.Analyze(context.Background(), analyzer, page, webscraper.AnalysisSummary)

		require.NoError(t, err)
		assert.Equal(t, "summary", result.Summary)
		assert.Empty(t, result.Sentiment)
	})

	t.Run("failed summary falls back to truncation", func(t *testing.T) {
		t.Parallel()

		longText := strings.Repeat("word ", 500)
		longPage := &webscraper.Page{URL: "https://example.com", Text: longText}

		analyzer := &mock.Analyzer{
			SummarizeFn: func(_ context.Context, text string, maxWords int) (string, error) {
				return "", errors.New("api unavailable")
			},
		}

		result, err := webscraper.Analyze(context.Background(), analyzer, longPage, webscraper.AnalysisSummary)

		require.NoError(t, err)
		assert.Len(t, result.Summary, webscraper.DefaultSummaryWords*5)
		assert.Equal(t, longText[:len(result.Summary)], result.Summary)
	})

	t.Run("failed sentiment degrades to empty", func(t *testing.T) {
		t.Parallel()

		analyzer := &mock.Analyzer{
			SentimentFn: func(_ context.Context, text string) (string, error) {
				return "", errors.New("api unavailable")
			},
		}

		result, err := webscraper.Analyze(context.Background(), analyzer, page, webscraper.AnalysisSentiment)

		require.NoError(t, err)
		assert.Empty(t, result.Sentiment)
	})

	t.Run("page without text returns empty analysis", func(t *testing.T) {
		t.Parallel()

		result, err := webscraper.Analyze(context.Background(), &mock.Analyzer{}, &webscraper.Page{URL: "https://example.com"}, webscraper.AnalysisFull)

		require.NoError(t, err)
		assert.Equal(t, "https://example.com", result.URL)
		assert.Empty(t, result.Summary)
		assert.Empty(t, result.Keywords)
	})

	t.Run("invalid kind is rejected", func(t *testing.T) {
		t.Parallel()

		_, err := webscraper.Analyze(context.Background(), &mock.Analyzer{}, page, webscraper.AnalysisKind("bogus"))

		require.Error(t, err)
		assert.Equal(t, webscraper.EINVALID, webscraper.ErrorCode(err))
	})
}
