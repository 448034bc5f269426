package mock

import (
	"context"

	webscraper "github.com/baluchebolu1975/webscraper-ai"
)

var _ webscraper.Analyzer = (*Analyzer)(nil)

// Analyzer is a mock implementation of webscraper.Analyzer.
// Unset function fields return empty results rather than panicking, so tests
// only need to define the operations they care about.
type Analyzer struct {
	SummarizeFn func(ctx context.Context, text string, maxWords int) (string, error)
	SentimentFn func(ctx context.Context, text string) (string, error)
	EntitiesFn  func(ctx context.Context, text string) (string, error)
	ClassifyFn  func(ctx context.Context, text string, categories []string) (string, error)
	KeywordsFn  func(ctx context.Context, text string, n int) ([]string, error)
}

func (a *Analyzer) Summarize(ctx context.Context, text string, maxWords int) (string, error) {
	if a.SummarizeFn == nil {
		return "", nil
	}
	return a.SummarizeFn(ctx, text, maxWords)
}

func (a *Analyzer) Sentiment(ctx context.Context, text string) (string, error) {
	if a.SentimentFn == nil {
		return "", nil
	}
	return a.SentimentFn(ctx, text)
}

func (a *Analyzer) Entities(ctx context.Context, text string) (string, error) {
	if a.EntitiesFn == nil {
		return "", nil
	}
	return a.EntitiesFn(ctx, text)
}

func (a *Analyzer) Classify(ctx context.Context, text string, categories []string) (string, error) {
	if a.ClassifyFn == nil {
		return "", nil
	}
	return a.ClassifyFn(ctx, text, categories)
}

func (a *Analyzer) Keywords(ctx context.Context, text string, n int) ([]string, error) {
	if a.KeywordsFn == nil {
		return nil, nil
	}
	return a.KeywordsFn(ctx, text, n)
}
