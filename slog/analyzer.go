package slog

import (
	"context"
	"log/slog"
	"time"

	webscraper "github.com/baluchebolu1975/webscraper-ai"
)

// Ensure LoggingAnalyzer implements webscraper.Analyzer.
var _ webscraper.Analyzer = (*LoggingAnalyzer)(nil)

// LoggingAnalyzer wraps an Analyzer with per-call logging.
type LoggingAnalyzer struct {
	next   webscraper.Analyzer
	logger *slog.Logger
}

// NewLoggingAnalyzer creates a new LoggingAnalyzer.
func NewLoggingAnalyzer(next webscraper.Analyzer, logger *slog.Logger) *LoggingAnalyzer {
	return &LoggingAnalyzer{next: next, logger: logger}
}

func (a *LoggingAnalyzer) log(op string, inputLen int, begin time.Time, err error) {
	a.logger.Info(op,
		"input_chars", inputLen,
		"duration", time.Since(begin),
		"err", err,
	)
}

// Summarize delegates to the wrapped analyzer.
func (a *LoggingAnalyzer) Summarize(ctx context.Context, text string, maxWords int) (summary string, err error) {
	defer func(begin time.Time) { a.log("summarize", len(text), begin, err) }(time.Now())
	return a.next.Summarize(ctx, text, maxWords)
}

// Sentiment delegates to the wrapped analyzer.
func (a *LoggingAnalyzer) Sentiment(ctx context.Context, text string) (result string, err error) {
	defer func(begin time.Time) { a.log("sentiment", len(text), begin, err) }(time.Now())
	return a.next.Sentiment(ctx, text)
}

// Entities delegates to the wrapped analyzer.
func (a *LoggingAnalyzer) Entities(ctx context.Context, text string) (result string, err error) {
	defer func(begin time.Time) { a.log("entities", len(text), begin, err) }(time.Now())
	return a.next.Entities(ctx, text)
}

// Classify delegates to the wrapped analyzer.
func (a *LoggingAnalyzer) Classify(ctx context.Context, text string, categories []string) (result string, err error) {
	defer func(begin time.Time) { a.log("classify", len(text), begin, err) }(time.Now())
	return a.next.Classify(ctx, text, categories)
}

// Keywords delegates to the wrapped analyzer.
func (a *LoggingAnalyzer) Keywords(ctx context.Context, text string, n int) (keywords []string, err error) {
	defer func(begin time.Time) { a.log("keywords", len(text), begin, err) }(time.Now())
	return a.next.Keywords(ctx, text, n)
}
