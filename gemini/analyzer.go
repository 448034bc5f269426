// Package gemini provides a webscraper.Analyzer backed by Google Gemini.
package gemini

import (
	"context"
	"fmt"
	"strings"

	webscraper "github.com/baluchebolu1975/webscraper-ai"
	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// Generation parameters mirroring the hosted completion wrappers.
const (
	defaultTemperature  = 0.7
	defaultOutputTokens = 2000
)

// Ensure Analyzer implements webscraper.Analyzer at compile time.
var _ webscraper.Analyzer = (*Analyzer)(nil)

// Analyzer implements webscraper.Analyzer using Google Gemini.
// Each operation is a prompt-templating wrapper around a single
// GenerateContent call; model output is passed through as raw text.
type Analyzer struct {
	client *genai.Client
	model  string

	// Optional input truncation. When set, prompt text is trimmed to
	// maxInputTokens before templating.
	tokens         webscraper.TokenCounter
	maxInputTokens int
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithModel overrides the default Gemini model.
func WithModel(model string) Option {
	return func(a *Analyzer) {
		a.model = model
	}
}

// WithTokenCounter enables input truncation to a token budget.
func WithTokenCounter(tc webscraper.TokenCounter, maxTokens int) Option {
	return func(a *Analyzer) {
		a.tokens = tc
		a.maxInputTokens = maxTokens
	}
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer(client *genai.Client, opts ...Option) *Analyzer {
	a := &Analyzer{
		client: client,
		model:  DefaultModel,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Summarize condenses text to approximately maxWords words.
// Text already within the budget is returned unchanged without an API call.
func (a *Analyzer) Summarize(ctx context.Context, text string, maxWords int) (string, error) {
	if len(strings.Fields(text)) <= maxWords {
		return text, nil
	}

	text = a.truncate(ctx, text)
	return a.generate(ctx,
		"You are a helpful assistant that creates concise and accurate summaries.",
		SummaryPrompt(text, maxWords),
	)
}

// Sentiment returns the model's sentiment assessment as raw text.
func (a *Analyzer) Sentiment(ctx context.Context, text string) (string, error) {
	text = a.truncate(ctx, text)
	return a.generate(ctx,
		"You are an expert in sentiment analysis. Provide detailed and accurate analysis.",
		SentimentPrompt(text),
	)
}

// Entities returns named entities found in the text as raw text.
func (a *Analyzer) Entities(ctx context.Context, text string) (string, error) {
	text = a.truncate(ctx, text)
	return a.generate(ctx,
		"You are an expert in named entity recognition. Extract entities accurately.",
		EntitiesPrompt(text),
	)
}

// Classify assigns the text to one of the given categories.
func (a *Analyzer) Classify(ctx context.Context, text string, categories []string) (string, error) {
	if len(categories) == 0 {
		return "", webscraper.Errorf(webscraper.EINVALID, "at least one category required")
	}

	text = a.truncate(ctx, text)
	return a.generate(ctx,
		"You are an expert content classifier. Provide accurate classifications.",
		ClassifyPrompt(text, categories),
	)
}

// Keywords extracts up to n key terms and phrases.
func (a *Analyzer) Keywords(ctx context.Context, text string, n int) ([]string, error) {
	text = a.truncate(ctx, text)
	raw, err := a.generate(ctx,
		"You are an expert in keyword extraction. Identify the most relevant terms.",
		KeywordsPrompt(text, n),
	)
	if err != nil {
		return nil, err
	}
	return ParseKeywords(raw, n), nil
}

// generate makes a single GenerateContent call and returns the trimmed text.
func (a *Analyzer) generate(ctx context.Context, system, prompt string) (string, error) {
	if a.client == nil {
		return "", webscraper.Errorf(webscraper.EUNAVAILABLE, "Gemini client not configured: set GEMINI_API_KEY")
	}

	temp := float32(defaultTemperature)
	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: system}},
		},
		Temperature:     &temp,
		MaxOutputTokens: defaultOutputTokens,
	}

	result, err := a.client.Models.GenerateContent(ctx, a.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		config,
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", webscraper.Errorf(webscraper.EINTERNAL, "gemini returned nil result")
	}

	return strings.TrimSpace(result.Text()), nil
}

// truncate trims text to the configured token budget. The cut is proportional
// to the token overrun, which is close enough for a prompt input guard.
// Counting failures leave the text untouched.
func (a *Analyzer) truncate(ctx context.Context, text string) string {
	if a.tokens == nil || a.maxInputTokens <= 0 {
		return text
	}

	count, err := a.tokens.CountTokens(ctx, text)
	if err != nil || count <= a.maxInputTokens {
		return text
	}

	keep := len(text) * a.maxInputTokens / count
	if keep <= 0 || keep >= len(text) {
		return text
	}
	return text[:keep]
}

// SummaryPrompt builds the summarization prompt.
func SummaryPrompt(text string, maxWords int) string {
	return fmt.Sprintf("Please summarize the following text in approximately %d words:\n\n%s", maxWords, text)
}

// SentimentPrompt builds the sentiment analysis prompt.
func SentimentPrompt(text string) string {
	return "Analyze the sentiment of the following text.\n" +
		"Provide:\n" +
		"1. Overall sentiment (positive/negative/neutral)\n" +
		"2. Confidence score (0-1)\n" +
		"3. Key phrases that indicate the sentiment\n\n" +
		"Text: " + text
}

// EntitiesPrompt builds the named entity extraction prompt.
func EntitiesPrompt(text string) string {
	return "Extract and categorize the following entities from the text:\n" +
		"- People (names of persons)\n" +
		"- Organizations (companies, institutions)\n" +
		"- Locations (cities, countries)\n" +
		"- Dates (any date references)\n" +
		"- Products (product names)\n\n" +
		"Text: " + text + "\n\n" +
		"Return the results with entity types as headings and one entity per line."
}

// ClassifyPrompt builds the classification prompt.
func ClassifyPrompt(text string, categories []string) string {
	return fmt.Sprintf("Classify the following text into one of these categories: %s\n\n"+
		"Text: %s\n\n"+
		"Provide the most appropriate category and a confidence score (0-1).",
		strings.Join(categories, ", "), text)
}

// KeywordsPrompt builds the keyword extraction prompt.
func KeywordsPrompt(text string, n int) string {
	return fmt.Sprintf("Extract the %d most important keywords or key phrases from the following text.\n"+
		"Return them as a comma-separated list.\n\n"+
		"Text: %s", n, text)
}

// ParseKeywords splits a comma-separated model response into at most n
// trimmed, non-empty keywords.
func ParseKeywords(raw string, n int) []string {
	var keywords []string
	for _, k := range strings.Split(raw, ",") {
		k = strings.TrimSpace(k)
		if k == "" {
			continue
		}
		keywords = append(keywords, k)
		if len(keywords) == n {
			break
		}
	}
	return keywords
}
