package webscraper

import "context"

// Default parameters for analysis operations, mirroring the behavior of the
// hosted completion API wrappers.
const (
	// DefaultSummaryWords is the target summary length in words.
	DefaultSummaryWords = 200

	// DefaultKeywordCount is the number of keywords extracted by AnalysisFull.
	DefaultKeywordCount = 10

	// truncationMultiplier converts a word budget into a byte budget for the
	// truncation fallback used when summarization fails.
	truncationMultiplier = 5
)

// AnalysisKind selects which analysis operations to run.
type AnalysisKind string

// Supported analysis kinds.
const (
	AnalysisFull      AnalysisKind = "full"
	AnalysisSummary   AnalysisKind = "summary"
	AnalysisSentiment AnalysisKind = "sentiment"
	AnalysisEntities  AnalysisKind = "entities"
)

// ParseAnalysisKind validates a user-supplied analysis kind.
// Returns EINVALID for unknown kinds.
func ParseAnalysisKind(s string) (AnalysisKind, error) {
	switch AnalysisKind(s) {
	case AnalysisFull, AnalysisSummary, AnalysisSentiment, AnalysisEntities:
		return AnalysisKind(s), nil
	}
	return "", Errorf(EINVALID, "invalid analysis kind %q: must be one of full, summary, sentiment, entities", s)
}

// Analysis holds language-model analysis results for one page.
//
// Sentiment, Entities, and Classification are raw model output passed through
// without schema validation.
type Analysis struct {
	URL            string   `json:"url"`
	Title          string   `json:"title"`
	Summary        string   `json:"summary,omitempty"`
	Sentiment      string   `json:"sentiment,omitempty"`
	Entities       string   `json:"entities,omitempty"`
	Classification string   `json:"classification,omitempty"`
	Keywords       []string `json:"keywords,omitempty"`
}

// Analyzer provides language-model analysis of scraped text.
// Each method is a prompt-templating wrapper around a hosted completion call.
type Analyzer interface {
	// Summarize condenses text to approximately maxWords words.
	// Text already within the budget is returned unchanged without an API call.
	Summarize(ctx context.Context, text string, maxWords int) (string, error)

	// Sentiment returns the model's sentiment assessment as raw text.
	Sentiment(ctx context.Context, text string) (string, error)

	// Entities returns named entities (people, organizations, locations,
	// dates, products) as raw text.
	Entities(ctx context.Context, text string) (string, error)

	// Classify assigns the text to one of the given categories,
	// returning the model's answer as raw text.
	Classify(ctx context.Context, text string, categories []string) (string, error)

	// Keywords extracts up to n key terms and phrases.
	Keywords(ctx context.Context, text string, n int) ([]string, error)
}

// Analyze runs the analysis operations selected by kind against a scraped page.
//
// Individual operation failures degrade rather than abort: a failed summary
// falls back to byte truncation of the source text, and failed sentiment,
// entity, or keyword extraction yields an empty result. A page with no text
// returns an empty Analysis.
func Analyze(ctx context.Context, analyzer Analyzer, page *Page, kind AnalysisKind) (*Analysis, error) {
	if _, err := ParseAnalysisKind(string(kind)); err != nil {
		return nil, err
	}

	result := &Analysis{URL: page.URL, Title: page.Title}
	if page.Text == "" {
		return result, nil
	}

	if kind == AnalysisFull || kind == AnalysisSummary {
		summary, err := analyzer.Summarize(ctx, page.Text, DefaultSummaryWords)
		if err != nil {
			summary = truncateFallback(page.Text, DefaultSummaryWords)
		}
		result.Summary = summary
	}

	if kind == AnalysisFull || kind == AnalysisSentiment {
		sentiment, err := analyzer.Sentiment(ctx, page.Text)
		if err == nil {
			result.Sentiment = sentiment
		}
	}

	if kind == AnalysisFull || kind == AnalysisEntities {
		entities, err := analyzer.Entities(ctx, page.Text)
		if err == nil {
			result.Entities = entities
		}
	}

	if kind == AnalysisFull {
		keywords, err := analyzer.Keywords(ctx, page.Text, DefaultKeywordCount)
		if err == nil {
			result.Keywords = keywords
		}
	}

	return result, nil
}

// truncateFallback truncates text to a byte budget proportional to the word
// budget. Used when summarization fails.
func truncateFallback(text string, maxWords int) string {
	limit := maxWords * truncationMultiplier
	if len(text) <= limit {
		return text
	}
	return text[:limit]
}
