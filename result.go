package webscraper

import "context"

// ResultService is an append-only archive of scrape results.
//
// The archive is a plain history: inserts and lookups only, no deduplication
// and no cross-record invariants.
type ResultService interface {
	// CreateResult archives a scraped page, assigning its ID and,
	// if unset, its fetch timestamp.
	CreateResult(ctx context.Context, page *Page) error

	// FindResultByID retrieves an archived page by ID.
	// Returns ENOTFOUND if no such result exists.
	FindResultByID(ctx context.Context, id string) (*Page, error)

	// FindResults retrieves archived pages matching the filter,
	// newest first.
	FindResults(ctx context.Context, filter ResultFilter) ([]*Page, error)
}

// ResultFilter represents a filter for FindResults.
type ResultFilter struct {
	ID  *string `json:"id"`
	URL *string `json:"url"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
