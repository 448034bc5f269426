package mock

import (
	"context"

	webscraper "github.com/baluchebolu1975/webscraper-ai"
)

var _ webscraper.ResultService = (*ResultService)(nil)

// ResultService is a mock implementation of webscraper.ResultService.
type ResultService struct {
	CreateResultFn   func(ctx context.Context, page *webscraper.Page) error
	FindResultByIDFn func(ctx context.Context, id string) (*webscraper.Page, error)
	FindResultsFn    func(ctx context.Context, filter webscraper.ResultFilter) ([]*webscraper.Page, error)
}

func (s *ResultService) CreateResult(ctx context.Context, page *webscraper.Page) error {
	return s.CreateResultFn(ctx, page)
}

func (s *ResultService) FindResultByID(ctx context.Context, id string) (*webscraper.Page, error) {
	return s.FindResultByIDFn(ctx, id)
}

func (s *ResultService) FindResults(ctx context.Context, filter webscraper.ResultFilter) ([]*webscraper.Page, error) {
	return s.FindResultsFn(ctx, filter)
}
