package mock

import (
	"context"

	webscraper "github.com/baluchebolu1975/webscraper-ai"
)

var _ webscraper.SitemapService = (*SitemapService)(nil)

// SitemapService is a mock implementation of webscraper.SitemapService.
type SitemapService struct {
	DiscoverURLsFn func(ctx context.Context, baseURL string, filter *webscraper.URLFilter) ([]string, error)
}

func (s *SitemapService) DiscoverURLs(ctx context.Context, baseURL string, filter *webscraper.URLFilter) ([]string, error) {
	return s.DiscoverURLsFn(ctx, baseURL, filter)
}
