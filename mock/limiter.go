package mock

import (
	"context"

	webscraper "github.com/baluchebolu1975/webscraper-ai"
)

var _ webscraper.Limiter = (*Limiter)(nil)

// Limiter is a mock implementation of webscraper.Limiter.
// An unset WaitFn never blocks.
type Limiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *Limiter) Wait(ctx context.Context, domain string) error {
	if l.WaitFn == nil {
		return nil
	}
	return l.WaitFn(ctx, domain)
}
