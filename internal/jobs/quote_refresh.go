package jobs

import (
	"context"
	"time"

	"github.com/iagocanalejas/richjet/internal/repository"
	"github.com/iagocanalejas/richjet/internal/service"
)

// QuoteRefreshJob periodically drops the cached quotes and fetches fresh ones
// for every quotable symbol, so portfolio requests between runs are served
// from a warm cache.
type QuoteRefreshJob struct {
	resolver   *service.PriceResolver
	symbolRepo *repository.SymbolRepository
	timeout    time.Duration
}

// NewQuoteRefreshJob creates a new quote refresh job.
func NewQuoteRefreshJob(resolver *service.PriceResolver, symbolRepo *repository.SymbolRepository) *QuoteRefreshJob {
	return &QuoteRefreshJob{
		resolver:   resolver,
		symbolRepo: symbolRepo,
		timeout:    2 * time.Minute,
	}
}

// Name returns the job name
func (j *QuoteRefreshJob) Name() string {
	return "quote_refresh"
}

// Run refreshes the quote cache for all symbols.
func (j *QuoteRefreshJob) Run() error {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	symbols, err := j.symbolRepo.GetSymbols(ctx)
	if err != nil {
		return err
	}

	j.resolver.Invalidate()
	j.resolver.Prefetch(ctx, symbols)
	return nil
}
