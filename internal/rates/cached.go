package rates

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"time"

	"github.com/iagocanalejas/richjet/internal/repository"
)

// Source is anything that can produce a conversion rate for a currency pair.
type Source interface {
	Rate(ctx context.Context, from, to string) (float64, error)
}

// CachedSource puts a daily persistent cache in front of another Source.
// Rates move slowly enough that one figure per pair per day is plenty, and
// the cache keeps restarts from burning through the provider's request quota.
type CachedSource struct {
	source Source
	repo   *repository.RateRepository
	now    func() time.Time
}

// NewCachedSource creates a CachedSource backed by the exchange_rate table.
func NewCachedSource(source Source, repo *repository.RateRepository) *CachedSource {
	return &CachedSource{
		source: source,
		repo:   repo,
		now:    time.Now,
	}
}

// Rate returns today's cached rate for the pair, fetching and storing it on a
// cache miss. A failed store is logged but does not fail the lookup.
func (c *CachedSource) Rate(ctx context.Context, from, to string) (float64, error) {
	day := c.now().UTC()

	rate, err := c.repo.GetRate(ctx, from, to, day)
	if err == nil {
		return rate, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		log.Printf("exchange rate cache lookup failed for %s/%s: %v", from, to, err)
	}

	rate, err = c.source.Rate(ctx, from, to)
	if err != nil {
		return 0, err
	}

	if err := c.repo.StoreRate(ctx, from, to, day, rate); err != nil {
		log.Printf("failed to cache exchange rate %s/%s: %v", from, to, err)
	}
	return rate, nil
}
