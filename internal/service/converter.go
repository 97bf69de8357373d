package service

import (
	"context"
	"log"
	"strings"
	"sync"
)

// RateSource provides conversion rates between two currencies.
type RateSource interface {
	Rate(ctx context.Context, fromCurrency, toCurrency string) (float64, error)
}

// CurrencyConverter converts amounts into the reporting currency.
// Rates are cached for the converter's lifetime; create one per session so
// tests can reset it deterministically. Concurrent batch fetches may race to
// populate the same key, which is safe: the overwrite is idempotent.
type CurrencyConverter struct {
	source    RateSource
	reporting string

	mu    sync.Mutex
	rates map[string]float64
}

// NewCurrencyConverter creates a converter targeting the given reporting currency.
func NewCurrencyConverter(source RateSource, reportingCurrency string) *CurrencyConverter {
	return &CurrencyConverter{
		source:    source,
		reporting: strings.ToUpper(reportingCurrency),
		rates:     make(map[string]float64),
	}
}

// ReportingCurrency returns the currency every conversion targets.
func (c *CurrencyConverter) ReportingCurrency() string {
	return c.reporting
}

// Convert converts an amount denominated in fromCurrency into the reporting
// currency. Same-currency conversions short-circuit to rate 1 without
// consulting the source. An unavailable rate degrades to 1.0 (no conversion)
// rather than failing the computation.
func (c *CurrencyConverter) Convert(ctx context.Context, amount float64, fromCurrency string) float64 {
	return amount * c.rate(ctx, fromCurrency)
}

func (c *CurrencyConverter) rate(ctx context.Context, fromCurrency string) float64 {
	fromCurrency = strings.ToUpper(fromCurrency)
	if fromCurrency == "" || fromCurrency == c.reporting {
		return 1.0
	}

	c.mu.Lock()
	rate, ok := c.rates[fromCurrency]
	c.mu.Unlock()
	if ok {
		return rate
	}

	rate, err := c.source.Rate(ctx, fromCurrency, c.reporting)
	if err != nil {
		log.Printf("conversion rate %s->%s unavailable, falling back to 1.0: %v", fromCurrency, c.reporting, err)
		rate = 1.0
	}

	c.mu.Lock()
	c.rates[fromCurrency] = rate
	c.mu.Unlock()
	return rate
}
