package testutil

import (
	"context"
	"fmt"
	"sync"

	"github.com/iagocanalejas/richjet/internal/model"
)

// FakePriceSource is an in-memory quote source for testing. Quotes are keyed
// by ticker; unknown tickers return an error like a real provider would.
//
// Example usage:
//
//	quotes := testutil.NewFakePriceSource()
//	quotes.Set("AAPL", model.Quote{Current: 190.5, Currency: "USD"})
type FakePriceSource struct {
	mu     sync.Mutex
	quotes map[string]model.Quote
	calls  int
}

// NewFakePriceSource creates an empty FakePriceSource.
func NewFakePriceSource() *FakePriceSource {
	return &FakePriceSource{quotes: make(map[string]model.Quote)}
}

// Set registers the quote returned for a ticker.
func (f *FakePriceSource) Set(ticker string, quote model.Quote) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.quotes[ticker] = quote
}

// Quote implements service.PriceSource.
func (f *FakePriceSource) Quote(_ context.Context, symbol model.Symbol) (model.Quote, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++

	quote, ok := f.quotes[symbol.Ticker]
	if !ok {
		return model.Quote{}, fmt.Errorf("no quote data for symbol %s", symbol.Ticker)
	}
	return quote, nil
}

// Calls returns how many quote lookups were made, cached hits excluded.
func (f *FakePriceSource) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// FakeRateSource is an in-memory conversion rate source for testing. Rates
// are keyed by "FROM/TO"; unknown pairs return an error so tests can exercise
// the 1.0 fallback.
//
// Example usage:
//
//	rates := testutil.NewFakeRateSource()
//	rates.Set("USD", "EUR", 0.9)
type FakeRateSource struct {
	mu    sync.Mutex
	rates map[string]float64
	calls int
}

// NewFakeRateSource creates an empty FakeRateSource.
func NewFakeRateSource() *FakeRateSource {
	return &FakeRateSource{rates: make(map[string]float64)}
}

// Set registers the rate returned for a currency pair.
func (f *FakeRateSource) Set(from, to string, rate float64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rates[from+"/"+to] = rate
}

// Rate implements service.RateSource.
func (f *FakeRateSource) Rate(_ context.Context, from, to string) (float64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++

	rate, ok := f.rates[from+"/"+to]
	if !ok {
		return 0, fmt.Errorf("no rate for %s/%s", from, to)
	}
	return rate, nil
}

// Calls returns how many rate lookups were made, cached hits excluded.
func (f *FakeRateSource) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}
