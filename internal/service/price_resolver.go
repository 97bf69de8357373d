package service

import (
	"context"
	"log"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/iagocanalejas/richjet/internal/model"
)

// quoteBatchSize bounds the number of simultaneous outstanding quote requests
// during a prefetch pass.
const quoteBatchSize = 5

// PriceSource provides market quotes for tickers.
type PriceSource interface {
	Quote(ctx context.Context, symbol model.Symbol) (model.Quote, error)
}

// ResolvedPrice is the outcome of resolving a symbol's current price in the
// reporting currency. Known is false when no price could be determined; the
// portfolio still renders such positions with price 0 and a flag.
type ResolvedPrice struct {
	Price  float64
	Manual bool
	Known  bool
}

// PriceResolver resolves the current tradable price of a symbol.
// A manual override always wins and never touches the network; user-created
// symbols and symbols without a source resolve to absent. Fetched quotes are
// cached by ticker for the resolver's lifetime, so repeat resolutions within
// a session are free. The cache is read-mostly and tolerates racing writers
// (last write wins).
type PriceResolver struct {
	source    PriceSource
	converter *CurrencyConverter

	mu     sync.Mutex
	quotes map[string]model.Quote
}

// NewPriceResolver creates a resolver over the given quote source and converter.
func NewPriceResolver(source PriceSource, converter *CurrencyConverter) *PriceResolver {
	return &PriceResolver{
		source:    source,
		converter: converter,
		quotes:    make(map[string]model.Quote),
	}
}

// Resolve returns the symbol's current price in the reporting currency.
func (r *PriceResolver) Resolve(ctx context.Context, symbol model.Symbol) ResolvedPrice {
	if symbol.HasManualPrice() {
		return ResolvedPrice{Price: *symbol.ManualPrice, Manual: true, Known: true}
	}
	if !symbol.Quotable() {
		return ResolvedPrice{}
	}

	quote, ok := r.cached(symbol.Ticker)
	if !ok {
		var err error
		quote, err = r.fetch(ctx, symbol)
		if err != nil {
			log.Printf("quote unavailable for %s: %v", symbol.Ticker, err)
			return ResolvedPrice{}
		}
	}

	currency := quote.Currency
	if currency == "" {
		currency = symbol.Currency
	}
	return ResolvedPrice{Price: r.converter.Convert(ctx, quote.Current, currency), Known: true}
}

// Prefetch warms the quote cache for the given symbols in bounded concurrent
// batches. Symbols with a manual price or without a fetchable source are
// skipped. Individual failures are absorbed: an incomplete cache is safe, the
// affected positions just resolve to price 0 later.
func (r *PriceResolver) Prefetch(ctx context.Context, symbols []model.Symbol) {
	seen := make(map[string]bool)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(quoteBatchSize)
	for _, symbol := range symbols {
		if symbol.HasManualPrice() || !symbol.Quotable() || seen[symbol.Ticker] {
			continue
		}
		seen[symbol.Ticker] = true
		if _, ok := r.cached(symbol.Ticker); ok {
			continue
		}

		symbol := symbol
		g.Go(func() error {
			if _, err := r.fetch(ctx, symbol); err != nil {
				log.Printf("prefetch: quote unavailable for %s: %v", symbol.Ticker, err)
			}
			return nil
		})
	}
	_ = g.Wait()
}

// Invalidate drops every cached quote so the next resolution fetches fresh
// data. Used by the periodic refresh job.
func (r *PriceResolver) Invalidate() {
	r.mu.Lock()
	r.quotes = make(map[string]model.Quote)
	r.mu.Unlock()
}

func (r *PriceResolver) cached(ticker string) (model.Quote, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	quote, ok := r.quotes[ticker]
	return quote, ok
}

func (r *PriceResolver) fetch(ctx context.Context, symbol model.Symbol) (model.Quote, error) {
	quote, err := r.source.Quote(ctx, symbol)
	if err != nil {
		return model.Quote{}, err
	}

	r.mu.Lock()
	r.quotes[symbol.Ticker] = quote
	r.mu.Unlock()
	return quote, nil
}
