package service

import (
	"context"
	"log"
	"sort"

	"github.com/iagocanalejas/richjet/internal/apperrors"
	"github.com/iagocanalejas/richjet/internal/model"
)

// PortfolioService derives positions and portfolio metrics from the
// transaction ledger. It holds no ledger state of its own: every computation
// is a pure function of the transactions handed in plus the price snapshot
// held by the resolver, so recomputing with identical inputs yields identical
// output and a stale result can simply be discarded.
type PortfolioService struct {
	resolver  *PriceResolver
	converter *CurrencyConverter
}

// NewPortfolioService creates a new PortfolioService with the provided
// resolver and converter dependencies.
func NewPortfolioService(resolver *PriceResolver, converter *CurrencyConverter) *PortfolioService {
	return &PortfolioService{
		resolver:  resolver,
		converter: converter,
	}
}

// ComputePositions builds the position list for an account scope.
//
// Transactions may arrive in any order; they are partitioned by symbol id
// (stable under ticker renames), sorted ascending by date with ties broken by
// insertion order, and replayed through FIFO lot matching per symbol.
// DIVIDEND-CASH entries carry no quantity effect and are excluded here; use
// CashDividends for their total. BANK accounts never contribute positions:
// the transaction service refuses to book symbol transactions against them.
//
// A SELL or DIVIDEND that precedes any BUY for its symbol should have been
// rejected at the validation boundary; if one is present anyway it is skipped
// with a diagnostic rather than failing the whole computation.
//
// The returned slice is a fresh snapshot: open positions first, ordered by
// display name, fully sold positions last in the same order. Callers must
// never mutate a previously returned list.
func (s *PortfolioService) ComputePositions(ctx context.Context, transactions []model.Transaction, scope string) []model.Position {
	inScope := make([]model.Transaction, 0, len(transactions))
	for _, t := range transactions {
		if !t.InScope(scope) || !t.Type.MovesShares() {
			continue
		}
		inScope = append(inScope, t)
	}

	// Stable partition by symbol identity, preserving first-seen order so the
	// date sort below keeps insertion order as its tie-breaker.
	order := make([]string, 0)
	partitions := make(map[string][]model.Transaction)
	for _, t := range inScope {
		if _, ok := partitions[t.SymbolID]; !ok {
			order = append(order, t.SymbolID)
		}
		partitions[t.SymbolID] = append(partitions[t.SymbolID], t)
	}

	// Warm the quote cache in bounded batches before replaying, so position
	// creation does not fetch serially.
	s.resolver.Prefetch(ctx, symbolsOf(inScope))

	positions := make([]model.Position, 0, len(order))
	for _, symbolID := range order {
		partition := partitions[symbolID]
		sort.SliceStable(partition, func(i, j int) bool {
			return partition[i].Date.Before(partition[j].Date)
		})

		// Drop anything preceding the first BUY; the validation boundary
		// rejects these, so finding one means inconsistent stored data.
		first := firstBuy(partition)
		if first > 0 {
			for _, t := range partition[:first] {
				log.Printf("%v: skipping %s for %s: precedes first BUY", apperrors.ErrDataInconsistency, t.Type, t.Symbol.Ticker)
			}
		}
		if first == len(partition) {
			continue
		}
		partition = partition[first:]

		matched, err := MatchLots(partition)
		if err != nil {
			log.Printf("lot matching failed for %s: %v", symbolID, err)
			continue
		}
		if matched.Oversold {
			log.Printf("%v: position %s booked unmatched sell quantity with zero cost basis", apperrors.ErrOversoldPosition, symbolID)
		}

		// Symbol metadata travels with the transactions; the latest entry
		// carries the freshest rename/manual-price state.
		symbol := partition[len(partition)-1].Symbol
		resolved := s.resolver.Resolve(ctx, symbol)

		positions = append(positions, model.Position{
			SymbolID:         symbolID,
			Ticker:           symbol.Ticker,
			Name:             symbol.Name,
			DisplayName:      symbol.DisplayName,
			Currency:         symbol.Currency,
			Picture:          symbol.Picture,
			Quantity:         matched.Quantity,
			CurrentPrice:     resolved.Price,
			ManualPrice:      resolved.Manual,
			PriceUnavailable: !resolved.Known,
			CurrentInvested:  matched.CurrentInvested,
			TotalInvested:    matched.TotalInvested,
			TotalRetrieved:   matched.TotalRetrieved,
			Commission:       matched.Commission,
			Oversold:         matched.Oversold,
			Lots:             matched.Lots,
			Sells:            matched.Sells,
		})
	}

	// Open positions by display name, fully sold positions last.
	sort.SliceStable(positions, func(i, j int) bool {
		if positions[i].Closed() != positions[j].Closed() {
			return !positions[i].Closed()
		}
		return displayName(positions[i]) < displayName(positions[j])
	})

	return positions
}

// CashDividends totals the DIVIDEND-CASH amounts within an account scope.
// Cash dividends never touch positions; they only feed the metrics.
func (s *PortfolioService) CashDividends(transactions []model.Transaction, scope string) float64 {
	var total float64
	for _, t := range transactions {
		if t.Type == model.TransactionDividendCash && t.InScope(scope) {
			total += t.Price
		}
	}
	return total
}

func firstBuy(transactions []model.Transaction) int {
	for i, t := range transactions {
		if t.Type == model.TransactionBuy {
			return i
		}
	}
	return len(transactions)
}

func symbolsOf(transactions []model.Transaction) []model.Symbol {
	symbols := make([]model.Symbol, 0, len(transactions))
	for _, t := range transactions {
		symbols = append(symbols, t.Symbol)
	}
	return symbols
}

func displayName(p model.Position) string {
	if p.DisplayName != "" {
		return p.DisplayName
	}
	return p.Ticker
}
