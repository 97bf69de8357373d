package service_test

import (
	"errors"
	"testing"
	"time"

	"github.com/iagocanalejas/richjet/internal/apperrors"
	"github.com/iagocanalejas/richjet/internal/model"
	"github.com/iagocanalejas/richjet/internal/service"
)

func matchInput(entries ...model.Transaction) []model.Transaction {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := range entries {
		entries[i].ID = string(entries[i].Type) + "-" + string(rune('A'+i))
		entries[i].Date = base.AddDate(0, 0, i)
	}
	return entries
}

func buy(quantity, price float64) model.Transaction {
	return model.Transaction{Type: model.TransactionBuy, Quantity: quantity, Price: price}
}

func sell(quantity, price float64) model.Transaction {
	return model.Transaction{Type: model.TransactionSell, Quantity: quantity, Price: price}
}

func dividend(quantity float64) model.Transaction {
	return model.Transaction{Type: model.TransactionDividend, Quantity: quantity}
}

// TestMatchLots_FIFO tests the FIFO lot consumption order.
//
// WHY: The cost basis of a sale depends entirely on which lots it consumes.
// Selling across lot boundaries must take the oldest shares first and leave
// the younger lot partially reduced in place.
func TestMatchLots_FIFO(t *testing.T) {
	t.Run("sell spanning two lots consumes oldest first", func(t *testing.T) {
		// Setup: 5 @ 200, 5 @ 300, then sell 7 @ 400
		transactions := matchInput(buy(5, 200), buy(5, 300), sell(7, 400))

		// Execute
		res, err := service.MatchLots(transactions)

		// Assert
		if err != nil {
			t.Fatalf("MatchLots() returned unexpected error: %v", err)
		}
		if len(res.Sells) != 1 {
			t.Fatalf("Expected 1 realized sale, got %d", len(res.Sells))
		}
		// 5*200 + 2*300 = 1600
		if res.Sells[0].CostBasis != 1600 {
			t.Errorf("Expected 1600 cost basis, got %v", res.Sells[0].CostBasis)
		}
		if len(res.Lots) != 1 {
			t.Fatalf("Expected 1 remaining lot, got %d", len(res.Lots))
		}
		if res.Lots[0].Quantity != 3 || res.Lots[0].Price != 300 {
			t.Errorf("Expected remaining lot 3 @ 300, got %v @ %v", res.Lots[0].Quantity, res.Lots[0].Price)
		}
		if res.Quantity != 3 {
			t.Errorf("Expected quantity 3, got %v", res.Quantity)
		}
		// 2500 invested minus 1600 consumed
		if res.CurrentInvested != 900 {
			t.Errorf("Expected current invested 900, got %v", res.CurrentInvested)
		}
		if res.TotalInvested != 2500 {
			t.Errorf("Expected total invested 2500, got %v", res.TotalInvested)
		}
		if res.TotalRetrieved != 2800 {
			t.Errorf("Expected total retrieved 2800, got %v", res.TotalRetrieved)
		}
		if res.Oversold {
			t.Error("Expected no oversell flag")
		}
	})

	t.Run("sell exactly one lot removes it", func(t *testing.T) {
		transactions := matchInput(buy(5, 200), buy(5, 300), sell(5, 400))

		res, err := service.MatchLots(transactions)
		if err != nil {
			t.Fatalf("MatchLots() returned unexpected error: %v", err)
		}

		if len(res.Lots) != 1 {
			t.Fatalf("Expected 1 remaining lot, got %d", len(res.Lots))
		}
		if res.Lots[0].Price != 300 {
			t.Errorf("Expected the younger lot to survive, got price %v", res.Lots[0].Price)
		}
		if res.Sells[0].CostBasis != 1000 {
			t.Errorf("Expected 1000 cost basis, got %v", res.Sells[0].CostBasis)
		}
	})

	t.Run("replay is deterministic", func(t *testing.T) {
		transactions := matchInput(buy(5, 200), buy(5, 300), sell(7, 400))

		first, err := service.MatchLots(transactions)
		if err != nil {
			t.Fatalf("MatchLots() returned unexpected error: %v", err)
		}
		second, err := service.MatchLots(transactions)
		if err != nil {
			t.Fatalf("MatchLots() returned unexpected error: %v", err)
		}

		if first.Quantity != second.Quantity ||
			first.CurrentInvested != second.CurrentInvested ||
			len(first.Lots) != len(second.Lots) {
			t.Error("Expected identical results from identical input")
		}
	})
}

// TestMatchLots_Dividends tests stock dividend handling.
//
// WHY: A stock dividend adds free shares: quantity grows but invested capital
// must not move, and a later sale of those shares carries zero cost basis.
func TestMatchLots_Dividends(t *testing.T) {
	t.Run("dividend adds zero-price lot", func(t *testing.T) {
		transactions := matchInput(buy(10, 100), dividend(2))

		res, err := service.MatchLots(transactions)
		if err != nil {
			t.Fatalf("MatchLots() returned unexpected error: %v", err)
		}

		if res.Quantity != 12 {
			t.Errorf("Expected quantity 12, got %v", res.Quantity)
		}
		if res.CurrentInvested != 1000 || res.TotalInvested != 1000 {
			t.Errorf("Expected invested capital untouched, got current %v total %v",
				res.CurrentInvested, res.TotalInvested)
		}
		if len(res.Lots) != 2 || res.Lots[1].Price != 0 {
			t.Errorf("Expected a second lot at price 0, got %+v", res.Lots)
		}
	})

	t.Run("selling dividend shares carries zero cost basis", func(t *testing.T) {
		transactions := matchInput(buy(10, 100), dividend(2), sell(12, 150))

		res, err := service.MatchLots(transactions)
		if err != nil {
			t.Fatalf("MatchLots() returned unexpected error: %v", err)
		}

		if res.Sells[0].CostBasis != 1000 {
			t.Errorf("Expected 1000 cost basis, got %v", res.Sells[0].CostBasis)
		}
		if res.Quantity != 0 {
			t.Errorf("Expected fully sold, got quantity %v", res.Quantity)
		}
		if res.TotalRetrieved != 1800 {
			t.Errorf("Expected total retrieved 1800, got %v", res.TotalRetrieved)
		}
	})
}

// TestMatchLots_EdgeCases tests precondition violations and degraded input.
//
// WHY: The matcher is the last line of defense against inconsistent ledgers.
// A sequence not starting with a BUY must be rejected, and an oversell must
// degrade to a flagged result instead of failing the whole computation.
func TestMatchLots_EdgeCases(t *testing.T) {
	t.Run("empty input yields zero result", func(t *testing.T) {
		res, err := service.MatchLots(nil)
		if err != nil {
			t.Fatalf("MatchLots() returned unexpected error: %v", err)
		}
		if res.Quantity != 0 || len(res.Lots) != 0 || len(res.Sells) != 0 {
			t.Errorf("Expected zero result, got %+v", res)
		}
	})

	t.Run("first entry not a BUY is rejected", func(t *testing.T) {
		transactions := matchInput(sell(5, 100), buy(5, 100))

		_, err := service.MatchLots(transactions)
		if !errors.Is(err, apperrors.ErrNoBuyTransaction) {
			t.Errorf("Expected ErrNoBuyTransaction, got %v", err)
		}
	})

	t.Run("oversell flags the result and books zero cost basis remainder", func(t *testing.T) {
		transactions := matchInput(buy(5, 200), sell(8, 300))

		res, err := service.MatchLots(transactions)
		if err != nil {
			t.Fatalf("MatchLots() returned unexpected error: %v", err)
		}

		if !res.Oversold {
			t.Error("Expected oversell flag")
		}
		// Only the 5 held shares contribute cost basis.
		if res.Sells[0].CostBasis != 1000 {
			t.Errorf("Expected 1000 cost basis, got %v", res.Sells[0].CostBasis)
		}
		if res.TotalRetrieved != 2400 {
			t.Errorf("Expected total retrieved 2400, got %v", res.TotalRetrieved)
		}
		if len(res.Lots) != 0 {
			t.Errorf("Expected no remaining lots, got %d", len(res.Lots))
		}
	})

	t.Run("commissions accumulate from buys and sells", func(t *testing.T) {
		transactions := matchInput(
			model.Transaction{Type: model.TransactionBuy, Quantity: 5, Price: 200, Commission: 2},
			model.Transaction{Type: model.TransactionSell, Quantity: 5, Price: 300, Commission: 3},
		)

		res, err := service.MatchLots(transactions)
		if err != nil {
			t.Fatalf("MatchLots() returned unexpected error: %v", err)
		}
		if res.Commission != 5 {
			t.Errorf("Expected commission 5, got %v", res.Commission)
		}
	})
}
