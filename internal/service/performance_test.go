package service_test

import (
	"context"
	"testing"

	"github.com/iagocanalejas/richjet/internal/model"
	"github.com/iagocanalejas/richjet/internal/testutil"
)

// TestPortfolioService_ComputeMetrics tests the portfolio-level aggregates.
//
// WHY: The headline numbers must reconcile: invested capital and current
// value count open positions only, closed positions surface as realized
// profit, bank balances add to value but never to invested capital, and
// rentability ties all four together.
func TestPortfolioService_ComputeMetrics(t *testing.T) {
	ctx := context.Background()

	t.Run("aggregates open, closed, savings and dividends", func(t *testing.T) {
		open, closed := eurSymbol("OPEN"), eurSymbol("CLSD")
		quotes := testutil.NewFakePriceSource()
		quotes.Set(open.Ticker, model.Quote{Current: 200, Currency: "EUR"})
		svc := testutil.NewTestPortfolioService(t, quotes, testutil.NewFakeRateSource(), "EUR")

		transactions := ledger(t,
			ledgerEntry{symbol: open, entryType: model.TransactionBuy, quantity: 10, price: 100, date: "2024-01-01"},
			ledgerEntry{symbol: closed, entryType: model.TransactionBuy, quantity: 5, price: 100, date: "2024-01-02"},
			ledgerEntry{symbol: closed, entryType: model.TransactionSell, quantity: 5, price: 200, date: "2024-02-01"},
		)
		positions := svc.ComputePositions(ctx, transactions, model.ScopeAll)

		accounts := []model.Account{
			{ID: testutil.MakeID(), Name: "Savings", AccountType: model.AccountTypeBank, Currency: "EUR", Balance: 50},
			{ID: testutil.MakeID(), Name: "Broker", AccountType: model.AccountTypeBroker, Currency: "EUR", Balance: 9999},
		}

		metrics := svc.ComputeMetrics(ctx, positions, accounts, 10, model.ScopeAll)

		if metrics.TotalInvested != 1000 {
			t.Errorf("Expected invested 1000, got %v", metrics.TotalInvested)
		}
		// 10 shares at 200 plus the savings balance.
		if metrics.PortfolioCurrentValue != 2050 {
			t.Errorf("Expected current value 2050, got %v", metrics.PortfolioCurrentValue)
		}
		// Sold 5 at 200 against 500 committed.
		if metrics.ClosedPositions != 500 {
			t.Errorf("Expected closed positions 500, got %v", metrics.ClosedPositions)
		}
		if metrics.SavingAccountsValue != 50 {
			t.Errorf("Expected savings 50, got %v", metrics.SavingAccountsValue)
		}
		if metrics.CashDividends != 10 {
			t.Errorf("Expected cash dividends 10, got %v", metrics.CashDividends)
		}
		// (2050 + 500 + 10 - 1000) / 1000 * 100
		if metrics.Rentability != 156 {
			t.Errorf("Expected rentability 156, got %v", metrics.Rentability)
		}
	})

	t.Run("partial sell counts realized profit for the open position", func(t *testing.T) {
		aapl := eurSymbol("AAPL")
		quotes := testutil.NewFakePriceSource()
		quotes.Set(aapl.Ticker, model.Quote{Current: 100, Currency: "EUR"})
		svc := testutil.NewTestPortfolioService(t, quotes, testutil.NewFakeRateSource(), "EUR")

		transactions := ledger(t,
			ledgerEntry{symbol: aapl, entryType: model.TransactionBuy, quantity: 10, price: 100, date: "2024-01-01"},
			ledgerEntry{symbol: aapl, entryType: model.TransactionSell, quantity: 4, price: 150, date: "2024-02-01"},
		)
		positions := svc.ComputePositions(ctx, transactions, model.ScopeAll)

		metrics := svc.ComputeMetrics(ctx, positions, nil, 0, model.ScopeAll)

		// 6 shares remain at 100 invested each.
		if metrics.TotalInvested != 600 {
			t.Errorf("Expected invested 600, got %v", metrics.TotalInvested)
		}
		if metrics.PortfolioCurrentValue != 600 {
			t.Errorf("Expected current value 600, got %v", metrics.PortfolioCurrentValue)
		}
		// Retrieved 600 against the 400 recovered from the sold lots.
		if metrics.ClosedPositions != 200 {
			t.Errorf("Expected closed positions 200, got %v", metrics.ClosedPositions)
		}
	})

	t.Run("converts foreign positions and balances to the reporting currency", func(t *testing.T) {
		usd := eurSymbol("USDX")
		usd.Currency = "USD"
		quotes := testutil.NewFakePriceSource()
		quotes.Set(usd.Ticker, model.Quote{Current: 200, Currency: "USD"})
		rates := testutil.NewFakeRateSource()
		rates.Set("USD", "EUR", 0.5)
		svc := testutil.NewTestPortfolioService(t, quotes, rates, "EUR")

		transactions := ledger(t,
			ledgerEntry{symbol: usd, entryType: model.TransactionBuy, quantity: 10, price: 100, date: "2024-01-01"},
		)
		positions := svc.ComputePositions(ctx, transactions, model.ScopeAll)

		accounts := []model.Account{
			{ID: testutil.MakeID(), Name: "US Savings", AccountType: model.AccountTypeBank, Currency: "USD", Balance: 100},
		}

		metrics := svc.ComputeMetrics(ctx, positions, accounts, 0, model.ScopeAll)

		// Invested 1000 USD at 0.5.
		if metrics.TotalInvested != 500 {
			t.Errorf("Expected invested 500, got %v", metrics.TotalInvested)
		}
		// The quote is converted during resolution, so the position value is
		// already in EUR: 10 shares at 100 plus the converted balance.
		if metrics.PortfolioCurrentValue != 1050 {
			t.Errorf("Expected current value 1050, got %v", metrics.PortfolioCurrentValue)
		}
		if metrics.SavingAccountsValue != 50 {
			t.Errorf("Expected savings 50, got %v", metrics.SavingAccountsValue)
		}
	})

	t.Run("scopes bank balances to the requested account", func(t *testing.T) {
		svc := testutil.NewTestPortfolioService(t, testutil.NewFakePriceSource(), testutil.NewFakeRateSource(), "EUR")

		inScope := model.Account{ID: testutil.MakeID(), Name: "Mine", AccountType: model.AccountTypeBank, Currency: "EUR", Balance: 70}
		outOfScope := model.Account{ID: testutil.MakeID(), Name: "Other", AccountType: model.AccountTypeBank, Currency: "EUR", Balance: 30}

		metrics := svc.ComputeMetrics(ctx, nil, []model.Account{inScope, outOfScope}, 0, inScope.ID)

		if metrics.SavingAccountsValue != 70 {
			t.Errorf("Expected only the scoped balance, got %v", metrics.SavingAccountsValue)
		}
		if metrics.PortfolioCurrentValue != 70 {
			t.Errorf("Expected current value 70, got %v", metrics.PortfolioCurrentValue)
		}
	})

	t.Run("rentability stays zero without invested capital", func(t *testing.T) {
		svc := testutil.NewTestPortfolioService(t, testutil.NewFakePriceSource(), testutil.NewFakeRateSource(), "EUR")

		accounts := []model.Account{
			{ID: testutil.MakeID(), Name: "Savings", AccountType: model.AccountTypeBank, Currency: "EUR", Balance: 500},
		}

		metrics := svc.ComputeMetrics(ctx, nil, accounts, 0, model.ScopeAll)

		if metrics.Rentability != 0 {
			t.Errorf("Expected rentability 0 with nothing invested, got %v", metrics.Rentability)
		}
		if metrics.PortfolioCurrentValue != 500 {
			t.Errorf("Expected current value 500, got %v", metrics.PortfolioCurrentValue)
		}
	})

	t.Run("rounds aggregates to cents", func(t *testing.T) {
		aapl := eurSymbol("AAPL")
		quotes := testutil.NewFakePriceSource()
		quotes.Set(aapl.Ticker, model.Quote{Current: 0.3333, Currency: "EUR"})
		svc := testutil.NewTestPortfolioService(t, quotes, testutil.NewFakeRateSource(), "EUR")

		transactions := ledger(t,
			ledgerEntry{symbol: aapl, entryType: model.TransactionBuy, quantity: 3, price: 0.1111, date: "2024-01-01"},
		)
		positions := svc.ComputePositions(ctx, transactions, model.ScopeAll)

		metrics := svc.ComputeMetrics(ctx, positions, nil, 0, model.ScopeAll)

		if metrics.TotalInvested != 0.33 {
			t.Errorf("Expected invested rounded to 0.33, got %v", metrics.TotalInvested)
		}
		if metrics.PortfolioCurrentValue != 1.0 {
			t.Errorf("Expected current value rounded to 1.0, got %v", metrics.PortfolioCurrentValue)
		}
	})
}
