package model

import "time"

// TransactionType enumerates the supported ledger event kinds.
type TransactionType string

const (
	TransactionBuy  TransactionType = "BUY"
	TransactionSell TransactionType = "SELL"
	// TransactionDividend is a stock dividend: it adds quantity without cash flow.
	TransactionDividend TransactionType = "DIVIDEND"
	// TransactionDividendCash is a cash-only dividend with no quantity effect.
	TransactionDividendCash TransactionType = "DIVIDEND-CASH"
)

// Valid reports whether the type is one of the supported values.
func (t TransactionType) Valid() bool {
	switch t {
	case TransactionBuy, TransactionSell, TransactionDividend, TransactionDividendCash:
		return true
	}
	return false
}

// MovesShares reports whether the type changes a position's quantity.
func (t TransactionType) MovesShares() bool {
	return t == TransactionBuy || t == TransactionSell || t == TransactionDividend
}

// IsDividend reports whether the type is one of the dividend variants.
// Dividends require a prior BUY for the symbol in scope.
func (t TransactionType) IsDividend() bool {
	return t == TransactionDividend || t == TransactionDividendCash
}

// Transaction is an immutable ledger event against a symbol.
// Quantity is stored as an unsigned magnitude; the sign of its effect is
// determined by Type. AccountID is empty for the default/unassigned bucket.
type Transaction struct {
	ID         string          `json:"id"`
	SymbolID   string          `json:"symbol_id"`
	Symbol     Symbol          `json:"symbol"`
	AccountID  string          `json:"account_id,omitempty"`
	Account    *Account        `json:"account,omitempty"`
	Quantity   float64         `json:"quantity"`
	Price      float64         `json:"price"`
	Commission float64         `json:"commission"`
	Currency   string          `json:"currency"`
	Type       TransactionType `json:"transaction_type"`
	Date       time.Time       `json:"date"`
	CreatedAt  time.Time       `json:"created_at,omitempty"`
}

// InScope reports whether the transaction belongs to the given account scope.
// ScopeAll matches every transaction; a specific account id matches only
// transactions assigned to that account.
func (t Transaction) InScope(scope string) bool {
	return scope == ScopeAll || t.AccountID == scope
}
