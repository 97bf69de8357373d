package model

import "time"

// Lot is an open buy (or stock dividend) awaiting FIFO consumption.
// Quantity is the remaining unsold share count; Price is the original unit
// price (0 for dividend shares). Lots belong to exactly one position.
type Lot struct {
	TransactionID string    `json:"transaction_id"`
	Date          time.Time `json:"date"`
	Quantity      float64   `json:"quantity"`
	Price         float64   `json:"price"`
}

// RealizedSale is a SELL annotated with the FIFO cost basis of the shares
// it consumed.
type RealizedSale struct {
	TransactionID string    `json:"transaction_id"`
	Date          time.Time `json:"date"`
	Quantity      float64   `json:"quantity"`
	Price         float64   `json:"price"`
	Commission    float64   `json:"commission"`
	CostBasis     float64   `json:"cost_basis"`
}

// Position is one symbol within one account scope, fully derived from the
// transaction history plus the current resolved price. Positions are never
// stored; each computation pass returns a fresh slice.
//
// A fully sold position is retained with Quantity 0 so realized results stay
// visible; such positions sort after open ones.
type Position struct {
	SymbolID    string `json:"symbol_id"`
	Ticker      string `json:"ticker"`
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	Currency    string `json:"currency"`
	Picture     string `json:"picture,omitempty"`

	Quantity     float64 `json:"quantity"`
	CurrentPrice float64 `json:"current_price"`
	// ManualPrice marks CurrentPrice as a user-entered override.
	ManualPrice bool `json:"manual_price"`
	// PriceUnavailable marks a position whose quote could not be resolved;
	// CurrentPrice is 0 in that case and the computation carried on.
	PriceUnavailable bool `json:"price_unavailable,omitempty"`

	CurrentInvested float64 `json:"current_invested"`
	TotalInvested   float64 `json:"total_invested"`
	TotalRetrieved  float64 `json:"total_retrieved"`
	Commission      float64 `json:"commission"`

	// Oversold marks a data-integrity condition: a SELL exceeded the open
	// lots and the unmatched remainder was booked with zero cost basis.
	Oversold bool `json:"oversold,omitempty"`

	Lots  []Lot          `json:"lots"`
	Sells []RealizedSale `json:"sells"`
}

// Closed reports whether the position has been fully sold. An oversold
// position can end up slightly negative; it counts as closed too.
func (p Position) Closed() bool {
	return p.Quantity <= 0
}

// PortfolioMetrics are the portfolio-level scalars derived from a position
// list plus cash dividends and savings balances. All monetary values are in
// the reporting currency.
type PortfolioMetrics struct {
	TotalInvested         float64 `json:"total_invested"`
	PortfolioCurrentValue float64 `json:"portfolio_current_value"`
	SavingAccountsValue   float64 `json:"saving_accounts_value"`
	ClosedPositions       float64 `json:"closed_positions"`
	CashDividends         float64 `json:"cash_dividends"`
	Rentability           float64 `json:"rentability"`
}
