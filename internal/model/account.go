package model

// AccountType distinguishes position-holding accounts from cash-only ones.
type AccountType string

const (
	// AccountTypeBroker accounts accrue symbol positions.
	AccountTypeBroker AccountType = "BROKER"
	// AccountTypeBank accounts hold a cash balance only, never positions.
	AccountTypeBank AccountType = "BANK"
)

// ScopeAll is the synthetic "all accounts" aggregation key.
// It is never persisted; it only widens the position computation to every
// transaction regardless of account.
const ScopeAll = "all"

// Account represents a user-owned sub-ledger.
// Balance is meaningful for BANK accounts only.
type Account struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	AccountType AccountType `json:"account_type"`
	Currency    string      `json:"currency"`
	Balance     float64     `json:"balance"`
}
