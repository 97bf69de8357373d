package testutil

import (
	"database/sql"
	"testing"
	"time"

	"github.com/iagocanalejas/richjet/internal/model"
)

// SymbolBuilder provides a fluent interface for creating test symbols.
//
// Example usage:
//
//	// Simple creation with defaults
//	symbol := testutil.NewSymbol().Build(t, db)
//
//	// Customized symbol
//	symbol := testutil.NewSymbol().
//	    WithTicker("AAPL").
//	    WithCurrency("USD").
//	    WithManualPrice(190.5).
//	    Build(t, db)
type SymbolBuilder struct {
	ID            string
	Ticker        string
	Name          string
	DisplayName   string
	Currency      string
	Source        string
	SecurityType  string
	Isin          string
	Picture       string
	IsUserCreated bool
	ManualPrice   *float64
}

// NewSymbol creates a SymbolBuilder with sensible defaults.
func NewSymbol() *SymbolBuilder {
	return &SymbolBuilder{
		ID:           MakeID(),
		Ticker:       MakeTicker("TEST"),
		Name:         MakeSymbolName("Test Symbol"),
		Currency:     "EUR",
		Source:       "finnhub",
		SecurityType: "stock",
	}
}

// WithID sets a custom ID.
func (b *SymbolBuilder) WithID(id string) *SymbolBuilder {
	b.ID = id
	return b
}

// WithTicker sets a custom ticker.
func (b *SymbolBuilder) WithTicker(ticker string) *SymbolBuilder {
	b.Ticker = ticker
	return b
}

// WithName sets a custom name.
func (b *SymbolBuilder) WithName(name string) *SymbolBuilder {
	b.Name = name
	return b
}

// WithDisplayName sets a custom display name.
func (b *SymbolBuilder) WithDisplayName(name string) *SymbolBuilder {
	b.DisplayName = name
	return b
}

// WithCurrency sets a custom currency.
func (b *SymbolBuilder) WithCurrency(currency string) *SymbolBuilder {
	b.Currency = currency
	return b
}

// WithIsin sets a custom ISIN.
func (b *SymbolBuilder) WithIsin(isin string) *SymbolBuilder {
	b.Isin = isin
	return b
}

// WithManualPrice sets a manual price override.
func (b *SymbolBuilder) WithManualPrice(price float64) *SymbolBuilder {
	b.ManualPrice = &price
	return b
}

// UserCreated marks the symbol as user-created, without a quote source.
func (b *SymbolBuilder) UserCreated() *SymbolBuilder {
	b.Source = ""
	b.IsUserCreated = true
	return b
}

// Build creates the symbol in the database and returns it.
func (b *SymbolBuilder) Build(t *testing.T, db *sql.DB) model.Symbol {
	t.Helper()

	query := `
		INSERT INTO symbol (id, ticker, name, display_name, currency, source, security_type, isin, picture, is_user_created, manual_price)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	var manualPrice any
	if b.ManualPrice != nil {
		manualPrice = *b.ManualPrice
	}
	_, err := db.Exec(query, b.ID, b.Ticker, b.Name, b.DisplayName, b.Currency, b.Source,
		b.SecurityType, b.Isin, b.Picture, b.IsUserCreated, manualPrice)
	if err != nil {
		t.Fatalf("Failed to create test symbol: %v", err)
	}

	return model.Symbol{
		ID:            b.ID,
		Ticker:        b.Ticker,
		Name:          b.Name,
		DisplayName:   b.DisplayName,
		Currency:      b.Currency,
		Source:        b.Source,
		SecurityType:  b.SecurityType,
		Isin:          b.Isin,
		Picture:       b.Picture,
		IsUserCreated: b.IsUserCreated,
		ManualPrice:   b.ManualPrice,
	}
}

// AccountBuilder provides a fluent interface for creating test accounts.
//
// Example usage:
//
//	broker := testutil.NewAccount().WithName("Degiro").Build(t, db)
//	savings := testutil.NewAccount().Bank().WithBalance(1000).Build(t, db)
type AccountBuilder struct {
	ID          string
	Name        string
	AccountType model.AccountType
	Currency    string
	Balance     float64
}

// NewAccount creates an AccountBuilder with sensible defaults.
func NewAccount() *AccountBuilder {
	return &AccountBuilder{
		ID:          MakeID(),
		Name:        MakeAccountName("Test Account"),
		AccountType: model.AccountTypeBroker,
		Currency:    "EUR",
	}
}

// WithID sets a custom ID.
func (b *AccountBuilder) WithID(id string) *AccountBuilder {
	b.ID = id
	return b
}

// WithName sets a custom name.
func (b *AccountBuilder) WithName(name string) *AccountBuilder {
	b.Name = name
	return b
}

// WithCurrency sets a custom currency.
func (b *AccountBuilder) WithCurrency(currency string) *AccountBuilder {
	b.Currency = currency
	return b
}

// WithBalance sets a custom balance.
func (b *AccountBuilder) WithBalance(balance float64) *AccountBuilder {
	b.Balance = balance
	return b
}

// Bank marks the account as a savings (BANK) account.
func (b *AccountBuilder) Bank() *AccountBuilder {
	b.AccountType = model.AccountTypeBank
	return b
}

// Build creates the account in the database and returns it.
func (b *AccountBuilder) Build(t *testing.T, db *sql.DB) model.Account {
	t.Helper()

	query := `
		INSERT INTO account (id, name, account_type, currency, balance)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := db.Exec(query, b.ID, b.Name, string(b.AccountType), b.Currency, b.Balance)
	if err != nil {
		t.Fatalf("Failed to create test account: %v", err)
	}

	return model.Account{
		ID:          b.ID,
		Name:        b.Name,
		AccountType: b.AccountType,
		Currency:    b.Currency,
		Balance:     b.Balance,
	}
}

// TransactionBuilder provides a fluent interface for creating test transactions.
//
// Example usage:
//
//	testutil.NewTransaction(symbol.ID).
//	    Buy(5, 200).
//	    WithDate("2024-01-02").
//	    WithAccount(account.ID).
//	    Build(t, db)
type TransactionBuilder struct {
	ID         string
	SymbolID   string
	AccountID  string
	Quantity   float64
	Price      float64
	Commission float64
	Currency   string
	Type       model.TransactionType
	Date       time.Time
	CreatedAt  time.Time
}

// NewTransaction creates a TransactionBuilder with sensible defaults: a BUY
// of one share at price 100 dated today.
func NewTransaction(symbolID string) *TransactionBuilder {
	return &TransactionBuilder{
		ID:        MakeID(),
		SymbolID:  symbolID,
		Quantity:  1,
		Price:     100,
		Currency:  "EUR",
		Type:      model.TransactionBuy,
		Date:      time.Now().UTC().Truncate(24 * time.Hour),
		CreatedAt: time.Now().UTC(),
	}
}

// WithID sets a custom ID.
func (b *TransactionBuilder) WithID(id string) *TransactionBuilder {
	b.ID = id
	return b
}

// WithAccount assigns the transaction to an account.
func (b *TransactionBuilder) WithAccount(accountID string) *TransactionBuilder {
	b.AccountID = accountID
	return b
}

// WithDate sets the transaction date from a YYYY-MM-DD string.
func (b *TransactionBuilder) WithDate(date string) *TransactionBuilder {
	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic("invalid test date: " + date)
	}
	b.Date = parsed
	return b
}

// WithCreatedAt sets the creation timestamp, used to order same-day entries.
func (b *TransactionBuilder) WithCreatedAt(createdAt time.Time) *TransactionBuilder {
	b.CreatedAt = createdAt
	return b
}

// WithCommission sets the commission.
func (b *TransactionBuilder) WithCommission(commission float64) *TransactionBuilder {
	b.Commission = commission
	return b
}

// WithCurrency sets the currency.
func (b *TransactionBuilder) WithCurrency(currency string) *TransactionBuilder {
	b.Currency = currency
	return b
}

// Buy makes the transaction a BUY of the given quantity and price.
func (b *TransactionBuilder) Buy(quantity, price float64) *TransactionBuilder {
	b.Type = model.TransactionBuy
	b.Quantity = quantity
	b.Price = price
	return b
}

// Sell makes the transaction a SELL of the given quantity and price.
func (b *TransactionBuilder) Sell(quantity, price float64) *TransactionBuilder {
	b.Type = model.TransactionSell
	b.Quantity = quantity
	b.Price = price
	return b
}

// Dividend makes the transaction a stock DIVIDEND of the given quantity.
func (b *TransactionBuilder) Dividend(quantity float64) *TransactionBuilder {
	b.Type = model.TransactionDividend
	b.Quantity = quantity
	b.Price = 0
	return b
}

// DividendCash makes the transaction a DIVIDEND-CASH of the given amount.
func (b *TransactionBuilder) DividendCash(amount float64) *TransactionBuilder {
	b.Type = model.TransactionDividendCash
	b.Quantity = 0
	b.Price = amount
	return b
}

// Build creates the transaction in the database and returns it.
func (b *TransactionBuilder) Build(t *testing.T, db *sql.DB) model.Transaction {
	t.Helper()

	query := `
		INSERT INTO "transaction" (id, symbol_id, account_id, quantity, price, commission, currency, type, date, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	var accountID any
	if b.AccountID != "" {
		accountID = b.AccountID
	}
	_, err := db.Exec(query, b.ID, b.SymbolID, accountID, b.Quantity, b.Price, b.Commission,
		b.Currency, string(b.Type), b.Date.Format("2006-01-02"), b.CreatedAt.Format(time.RFC3339))
	if err != nil {
		t.Fatalf("Failed to create test transaction: %v", err)
	}

	return model.Transaction{
		ID:         b.ID,
		SymbolID:   b.SymbolID,
		AccountID:  b.AccountID,
		Quantity:   b.Quantity,
		Price:      b.Price,
		Commission: b.Commission,
		Currency:   b.Currency,
		Type:       b.Type,
		Date:       b.Date,
		CreatedAt:  b.CreatedAt,
	}
}
