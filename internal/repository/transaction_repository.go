package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/iagocanalejas/richjet/internal/model"
)

// TransactionRepository provides data access methods for the transaction
// table. Every read joins the symbol table so callers always receive the
// symbol metadata alongside the ledger entry.
type TransactionRepository struct {
	db *sql.DB
}

// NewTransactionRepository creates a new TransactionRepository with the provided database connection.
func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

const transactionColumns = `
	t.id,
	t.symbol_id,
	t.account_id,
	t.quantity,
	t.price,
	t.commission,
	t.currency,
	t.type,
	t.date,
	t.created_at,
	s.ticker,
	s.name,
	s.display_name,
	s.currency,
	s.source,
	s.security_type,
	s.isin,
	s.picture,
	s.is_user_created,
	s.manual_price
`

// GetTransactions retrieves the full ledger ordered by date ascending, with
// creation time breaking ties so same-day entries replay in insertion order.
func (r *TransactionRepository) GetTransactions(ctx context.Context) ([]model.Transaction, error) {
	transactionQuery := `
		SELECT ` + transactionColumns + `
		FROM "transaction" t
		JOIN symbol s ON t.symbol_id = s.id
		ORDER BY t.date ASC, t.created_at ASC
	`

	rows, err := r.db.QueryContext(ctx, transactionQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to query transaction table: %w", err)
	}
	defer rows.Close()

	transactions := []model.Transaction{}
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, t)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction table: %w", err)
	}

	return transactions, nil
}

// GetTransaction retrieves a single transaction by its ID.
// Returns sql.ErrNoRows when no transaction with that ID exists.
func (r *TransactionRepository) GetTransaction(ctx context.Context, transactionID string) (model.Transaction, error) {
	transactionQuery := `
		SELECT ` + transactionColumns + `
		FROM "transaction" t
		JOIN symbol s ON t.symbol_id = s.id
		WHERE t.id = ?
	`

	row := r.db.QueryRowContext(ctx, transactionQuery, transactionID)
	return scanTransaction(row)
}

// InsertTransaction stores a new transaction.
func (r *TransactionRepository) InsertTransaction(ctx context.Context, t *model.Transaction) error {
	insertQuery := `
		INSERT INTO "transaction" (id, symbol_id, account_id, quantity, price, commission, currency, type, date, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, insertQuery,
		t.ID,
		t.SymbolID,
		nullableString(t.AccountID),
		t.Quantity,
		t.Price,
		t.Commission,
		t.Currency,
		string(t.Type),
		t.Date.Format("2006-01-02"),
		t.CreatedAt.UTC().Format(timeFormat),
	)
	if err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}
	return nil
}

// UpdateTransaction replaces the mutable fields of an existing transaction.
// Returns sql.ErrNoRows when no transaction with that ID exists.
func (r *TransactionRepository) UpdateTransaction(ctx context.Context, t *model.Transaction) error {
	updateQuery := `
		UPDATE "transaction"
		SET symbol_id = ?, account_id = ?, quantity = ?, price = ?, commission = ?, currency = ?, type = ?, date = ?
		WHERE id = ?
	`

	res, err := r.db.ExecContext(ctx, updateQuery,
		t.SymbolID,
		nullableString(t.AccountID),
		t.Quantity,
		t.Price,
		t.Commission,
		t.Currency,
		string(t.Type),
		t.Date.Format("2006-01-02"),
		t.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update transaction: %w", err)
	}
	return requireRowAffected(res)
}

// UpdateAccount reassigns a transaction to a different account.
// Returns sql.ErrNoRows when no transaction with that ID exists.
func (r *TransactionRepository) UpdateAccount(ctx context.Context, transactionID, accountID string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE "transaction" SET account_id = ? WHERE id = ?`,
		nullableString(accountID), transactionID,
	)
	if err != nil {
		return fmt.Errorf("failed to reassign transaction: %w", err)
	}
	return requireRowAffected(res)
}

// DeleteTransaction removes a transaction by its ID.
// Returns sql.ErrNoRows when no transaction with that ID exists.
func (r *TransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM "transaction" WHERE id = ?`, transactionID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	return requireRowAffected(res)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTransaction(row rowScanner) (model.Transaction, error) {
	var t model.Transaction
	var dateStr, createdAtStr string
	var accountID sql.NullString
	var manualPrice sql.NullFloat64

	err := row.Scan(
		&t.ID,
		&t.SymbolID,
		&accountID,
		&t.Quantity,
		&t.Price,
		&t.Commission,
		&t.Currency,
		&t.Type,
		&dateStr,
		&createdAtStr,
		&t.Symbol.Ticker,
		&t.Symbol.Name,
		&t.Symbol.DisplayName,
		&t.Symbol.Currency,
		&t.Symbol.Source,
		&t.Symbol.SecurityType,
		&t.Symbol.Isin,
		&t.Symbol.Picture,
		&t.Symbol.IsUserCreated,
		&manualPrice,
	)
	if err == sql.ErrNoRows {
		return model.Transaction{}, err
	}
	if err != nil {
		return model.Transaction{}, fmt.Errorf("failed to scan transaction table results: %w", err)
	}

	t.Symbol.ID = t.SymbolID
	if accountID.Valid {
		t.AccountID = accountID.String
	}
	if manualPrice.Valid {
		price := manualPrice.Float64
		t.Symbol.ManualPrice = &price
	}

	t.Date, err = ParseTime(dateStr)
	if err != nil || t.Date.IsZero() {
		return model.Transaction{}, fmt.Errorf("failed to parse date: %w", err)
	}
	t.CreatedAt, err = ParseTime(createdAtStr)
	if err != nil || t.CreatedAt.IsZero() {
		return model.Transaction{}, fmt.Errorf("failed to parse date: %w", err)
	}

	return t, nil
}

func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func requireRowAffected(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

const timeFormat = "2006-01-02T15:04:05Z07:00"
