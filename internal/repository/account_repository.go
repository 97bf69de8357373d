package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/iagocanalejas/richjet/internal/model"
)

// AccountRepository provides data access methods for the account table.
type AccountRepository struct {
	db *sql.DB
}

// NewAccountRepository creates a new AccountRepository with the provided database connection.
func NewAccountRepository(db *sql.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

// GetAccounts retrieves all accounts ordered by name.
func (r *AccountRepository) GetAccounts(ctx context.Context) ([]model.Account, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, account_type, currency, balance
		FROM account
		ORDER BY name ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query account table: %w", err)
	}
	defer rows.Close()

	accounts := []model.Account{}
	for rows.Next() {
		var a model.Account
		if err := rows.Scan(&a.ID, &a.Name, &a.AccountType, &a.Currency, &a.Balance); err != nil {
			return nil, fmt.Errorf("failed to scan account table results: %w", err)
		}
		accounts = append(accounts, a)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account table: %w", err)
	}

	return accounts, nil
}

// GetAccount retrieves a single account by its ID.
// Returns sql.ErrNoRows when no account with that ID exists.
func (r *AccountRepository) GetAccount(ctx context.Context, accountID string) (model.Account, error) {
	var a model.Account
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, account_type, currency, balance
		FROM account
		WHERE id = ?
	`, accountID).Scan(&a.ID, &a.Name, &a.AccountType, &a.Currency, &a.Balance)
	if err == sql.ErrNoRows {
		return model.Account{}, err
	}
	if err != nil {
		return model.Account{}, fmt.Errorf("failed to scan account table results: %w", err)
	}
	return a, nil
}

// InsertAccount stores a new account.
func (r *AccountRepository) InsertAccount(ctx context.Context, a *model.Account) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO account (id, name, account_type, currency, balance)
		VALUES (?, ?, ?, ?, ?)
	`, a.ID, a.Name, string(a.AccountType), a.Currency, a.Balance)
	if err != nil {
		return fmt.Errorf("failed to insert account: %w", err)
	}
	return nil
}

// UpdateAccount replaces the mutable fields of an existing account.
// Returns sql.ErrNoRows when no account with that ID exists.
func (r *AccountRepository) UpdateAccount(ctx context.Context, a *model.Account) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE account
		SET name = ?, account_type = ?, currency = ?, balance = ?
		WHERE id = ?
	`, a.Name, string(a.AccountType), a.Currency, a.Balance, a.ID)
	if err != nil {
		return fmt.Errorf("failed to update account: %w", err)
	}
	return requireRowAffected(res)
}

// DeleteAccount removes an account. Transactions pointing at it are left in
// place with their account reference cleared so the ledger keeps replaying.
func (r *AccountRepository) DeleteAccount(ctx context.Context, accountID string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `UPDATE "transaction" SET account_id = NULL WHERE account_id = ?`, accountID); err != nil {
		return fmt.Errorf("failed to detach transactions: %w", err)
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM account WHERE id = ?`, accountID)
	if err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}
	if err := requireRowAffected(res); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit account deletion: %w", err)
	}
	return nil
}
