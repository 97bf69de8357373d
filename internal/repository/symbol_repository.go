package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/iagocanalejas/richjet/internal/model"
)

// SymbolRepository provides data access methods for the symbol table,
// including the manual price override column.
type SymbolRepository struct {
	db *sql.DB
}

// NewSymbolRepository creates a new SymbolRepository with the provided database connection.
func NewSymbolRepository(db *sql.DB) *SymbolRepository {
	return &SymbolRepository{db: db}
}

const symbolColumns = `
	id, ticker, name, display_name, currency, source, security_type, isin, picture, is_user_created, manual_price
`

// GetSymbols retrieves all symbols ordered by ticker.
func (r *SymbolRepository) GetSymbols(ctx context.Context) ([]model.Symbol, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+symbolColumns+`
		FROM symbol
		ORDER BY ticker ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query symbol table: %w", err)
	}
	defer rows.Close()

	symbols := []model.Symbol{}
	for rows.Next() {
		s, err := scanSymbol(rows)
		if err != nil {
			return nil, err
		}
		symbols = append(symbols, s)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating symbol table: %w", err)
	}

	return symbols, nil
}

// GetSymbol retrieves a single symbol by its ID.
// Returns sql.ErrNoRows when no symbol with that ID exists.
func (r *SymbolRepository) GetSymbol(ctx context.Context, symbolID string) (model.Symbol, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+symbolColumns+`
		FROM symbol
		WHERE id = ?
	`, symbolID)
	return scanSymbol(row)
}

// GetSymbolByTicker retrieves a symbol by its (source, ticker) pair.
// Returns sql.ErrNoRows when no such symbol exists.
func (r *SymbolRepository) GetSymbolByTicker(ctx context.Context, source, ticker string) (model.Symbol, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+symbolColumns+`
		FROM symbol
		WHERE source = ? AND ticker = ?
	`, source, ticker)
	return scanSymbol(row)
}

// InsertSymbol stores a new symbol.
func (r *SymbolRepository) InsertSymbol(ctx context.Context, s *model.Symbol) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO symbol (`+symbolColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, s.ID, s.Ticker, s.Name, s.DisplayName, s.Currency, s.Source,
		s.SecurityType, s.Isin, s.Picture, s.IsUserCreated, nullableFloat(s.ManualPrice))
	if err != nil {
		return fmt.Errorf("failed to insert symbol: %w", err)
	}
	return nil
}

// UpdateSymbol replaces the mutable fields of an existing symbol.
// Returns sql.ErrNoRows when no symbol with that ID exists.
func (r *SymbolRepository) UpdateSymbol(ctx context.Context, s *model.Symbol) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE symbol
		SET ticker = ?, name = ?, display_name = ?, currency = ?, source = ?,
			security_type = ?, isin = ?, picture = ?, is_user_created = ?, manual_price = ?
		WHERE id = ?
	`, s.Ticker, s.Name, s.DisplayName, s.Currency, s.Source,
		s.SecurityType, s.Isin, s.Picture, s.IsUserCreated, nullableFloat(s.ManualPrice), s.ID)
	if err != nil {
		return fmt.Errorf("failed to update symbol: %w", err)
	}
	return requireRowAffected(res)
}

// SetManualPrice stores a manual price override, or clears it when price is nil.
// Returns sql.ErrNoRows when no symbol with that ID exists.
func (r *SymbolRepository) SetManualPrice(ctx context.Context, symbolID string, price *float64) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE symbol SET manual_price = ? WHERE id = ?`,
		nullableFloat(price), symbolID,
	)
	if err != nil {
		return fmt.Errorf("failed to set manual price: %w", err)
	}
	return requireRowAffected(res)
}

func scanSymbol(row rowScanner) (model.Symbol, error) {
	var s model.Symbol
	var manualPrice sql.NullFloat64

	err := row.Scan(
		&s.ID,
		&s.Ticker,
		&s.Name,
		&s.DisplayName,
		&s.Currency,
		&s.Source,
		&s.SecurityType,
		&s.Isin,
		&s.Picture,
		&s.IsUserCreated,
		&manualPrice,
	)
	if err == sql.ErrNoRows {
		return model.Symbol{}, err
	}
	if err != nil {
		return model.Symbol{}, fmt.Errorf("failed to scan symbol table results: %w", err)
	}

	if manualPrice.Valid {
		price := manualPrice.Float64
		s.ManualPrice = &price
	}
	return s, nil
}

func nullableFloat(f *float64) any {
	if f == nil {
		return nil
	}
	return *f
}
