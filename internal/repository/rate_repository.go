package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// RateRepository caches fetched exchange rates in the exchange_rate table so
// repeated conversions within a day reuse the same figure instead of hitting
// the provider again.
type RateRepository struct {
	db *sql.DB
}

// NewRateRepository creates a new RateRepository with the provided database connection.
func NewRateRepository(db *sql.DB) *RateRepository {
	return &RateRepository{db: db}
}

// GetRate returns the cached rate for a currency pair on the given day.
// Returns sql.ErrNoRows when no rate has been stored for that day.
func (r *RateRepository) GetRate(ctx context.Context, from, to string, day time.Time) (float64, error) {
	var rate float64
	err := r.db.QueryRowContext(ctx, `
		SELECT rate
		FROM exchange_rate
		WHERE from_currency = ? AND to_currency = ? AND date = ?
	`, from, to, day.Format("2006-01-02")).Scan(&rate)
	if err == sql.ErrNoRows {
		return 0, err
	}
	if err != nil {
		return 0, fmt.Errorf("failed to scan exchange_rate table results: %w", err)
	}
	return rate, nil
}

// StoreRate records the rate for a currency pair on the given day, replacing
// any earlier figure for the same pair and day.
func (r *RateRepository) StoreRate(ctx context.Context, from, to string, day time.Time, rate float64) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO exchange_rate (from_currency, to_currency, date, rate)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (from_currency, to_currency, date) DO UPDATE SET rate = excluded.rate
	`, from, to, day.Format("2006-01-02"), rate)
	if err != nil {
		return fmt.Errorf("failed to store exchange rate: %w", err)
	}
	return nil
}
