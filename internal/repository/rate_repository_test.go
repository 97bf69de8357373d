package repository_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/iagocanalejas/richjet/internal/repository"
	"github.com/iagocanalejas/richjet/internal/testutil"
)

// TestRateRepository tests the daily exchange rate cache.
func TestRateRepository(t *testing.T) {
	ctx := context.Background()
	day := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	t.Run("stores and retrieves a daily rate", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewRateRepository(db)

		if err := repo.StoreRate(ctx, "USD", "EUR", day, 0.92); err != nil {
			t.Fatalf("Failed to store rate: %v", err)
		}

		rate, err := repo.GetRate(ctx, "USD", "EUR", day)
		if err != nil {
			t.Fatalf("Failed to retrieve rate: %v", err)
		}
		if rate != 0.92 {
			t.Errorf("Expected rate 0.92, got %v", rate)
		}
	})

	t.Run("replaces the rate for the same pair and day", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewRateRepository(db)

		if err := repo.StoreRate(ctx, "USD", "EUR", day, 0.92); err != nil {
			t.Fatalf("Failed to store rate: %v", err)
		}
		if err := repo.StoreRate(ctx, "USD", "EUR", day, 0.95); err != nil {
			t.Fatalf("Failed to replace rate: %v", err)
		}

		rate, err := repo.GetRate(ctx, "USD", "EUR", day)
		if err != nil {
			t.Fatalf("Failed to retrieve rate: %v", err)
		}
		if rate != 0.95 {
			t.Errorf("Expected replaced rate 0.95, got %v", rate)
		}
		testutil.AssertRowCount(t, db, "exchange_rate", 1)
	})

	t.Run("keys by pair and day", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewRateRepository(db)

		if err := repo.StoreRate(ctx, "USD", "EUR", day, 0.92); err != nil {
			t.Fatalf("Failed to store rate: %v", err)
		}

		if _, err := repo.GetRate(ctx, "EUR", "USD", day); !errors.Is(err, sql.ErrNoRows) {
			t.Errorf("Expected sql.ErrNoRows for the inverse pair, got %v", err)
		}
		if _, err := repo.GetRate(ctx, "USD", "EUR", day.AddDate(0, 0, 1)); !errors.Is(err, sql.ErrNoRows) {
			t.Errorf("Expected sql.ErrNoRows for another day, got %v", err)
		}
	})
}
