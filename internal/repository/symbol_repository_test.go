package repository_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/iagocanalejas/richjet/internal/repository"
	"github.com/iagocanalejas/richjet/internal/testutil"
)

// TestSymbolRepository tests symbol storage including the manual price column.
func TestSymbolRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("lists symbols ordered by ticker", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewSymbolRepository(db)
		testutil.NewSymbol().WithTicker("ZZZZ").Build(t, db)
		testutil.NewSymbol().WithTicker("AAAA").Build(t, db)

		symbols, err := repo.GetSymbols(ctx)
		if err != nil {
			t.Fatalf("Failed to retrieve symbols: %v", err)
		}
		if len(symbols) != 2 {
			t.Fatalf("Expected 2 symbols, got %d", len(symbols))
		}
		if symbols[0].Ticker != "AAAA" || symbols[1].Ticker != "ZZZZ" {
			t.Errorf("Expected ticker order AAAA, ZZZZ, got %s, %s", symbols[0].Ticker, symbols[1].Ticker)
		}
	})

	t.Run("finds by source and ticker", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewSymbolRepository(db)
		symbol := testutil.NewSymbol().Build(t, db)

		found, err := repo.GetSymbolByTicker(ctx, symbol.Source, symbol.Ticker)
		if err != nil {
			t.Fatalf("Failed to find symbol: %v", err)
		}
		if found.ID != symbol.ID {
			t.Errorf("Expected %s, got %s", symbol.ID, found.ID)
		}

		if _, err := repo.GetSymbolByTicker(ctx, "other-source", symbol.Ticker); !errors.Is(err, sql.ErrNoRows) {
			t.Errorf("Expected sql.ErrNoRows for another source, got %v", err)
		}
	})

	t.Run("sets and clears the manual price", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewSymbolRepository(db)
		symbol := testutil.NewSymbol().Build(t, db)

		price := 42.5
		if err := repo.SetManualPrice(ctx, symbol.ID, &price); err != nil {
			t.Fatalf("Failed to set manual price: %v", err)
		}
		stored, err := repo.GetSymbol(ctx, symbol.ID)
		if err != nil {
			t.Fatalf("Failed to retrieve symbol: %v", err)
		}
		if stored.ManualPrice == nil || *stored.ManualPrice != 42.5 {
			t.Errorf("Expected manual price 42.5, got %v", stored.ManualPrice)
		}

		if err := repo.SetManualPrice(ctx, symbol.ID, nil); err != nil {
			t.Fatalf("Failed to clear manual price: %v", err)
		}
		stored, err = repo.GetSymbol(ctx, symbol.ID)
		if err != nil {
			t.Fatalf("Failed to retrieve symbol: %v", err)
		}
		if stored.ManualPrice != nil {
			t.Errorf("Expected cleared manual price, got %v", *stored.ManualPrice)
		}
	})

	t.Run("update replaces mutable fields", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewSymbolRepository(db)
		symbol := testutil.NewSymbol().Build(t, db)

		symbol.DisplayName = "My Holding"
		symbol.Picture = "https://example.com/logo.png"
		if err := repo.UpdateSymbol(ctx, &symbol); err != nil {
			t.Fatalf("Failed to update symbol: %v", err)
		}

		stored, err := repo.GetSymbol(ctx, symbol.ID)
		if err != nil {
			t.Fatalf("Failed to retrieve symbol: %v", err)
		}
		if stored.DisplayName != "My Holding" || stored.Picture != "https://example.com/logo.png" {
			t.Errorf("Expected updated fields, got %+v", stored)
		}
	})

	t.Run("missing rows surface as sql.ErrNoRows", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewSymbolRepository(db)
		missing := testutil.MakeID()

		if _, err := repo.GetSymbol(ctx, missing); !errors.Is(err, sql.ErrNoRows) {
			t.Errorf("Get: expected sql.ErrNoRows, got %v", err)
		}
		if err := repo.SetManualPrice(ctx, missing, nil); !errors.Is(err, sql.ErrNoRows) {
			t.Errorf("SetManualPrice: expected sql.ErrNoRows, got %v", err)
		}
	})
}
