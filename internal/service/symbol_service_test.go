package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/iagocanalejas/richjet/internal/api/request"
	"github.com/iagocanalejas/richjet/internal/apperrors"
	"github.com/iagocanalejas/richjet/internal/testutil"
)

// TestSymbolService_CreateSymbol tests symbol creation.
func TestSymbolService_CreateSymbol(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a quoted symbol", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestSymbolService(t, db)

		created, err := svc.CreateSymbol(ctx, request.CreateSymbolRequest{
			Ticker:   testutil.MakeTicker("AAPL"),
			Name:     "Apple Inc",
			Currency: "USD",
			Source:   "finnhub",
		})

		if err != nil {
			t.Fatalf("Expected successful creation, got %v", err)
		}
		if created.ID == "" || created.IsUserCreated {
			t.Errorf("Expected a sourced symbol, got %+v", created)
		}
		testutil.AssertRowCount(t, db, "symbol", 1)
	})

	t.Run("no source marks the symbol user-created", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestSymbolService(t, db)

		created, err := svc.CreateSymbol(ctx, request.CreateSymbolRequest{
			Ticker:   testutil.MakeTicker("PRIV"),
			Name:     "Private Holding",
			Currency: "EUR",
		})

		if err != nil {
			t.Fatalf("Expected successful creation, got %v", err)
		}
		if !created.IsUserCreated {
			t.Error("Expected a sourceless symbol to be user-created")
		}
	})
}

// TestSymbolService_UpdateSymbol tests partial symbol updates.
func TestSymbolService_UpdateSymbol(t *testing.T) {
	ctx := context.Background()

	t.Run("applies the set fields, source stays immutable", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestSymbolService(t, db)
		symbol := testutil.NewSymbol().Build(t, db)

		name := "Renamed Holding"
		updated, err := svc.UpdateSymbol(ctx, symbol.ID, request.UpdateSymbolRequest{DisplayName: &name})

		if err != nil {
			t.Fatalf("Expected successful update, got %v", err)
		}
		if updated.DisplayName != name {
			t.Errorf("Expected display name %q, got %q", name, updated.DisplayName)
		}
		if updated.Source != symbol.Source || updated.Ticker != symbol.Ticker {
			t.Errorf("Expected untouched fields to survive, got %+v", updated)
		}
	})

	t.Run("unknown symbol", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestSymbolService(t, db)

		_, err := svc.UpdateSymbol(ctx, testutil.MakeID(), request.UpdateSymbolRequest{})
		if !errors.Is(err, apperrors.ErrSymbolNotFound) {
			t.Errorf("Expected ErrSymbolNotFound, got %v", err)
		}
	})
}

// TestSymbolService_SetManualPrice tests the manual price override.
//
// WHY: The override is the only price for user-created symbols, so setting,
// clearing and rejecting negatives all need to hold.
func TestSymbolService_SetManualPrice(t *testing.T) {
	ctx := context.Background()

	t.Run("sets and clears the override", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestSymbolService(t, db)
		symbol := testutil.NewSymbol().UserCreated().Build(t, db)

		price := 42.5
		updated, err := svc.SetManualPrice(ctx, symbol.ID, &price)
		if err != nil {
			t.Fatalf("Expected successful override, got %v", err)
		}
		if updated.ManualPrice == nil || *updated.ManualPrice != 42.5 {
			t.Errorf("Expected manual price 42.5, got %v", updated.ManualPrice)
		}

		cleared, err := svc.SetManualPrice(ctx, symbol.ID, nil)
		if err != nil {
			t.Fatalf("Expected successful clear, got %v", err)
		}
		if cleared.ManualPrice != nil {
			t.Errorf("Expected cleared manual price, got %v", *cleared.ManualPrice)
		}
	})

	t.Run("rejects a negative price", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestSymbolService(t, db)
		symbol := testutil.NewSymbol().Build(t, db)

		negative := -1.0
		_, err := svc.SetManualPrice(ctx, symbol.ID, &negative)
		if !errors.Is(err, apperrors.ErrNegativePrice) {
			t.Errorf("Expected ErrNegativePrice, got %v", err)
		}
	})

	t.Run("unknown symbol", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestSymbolService(t, db)

		price := 10.0
		_, err := svc.SetManualPrice(ctx, testutil.MakeID(), &price)
		if !errors.Is(err, apperrors.ErrSymbolNotFound) {
			t.Errorf("Expected ErrSymbolNotFound, got %v", err)
		}
	})
}
