package service_test

import (
	"context"
	"testing"

	"github.com/iagocanalejas/richjet/internal/service"
	"github.com/iagocanalejas/richjet/internal/testutil"
)

// TestCurrencyConverter tests conversion into the reporting currency.
//
// WHY: Every aggregated figure flows through the converter. Same-currency
// amounts must pass through untouched, rates must be fetched once per pair,
// and a missing rate must degrade to 1.0 instead of failing the computation.
func TestCurrencyConverter(t *testing.T) {
	ctx := context.Background()

	t.Run("same currency short-circuits without a lookup", func(t *testing.T) {
		rates := testutil.NewFakeRateSource()
		converter := service.NewCurrencyConverter(rates, "EUR")

		got := converter.Convert(ctx, 100, "EUR")

		if got != 100 {
			t.Errorf("Expected 100, got %v", got)
		}
		if rates.Calls() != 0 {
			t.Errorf("Expected no rate lookups, got %d", rates.Calls())
		}
	})

	t.Run("empty currency passes through", func(t *testing.T) {
		rates := testutil.NewFakeRateSource()
		converter := service.NewCurrencyConverter(rates, "EUR")

		if got := converter.Convert(ctx, 42, ""); got != 42 {
			t.Errorf("Expected 42, got %v", got)
		}
	})

	t.Run("applies the fetched rate and caches it", func(t *testing.T) {
		rates := testutil.NewFakeRateSource()
		rates.Set("USD", "EUR", 0.5)
		converter := service.NewCurrencyConverter(rates, "EUR")

		first := converter.Convert(ctx, 100, "USD")
		second := converter.Convert(ctx, 200, "USD")

		if first != 50 || second != 100 {
			t.Errorf("Expected 50 and 100, got %v and %v", first, second)
		}
		if rates.Calls() != 1 {
			t.Errorf("Expected a single rate lookup, got %d", rates.Calls())
		}
	})

	t.Run("unavailable rate degrades to 1.0", func(t *testing.T) {
		rates := testutil.NewFakeRateSource()
		converter := service.NewCurrencyConverter(rates, "EUR")

		got := converter.Convert(ctx, 100, "GBP")

		if got != 100 {
			t.Errorf("Expected fallback conversion of 100, got %v", got)
		}
		// The failed lookup is cached too, so the provider is not hammered.
		converter.Convert(ctx, 100, "GBP")
		if rates.Calls() != 1 {
			t.Errorf("Expected a single rate lookup, got %d", rates.Calls())
		}
	})

	t.Run("currency codes are case-insensitive", func(t *testing.T) {
		rates := testutil.NewFakeRateSource()
		rates.Set("USD", "EUR", 0.5)
		converter := service.NewCurrencyConverter(rates, "eur")

		if got := converter.Convert(ctx, 100, "usd"); got != 50 {
			t.Errorf("Expected 50, got %v", got)
		}
	})
}
