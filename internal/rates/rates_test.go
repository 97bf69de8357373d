package rates_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/iagocanalejas/richjet/internal/rates"
)

// TestClient_Rate tests rate fetching against a stub server.
func TestClient_Rate(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the conversion rate", func(t *testing.T) {
		// Setup
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/test-key/pair/USD/EUR" {
				t.Errorf("Unexpected path %s", r.URL.Path)
			}
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"result": "success", "conversion_rate": 0.9234}`))
		}))
		defer server.Close()
		client := rates.NewClientWithBaseURL("test-key", server.URL)

		// Execute
		rate, err := client.Rate(ctx, "USD", "EUR")

		// Assert
		if err != nil {
			t.Fatalf("Expected successful lookup, got %v", err)
		}
		if rate != 0.9234 {
			t.Errorf("Expected 0.9234, got %v", rate)
		}
	})

	t.Run("surfaces the provider error type", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"result": "error", "error-type": "unsupported-code"}`))
		}))
		defer server.Close()
		client := rates.NewClientWithBaseURL("test-key", server.URL)

		_, err := client.Rate(ctx, "USD", "XXX")
		if err == nil || !strings.Contains(err.Error(), "unsupported-code") {
			t.Errorf("Expected the provider error type, got %v", err)
		}
	})

	t.Run("rejects a non-positive rate", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"result": "success", "conversion_rate": 0}`))
		}))
		defer server.Close()
		client := rates.NewClientWithBaseURL("test-key", server.URL)

		if _, err := client.Rate(ctx, "USD", "EUR"); err == nil {
			t.Error("Expected an error for a zero rate")
		}
	})
}
