package secret_test

import (
	"testing"

	"github.com/fernet/fernet-go"
	"github.com/iagocanalejas/richjet/internal/secret"
)

func generateKey(t *testing.T) string {
	t.Helper()

	var key fernet.Key
	if err := key.Generate(); err != nil {
		t.Fatalf("Failed to generate fernet key: %v", err)
	}
	return key.Encode()
}

// TestSealer tests the seal/unseal round trip for configuration tokens.
func TestSealer(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		sealer, err := secret.NewSealer(generateKey(t))
		if err != nil {
			t.Fatalf("Failed to create sealer: %v", err)
		}

		token, err := sealer.Seal("my-api-token")
		if err != nil {
			t.Fatalf("Failed to seal: %v", err)
		}
		if token == "my-api-token" {
			t.Error("Expected the sealed token to differ from the secret")
		}

		unsealed, err := sealer.Unseal(token)
		if err != nil {
			t.Fatalf("Failed to unseal: %v", err)
		}
		if unsealed != "my-api-token" {
			t.Errorf("Expected the original secret, got %q", unsealed)
		}
	})

	t.Run("rejects a token sealed with another key", func(t *testing.T) {
		sealer, err := secret.NewSealer(generateKey(t))
		if err != nil {
			t.Fatalf("Failed to create sealer: %v", err)
		}
		other, err := secret.NewSealer(generateKey(t))
		if err != nil {
			t.Fatalf("Failed to create sealer: %v", err)
		}

		token, err := other.Seal("my-api-token")
		if err != nil {
			t.Fatalf("Failed to seal: %v", err)
		}

		if _, err := sealer.Unseal(token); err == nil {
			t.Error("Expected unsealing with the wrong key to fail")
		}
	})

	t.Run("rejects an invalid key", func(t *testing.T) {
		if _, err := secret.NewSealer("not-a-key"); err == nil {
			t.Error("Expected an error for a malformed key")
		}
	})

	t.Run("rejects garbage tokens", func(t *testing.T) {
		sealer, err := secret.NewSealer(generateKey(t))
		if err != nil {
			t.Fatalf("Failed to create sealer: %v", err)
		}

		if _, err := sealer.Unseal("not-a-token"); err == nil {
			t.Error("Expected an error for a malformed token")
		}
	})
}
