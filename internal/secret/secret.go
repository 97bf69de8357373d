// Package secret seals and unseals provider API tokens so they can live in
// configuration files and backups without being readable in plain text.
package secret

import (
	"fmt"

	"github.com/fernet/fernet-go"
)

// Sealer encrypts and decrypts short secrets with a fernet key.
type Sealer struct {
	key *fernet.Key
}

// NewSealer creates a Sealer from a base64-encoded fernet key.
func NewSealer(encodedKey string) (*Sealer, error) {
	key, err := fernet.DecodeKey(encodedKey)
	if err != nil {
		return nil, fmt.Errorf("invalid secret key: %w", err)
	}
	return &Sealer{key: key}, nil
}

// Seal encrypts a secret into a fernet token.
func (s *Sealer) Seal(secret string) (string, error) {
	token, err := fernet.EncryptAndSign([]byte(secret), s.key)
	if err != nil {
		return "", fmt.Errorf("failed to seal secret: %w", err)
	}
	return string(token), nil
}

// Unseal decrypts a fernet token back into the secret. Tokens never expire;
// sealed configuration values stay valid until the key is rotated.
func (s *Sealer) Unseal(token string) (string, error) {
	secret := fernet.VerifyAndDecrypt([]byte(token), 0, []*fernet.Key{s.key})
	if secret == nil {
		return "", fmt.Errorf("failed to unseal secret: token invalid for configured key")
	}
	return string(secret), nil
}
