package validation

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/iagocanalejas/richjet/internal/apperrors"
)

// ValidateUUID checks that an identifier is a non-empty, well-formed UUID.
func ValidateUUID(id string) error {
	if id == "" {
		return apperrors.ErrEmptyID
	}
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: %s", apperrors.ErrInvalidUUID, id)
	}
	return nil
}
