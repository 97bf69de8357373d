package validation

import (
	"strings"

	"github.com/iagocanalejas/richjet/internal/api/request"
)

// ValidateCreateSymbol validates a symbol creation request.
//
// Required fields:
//   - ticker: Required
//   - currency: Required
//
// Returns a validation Error with field-specific error messages if validation fails.
func ValidateCreateSymbol(req request.CreateSymbolRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Ticker) == "" {
		errors["ticker"] = "ticker is required"
	}
	if strings.TrimSpace(req.Currency) == "" {
		errors["currency"] = "currency is required"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}

// ValidateUpdateSymbol validates a symbol update request.
// All fields are optional, but if provided, they must meet the same constraints as create.
func ValidateUpdateSymbol(req request.UpdateSymbolRequest) error {
	errors := make(map[string]string)

	if req.Ticker != nil && strings.TrimSpace(*req.Ticker) == "" {
		errors["ticker"] = "ticker is required"
	}
	if req.Currency != nil && strings.TrimSpace(*req.Currency) == "" {
		errors["currency"] = "currency is required"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}

// ValidateManualPrice validates a manual price override request.
// A nil price clears the override.
func ValidateManualPrice(req request.ManualPriceRequest) error {
	if req.Price != nil && *req.Price < 0.0 {
		return &Error{Fields: map[string]string{"price": "price cannot be negative"}}
	}
	return nil
}
