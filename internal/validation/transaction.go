package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/iagocanalejas/richjet/internal/api/request"
	"github.com/iagocanalejas/richjet/internal/model"
)

// ValidateCreateTransaction validates a transaction creation request.
// Checks all required fields and validates their formats and constraints.
//
// Required fields:
//   - symbolId: Must be a valid UUID
//   - date: Must be in YYYY-MM-DD format
//   - type: Must be one of: BUY, SELL, DIVIDEND, DIVIDEND-CASH
//   - currency: Required
//
// Quantity must be positive for share-moving types; price must be positive
// for BUY, SELL and DIVIDEND-CASH. The accountId, when provided, must be a
// valid UUID.
//
// Returns a validation Error with field-specific error messages if validation fails.
func ValidateCreateTransaction(req request.CreateTransactionRequest) error {
	errors := make(map[string]string)

	if err := ValidateUUID(req.SymbolID); err != nil {
		return err
	}
	if req.AccountID != "" {
		if err := ValidateUUID(req.AccountID); err != nil {
			return err
		}
	}

	if strings.TrimSpace(req.Date) == "" {
		errors["date"] = "date is required"
	} else if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		errors["date"] = err.Error()
	}

	transactionType := model.TransactionType(req.Type)
	if strings.TrimSpace(req.Type) == "" {
		errors["transactionType"] = "type is required"
	} else if !transactionType.Valid() {
		errors["transactionType"] = fmt.Sprintf("invalid type: %s", req.Type)
	}

	if transactionType.MovesShares() && req.Quantity <= 0.0 {
		errors["quantity"] = "quantity must be positive"
	}
	if transactionType != model.TransactionDividend && req.Price <= 0.0 {
		errors["price"] = "price must be positive"
	}
	if req.Commission < 0.0 {
		errors["commission"] = "commission cannot be negative"
	}

	if strings.TrimSpace(req.Currency) == "" {
		errors["currency"] = "currency is required"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}

// ValidateUpdateTransaction validates a transaction update request.
// All fields are optional, but if provided, they must meet the same constraints as create.
//
// Returns a validation Error with field-specific error messages if validation fails.
func ValidateUpdateTransaction(req request.UpdateTransactionRequest) error {
	errors := make(map[string]string)

	if req.SymbolID != nil {
		if err := ValidateUUID(*req.SymbolID); err != nil {
			return err
		}
	}
	if req.AccountID != nil && *req.AccountID != "" {
		if err := ValidateUUID(*req.AccountID); err != nil {
			return err
		}
	}
	if req.Date != nil {
		if strings.TrimSpace(*req.Date) == "" {
			errors["date"] = "date is required"
		} else if _, err := time.Parse("2006-01-02", *req.Date); err != nil {
			errors["date"] = err.Error()
		}
	}
	if req.Type != nil {
		if strings.TrimSpace(*req.Type) == "" {
			errors["transactionType"] = "type is required"
		} else if !model.TransactionType(*req.Type).Valid() {
			errors["transactionType"] = fmt.Sprintf("invalid type: %s", *req.Type)
		}
	}
	if req.Quantity != nil && *req.Quantity <= 0.0 {
		errors["quantity"] = "quantity must be positive"
	}
	if req.Price != nil && *req.Price < 0.0 {
		errors["price"] = "price cannot be negative"
	}
	if req.Commission != nil && *req.Commission < 0.0 {
		errors["commission"] = "commission cannot be negative"
	}
	if req.Currency != nil && strings.TrimSpace(*req.Currency) == "" {
		errors["currency"] = "currency is required"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}
