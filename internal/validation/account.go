package validation

import (
	"fmt"
	"strings"

	"github.com/iagocanalejas/richjet/internal/api/request"
	"github.com/iagocanalejas/richjet/internal/model"
)

func validAccountType(value string) bool {
	t := model.AccountType(value)
	return t == model.AccountTypeBroker || t == model.AccountTypeBank
}

// ValidateCreateAccount validates an account creation request.
//
// Required fields:
//   - name: Required
//   - accountType: Must be BROKER or BANK
//   - currency: Required
//
// Returns a validation Error with field-specific error messages if validation fails.
func ValidateCreateAccount(req request.CreateAccountRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Name) == "" {
		errors["name"] = "name is required"
	}
	if strings.TrimSpace(req.AccountType) == "" {
		errors["accountType"] = "accountType is required"
	} else if !validAccountType(req.AccountType) {
		errors["accountType"] = fmt.Sprintf("invalid accountType: %s", req.AccountType)
	}
	if strings.TrimSpace(req.Currency) == "" {
		errors["currency"] = "currency is required"
	}
	if req.Balance < 0.0 {
		errors["balance"] = "balance cannot be negative"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}

// ValidateUpdateAccount validates an account update request.
// All fields are optional, but if provided, they must meet the same constraints as create.
func ValidateUpdateAccount(req request.UpdateAccountRequest) error {
	errors := make(map[string]string)

	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		errors["name"] = "name is required"
	}
	if req.AccountType != nil {
		if strings.TrimSpace(*req.AccountType) == "" {
			errors["accountType"] = "accountType is required"
		} else if !validAccountType(*req.AccountType) {
			errors["accountType"] = fmt.Sprintf("invalid accountType: %s", *req.AccountType)
		}
	}
	if req.Currency != nil && strings.TrimSpace(*req.Currency) == "" {
		errors["currency"] = "currency is required"
	}
	if req.Balance != nil && *req.Balance < 0.0 {
		errors["balance"] = "balance cannot be negative"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}
