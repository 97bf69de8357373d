package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/iagocanalejas/richjet/internal/api/request"
	"github.com/iagocanalejas/richjet/internal/apperrors"
	"github.com/iagocanalejas/richjet/internal/model"
	"github.com/iagocanalejas/richjet/internal/repository"
)

// AccountService handles account-related business logic operations.
type AccountService struct {
	accountRepo *repository.AccountRepository
}

// NewAccountService creates a new AccountService with the provided repository dependencies.
func NewAccountService(accountRepo *repository.AccountRepository) *AccountService {
	return &AccountService{accountRepo: accountRepo}
}

// GetAccounts retrieves all accounts ordered by name.
func (s *AccountService) GetAccounts(ctx context.Context) ([]model.Account, error) {
	return s.accountRepo.GetAccounts(ctx)
}

// GetAccount retrieves a single account by its ID.
func (s *AccountService) GetAccount(ctx context.Context, accountID string) (model.Account, error) {
	a, err := s.accountRepo.GetAccount(ctx, accountID)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Account{}, apperrors.ErrAccountNotFound
	}
	return a, err
}

// CreateAccount validates and stores a new account.
func (s *AccountService) CreateAccount(ctx context.Context, req request.CreateAccountRequest) (*model.Account, error) {
	account := &model.Account{
		ID:          uuid.New().String(),
		Name:        req.Name,
		AccountType: model.AccountType(req.AccountType),
		Currency:    req.Currency,
		Balance:     req.Balance,
	}

	if err := s.accountRepo.InsertAccount(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}
	return account, nil
}

// UpdateAccount applies the set fields of the request to an existing account.
func (s *AccountService) UpdateAccount(ctx context.Context, accountID string, req request.UpdateAccountRequest) (*model.Account, error) {
	account, err := s.GetAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		account.Name = *req.Name
	}
	if req.AccountType != nil {
		account.AccountType = model.AccountType(*req.AccountType)
	}
	if req.Currency != nil {
		account.Currency = *req.Currency
	}
	if req.Balance != nil {
		account.Balance = *req.Balance
	}

	if err := s.accountRepo.UpdateAccount(ctx, &account); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to update account: %w", err)
	}
	return &account, nil
}

// DeleteAccount removes an account, detaching its transactions.
func (s *AccountService) DeleteAccount(ctx context.Context, accountID string) error {
	err := s.accountRepo.DeleteAccount(ctx, accountID)
	if errors.Is(err, sql.ErrNoRows) {
		return apperrors.ErrAccountNotFound
	}
	return err
}
