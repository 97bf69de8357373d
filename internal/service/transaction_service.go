package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/iagocanalejas/richjet/internal/api/request"
	"github.com/iagocanalejas/richjet/internal/apperrors"
	"github.com/iagocanalejas/richjet/internal/model"
	"github.com/iagocanalejas/richjet/internal/repository"
)

// TransactionService handles ledger-related business logic operations.
// Business rules are enforced here, before anything reaches storage: a SELL
// or dividend needs a prior BUY for the symbol within the same account scope,
// and a SELL can never move more shares than the scope holds.
type TransactionService struct {
	transactionRepo *repository.TransactionRepository
	accountRepo     *repository.AccountRepository
	symbolRepo      *repository.SymbolRepository
}

// NewTransactionService creates a new TransactionService with the provided repository dependencies.
func NewTransactionService(
	transactionRepo *repository.TransactionRepository,
	accountRepo *repository.AccountRepository,
	symbolRepo *repository.SymbolRepository,
) *TransactionService {
	return &TransactionService{
		transactionRepo: transactionRepo,
		accountRepo:     accountRepo,
		symbolRepo:      symbolRepo,
	}
}

// GetTransactions retrieves the full ledger ordered by date ascending.
func (s *TransactionService) GetTransactions(ctx context.Context) ([]model.Transaction, error) {
	return s.transactionRepo.GetTransactions(ctx)
}

// GetTransaction retrieves a single transaction by its ID.
func (s *TransactionService) GetTransaction(ctx context.Context, transactionID string) (model.Transaction, error) {
	t, err := s.transactionRepo.GetTransaction(ctx, transactionID)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Transaction{}, apperrors.ErrTransactionNotFound
	}
	return t, err
}

// CreateTransaction validates and stores a new ledger entry.
func (s *TransactionService) CreateTransaction(ctx context.Context, req request.CreateTransactionRequest) (*model.Transaction, error) {
	transactionDate, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", req.Date, err)
	}

	transaction := &model.Transaction{
		ID:         uuid.New().String(),
		SymbolID:   req.SymbolID,
		AccountID:  req.AccountID,
		Date:       transactionDate,
		Type:       model.TransactionType(req.Type),
		Quantity:   req.Quantity,
		Price:      req.Price,
		Commission: req.Commission,
		Currency:   req.Currency,
		CreatedAt:  time.Now(),
	}
	normalize(transaction)

	if err := s.validateTransaction(ctx, transaction, ""); err != nil {
		return nil, err
	}

	if err := s.transactionRepo.InsertTransaction(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	return transaction, nil
}

// UpdateTransaction applies the set fields of the request to an existing
// entry and revalidates the result. The entry being updated is excluded from
// the available-shares check so reducing a SELL never trips over itself.
func (s *TransactionService) UpdateTransaction(ctx context.Context, transactionID string, req request.UpdateTransactionRequest) (*model.Transaction, error) {
	transaction, err := s.GetTransaction(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	if req.SymbolID != nil {
		transaction.SymbolID = *req.SymbolID
	}
	if req.AccountID != nil {
		transaction.AccountID = *req.AccountID
	}
	if req.Date != nil {
		transaction.Date, err = time.Parse("2006-01-02", *req.Date)
		if err != nil {
			return nil, fmt.Errorf("invalid date %q: %w", *req.Date, err)
		}
	}
	if req.Type != nil {
		transaction.Type = model.TransactionType(*req.Type)
	}
	if req.Quantity != nil {
		transaction.Quantity = *req.Quantity
	}
	if req.Price != nil {
		transaction.Price = *req.Price
	}
	if req.Commission != nil {
		transaction.Commission = *req.Commission
	}
	if req.Currency != nil {
		transaction.Currency = *req.Currency
	}
	normalize(&transaction)

	if err := s.validateTransaction(ctx, &transaction, transactionID); err != nil {
		return nil, err
	}

	if err := s.transactionRepo.UpdateTransaction(ctx, &transaction); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	return &transaction, nil
}

// DeleteTransaction removes a ledger entry.
func (s *TransactionService) DeleteTransaction(ctx context.Context, transactionID string) error {
	err := s.transactionRepo.DeleteTransaction(ctx, transactionID)
	if errors.Is(err, sql.ErrNoRows) {
		return apperrors.ErrTransactionNotFound
	}
	return err
}

// TransferTransaction reassigns a ledger entry to another account. Positions
// merge on the next computation; no quantities or prices are touched.
func (s *TransactionService) TransferTransaction(ctx context.Context, transactionID, accountID string) (*model.Transaction, error) {
	transaction, err := s.GetTransaction(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if transaction.AccountID == accountID {
		return nil, apperrors.ErrSameAccountTransfer
	}
	if accountID != "" {
		account, err := s.accountRepo.GetAccount(ctx, accountID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, apperrors.ErrAccountNotFound
			}
			return nil, err
		}
		if account.AccountType == model.AccountTypeBank {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrBankAccountTransaction, account.Name)
		}
	}

	if err := s.transactionRepo.UpdateAccount(ctx, transactionID, accountID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to transfer transaction: %w", err)
	}

	transaction.AccountID = accountID
	return &transaction, nil
}

// normalize zeroes the fields a transaction type does not use: a stock
// dividend has no price and a cash dividend has no quantity.
func normalize(t *model.Transaction) {
	switch t.Type {
	case model.TransactionDividend:
		t.Price = 0
	case model.TransactionDividendCash:
		t.Quantity = 0
	}
}

func (s *TransactionService) validateTransaction(ctx context.Context, t *model.Transaction, excludeID string) error {
	if !t.Type.Valid() {
		return fmt.Errorf("%w: %s", apperrors.ErrInvalidTransactionType, t.Type)
	}
	if t.Price < 0 {
		return apperrors.ErrNegativePrice
	}

	if _, err := s.symbolRepo.GetSymbol(ctx, t.SymbolID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperrors.ErrSymbolNotFound
		}
		return err
	}
	if t.AccountID != "" {
		account, err := s.accountRepo.GetAccount(ctx, t.AccountID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return apperrors.ErrAccountNotFound
			}
			return err
		}
		// BANK accounts hold cash only; a symbol transaction booked against
		// one would surface as a position in that scope.
		if account.AccountType == model.AccountTypeBank {
			return fmt.Errorf("%w: %s", apperrors.ErrBankAccountTransaction, account.Name)
		}
	}

	if t.Type == model.TransactionBuy {
		return nil
	}

	ledger, err := s.transactionRepo.GetTransactions(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrFailedToRetrieveTransactions, err)
	}

	// Everything but a BUY needs an earlier BUY for the symbol in the same
	// account scope. For the scope, an unassigned transaction matches only
	// other unassigned ones.
	if !s.hasPriorBuy(ledger, t, excludeID) {
		return fmt.Errorf("%w: %s", apperrors.ErrNoBuyTransaction, t.SymbolID)
	}

	if t.Type == model.TransactionSell {
		available := availableShares(ledger, t, excludeID)
		if t.Quantity > available {
			return fmt.Errorf("%w: %.4f requested, %.4f held", apperrors.ErrInsufficientShares, t.Quantity, available)
		}
	}

	return nil
}

func (s *TransactionService) hasPriorBuy(ledger []model.Transaction, t *model.Transaction, excludeID string) bool {
	for _, existing := range ledger {
		if existing.ID == excludeID || existing.SymbolID != t.SymbolID || existing.AccountID != t.AccountID {
			continue
		}
		if existing.Type == model.TransactionBuy && !existing.Date.After(t.Date) {
			return true
		}
	}
	return false
}

func availableShares(ledger []model.Transaction, t *model.Transaction, excludeID string) float64 {
	var held float64
	for _, existing := range ledger {
		if existing.ID == excludeID || existing.SymbolID != t.SymbolID || existing.AccountID != t.AccountID {
			continue
		}
		switch existing.Type {
		case model.TransactionBuy, model.TransactionDividend:
			held += existing.Quantity
		case model.TransactionSell:
			held -= existing.Quantity
		}
	}
	return held
}
