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

// SymbolService handles symbol-related business logic operations, including
// manual price overrides. A symbol with no source is user-created and is
// never quoted; its price comes from the manual override or stays unknown.
type SymbolService struct {
	symbolRepo *repository.SymbolRepository
}

// NewSymbolService creates a new SymbolService with the provided repository dependencies.
func NewSymbolService(symbolRepo *repository.SymbolRepository) *SymbolService {
	return &SymbolService{symbolRepo: symbolRepo}
}

// GetSymbols retrieves all symbols ordered by ticker.
func (s *SymbolService) GetSymbols(ctx context.Context) ([]model.Symbol, error) {
	return s.symbolRepo.GetSymbols(ctx)
}

// GetSymbol retrieves a single symbol by its ID.
func (s *SymbolService) GetSymbol(ctx context.Context, symbolID string) (model.Symbol, error) {
	sym, err := s.symbolRepo.GetSymbol(ctx, symbolID)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Symbol{}, apperrors.ErrSymbolNotFound
	}
	return sym, err
}

// CreateSymbol stores a new symbol. A symbol without a source is marked
// user-created and excluded from quote fetching.
func (s *SymbolService) CreateSymbol(ctx context.Context, req request.CreateSymbolRequest) (*model.Symbol, error) {
	symbol := &model.Symbol{
		ID:            uuid.New().String(),
		Ticker:        req.Ticker,
		Name:          req.Name,
		DisplayName:   req.DisplayName,
		Currency:      req.Currency,
		Source:        req.Source,
		SecurityType:  req.SecurityType,
		Isin:          req.Isin,
		Picture:       req.Picture,
		IsUserCreated: req.Source == "",
	}

	if err := s.symbolRepo.InsertSymbol(ctx, symbol); err != nil {
		return nil, fmt.Errorf("failed to create symbol: %w", err)
	}
	return symbol, nil
}

// UpdateSymbol applies the set fields of the request to an existing symbol.
// The source is immutable: a quoted symbol stays tied to its provider.
func (s *SymbolService) UpdateSymbol(ctx context.Context, symbolID string, req request.UpdateSymbolRequest) (*model.Symbol, error) {
	symbol, err := s.GetSymbol(ctx, symbolID)
	if err != nil {
		return nil, err
	}

	if req.Ticker != nil {
		symbol.Ticker = *req.Ticker
	}
	if req.Name != nil {
		symbol.Name = *req.Name
	}
	if req.DisplayName != nil {
		symbol.DisplayName = *req.DisplayName
	}
	if req.Currency != nil {
		symbol.Currency = *req.Currency
	}
	if req.SecurityType != nil {
		symbol.SecurityType = *req.SecurityType
	}
	if req.Isin != nil {
		symbol.Isin = *req.Isin
	}
	if req.Picture != nil {
		symbol.Picture = *req.Picture
	}

	if err := s.symbolRepo.UpdateSymbol(ctx, &symbol); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrSymbolNotFound
		}
		return nil, fmt.Errorf("failed to update symbol: %w", err)
	}
	return &symbol, nil
}

// SetManualPrice stores a manual price override for a symbol, or clears it
// when price is nil. A manual price always wins over fetched quotes.
func (s *SymbolService) SetManualPrice(ctx context.Context, symbolID string, price *float64) (*model.Symbol, error) {
	if price != nil && *price < 0 {
		return nil, apperrors.ErrNegativePrice
	}

	if err := s.symbolRepo.SetManualPrice(ctx, symbolID, price); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrSymbolNotFound
		}
		return nil, fmt.Errorf("failed to set manual price: %w", err)
	}

	symbol, err := s.GetSymbol(ctx, symbolID)
	if err != nil {
		return nil, err
	}
	return &symbol, nil
}
