package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/iagocanalejas/richjet/internal/api/request"
	"github.com/iagocanalejas/richjet/internal/api/response"
	"github.com/iagocanalejas/richjet/internal/apperrors"
	"github.com/iagocanalejas/richjet/internal/service"
	"github.com/iagocanalejas/richjet/internal/validation"
)

// SymbolHandler handles HTTP requests for symbol endpoints, including the
// manual price override.
type SymbolHandler struct {
	symbolService *service.SymbolService
}

// NewSymbolHandler creates a new SymbolHandler with the provided service dependency.
func NewSymbolHandler(symbolService *service.SymbolService) *SymbolHandler {
	return &SymbolHandler{
		symbolService: symbolService,
	}
}

// AllSymbols handles GET requests to retrieve all symbols.
//
// Endpoint: GET /api/symbols
// Response: 200 OK with array of Symbol, ordered by ticker
// Error: 500 Internal Server Error if retrieval fails
func (h *SymbolHandler) AllSymbols(w http.ResponseWriter, r *http.Request) {
	symbols, err := h.symbolService.GetSymbols(r.Context())
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveSymbols.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, symbols)
}

// GetSymbol handles GET requests to retrieve a single symbol by ID.
//
// Endpoint: GET /api/symbols/{uuid}
// Response: 200 OK with Symbol
// Error: 400 Bad Request if symbol ID is invalid (validated by middleware)
// Error: 404 Not Found if symbol not found
// Error: 500 Internal Server Error if retrieval fails
func (h *SymbolHandler) GetSymbol(w http.ResponseWriter, r *http.Request) {
	symbolID := chi.URLParam(r, "uuid")

	symbol, err := h.symbolService.GetSymbol(r.Context(), symbolID)
	if err != nil {
		if errors.Is(err, apperrors.ErrSymbolNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrSymbolNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveSymbols.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, symbol)
}

// CreateSymbol handles POST requests to create a new symbol.
// Symbols without a source are marked user-created and never quoted.
//
// Endpoint: POST /api/symbols
// Request Body: CreateSymbolRequest (ticker, name, currency, source, ...)
// Response: 201 Created with Symbol
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 500 Internal Server Error if creation fails
func (h *SymbolHandler) CreateSymbol(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateSymbolRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateSymbol(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	symbol, err := h.symbolService.CreateSymbol(r.Context(), req)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to create symbol", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, symbol)
}

// UpdateSymbol handles PUT requests to update an existing symbol.
//
// Endpoint: PUT /api/symbols/{uuid}
// Request Body: UpdateSymbolRequest (all fields optional)
// Response: 200 OK with updated Symbol
// Error: 400 Bad Request if symbol ID is invalid (validated by middleware) or validation fails
// Error: 404 Not Found if symbol not found
// Error: 500 Internal Server Error if update fails
func (h *SymbolHandler) UpdateSymbol(w http.ResponseWriter, r *http.Request) {
	symbolID := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.UpdateSymbolRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateUpdateSymbol(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	symbol, err := h.symbolService.UpdateSymbol(r.Context(), symbolID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrSymbolNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrSymbolNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to update symbol", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, symbol)
}

// SetManualPrice handles PUT requests to set or clear a manual price override.
// A null price clears the override; a set one wins over fetched quotes.
//
// Endpoint: PUT /api/symbols/{uuid}/price
// Request Body: ManualPriceRequest (price, nullable)
// Response: 200 OK with updated Symbol
// Error: 400 Bad Request if symbol ID is invalid (validated by middleware) or the price is negative
// Error: 404 Not Found if symbol not found
// Error: 500 Internal Server Error if the update fails
func (h *SymbolHandler) SetManualPrice(w http.ResponseWriter, r *http.Request) {
	symbolID := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.ManualPriceRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateManualPrice(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	symbol, err := h.symbolService.SetManualPrice(r.Context(), symbolID, req.Price)
	if err != nil {
		if errors.Is(err, apperrors.ErrSymbolNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrSymbolNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to set manual price", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, symbol)
}
