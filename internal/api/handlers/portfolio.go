package handlers

import (
	"net/http"

	"github.com/iagocanalejas/richjet/internal/api/response"
	"github.com/iagocanalejas/richjet/internal/apperrors"
	"github.com/iagocanalejas/richjet/internal/model"
	"github.com/iagocanalejas/richjet/internal/service"
	"github.com/iagocanalejas/richjet/internal/validation"
)

// PortfolioHandler handles HTTP requests for portfolio computation endpoints.
// Positions and metrics are derived on demand from the stored ledger; nothing
// here mutates state.
type PortfolioHandler struct {
	portfolioService   *service.PortfolioService
	transactionService *service.TransactionService
	accountService     *service.AccountService
}

// NewPortfolioHandler creates a new PortfolioHandler with the provided service dependencies.
func NewPortfolioHandler(
	portfolioService *service.PortfolioService,
	transactionService *service.TransactionService,
	accountService *service.AccountService,
) *PortfolioHandler {
	return &PortfolioHandler{
		portfolioService:   portfolioService,
		transactionService: transactionService,
		accountService:     accountService,
	}
}

// Positions handles GET requests to compute the position list for an account scope.
//
// Endpoint: GET /api/portfolio?account={id|all}
// Response: 200 OK with array of Position
// Error: 400 Bad Request if the account parameter is not "all" or a valid UUID
// Error: 500 Internal Server Error if the ledger cannot be read
func (h *PortfolioHandler) Positions(w http.ResponseWriter, r *http.Request) {
	scope, ok := h.scope(w, r)
	if !ok {
		return
	}

	transactions, err := h.transactionService.GetTransactions(r.Context())
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToComputePortfolio.Error(), err.Error())
		return
	}

	positions := h.portfolioService.ComputePositions(r.Context(), transactions, scope)
	response.RespondJSON(w, http.StatusOK, positions)
}

// SummaryResponse bundles the computed positions with the portfolio metrics.
type SummaryResponse struct {
	Positions []model.Position       `json:"positions"`
	Metrics   model.PortfolioMetrics `json:"metrics"`
}

// Summary handles GET requests to compute portfolio-level metrics for an account scope.
//
// Endpoint: GET /api/portfolio/summary?account={id|all}
// Response: 200 OK with SummaryResponse
// Error: 400 Bad Request if the account parameter is not "all" or a valid UUID
// Error: 500 Internal Server Error if the ledger or accounts cannot be read
func (h *PortfolioHandler) Summary(w http.ResponseWriter, r *http.Request) {
	scope, ok := h.scope(w, r)
	if !ok {
		return
	}

	transactions, err := h.transactionService.GetTransactions(r.Context())
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToComputePortfolio.Error(), err.Error())
		return
	}

	accounts, err := h.accountService.GetAccounts(r.Context())
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveAccounts.Error(), err.Error())
		return
	}

	positions := h.portfolioService.ComputePositions(r.Context(), transactions, scope)
	cashDividends := h.portfolioService.CashDividends(transactions, scope)
	metrics := h.portfolioService.ComputeMetrics(r.Context(), positions, accounts, cashDividends, scope)

	response.RespondJSON(w, http.StatusOK, SummaryResponse{
		Positions: positions,
		Metrics:   metrics,
	})
}

// scope reads and validates the account query parameter, defaulting to "all".
func (h *PortfolioHandler) scope(w http.ResponseWriter, r *http.Request) (string, bool) {
	scope := r.URL.Query().Get("account")
	if scope == "" || scope == model.ScopeAll {
		return model.ScopeAll, true
	}
	if err := validation.ValidateUUID(scope); err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid account parameter", err.Error())
		return "", false
	}
	return scope, true
}
