package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/iagocanalejas/richjet/internal/api/handlers"
	custommiddleware "github.com/iagocanalejas/richjet/internal/api/middleware"
	"github.com/iagocanalejas/richjet/internal/config"
	"github.com/iagocanalejas/richjet/internal/service"
)

// Services bundles the service dependencies the router hands out to handlers.
type Services struct {
	System      *service.SystemService
	Portfolio   *service.PortfolioService
	Transaction *service.TransactionService
	Account     *service.AccountService
	Symbol      *service.SymbolService
}

// NewRouter creates and configures the HTTP router
func NewRouter(services Services, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(services.System)
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
		})

		r.Route("/portfolio", func(r chi.Router) {
			portfolioHandler := handlers.NewPortfolioHandler(services.Portfolio, services.Transaction, services.Account)
			r.Get("/", portfolioHandler.Positions)
			r.Get("/summary", portfolioHandler.Summary)
		})

		r.Route("/transaction", func(r chi.Router) {
			transactionHandler := handlers.NewTransactionHandler(services.Transaction)
			r.Get("/", transactionHandler.AllTransactions)
			r.Post("/", transactionHandler.CreateTransaction)

			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/", transactionHandler.GetTransaction)
				r.Put("/", transactionHandler.UpdateTransaction)
				r.Delete("/", transactionHandler.DeleteTransaction)
				r.Post("/transfer", transactionHandler.TransferTransaction)
			})
		})

		r.Route("/accounts", func(r chi.Router) {
			accountHandler := handlers.NewAccountHandler(services.Account)
			r.Get("/", accountHandler.AllAccounts)
			r.Post("/", accountHandler.CreateAccount)

			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/", accountHandler.GetAccount)
				r.Put("/", accountHandler.UpdateAccount)
				r.Delete("/", accountHandler.DeleteAccount)
			})
		})

		r.Route("/symbols", func(r chi.Router) {
			symbolHandler := handlers.NewSymbolHandler(services.Symbol)
			r.Get("/", symbolHandler.AllSymbols)
			r.Post("/", symbolHandler.CreateSymbol)

			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/", symbolHandler.GetSymbol)
				r.Put("/", symbolHandler.UpdateSymbol)
				r.Put("/price", symbolHandler.SetManualPrice)
			})
		})
	})

	return r
}
