package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/iagocanalejas/richjet/internal/api"
	"github.com/iagocanalejas/richjet/internal/config"
	"github.com/iagocanalejas/richjet/internal/database"
	"github.com/iagocanalejas/richjet/internal/finnhub"
	"github.com/iagocanalejas/richjet/internal/jobs"
	"github.com/iagocanalejas/richjet/internal/rates"
	"github.com/iagocanalejas/richjet/internal/repository"
	"github.com/iagocanalejas/richjet/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Open database connection
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(context.Background(), db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	log.Printf("Connected to database: %s", cfg.Database.Path)

	// Create repositories
	transactionRepo := repository.NewTransactionRepository(db)
	accountRepo := repository.NewAccountRepository(db)
	symbolRepo := repository.NewSymbolRepository(db)
	rateRepo := repository.NewRateRepository(db)

	// External data providers
	quoteSource := finnhub.NewClient(cfg.Providers.FinnhubToken)
	rateSource := rates.NewCachedSource(rates.NewClient(cfg.Providers.ExchangeRateAPIKey), rateRepo)

	// Create services
	systemService := service.NewSystemService(db)
	converter := service.NewCurrencyConverter(rateSource, cfg.Portfolio.ReportingCurrency)
	resolver := service.NewPriceResolver(quoteSource, converter)
	portfolioService := service.NewPortfolioService(resolver, converter)
	transactionService := service.NewTransactionService(transactionRepo, accountRepo, symbolRepo)
	accountService := service.NewAccountService(accountRepo)
	symbolService := service.NewSymbolService(symbolRepo)

	// Background quote refresh
	scheduler := jobs.NewScheduler()
	refreshJob := jobs.NewQuoteRefreshJob(resolver, symbolRepo)
	if err := scheduler.AddJob(cfg.Portfolio.RefreshSchedule, refreshJob); err != nil {
		log.Fatalf("Failed to schedule quote refresh: %v", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	// Create router
	router := api.NewRouter(api.Services{
		System:      systemService,
		Portfolio:   portfolioService,
		Transaction: transactionService,
		Account:     accountService,
		Symbol:      symbolService,
	}, cfg)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Starting server on %s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
