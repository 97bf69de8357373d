package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/iagocanalejas/richjet/internal/secret"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	CORS      CORSConfig
	Portfolio PortfolioConfig
	Providers ProviderConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string
	Host string
	Addr string // Combined host:port for convenience
}

// DatabaseConfig holds database-specific configuration
type DatabaseConfig struct {
	Path string
}

// CORSConfig holds CORS-specific configuration
type CORSConfig struct {
	AllowedOrigins []string
}

// PortfolioConfig holds portfolio computation settings
type PortfolioConfig struct {
	ReportingCurrency string
	RefreshSchedule   string // cron expression for the quote refresh job
}

// ProviderConfig holds external data provider credentials. Tokens may be
// stored fernet-sealed; set SECRET_KEY and the *_SEALED variants to keep
// plain-text tokens out of the environment.
type ProviderConfig struct {
	FinnhubToken       string
	ExchangeRateAPIKey string
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "5001"),
			Host: getEnv("SERVER_HOST", "localhost"),
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", "./data/richjet.db"),
		},
		CORS: CORSConfig{
			AllowedOrigins: strings.Split(
				getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost"), ","),
		},
		Portfolio: PortfolioConfig{
			ReportingCurrency: getEnv("REPORTING_CURRENCY", "EUR"),
			RefreshSchedule:   getEnv("QUOTE_REFRESH_SCHEDULE", "0 */4 * * *"),
		},
	}

	// Combine host and port
	config.Server.Addr = fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port)

	var err error
	config.Providers.FinnhubToken, err = loadToken("FINNHUB_TOKEN")
	if err != nil {
		return nil, err
	}
	config.Providers.ExchangeRateAPIKey, err = loadToken("EXCHANGERATE_API_KEY")
	if err != nil {
		return nil, err
	}

	return config, nil
}

// loadToken reads a provider credential. The plain variable wins; otherwise
// the _SEALED variant is unsealed with SECRET_KEY.
func loadToken(key string) (string, error) {
	if value := os.Getenv(key); value != "" {
		return value, nil
	}

	sealed := os.Getenv(key + "_SEALED")
	if sealed == "" {
		return "", nil
	}

	secretKey := os.Getenv("SECRET_KEY")
	if secretKey == "" {
		return "", fmt.Errorf("%s_SEALED is set but SECRET_KEY is not", key)
	}

	sealer, err := secret.NewSealer(secretKey)
	if err != nil {
		return "", err
	}
	token, err := sealer.Unseal(sealed)
	if err != nil {
		return "", fmt.Errorf("failed to unseal %s: %w", key, err)
	}
	return token, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
