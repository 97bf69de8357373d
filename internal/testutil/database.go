package testutil

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite" // Test Package
)

// SetupTestDB creates an in-memory SQLite database for testing.
// The database is automatically cleaned up when the test completes.
//
// Example usage:
//
//	func TestSomething(t *testing.T) {
//	    db := testutil.SetupTestDB(t)
//	    // db is ready to use with schema created
//	}
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	// In-memory database (destroyed when connection closes)
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		t.Fatalf("Failed to ping test database: %v", err)
	}

	// Configure SQLite for testing
	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA journal_mode = MEMORY", // Faster for tests
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			t.Fatalf("Failed to set pragma: %v", err)
		}
	}

	// Create schema
	if err := createTestSchema(db); err != nil {
		t.Fatalf("Failed to create test schema: %v", err)
	}

	// Cleanup when test ends
	t.Cleanup(func() {
		db.Close()
	})

	return db
}

// createTestSchema creates all database tables for testing.
// Schema is synchronized with the embedded migration files.
func createTestSchema(db *sql.DB) error {
	schema := `
		-- Symbol table
		CREATE TABLE symbol (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			ticker VARCHAR(20) NOT NULL,
			name VARCHAR(255) NOT NULL DEFAULT '',
			display_name VARCHAR(255) NOT NULL DEFAULT '',
			currency VARCHAR(3) NOT NULL,
			source VARCHAR(50) NOT NULL DEFAULT '',
			security_type VARCHAR(20) NOT NULL DEFAULT '',
			isin VARCHAR(12) NOT NULL DEFAULT '',
			picture TEXT NOT NULL DEFAULT '',
			is_user_created BOOLEAN NOT NULL DEFAULT FALSE,
			manual_price FLOAT,
			CONSTRAINT unique_symbol_source_ticker UNIQUE (source, ticker)
		);

		-- Account table
		CREATE TABLE account (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			name VARCHAR(100) NOT NULL,
			account_type VARCHAR(10) NOT NULL CHECK (account_type IN ('BROKER', 'BANK')),
			currency VARCHAR(3) NOT NULL,
			balance FLOAT NOT NULL DEFAULT 0
		);

		-- Transaction table (quoted because transaction is a reserved keyword)
		CREATE TABLE "transaction" (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			symbol_id VARCHAR(36) NOT NULL,
			account_id VARCHAR(36),
			quantity FLOAT NOT NULL DEFAULT 0,
			price FLOAT NOT NULL DEFAULT 0,
			commission FLOAT NOT NULL DEFAULT 0,
			currency VARCHAR(3) NOT NULL,
			type VARCHAR(15) NOT NULL CHECK (type IN ('BUY', 'SELL', 'DIVIDEND', 'DIVIDEND-CASH')),
			date DATE NOT NULL,
			created_at DATETIME NOT NULL,
			FOREIGN KEY(symbol_id) REFERENCES symbol(id),
			FOREIGN KEY(account_id) REFERENCES account(id)
		);

		-- Exchange rate table
		CREATE TABLE exchange_rate (
			from_currency VARCHAR(3) NOT NULL,
			to_currency VARCHAR(3) NOT NULL,
			date DATE NOT NULL,
			rate FLOAT NOT NULL,
			PRIMARY KEY (from_currency, to_currency, date)
		);

		-- Indexes for performance
		CREATE INDEX ix_transaction_symbol_id ON "transaction"(symbol_id);
		CREATE INDEX ix_transaction_account_id ON "transaction"(account_id);
		CREATE INDEX ix_transaction_date ON "transaction"(date);
	`

	_, err := db.Exec(schema)
	return err
}

// CleanDatabase truncates all tables in dependency order.
// Useful for reusing the same database across multiple tests.
func CleanDatabase(t *testing.T, db *sql.DB) {
	t.Helper()

	// Order matters: delete children before parents due to foreign keys
	tables := []string{
		"transaction",
		"account",
		"symbol",
		"exchange_rate",
	}

	for _, table := range tables {
		query := `DELETE FROM "` + table + `"`
		if _, err := db.Exec(query); err != nil {
			t.Fatalf("Failed to clean table %s: %v", table, err)
		}
	}
}

// CountRows returns the number of rows in a table.
// Useful for assertions in tests.
func CountRows(t *testing.T, db *sql.DB, table string) int {
	t.Helper()

	var count int
	query := `SELECT COUNT(*) FROM "` + table + `"`
	err := db.QueryRow(query).Scan(&count)
	if err != nil {
		t.Fatalf("Failed to count rows in %s: %v", table, err)
	}

	return count
}

// AssertRowCount asserts that a table has the expected number of rows.
func AssertRowCount(t *testing.T, db *sql.DB, table string, expected int) {
	t.Helper()

	actual := CountRows(t, db, table)
	if actual != expected {
		t.Errorf("Expected %d rows in %s, got %d", expected, table, actual)
	}
}
