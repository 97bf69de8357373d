package apperrors

import "errors"

// Domain entity errors represent missing or invalid entities in the system.
// These errors indicate that a requested resource does not exist.
var (
	// ErrSymbolNotFound indicates that a symbol with the given ID does not exist.
	ErrSymbolNotFound = errors.New("symbol not found")

	// ErrAccountNotFound indicates that an account with the given ID does not exist.
	ErrAccountNotFound = errors.New("account not found")

	// ErrTransactionNotFound indicates that a transaction with the given ID does not exist.
	ErrTransactionNotFound = errors.New("transaction not found")
)

// Business logic errors represent validation failures or constraint violations.
// These errors indicate that an operation cannot be completed due to business
// rules; they are surfaced to the caller as rejected operations, never as
// fatal failures.
var (
	// ErrNoBuyTransaction indicates a SELL or DIVIDEND submitted for a
	// symbol/account scope with no prior BUY. The transaction is rejected
	// before it enters the ledger.
	ErrNoBuyTransaction = errors.New("no BUY transaction found for symbol")

	// ErrInsufficientShares indicates that a sell exceeds the quantity held
	// in the target account scope.
	ErrInsufficientShares = errors.New("insufficient shares for sale")

	// ErrSameAccountTransfer indicates a transfer where the source and
	// destination account are identical.
	ErrSameAccountTransfer = errors.New("source and destination account cannot be the same")

	// ErrBankAccountTransaction indicates an attempt to book a symbol
	// transaction against a BANK account, which only holds cash balances.
	ErrBankAccountTransaction = errors.New("bank accounts cannot hold symbol transactions")

	// ErrInvalidTransactionType indicates an unsupported transaction type value.
	ErrInvalidTransactionType = errors.New("invalid transaction type")

	// ErrInvalidUUID indicates that a provided ID is not a valid UUID format.
	ErrInvalidUUID = errors.New("invalid UUID format")

	// ErrEmptyID indicates that a required ID parameter is empty or missing.
	ErrEmptyID = errors.New("ID cannot be empty")

	// ErrNegativePrice indicates a price field with an invalid negative value.
	ErrNegativePrice = errors.New("price cannot be negative")
)

// Resolution errors represent degraded external lookups. They are absorbed
// inside the valuation engine (price 0 / rate 1.0) and exposed only as flags
// on the computed output, because a portfolio with one missing quote must
// still render the rest.
var (
	// ErrQuoteUnavailable indicates that no price could be resolved for a symbol.
	ErrQuoteUnavailable = errors.New("quote unavailable")

	// ErrRateUnavailable indicates that no conversion rate could be resolved
	// for a currency pair.
	ErrRateUnavailable = errors.New("conversion rate unavailable")
)

// Operation failure errors represent system-level failures when retrieving or
// processing data.
var (
	ErrFailedToRetrieveTransactions = errors.New("failed to retrieve transactions")
	ErrFailedToRetrieveTransaction  = errors.New("failed to retrieve transaction")
	ErrFailedToRetrieveAccounts     = errors.New("failed to retrieve accounts")
	ErrFailedToRetrieveSymbols      = errors.New("failed to retrieve symbols")
	ErrFailedToComputePortfolio     = errors.New("failed to compute portfolio")
)

// Data integrity errors represent inconsistencies in the stored data.
var (
	// ErrOversoldPosition indicates that a SELL consumed more shares than the
	// open lots held. The computation continues with zero cost basis for the
	// unmatched remainder; its presence points at a consistency bug upstream,
	// not at a user-facing failure.
	ErrOversoldPosition = errors.New("sell exceeds open lots")

	// ErrDataInconsistency indicates that the data is in an inconsistent state.
	ErrDataInconsistency = errors.New("data inconsistency detected")
)
