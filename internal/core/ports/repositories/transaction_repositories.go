package repositories

import (
	"context"
	"time"

	"github.com/credvault/alt_credit_scoring_app/internal/core/domain"
)

// TransactionReader defines read operations for transaction data
type TransactionReader interface {
	// ListTransactionsByUser retrieves all transactions for a user within [from, to),
	// ordered by occurrence timestamp ascending.
	ListTransactionsByUser(ctx context.Context, userID string, from, to time.Time) ([]domain.Transaction, error)

	// ListTransactionsByAccountSince retrieves all transactions for one account
	// occurring at or after the given instant. Used by the deduplicator to load
	// the prior set within its trailing window.
	ListTransactionsByAccountSince(ctx context.Context, accountID string, since time.Time) ([]domain.Transaction, error)
}

// TransactionWriter defines write operations for transaction data
type TransactionWriter interface {
	// SaveTransactions persists a chunk of transactions atomically and returns
	// the number of rows actually inserted. Rows colliding on the dedup
	// identity key are skipped, not errors.
	SaveTransactions(ctx context.Context, transactions []domain.Transaction) (int, error)
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
