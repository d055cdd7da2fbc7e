package repositories

import (
	"context"
	"time"

	"github.com/credvault/alt_credit_scoring_app/internal/core/domain"
)

// AccountReader defines read operations for account data
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its unique identifier.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// ListActiveAccountsByUser retrieves all active connected accounts for a user.
	ListActiveAccountsByUser(ctx context.Context, userID string) ([]domain.Account, error)
}

// AccountWriter defines write operations for account data
type AccountWriter interface {
	// SaveAccount persists a new connected account.
	SaveAccount(ctx context.Context, account domain.Account) error

	// TouchAccountSync updates an account's last-synchronized timestamp after ingestion.
	TouchAccountSync(ctx context.Context, accountID string, syncedAt time.Time, userID string) error
}

// AccountRepositoryFacade combines all account-related repository interfaces
// This is a facade for clients that need access to all operations
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}
