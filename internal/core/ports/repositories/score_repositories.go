package repositories

import (
	"context"

	"github.com/credvault/alt_credit_scoring_app/internal/core/domain"
)

// ScoreReader defines read operations for credit score snapshots
type ScoreReader interface {
	// FindLatestScore retrieves the most recent snapshot for a user, including
	// its factors. Returns apperrors.ErrNotFound when no snapshot exists.
	FindLatestScore(ctx context.Context, userID string) (*domain.CreditScoreSnapshot, error)

	// ListScoreHistory retrieves up to limit snapshots for a user, including
	// factors, most-recent-first.
	ListScoreHistory(ctx context.Context, userID string, limit int) ([]domain.CreditScoreSnapshot, error)
}

// ScoreWriter defines write operations for credit score snapshots
type ScoreWriter interface {
	// SaveSnapshot persists a snapshot and its score factors as one atomic
	// unit: either the snapshot row and all factor rows are written, or none.
	SaveSnapshot(ctx context.Context, snapshot domain.CreditScoreSnapshot) error
}

// ScoreRepositoryFacade combines all score-related repository interfaces
type ScoreRepositoryFacade interface {
	ScoreReader
	ScoreWriter
}
