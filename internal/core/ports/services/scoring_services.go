package services

import (
	"context"

	"github.com/credvault/alt_credit_scoring_app/internal/core/domain"
)

// ScoringSvcFacade defines credit score computation and retrieval.
type ScoringSvcFacade interface {
	// ComputeScore runs the full scoring pipeline for a user and persists a
	// new snapshot. Fails with apperrors.ErrInsufficientData when the
	// sufficiency gate's can-proceed check fails; no snapshot is written in
	// that case.
	ComputeScore(ctx context.Context, userID string) (*domain.CreditScoreSnapshot, error)

	// GetLatestScore retrieves the most recent snapshot for a user.
	// Fails with apperrors.ErrNotFound when none exists.
	GetLatestScore(ctx context.Context, userID string) (*domain.CreditScoreSnapshot, error)

	// ListScoreHistory retrieves up to limit snapshots, most-recent-first.
	ListScoreHistory(ctx context.Context, userID string, limit int) ([]domain.CreditScoreSnapshot, error)
}
