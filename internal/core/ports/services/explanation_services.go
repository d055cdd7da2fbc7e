package services

import (
	"context"

	"github.com/credvault/alt_credit_scoring_app/internal/dto"
)

// ExplanationSvcFacade turns score factors into natural-language rationale,
// a historical-trend series and ranked improvement tips.
type ExplanationSvcFacade interface {
	// ExplainScore explains a user's latest snapshot. Fails with
	// apperrors.ErrNotFound when no snapshot exists.
	ExplainScore(ctx context.Context, userID string) (*dto.ScoreExplanationResponse, error)
}
