package services

import (
	"context"

	"github.com/credvault/alt_credit_scoring_app/internal/core/domain"
)

// SufficiencySvcFacade defines the data-sufficiency gate evaluated before
// scoring.
type SufficiencySvcFacade interface {
	// EvaluateSufficiency computes the weighted requirement report for a user.
	EvaluateSufficiency(ctx context.Context, userID string) (*domain.SufficiencyReport, error)
}
