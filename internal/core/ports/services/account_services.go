package services

import (
	"context"

	"github.com/credvault/alt_credit_scoring_app/internal/core/domain"
	"github.com/credvault/alt_credit_scoring_app/internal/dto"
)

// AccountSvcFacade defines operations on connected accounts.
type AccountSvcFacade interface {
	// CreateAccount registers a connected account for a user.
	CreateAccount(ctx context.Context, userID string, req dto.CreateAccountRequest) (*domain.Account, error)

	// ListActiveAccounts retrieves all active connected accounts for a user.
	ListActiveAccounts(ctx context.Context, userID string) ([]domain.Account, error)
}
