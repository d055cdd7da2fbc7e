package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/credvault/alt_credit_scoring_app/internal/core/domain"
	portsrepo "github.com/credvault/alt_credit_scoring_app/internal/core/ports/repositories"
	portssvc "github.com/credvault/alt_credit_scoring_app/internal/core/ports/services"
	"github.com/credvault/alt_credit_scoring_app/internal/dto"
)

// accountService manages connected financial accounts.
type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewAccountService creates the account service.
func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade) portssvc.AccountSvcFacade {
	return &accountService{accountRepo: accountRepo}
}

// Ensure accountService implements the AccountSvcFacade interface
var _ portssvc.AccountSvcFacade = (*accountService)(nil)

// CreateAccount implements portssvc.AccountSvcFacade.
func (s *accountService) CreateAccount(ctx context.Context, userID string, req dto.CreateAccountRequest) (*domain.Account, error) {
	now := time.Now().UTC()
	account := domain.Account{
		AccountID:   uuid.New().String(),
		UserID:      userID,
		Name:        req.Name,
		AccountType: domain.AccountType(req.AccountType),
		IsActive:    true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "Failed to create account", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to create account: %w", err)
	}
	s.LogInfo(ctx, "Account created", slog.String("account_id", account.AccountID), slog.String("account_type", string(account.AccountType)))
	return &account, nil
}

// ListActiveAccounts implements portssvc.AccountSvcFacade.
func (s *accountService) ListActiveAccounts(ctx context.Context, userID string) ([]domain.Account, error) {
	return s.accountRepo.ListActiveAccountsByUser(ctx, userID)
}
