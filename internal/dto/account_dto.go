package dto

import (
	"time"

	"github.com/credvault/alt_credit_scoring_app/internal/core/domain"
)

// CreateAccountRequest registers a connected account delivered by the
// consent flow.
type CreateAccountRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	AccountType string `json:"accountType" binding:"required,oneof=SAVINGS CURRENT INVESTMENT CREDIT"`
}

// AccountResponse is the API form of a connected account.
type AccountResponse struct {
	AccountID    string    `json:"accountID"`
	UserID       string    `json:"userID"`
	Name         string    `json:"name"`
	AccountType  string    `json:"accountType"`
	IsActive     bool      `json:"isActive"`
	LastSyncedAt time.Time `json:"lastSyncedAt"`
}

// ToAccountResponse converts a domain account to its API form.
func ToAccountResponse(a *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:    a.AccountID,
		UserID:       a.UserID,
		Name:         a.Name,
		AccountType:  string(a.AccountType),
		IsActive:     a.IsActive,
		LastSyncedAt: a.LastSyncedAt,
	}
}

// ToAccountResponses converts a slice of domain accounts to API form.
func ToAccountResponses(accounts []domain.Account) []AccountResponse {
	out := make([]AccountResponse, len(accounts))
	for i := range accounts {
		out[i] = ToAccountResponse(&accounts[i])
	}
	return out
}
