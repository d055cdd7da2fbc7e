package domain

import "time"

// AccountType defines the kind of connected financial account.
type AccountType string

const (
	Savings    AccountType = "SAVINGS"
	Current    AccountType = "CURRENT"
	Investment AccountType = "INVESTMENT"
	CreditCard AccountType = "CREDIT"
)

// Account represents a connected financial account owning zero or more
// transactions, synchronized from the data-sharing consent flow.
type Account struct {
	AccountID    string      `json:"accountID"` // Primary Key (UUID)
	UserID       string      `json:"userID"`    // Owner
	Name         string      `json:"name"`      // Display name, e.g. masked account number
	AccountType  AccountType `json:"accountType"`
	IsActive     bool        `json:"isActive"`
	LastSyncedAt time.Time   `json:"lastSyncedAt"` // Last successful transaction sync
	AuditFields
}
