package models

import "time"

// AccountType defines the kind of connected financial account.
type AccountType string

const (
	Savings    AccountType = "SAVINGS"
	Current    AccountType = "CURRENT"
	Investment AccountType = "INVESTMENT"
	CreditCard AccountType = "CREDIT"
)

// Account represents a connected financial account row.
type Account struct {
	AccountID    string      `db:"account_id"`
	UserID       string      `db:"user_id"`
	Name         string      `db:"name"`
	AccountType  AccountType `db:"account_type"`
	IsActive     bool        `db:"is_active"`
	LastSyncedAt time.Time   `db:"last_synced_at"`
	AuditFields              // Embed common audit fields
}
