package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents a normalized transaction row.
//
// The tuple (account_id, amount, direction, occurred_at) carries a unique
// index and acts as the duplicate-detection identity key.
type Transaction struct {
	TransactionID string              `db:"transaction_id"`
	AccountID     string              `db:"account_id"`
	UserID        string              `db:"user_id"`
	Amount        decimal.Decimal     `db:"amount"` // Always non-negative; direction carries the sign
	Direction     string              `db:"direction"`
	Category      string              `db:"category"`
	Description   string              `db:"description"`
	Merchant      string              `db:"merchant"`
	OccurredAt    time.Time           `db:"occurred_at"`
	BalanceAfter  decimal.NullDecimal `db:"balance_after"` // Nullable
	IsRecurring   bool                `db:"is_recurring"`
	AuditFields
}
