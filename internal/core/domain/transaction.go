package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionDirection indicates whether money moved into or out of the account.
type TransactionDirection string

const (
	Credit TransactionDirection = "CREDIT"
	Debit  TransactionDirection = "DEBIT"
)

// TransactionCategory is the semantic category assigned by the categorizer.
type TransactionCategory string

const (
	CategorySalary        TransactionCategory = "SALARY"
	CategoryFood          TransactionCategory = "FOOD"
	CategoryTransport     TransactionCategory = "TRANSPORT"
	CategoryShopping      TransactionCategory = "SHOPPING"
	CategoryUtilities     TransactionCategory = "UTILITIES"
	CategoryInvestment    TransactionCategory = "INVESTMENT"
	CategoryHealthcare    TransactionCategory = "HEALTHCARE"
	CategoryEntertainment TransactionCategory = "ENTERTAINMENT"
	CategoryCash          TransactionCategory = "CASH"
	CategoryTransfer      TransactionCategory = "TRANSFER"
	CategoryUncategorized TransactionCategory = "UNCATEGORIZED"
)

// Transaction represents one financial movement on a connected account.
// Analyzers are read-only consumers; only the categorizer annotates the
// Category and IsRecurring fields after ingestion.
type Transaction struct {
	TransactionID string               `json:"transactionID"` // Primary Key (UUID)
	AccountID     string               `json:"accountID"`     // FK -> Account.accountID (Not Null)
	UserID        string               `json:"userID"`        // Owner of the account
	Amount        decimal.Decimal      `json:"amount"`        // Non-negative; precise decimal type
	Direction     TransactionDirection `json:"direction"`     // CREDIT or DEBIT (Not Null)
	Category      TransactionCategory  `json:"category"`      // Assigned by categorizer
	Description   string               `json:"description"`   // Free text, sanitized
	Merchant      string               `json:"merchant"`      // Optional merchant text
	OccurredAt    time.Time            `json:"occurredAt"`    // When the movement happened
	BalanceAfter  *decimal.Decimal     `json:"balanceAfter"`  // Optional balance snapshot after this movement
	IsRecurring   bool                 `json:"isRecurring"`   // Computed recurrence flag
	AuditFields
}

// DedupKey returns the composite identity key used for duplicate detection:
// (account, amount, direction, occurrence timestamp).
func (t Transaction) DedupKey() string {
	return fmt.Sprintf("%s|%s|%s|%d", t.AccountID, t.Amount.String(), t.Direction, t.OccurredAt.UTC().Unix())
}

// IsCredit reports whether the transaction moved money into the account.
func (t Transaction) IsCredit() bool {
	return t.Direction == Credit
}

// MatchText returns the lower-cased text the categorizer matches keyword
// rules against (description plus merchant).
func (t Transaction) MatchText() string {
	return strings.ToLower(strings.TrimSpace(t.Description + " " + t.Merchant))
}
