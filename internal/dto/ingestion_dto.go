package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RawTransactionRecord is one possibly-malformed transaction record as
// delivered by the data-sharing consent flow. Pointer fields distinguish
// "absent" from zero values so the normalizer can reject incomplete records.
type RawTransactionRecord struct {
	AccountID    string           `json:"accountID"`
	Amount       *decimal.Decimal `json:"amount"`
	Direction    string           `json:"direction"`
	Description  string           `json:"description"`
	Merchant     string           `json:"merchant"`
	OccurredAt   *time.Time       `json:"occurredAt"`
	BalanceAfter *decimal.Decimal `json:"balanceAfter"`
}

// IngestTransactionsRequest is the body of the ingestion endpoint.
type IngestTransactionsRequest struct {
	Records []RawTransactionRecord `json:"records" binding:"required,min=1"`
}

// IngestionStats summarizes one ingestion batch.
type IngestionStats struct {
	Processed   int `json:"processed"`
	Accepted    int `json:"accepted"`
	Rejected    int `json:"rejected"`
	Duplicates  int `json:"duplicates"`
	Categorized int `json:"categorized"`
	Recurring   int `json:"recurring"`
}
