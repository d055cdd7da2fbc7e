package mapping

import (
	"github.com/shopspring/decimal"

	"github.com/credvault/alt_credit_scoring_app/internal/core/domain"
	"github.com/credvault/alt_credit_scoring_app/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	balanceAfter := decimal.NullDecimal{}
	if d.BalanceAfter != nil {
		balanceAfter = decimal.NullDecimal{Decimal: *d.BalanceAfter, Valid: true}
	}
	return models.Transaction{
		TransactionID: d.TransactionID,
		AccountID:     d.AccountID,
		UserID:        d.UserID,
		Amount:        d.Amount,
		Direction:     string(d.Direction),
		Category:      string(d.Category),
		Description:   d.Description,
		Merchant:      d.Merchant,
		OccurredAt:    d.OccurredAt,
		BalanceAfter:  balanceAfter,
		IsRecurring:   d.IsRecurring,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	var balanceAfter *decimal.Decimal
	if m.BalanceAfter.Valid {
		b := m.BalanceAfter.Decimal
		balanceAfter = &b
	}
	return domain.Transaction{
		TransactionID: m.TransactionID,
		AccountID:     m.AccountID,
		UserID:        m.UserID,
		Amount:        m.Amount,
		Direction:     domain.TransactionDirection(m.Direction),
		Category:      domain.TransactionCategory(m.Category),
		Description:   m.Description,
		Merchant:      m.Merchant,
		OccurredAt:    m.OccurredAt,
		BalanceAfter:  balanceAfter,
		IsRecurring:   m.IsRecurring,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainTransactionSlice converts a slice of model Transactions to domain form
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}
