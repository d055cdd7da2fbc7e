package services

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/credvault/alt_credit_scoring_app/internal/core/domain"
	"github.com/credvault/alt_credit_scoring_app/internal/dto"
)

const (
	maxTextLength = 255
	// futureTolerance allows for timezone skew between the source
	// institution and this system.
	futureTolerance = 24 * time.Hour
)

// improbablyLargeAmount flags (but does not reject) amounts that are almost
// certainly data errors.
var improbablyLargeAmount = decimal.NewFromInt(10_000_000)

var scriptFragmentRe = regexp.MustCompile(`(?i)<\s*/?\s*script[^>]*>|javascript:`)

// RejectedRecord describes one dropped raw record.
type RejectedRecord struct {
	Index  int
	Reason string
}

// NormalizedBatch is the output of normalizing one raw batch.
type NormalizedBatch struct {
	Accepted []domain.Transaction
	Rejected []RejectedRecord
	// Warnings flag unusual but accepted records for observability.
	Warnings []string
}

// Normalizer validates and sanitizes raw transaction records. It is a pure
// transform over one batch; rejected records are reported, never fatal.
type Normalizer struct{}

// NewNormalizer creates a Normalizer.
func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

// NormalizeBatch validates every record, coercing accepted ones into domain
// transactions with a default recurrence flag of false.
func (n *Normalizer) NormalizeBatch(userID string, records []dto.RawTransactionRecord, now time.Time) NormalizedBatch {
	out := NormalizedBatch{}
	for i, rec := range records {
		if reason := n.validate(rec); reason != "" {
			out.Rejected = append(out.Rejected, RejectedRecord{Index: i, Reason: reason})
			continue
		}

		txn := domain.Transaction{
			TransactionID: uuid.NewString(),
			AccountID:     rec.AccountID,
			UserID:        userID,
			Amount:        rec.Amount.Abs(),
			Direction:     domain.TransactionDirection(strings.ToUpper(strings.TrimSpace(rec.Direction))),
			Category:      domain.CategoryUncategorized,
			Description:   sanitizeText(rec.Description),
			Merchant:      sanitizeText(rec.Merchant),
			OccurredAt:    rec.OccurredAt.UTC(),
			BalanceAfter:  rec.BalanceAfter,
			IsRecurring:   false,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     userID,
				LastUpdatedAt: now,
				LastUpdatedBy: userID,
			},
		}

		if txn.Amount.GreaterThan(improbablyLargeAmount) {
			out.Warnings = append(out.Warnings, fmt.Sprintf("record %d: improbably large amount %s", i, txn.Amount.String()))
		}
		if txn.OccurredAt.After(now.Add(futureTolerance)) {
			out.Warnings = append(out.Warnings, fmt.Sprintf("record %d: occurrence timestamp %s is in the future", i, txn.OccurredAt.Format(time.RFC3339)))
		}

		out.Accepted = append(out.Accepted, txn)
	}
	return out
}

func (n *Normalizer) validate(rec dto.RawTransactionRecord) string {
	if strings.TrimSpace(rec.AccountID) == "" {
		return "missing account reference"
	}
	if rec.Amount == nil {
		return "missing amount"
	}
	dir := strings.ToUpper(strings.TrimSpace(rec.Direction))
	if dir != string(domain.Credit) && dir != string(domain.Debit) {
		return fmt.Sprintf("invalid direction %q", rec.Direction)
	}
	if rec.OccurredAt == nil || rec.OccurredAt.IsZero() {
		return "missing occurrence timestamp"
	}
	return ""
}

// sanitizeText trims, strips angle brackets and script-like substrings, and
// caps the length of free-text fields. Truncation never splits a multi-byte
// rune.
func sanitizeText(s string) string {
	s = scriptFragmentRe.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, "<", "")
	s = strings.ReplaceAll(s, ">", "")
	s = strings.TrimSpace(s)
	if len(s) > maxTextLength {
		cut := maxTextLength
		for cut > 0 && !utf8.RuneStart(s[cut]) {
			cut--
		}
		s = s[:cut]
	}
	return s
}
