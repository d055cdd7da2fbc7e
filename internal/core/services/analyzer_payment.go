package services

import (
	"context"
	"strings"

	"github.com/credvault/alt_credit_scoring_app/internal/core/domain"
)

var billKeywords = []string{"bill", "electricity", "water", "gas", "broadband", "internet", "recharge", "rent", "emi", "premium", "insurance"}

// paymentBehaviorAnalyzer scores how reliably a user meets recurring
// obligations.
//
// The on-time heuristic is an approximation: every qualifying bill payment is
// assumed on-time unless a negative balance snapshot was recorded, since the
// source feed carries no real payment-failure signal.
type paymentBehaviorAnalyzer struct{}

// NewPaymentBehaviorAnalyzer creates the payment behavior analyzer.
func NewPaymentBehaviorAnalyzer() FactorAnalyzer {
	return &paymentBehaviorAnalyzer{}
}

func (a *paymentBehaviorAnalyzer) Category() domain.FactorCategory {
	return domain.FactorPaymentBehavior
}

func (a *paymentBehaviorAnalyzer) Analyze(ctx context.Context, txns []domain.Transaction) domain.FactorResult {
	var qualifying []domain.Transaction
	recurringPayees := make(map[string]struct{})
	overdrafts := 0

	for _, txn := range txns {
		if txn.BalanceAfter != nil && txn.BalanceAfter.IsNegative() {
			overdrafts++
		}
		if txn.IsCredit() {
			continue
		}
		if a.isBillPayment(txn) || txn.IsRecurring {
			qualifying = append(qualifying, txn)
			if txn.IsRecurring {
				recurringPayees[strings.ToLower(strings.TrimSpace(txn.Description))] = struct{}{}
			}
		}
	}

	onTimeRate := 0.0
	if len(qualifying) > 0 {
		onTimeRate = float64(len(qualifying)-overdrafts) / float64(len(qualifying))
		if onTimeRate < 0 {
			onTimeRate = 0
		}
	}

	result := domain.FactorResult{
		Category: a.Category(),
		Score:    domain.ScoreFloor,
		Metrics: map[string]float64{
			"on_time_rate":       onTimeRate,
			"overdraft_count":    float64(overdrafts),
			"bill_payments":      float64(len(qualifying)),
			"recurring_payments": float64(len(recurringPayees)),
		},
		Labels: map[string]string{},
	}

	score := domain.ScoreFloor
	score += onTimeRateBonus(onTimeRate)
	score += overdraftBonus(overdrafts)
	score += recurringVolumeBonus(len(recurringPayees))
	result.Score = clampScore(score)
	return result
}

func (a *paymentBehaviorAnalyzer) isBillPayment(txn domain.Transaction) bool {
	if txn.Category == domain.CategoryUtilities {
		return true
	}
	text := strings.ToLower(txn.Description)
	for _, keyword := range billKeywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}

func onTimeRateBonus(rate float64) int {
	switch {
	case rate >= 0.98:
		return 300
	case rate >= 0.95:
		return 250
	case rate >= 0.90:
		return 180
	case rate >= 0.75:
		return 100
	case rate > 0:
		return 40
	default:
		return 0
	}
}

// overdraftBonus rewards fewer overdrafts; there is no bonus beyond the cap.
func overdraftBonus(count int) int {
	switch {
	case count == 0:
		return 150
	case count <= 2:
		return 90
	case count <= 5:
		return 40
	default:
		return 0
	}
}

func recurringVolumeBonus(payees int) int {
	switch {
	case payees >= 5:
		return 100
	case payees >= 3:
		return 70
	case payees >= 1:
		return 40
	default:
		return 0
	}
}
