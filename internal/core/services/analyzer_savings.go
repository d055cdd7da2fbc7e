package services

import (
	"context"

	"github.com/credvault/alt_credit_scoring_app/internal/core/domain"
)

// Savings trend labels comparing recent months against the earliest ones.
const (
	SavingsTrendImproving = "IMPROVING"
	SavingsTrendStable    = "STABLE"
	SavingsTrendDeclining = "DECLINING"
)

// savingsTrendTolerance is the band within which the trend counts as stable.
const savingsTrendTolerance = 0.05

// savingsRateAnalyzer scores how much of the monthly inflow a user retains.
type savingsRateAnalyzer struct{}

// NewSavingsRateAnalyzer creates the savings rate analyzer.
func NewSavingsRateAnalyzer() FactorAnalyzer {
	return &savingsRateAnalyzer{}
}

func (a *savingsRateAnalyzer) Category() domain.FactorCategory {
	return domain.FactorSavingsRate
}

func (a *savingsRateAnalyzer) Analyze(ctx context.Context, txns []domain.Transaction) domain.FactorResult {
	type monthTotals struct {
		credit float64
		debit  float64
	}
	byMonth := make(map[string]*monthTotals)
	for _, txn := range txns {
		key := monthKey(txn.OccurredAt)
		totals, ok := byMonth[key]
		if !ok {
			totals = &monthTotals{}
			byMonth[key] = totals
		}
		if txn.IsCredit() {
			totals.credit += txn.Amount.InexactFloat64()
		} else {
			totals.debit += txn.Amount.InexactFloat64()
		}
	}

	result := domain.FactorResult{
		Category: a.Category(),
		Score:    domain.ScoreFloor,
		Metrics: map[string]float64{
			"average_savings_rate":  0,
			"emergency_fund_months": 0,
		},
		Labels: map[string]string{"savings_trend": SavingsTrendStable},
	}
	if len(byMonth) == 0 {
		return result
	}

	// Per-month savings rate, chronological. Months with no inflow save nothing.
	rates := make([]float64, 0, len(byMonth))
	for _, key := range sortedMonthKeys(byMonth) {
		totals := byMonth[key]
		rate := 0.0
		if totals.credit > 0 {
			rate = (totals.credit - totals.debit) / totals.credit
			if rate < 0 {
				rate = 0
			}
		}
		rates = append(rates, rate)
	}

	average := 0.0
	for _, r := range rates {
		average += r
	}
	average /= float64(len(rates))

	trend := classifySavingsTrend(rates)
	fundMonths := average * 12

	result.Metrics["average_savings_rate"] = average
	result.Metrics["emergency_fund_months"] = fundMonths
	result.Labels["savings_trend"] = trend

	score := domain.ScoreFloor
	score += savingsRateBonus(average)
	score += savingsTrendBonus(trend)
	score += emergencyFundBonus(fundMonths)
	result.Score = clampScore(score)
	return result
}

// classifySavingsTrend compares the mean of the most recent three months
// against the mean of the earliest three.
func classifySavingsTrend(rates []float64) string {
	if len(rates) < 2 {
		return SavingsTrendStable
	}
	n := 3
	if len(rates) < n {
		n = len(rates)
	}
	earliest, _ := meanAndStdDev(rates[:n])
	recent, _ := meanAndStdDev(rates[len(rates)-n:])

	diff := recent - earliest
	switch {
	case diff > savingsTrendTolerance:
		return SavingsTrendImproving
	case diff < -savingsTrendTolerance:
		return SavingsTrendDeclining
	default:
		return SavingsTrendStable
	}
}

func savingsRateBonus(rate float64) int {
	switch {
	case rate >= 0.30:
		return 250
	case rate >= 0.20:
		return 200
	case rate >= 0.10:
		return 140
	case rate >= 0.05:
		return 80
	case rate > 0:
		return 40
	default:
		return 0
	}
}

func savingsTrendBonus(trend string) int {
	switch trend {
	case SavingsTrendImproving:
		return 150
	case SavingsTrendStable:
		return 100
	default:
		return 30
	}
}

func emergencyFundBonus(months float64) int {
	switch {
	case months >= 6:
		return 150
	case months >= 3:
		return 100
	case months >= 1:
		return 50
	default:
		return 0
	}
}
