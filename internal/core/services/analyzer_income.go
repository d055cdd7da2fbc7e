package services

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/credvault/alt_credit_scoring_app/internal/core/domain"
)

// Salary frequency labels derived from the gaps between income transactions.
const (
	FrequencyMonthly   = "MONTHLY"
	FrequencyWeekly    = "WEEKLY"
	FrequencyIrregular = "IRREGULAR"
	FrequencyNone      = "NONE"
)

var incomeKeywords = []string{"salary", "payroll", "wages", "stipend"}

// incomeStabilityAnalyzer scores how steady and substantial a user's income
// stream is.
type incomeStabilityAnalyzer struct {
	largeCreditThreshold decimal.Decimal
}

// NewIncomeStabilityAnalyzer creates the income stability analyzer. Credits
// at or above the large-credit threshold count as income even when
// uncategorized.
func NewIncomeStabilityAnalyzer(largeCreditThreshold float64) FactorAnalyzer {
	return &incomeStabilityAnalyzer{
		largeCreditThreshold: decimal.NewFromFloat(largeCreditThreshold),
	}
}

func (a *incomeStabilityAnalyzer) Category() domain.FactorCategory {
	return domain.FactorIncomeStability
}

func (a *incomeStabilityAnalyzer) Analyze(ctx context.Context, txns []domain.Transaction) domain.FactorResult {
	income := a.filterIncome(txns)

	result := domain.FactorResult{
		Category: a.Category(),
		Score:    domain.ScoreFloor,
		Metrics: map[string]float64{
			"monthly_income":      0,
			"income_variability":  0,
			"consistent_months":   0,
			"income_transactions": float64(len(income)),
		},
		Labels: map[string]string{"salary_frequency": FrequencyNone},
	}
	if len(income) == 0 {
		return result
	}

	byMonth := make(map[string]float64)
	for _, txn := range income {
		byMonth[monthKey(txn.OccurredAt)] += txn.Amount.InexactFloat64()
	}

	monthly := make([]float64, 0, len(byMonth))
	for _, key := range sortedMonthKeys(byMonth) {
		monthly = append(monthly, byMonth[key])
	}
	mean, stdDev := meanAndStdDev(monthly)

	variability := 0.0
	if mean > 0 {
		variability = stdDev / mean
	}

	frequency := a.classifyFrequency(income)
	consistentMonths := len(byMonth)

	result.Metrics["monthly_income"] = mean
	result.Metrics["income_variability"] = variability
	result.Metrics["consistent_months"] = float64(consistentMonths)
	result.Labels["salary_frequency"] = frequency

	score := domain.ScoreFloor
	score += incomeLevelBonus(mean)
	score += variabilityBonus(variability)
	score += frequencyBonus(frequency)
	score += consistencyBonus(consistentMonths)
	result.Score = clampScore(score)
	return result
}

// filterIncome keeps credits recognizable as income: salary category, salary
// wording in the description, or an amount above the large-credit threshold.
func (a *incomeStabilityAnalyzer) filterIncome(txns []domain.Transaction) []domain.Transaction {
	var income []domain.Transaction
	for _, txn := range txns {
		if !txn.IsCredit() {
			continue
		}
		if txn.Category == domain.CategorySalary || a.descriptionLooksLikeIncome(txn) || txn.Amount.GreaterThanOrEqual(a.largeCreditThreshold) {
			income = append(income, txn)
		}
	}
	return income
}

func (a *incomeStabilityAnalyzer) descriptionLooksLikeIncome(txn domain.Transaction) bool {
	text := strings.ToLower(txn.Description)
	for _, keyword := range incomeKeywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}

// classifyFrequency derives the salary cadence from the mean gap between
// income transactions: ~30 days is monthly, ~7 days is weekly.
func (a *incomeStabilityAnalyzer) classifyFrequency(income []domain.Transaction) string {
	gaps := successiveGapsDays(income)
	if len(gaps) == 0 {
		return FrequencyIrregular
	}
	mean, _ := meanAndStdDev(gaps)
	switch {
	case mean >= 25 && mean <= 35:
		return FrequencyMonthly
	case mean >= 5 && mean <= 9:
		return FrequencyWeekly
	default:
		return FrequencyIrregular
	}
}

func incomeLevelBonus(meanMonthly float64) int {
	switch {
	case meanMonthly >= 100000:
		return 150
	case meanMonthly >= 50000:
		return 120
	case meanMonthly >= 30000:
		return 90
	case meanMonthly >= 15000:
		return 60
	case meanMonthly > 0:
		return 30
	default:
		return 0
	}
}

func variabilityBonus(cv float64) int {
	switch {
	case cv < 0.1:
		return 150
	case cv < 0.2:
		return 120
	case cv < 0.3:
		return 90
	case cv < 0.5:
		return 50
	default:
		return 0
	}
}

func frequencyBonus(frequency string) int {
	switch frequency {
	case FrequencyMonthly:
		return 100
	case FrequencyWeekly:
		return 70
	case FrequencyIrregular:
		return 20
	default:
		return 0
	}
}

func consistencyBonus(months int) int {
	switch {
	case months >= 12:
		return 150
	case months >= 9:
		return 110
	case months >= 6:
		return 80
	case months >= 3:
		return 40
	default:
		return 0
	}
}
