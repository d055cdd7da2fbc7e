package services

import (
	"context"
	"strings"

	"github.com/credvault/alt_credit_scoring_app/internal/core/domain"
)

// Risk profile labels derived from the set of instrument types present.
const (
	RiskAggressive   = "AGGRESSIVE"
	RiskModerate     = "MODERATE"
	RiskConservative = "CONSERVATIVE"
)

// Instrument type buckets.
const (
	instrumentMutualFund   = "MUTUAL_FUND"
	instrumentEquity       = "EQUITY"
	instrumentFixedDeposit = "FIXED_DEPOSIT"
	instrumentOther        = "OTHER"
)

var instrumentKeywords = []struct {
	instrument string
	keywords   []string
}{
	{instrumentMutualFund, []string{"mutual fund", "sip", "elss", "groww"}},
	{instrumentEquity, []string{"equity", "stock", "zerodha", "demat", "etf", "shares"}},
	{instrumentFixedDeposit, []string{"fixed deposit", "recurring deposit", "ppf", "nps"}},
}

// investmentActivityAnalyzer scores how actively and how broadly a user
// invests.
type investmentActivityAnalyzer struct{}

// NewInvestmentActivityAnalyzer creates the investment activity analyzer.
func NewInvestmentActivityAnalyzer() FactorAnalyzer {
	return &investmentActivityAnalyzer{}
}

func (a *investmentActivityAnalyzer) Category() domain.FactorCategory {
	return domain.FactorInvestmentActivity
}

func (a *investmentActivityAnalyzer) Analyze(ctx context.Context, txns []domain.Transaction) domain.FactorResult {
	totalInvested := 0.0
	count := 0
	instruments := make(map[string]struct{})

	for _, txn := range txns {
		if txn.IsCredit() {
			continue
		}
		if txn.Category != domain.CategoryInvestment && !a.matchesInvestmentKeyword(txn) {
			continue
		}
		totalInvested += txn.Amount.InexactFloat64()
		count++
		instruments[classifyInstrument(txn)] = struct{}{}
	}

	risk := classifyRiskProfile(instruments)

	result := domain.FactorResult{
		Category: a.Category(),
		Score:    domain.ScoreFloor,
		Metrics: map[string]float64{
			"total_invested":   totalInvested,
			"investment_count": float64(count),
			"instrument_types": float64(len(instruments)),
		},
		Labels: map[string]string{"risk_profile": risk},
	}
	if count == 0 {
		return result
	}

	score := domain.ScoreFloor
	score += investedAmountBonus(totalInvested)
	score += investmentFrequencyBonus(count)
	score += diversificationBonus(len(instruments))
	score += riskProfileBonus(risk)
	result.Score = clampScore(score)
	return result
}

func (a *investmentActivityAnalyzer) matchesInvestmentKeyword(txn domain.Transaction) bool {
	text := txn.MatchText()
	for _, group := range instrumentKeywords {
		for _, keyword := range group.keywords {
			if strings.Contains(text, keyword) {
				return true
			}
		}
	}
	return strings.Contains(text, "investment")
}

func classifyInstrument(txn domain.Transaction) string {
	text := txn.MatchText()
	for _, group := range instrumentKeywords {
		for _, keyword := range group.keywords {
			if strings.Contains(text, keyword) {
				return group.instrument
			}
		}
	}
	return instrumentOther
}

// classifyRiskProfile: equity present means aggressive, otherwise mutual
// funds mean moderate, otherwise conservative.
func classifyRiskProfile(instruments map[string]struct{}) string {
	if _, ok := instruments[instrumentEquity]; ok {
		return RiskAggressive
	}
	if _, ok := instruments[instrumentMutualFund]; ok {
		return RiskModerate
	}
	return RiskConservative
}

func investedAmountBonus(total float64) int {
	switch {
	case total >= 100000:
		return 200
	case total >= 50000:
		return 150
	case total >= 20000:
		return 100
	case total > 0:
		return 50
	default:
		return 0
	}
}

func investmentFrequencyBonus(count int) int {
	switch {
	case count >= 12:
		return 150
	case count >= 6:
		return 100
	case count >= 3:
		return 60
	case count >= 1:
		return 30
	default:
		return 0
	}
}

func diversificationBonus(types int) int {
	bonus := types * 50
	if bonus > 150 {
		bonus = 150
	}
	return bonus
}

func riskProfileBonus(risk string) int {
	switch risk {
	case RiskModerate:
		return 50
	case RiskAggressive:
		return 30
	default:
		return 20
	}
}
