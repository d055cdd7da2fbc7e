package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/credvault/alt_credit_scoring_app/internal/core/domain"
	portsrepo "github.com/credvault/alt_credit_scoring_app/internal/core/ports/repositories"
	portssvc "github.com/credvault/alt_credit_scoring_app/internal/core/ports/services"
	"github.com/credvault/alt_credit_scoring_app/internal/platform/config"
)

// criticalRequirementWeight is the weight at or above which an unmet
// requirement blocks scoring entirely.
const criticalRequirementWeight = 0.25

// sufficiencyService evaluates whether a user's data is rich enough to score.
type sufficiencyService struct {
	BaseService
	txnRepo      portsrepo.TransactionRepositoryFacade
	accountRepo  portsrepo.AccountRepositoryFacade
	minimums     config.SufficiencyConfig
	windowMonths int
}

// NewSufficiencyService creates the data-sufficiency gate.
func NewSufficiencyService(txnRepo portsrepo.TransactionRepositoryFacade, accountRepo portsrepo.AccountRepositoryFacade, minimums config.SufficiencyConfig, windowMonths int) portssvc.SufficiencySvcFacade {
	if windowMonths <= 0 {
		windowMonths = 12
	}
	return &sufficiencyService{
		txnRepo:      txnRepo,
		accountRepo:  accountRepo,
		minimums:     minimums,
		windowMonths: windowMonths,
	}
}

// Ensure sufficiencyService implements the SufficiencySvcFacade interface
var _ portssvc.SufficiencySvcFacade = (*sufficiencyService)(nil)

// EvaluateSufficiency implements portssvc.SufficiencySvcFacade.
func (s *sufficiencyService) EvaluateSufficiency(ctx context.Context, userID string) (*domain.SufficiencyReport, error) {
	now := time.Now().UTC()
	from := now.AddDate(0, -s.windowMonths, 0)

	txns, err := s.txnRepo.ListTransactionsByUser(ctx, userID, from, now)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions for sufficiency evaluation: %w", err)
	}
	accounts, err := s.accountRepo.ListActiveAccountsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load accounts for sufficiency evaluation: %w", err)
	}

	requirements := s.evaluateRequirements(txns, len(accounts))

	report := &domain.SufficiencyReport{
		UserID:       userID,
		Requirements: requirements,
		Sufficient:   true,
		CanProceed:   true,
		EvaluatedAt:  now,
	}

	weightedSum := 0.0
	totalWeight := 0.0
	for _, req := range requirements {
		ratio := 1.0
		if req.Required > 0 {
			ratio = req.Current / req.Required
			if ratio > 1 {
				ratio = 1
			}
		}
		weightedSum += ratio * req.Weight
		totalWeight += req.Weight
		if !req.Met {
			report.Sufficient = false
			if req.Weight >= criticalRequirementWeight {
				report.CanProceed = false
			}
		}
	}
	if totalWeight > 0 {
		report.QualityScore = weightedSum / totalWeight * 100
	}

	report.EstimatedAccuracy = s.estimateAccuracy(report.QualityScore, requirements)
	report.Recommendations = buildRecommendations(requirements)

	s.LogDebug(ctx, "Evaluated data sufficiency",
		slog.String("user_id", userID),
		slog.Float64("quality_score", report.QualityScore),
		slog.Bool("can_proceed", report.CanProceed))
	return report, nil
}

func (s *sufficiencyService) evaluateRequirements(txns []domain.Transaction, activeAccounts int) []domain.DataRequirement {
	timespanDays := 0.0
	if len(txns) > 1 {
		earliest, latest := txns[0].OccurredAt, txns[0].OccurredAt
		for _, txn := range txns[1:] {
			if txn.OccurredAt.Before(earliest) {
				earliest = txn.OccurredAt
			}
			if txn.OccurredAt.After(latest) {
				latest = txn.OccurredAt
			}
		}
		timespanDays = latest.Sub(earliest).Hours() / 24
	}

	categories := make(map[domain.TransactionCategory]struct{})
	months := make(map[string]struct{})
	for _, txn := range txns {
		if txn.Category != domain.CategoryUncategorized {
			categories[txn.Category] = struct{}{}
		}
		months[monthKey(txn.OccurredAt)] = struct{}{}
	}

	monthlyFrequency := 0.0
	if len(months) > 0 {
		monthlyFrequency = float64(len(txns)) / float64(len(months))
	}

	return []domain.DataRequirement{
		requirement(domain.RequirementTransactionCount, float64(len(txns)), float64(s.minimums.MinTransactions), 0.30),
		requirement(domain.RequirementActiveAccounts, float64(activeAccounts), float64(s.minimums.MinActiveAccounts), 0.25),
		requirement(domain.RequirementDataTimespan, timespanDays, float64(s.minimums.MinTimespanDays), 0.20),
		requirement(domain.RequirementCategoryCoverage, float64(len(categories)), float64(s.minimums.MinCategories), 0.15),
		requirement(domain.RequirementMonthlyFrequency, monthlyFrequency, s.minimums.MinMonthlyFrequency, 0.10),
	}
}

func requirement(name domain.RequirementName, current, required, weight float64) domain.DataRequirement {
	return domain.DataRequirement{
		Name:     name,
		Current:  current,
		Required: required,
		Weight:   weight,
		Met:      current >= required,
	}
}

// estimateAccuracy starts from the quality score and penalizes the two
// critical gaps hardest, with small bonuses for unusually deep data.
func (s *sufficiencyService) estimateAccuracy(qualityScore float64, requirements []domain.DataRequirement) float64 {
	accuracy := qualityScore / 100
	var txCount, accountCount float64
	for _, req := range requirements {
		switch req.Name {
		case domain.RequirementTransactionCount:
			txCount = req.Current
			if !req.Met {
				accuracy *= 0.7
			}
		case domain.RequirementActiveAccounts:
			accountCount = req.Current
			if !req.Met {
				accuracy *= 0.8
			}
		}
	}
	if txCount > 200 {
		accuracy += 0.05
	}
	if accountCount > 4 {
		accuracy += 0.05
	}
	if accuracy < 0 {
		return 0
	}
	if accuracy > 1 {
		return 1
	}
	return accuracy
}

// buildRecommendations produces one action per unmet requirement, heaviest
// weight first.
func buildRecommendations(requirements []domain.DataRequirement) []string {
	unmet := make([]domain.DataRequirement, 0, len(requirements))
	for _, req := range requirements {
		if !req.Met {
			unmet = append(unmet, req)
		}
	}
	sort.SliceStable(unmet, func(i, j int) bool { return unmet[i].Weight > unmet[j].Weight })

	recommendations := make([]string, 0, len(unmet))
	for _, req := range unmet {
		recommendations = append(recommendations, recommendationFor(req))
	}
	return recommendations
}

func recommendationFor(req domain.DataRequirement) string {
	switch req.Name {
	case domain.RequirementTransactionCount:
		return fmt.Sprintf("Add more transaction history: %.0f of the required %.0f transactions are available.", req.Current, req.Required)
	case domain.RequirementActiveAccounts:
		return fmt.Sprintf("Connect more accounts: %.0f of the required %.0f active accounts are linked.", req.Current, req.Required)
	case domain.RequirementDataTimespan:
		return fmt.Sprintf("Extend data coverage: the history spans %.0f days, %.0f are required.", req.Current, req.Required)
	case domain.RequirementCategoryCoverage:
		return fmt.Sprintf("Broaden spending diversity: %.0f of the required %.0f distinct categories are present.", req.Current, req.Required)
	case domain.RequirementMonthlyFrequency:
		return fmt.Sprintf("Increase account activity: %.1f transactions per month on average, %.1f are required.", req.Current, req.Required)
	default:
		return fmt.Sprintf("Improve %s: %.1f of %.1f.", req.Name, req.Current, req.Required)
	}
}
