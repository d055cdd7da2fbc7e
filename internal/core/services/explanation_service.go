package services

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/credvault/alt_credit_scoring_app/internal/core/domain"
	portsrepo "github.com/credvault/alt_credit_scoring_app/internal/core/ports/repositories"
	portssvc "github.com/credvault/alt_credit_scoring_app/internal/core/ports/services"
	"github.com/credvault/alt_credit_scoring_app/internal/dto"
)

// Tip priorities, strongest first.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

const maxImprovementTips = 5

// explanationService renders persisted score factors into natural-language
// rationale, a historical-trend series and ranked improvement tips.
type explanationService struct {
	BaseService
	scoreRepo    portsrepo.ScoreRepositoryFacade
	historyLimit int
}

// NewExplanationService creates the explanation generator.
func NewExplanationService(scoreRepo portsrepo.ScoreRepositoryFacade, historyLimit int) portssvc.ExplanationSvcFacade {
	if historyLimit <= 0 {
		historyLimit = 12
	}
	return &explanationService{scoreRepo: scoreRepo, historyLimit: historyLimit}
}

// Ensure explanationService implements the ExplanationSvcFacade interface
var _ portssvc.ExplanationSvcFacade = (*explanationService)(nil)

// ExplainScore implements portssvc.ExplanationSvcFacade.
func (s *explanationService) ExplainScore(ctx context.Context, userID string) (*dto.ScoreExplanationResponse, error) {
	latest, err := s.scoreRepo.FindLatestScore(ctx, userID)
	if err != nil {
		return nil, err
	}
	history, err := s.scoreRepo.ListScoreHistory(ctx, userID, s.historyLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load score history for explanation: %w", err)
	}

	response := &dto.ScoreExplanationResponse{
		UserID:          userID,
		Score:           latest.Score,
		Factors:         make([]dto.FactorExplanation, 0, len(latest.Factors)),
		HistoricalTrend: buildTrendSeries(history),
		ImprovementTips: buildImprovementTips(latest.Factors),
	}
	for _, factor := range latest.Factors {
		response.Factors = append(response.Factors, dto.FactorExplanation{
			Category:    string(factor.Category),
			Impact:      factor.Impact,
			Explanation: explainFactor(factor),
			Actions:     factorActions(factor),
		})
	}
	return response, nil
}

// explainFactor phrases the factor's contribution by impact band.
func explainFactor(factor domain.ScoreFactor) string {
	name := factorDisplayName(factor.Category)
	var phrase string
	switch {
	case factor.Impact > 30:
		phrase = "significantly boosts"
	case factor.Impact > 10:
		phrase = "positively contributes to"
	case factor.Impact >= -10:
		phrase = "has a roughly neutral effect on"
	case factor.Impact >= -30:
		phrase = "reduces"
	default:
		phrase = "significantly reduces"
	}
	return fmt.Sprintf("Your %s %s your score. %s", name, phrase, factor.Description)
}

// factorActions lists the concrete actions for a factor, strongest gaps first.
func factorActions(factor domain.ScoreFactor) []string {
	if factor.Impact > 30 {
		return []string{fmt.Sprintf("Keep your current %s habits.", factorDisplayName(factor.Category))}
	}
	switch factor.Category {
	case domain.FactorIncomeStability:
		return []string{
			"Route your salary into a connected account so it can be recognized.",
			"Reduce gaps between income deposits to establish a regular cadence.",
		}
	case domain.FactorSavingsRate:
		return []string{
			"Set aside a fixed share of each income deposit before spending.",
			"Build an emergency fund covering at least three months of expenses.",
		}
	case domain.FactorPaymentBehavior:
		return []string{
			"Automate recurring bill payments to avoid missed due dates.",
			"Keep a balance buffer to prevent overdrafts.",
		}
	case domain.FactorInvestmentActivity:
		return []string{
			"Start a small recurring investment, even a modest monthly amount counts.",
			"Spread investments across more than one instrument type.",
		}
	default:
		return nil
	}
}

// buildTrendSeries renders history (stored most-recent-first) as a
// chronological series with per-step deltas and a banded reason. Periods are
// day-resolution so multiple snapshots within one month stay distinguishable.
func buildTrendSeries(history []domain.CreditScoreSnapshot) []dto.TrendPoint {
	points := make([]dto.TrendPoint, 0, len(history))
	for i := len(history) - 1; i >= 0; i-- {
		snapshot := history[i]
		point := dto.TrendPoint{
			Period: snapshot.CreatedAt.UTC().Format("2006-01-02"),
			Score:  snapshot.Score,
			At:     snapshot.CreatedAt,
		}
		if len(points) > 0 {
			point.Delta = snapshot.Score - points[len(points)-1].Score
		}
		point.Reason = trendReason(point.Delta, len(points) == 0)
		points = append(points, point)
	}
	return points
}

func trendReason(delta int, first bool) string {
	if first {
		return "Baseline score."
	}
	switch {
	case delta > 20:
		return "Significant improvement over the previous period."
	case delta > 5:
		return "Gradual improvement over the previous period."
	case delta >= -5:
		return "Minor fluctuation, effectively unchanged."
	case delta >= -20:
		return "Gradual decline from the previous period."
	default:
		return "Significant decline from the previous period."
	}
}

// buildImprovementTips ranks factors by how much room they leave on the
// table: priority first, then the weighted potential gain.
func buildImprovementTips(factors []domain.ScoreFactor) []dto.ImprovementTip {
	tips := make([]dto.ImprovementTip, 0, len(factors))
	for _, factor := range factors {
		tip := dto.ImprovementTip{
			Category:        string(factor.Category),
			Priority:        tipPriority(factor.Impact),
			Tip:             tipText(factor.Category),
			PotentialImpact: int(math.Round(factor.Weight * float64(100-factor.Impact))),
		}
		tips = append(tips, tip)
	}
	sort.SliceStable(tips, func(i, j int) bool {
		ri, rj := priorityRank(tips[i].Priority), priorityRank(tips[j].Priority)
		if ri != rj {
			return ri < rj
		}
		return tips[i].PotentialImpact > tips[j].PotentialImpact
	})
	if len(tips) > maxImprovementTips {
		tips = tips[:maxImprovementTips]
	}
	return tips
}

func tipPriority(impact int) string {
	switch {
	case impact < -10:
		return PriorityHigh
	case impact < 30:
		return PriorityMedium
	default:
		return PriorityLow
	}
}

func priorityRank(priority string) int {
	switch priority {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	default:
		return 2
	}
}

func tipText(category domain.FactorCategory) string {
	switch category {
	case domain.FactorIncomeStability:
		return "Establish a regular, recognizable income stream on a connected account."
	case domain.FactorSavingsRate:
		return "Increase the share of income you retain each month."
	case domain.FactorPaymentBehavior:
		return "Pay recurring bills consistently and avoid overdrafts."
	case domain.FactorInvestmentActivity:
		return "Invest regularly and diversify across instrument types."
	default:
		return "Improve this financial dimension."
	}
}

func factorDisplayName(category domain.FactorCategory) string {
	switch category {
	case domain.FactorIncomeStability:
		return "income stability"
	case domain.FactorSavingsRate:
		return "savings rate"
	case domain.FactorPaymentBehavior:
		return "payment behavior"
	case domain.FactorInvestmentActivity:
		return "investment activity"
	default:
		return string(category)
	}
}
