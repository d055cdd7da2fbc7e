package services

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/credvault/alt_credit_scoring_app/internal/apperrors"
	"github.com/credvault/alt_credit_scoring_app/internal/core/domain"
	portsrepo "github.com/credvault/alt_credit_scoring_app/internal/core/ports/repositories"
	portssvc "github.com/credvault/alt_credit_scoring_app/internal/core/ports/services"
)

// trendThreshold is the score delta beyond which the trend leaves STABLE.
const trendThreshold = 20

// weightTolerance absorbs float representation noise when validating that
// factor weights sum to 1.0.
const weightTolerance = 1e-9

// DefaultFactorWeights returns the standard aggregation weights.
func DefaultFactorWeights() map[domain.FactorCategory]float64 {
	return map[domain.FactorCategory]float64{
		domain.FactorIncomeStability:    0.35,
		domain.FactorPaymentBehavior:    0.25,
		domain.FactorSavingsRate:        0.25,
		domain.FactorInvestmentActivity: 0.15,
	}
}

// scoringService runs the factor analyzers over a user's transaction window
// and aggregates their sub-scores into a persisted snapshot.
type scoringService struct {
	BaseService
	sufficiencySvc portssvc.SufficiencySvcFacade
	txnRepo        portsrepo.TransactionRepositoryFacade
	scoreRepo      portsrepo.ScoreRepositoryFacade
	analyzers      []FactorAnalyzer
	weights        map[domain.FactorCategory]float64
	windowMonths   int
}

// ScoringServiceOption is a functional option for configuring the scoring service.
type ScoringServiceOption func(*scoringService)

// WithFactorWeights overrides the default aggregation weights.
func WithFactorWeights(weights map[domain.FactorCategory]float64) ScoringServiceOption {
	return func(s *scoringService) {
		if len(weights) > 0 {
			s.weights = weights
		}
	}
}

// WithScoringWindowMonths sets the trailing transaction window analyzed per run.
func WithScoringWindowMonths(months int) ScoringServiceOption {
	return func(s *scoringService) {
		if months > 0 {
			s.windowMonths = months
		}
	}
}

// NewScoringService creates the scoring pipeline service. Fails when the
// analyzer set and the weight table disagree or the weights do not sum to 1.0.
func NewScoringService(sufficiencySvc portssvc.SufficiencySvcFacade, txnRepo portsrepo.TransactionRepositoryFacade, scoreRepo portsrepo.ScoreRepositoryFacade, analyzers []FactorAnalyzer, options ...ScoringServiceOption) (portssvc.ScoringSvcFacade, error) {
	svc := &scoringService{
		sufficiencySvc: sufficiencySvc,
		txnRepo:        txnRepo,
		scoreRepo:      scoreRepo,
		analyzers:      analyzers,
		weights:        DefaultFactorWeights(),
		windowMonths:   12,
	}
	for _, option := range options {
		option(svc)
	}

	total := 0.0
	for _, analyzer := range svc.analyzers {
		weight, ok := svc.weights[analyzer.Category()]
		if !ok {
			return nil, fmt.Errorf("no weight configured for factor %s", analyzer.Category())
		}
		total += weight
	}
	if len(svc.analyzers) == 0 {
		return nil, fmt.Errorf("at least one factor analyzer is required")
	}
	if math.Abs(total-1.0) > weightTolerance {
		return nil, fmt.Errorf("factor weights must sum to 1.0, got %v", total)
	}
	return svc, nil
}

// Ensure scoringService implements the ScoringSvcFacade interface
var _ portssvc.ScoringSvcFacade = (*scoringService)(nil)

// ComputeScore implements portssvc.ScoringSvcFacade.
func (s *scoringService) ComputeScore(ctx context.Context, userID string) (*domain.CreditScoreSnapshot, error) {
	report, err := s.sufficiencySvc.EvaluateSufficiency(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to evaluate data sufficiency: %w", err)
	}
	if !report.CanProceed {
		unmet := make([]string, 0, len(report.Requirements))
		for _, req := range report.Requirements {
			if !req.Met {
				unmet = append(unmet, string(req.Name))
			}
		}
		s.LogInfo(ctx, "Scoring blocked by sufficiency gate", slog.String("user_id", userID), slog.Any("unmet", unmet))
		return nil, apperrors.NewInsufficientDataError(unmet)
	}

	now := time.Now().UTC()
	from := now.AddDate(0, -s.windowMonths, 0)
	txns, err := s.txnRepo.ListTransactionsByUser(ctx, userID, from, now)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions for scoring: %w", err)
	}

	results := make([]domain.FactorResult, 0, len(s.analyzers))
	weighted := 0.0
	for _, analyzer := range s.analyzers {
		result := analyzer.Analyze(ctx, txns)
		result.Score = clampScore(result.Score)
		results = append(results, result)
		weighted += float64(result.Score) * s.weights[result.Category]
	}
	finalScore := clampScore(int(math.Round(weighted)))

	trend, err := s.deriveTrend(ctx, userID, finalScore)
	if err != nil {
		return nil, err
	}

	snapshot := domain.CreditScoreSnapshot{
		ScoreID:    uuid.New().String(),
		UserID:     userID,
		Score:      finalScore,
		Confidence: s.estimateConfidence(len(txns), results),
		Trend:      trend,
		CreatedAt:  now,
	}
	for _, result := range results {
		snapshot.Factors = append(snapshot.Factors, domain.ScoreFactor{
			FactorID:    uuid.New().String(),
			ScoreID:     snapshot.ScoreID,
			Category:    result.Category,
			Impact:      factorImpact(result.Score),
			Weight:      s.weights[result.Category],
			Description: factorDescription(result),
		})
	}

	if err := s.scoreRepo.SaveSnapshot(ctx, snapshot); err != nil {
		return nil, fmt.Errorf("failed to persist score snapshot: %w", err)
	}

	s.LogInfo(ctx, "Credit score computed",
		slog.String("user_id", userID),
		slog.Int("score", snapshot.Score),
		slog.Float64("confidence", snapshot.Confidence),
		slog.String("trend", string(snapshot.Trend)))
	return &snapshot, nil
}

// GetLatestScore implements portssvc.ScoringSvcFacade.
func (s *scoringService) GetLatestScore(ctx context.Context, userID string) (*domain.CreditScoreSnapshot, error) {
	snapshot, err := s.scoreRepo.FindLatestScore(ctx, userID)
	if err != nil {
		return nil, err
	}
	return snapshot, nil
}

// ListScoreHistory implements portssvc.ScoringSvcFacade.
func (s *scoringService) ListScoreHistory(ctx context.Context, userID string, limit int) ([]domain.CreditScoreSnapshot, error) {
	if limit <= 0 {
		limit = 12
	}
	return s.scoreRepo.ListScoreHistory(ctx, userID, limit)
}

// deriveTrend compares the new score against the most recent persisted
// snapshot. The very first score is always STABLE.
func (s *scoringService) deriveTrend(ctx context.Context, userID string, newScore int) (domain.ScoreTrend, error) {
	history, err := s.scoreRepo.ListScoreHistory(ctx, userID, 1)
	if err != nil {
		return "", fmt.Errorf("failed to load score history for trend: %w", err)
	}
	if len(history) == 0 {
		return domain.TrendStable, nil
	}
	delta := newScore - history[0].Score
	switch {
	case delta > trendThreshold:
		return domain.TrendImproving, nil
	case delta < -trendThreshold:
		return domain.TrendDeclining, nil
	default:
		return domain.TrendStable, nil
	}
}

// estimateConfidence starts from a 0.5 base and adds volume and income
// consistency bonuses, capped at 1.0.
func (s *scoringService) estimateConfidence(txnCount int, results []domain.FactorResult) float64 {
	confidence := 0.5
	switch {
	case txnCount > 500:
		confidence += 0.3
	case txnCount > 200:
		confidence += 0.2
	case txnCount > 100:
		confidence += 0.1
	}
	for _, result := range results {
		if result.Category != domain.FactorIncomeStability {
			continue
		}
		if result.Metrics["income_transactions"] == 0 {
			break
		}
		if result.Metrics["consistent_months"] >= 6 {
			confidence += 0.1
		}
		if result.Metrics["income_variability"] < 0.3 {
			confidence += 0.1
		}
		break
	}
	if confidence > 1 {
		return 1
	}
	return confidence
}

// factorImpact maps a sub-score in [300, 850] onto the signed [-100, +100]
// relative contribution scale, centered on the midpoint 575.
func factorImpact(score int) int {
	return int(math.Round(float64(score-575) / 275 * 100))
}

func factorDescription(result domain.FactorResult) string {
	switch result.Category {
	case domain.FactorIncomeStability:
		if result.Metrics["income_transactions"] == 0 {
			return "No recognizable income transactions were found."
		}
		return fmt.Sprintf("Average monthly income of %.0f with %s frequency and %.1f%% variability.",
			result.Metrics["monthly_income"],
			result.Labels["salary_frequency"],
			result.Metrics["income_variability"]*100)
	case domain.FactorSavingsRate:
		return fmt.Sprintf("Average savings rate of %.1f%% with a %s trend, roughly %.1f months of emergency cover.",
			result.Metrics["average_savings_rate"]*100,
			result.Labels["savings_trend"],
			result.Metrics["emergency_fund_months"])
	case domain.FactorPaymentBehavior:
		return fmt.Sprintf("%.0f bill payments with a %.1f%% on-time rate and %.0f overdraft events.",
			result.Metrics["bill_payments"],
			result.Metrics["on_time_rate"]*100,
			result.Metrics["overdraft_count"])
	case domain.FactorInvestmentActivity:
		if result.Metrics["investment_count"] == 0 {
			return "No investment activity was found."
		}
		return fmt.Sprintf("%.0f investments totaling %.0f across %.0f instrument types, %s risk profile.",
			result.Metrics["investment_count"],
			result.Metrics["total_invested"],
			result.Metrics["instrument_types"],
			result.Labels["risk_profile"])
	default:
		return string(result.Category)
	}
}
