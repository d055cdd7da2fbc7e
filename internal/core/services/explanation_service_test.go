package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/credvault/alt_credit_scoring_app/internal/apperrors"
	"github.com/credvault/alt_credit_scoring_app/internal/core/domain"
	portssvc "github.com/credvault/alt_credit_scoring_app/internal/core/ports/services"
	"github.com/credvault/alt_credit_scoring_app/internal/core/services"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

func scoredFactor(scoreID string, category domain.FactorCategory, impact int, weight float64) domain.ScoreFactor {
	return domain.ScoreFactor{
		FactorID:    uuid.NewString(),
		ScoreID:     scoreID,
		Category:    category,
		Impact:      impact,
		Weight:      weight,
		Description: "factor detail",
	}
}

type ExplanationServiceTestSuite struct {
	suite.Suite
	mockScoreRepo *MockScoreRepository
	service       portssvc.ExplanationSvcFacade
}

func (suite *ExplanationServiceTestSuite) SetupTest() {
	suite.mockScoreRepo = new(MockScoreRepository)
	suite.service = services.NewExplanationService(suite.mockScoreRepo, 12)
}

func (suite *ExplanationServiceTestSuite) latestSnapshot() *domain.CreditScoreSnapshot {
	scoreID := uuid.NewString()
	return &domain.CreditScoreSnapshot{
		ScoreID:    scoreID,
		UserID:     "user-1",
		Score:      710,
		Confidence: 0.8,
		Trend:      domain.TrendStable,
		CreatedAt:  time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		Factors: []domain.ScoreFactor{
			scoredFactor(scoreID, domain.FactorIncomeStability, 62, 0.35),
			scoredFactor(scoreID, domain.FactorPaymentBehavior, 15, 0.25),
			scoredFactor(scoreID, domain.FactorSavingsRate, -5, 0.25),
			scoredFactor(scoreID, domain.FactorInvestmentActivity, -40, 0.15),
		},
	}
}

func (suite *ExplanationServiceTestSuite) TestExplainScore_NotFound() {
	ctx := context.Background()
	suite.mockScoreRepo.On("FindLatestScore", ctx, "user-1").Return(nil, apperrors.ErrNotFound).Once()

	response, err := suite.service.ExplainScore(ctx, "user-1")

	suite.Require().Error(err)
	suite.Nil(response)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockScoreRepo.AssertNotCalled(suite.T(), "ListScoreHistory", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ExplanationServiceTestSuite) TestExplainScore_FactorPhrasingByImpactBand() {
	ctx := context.Background()
	latest := suite.latestSnapshot()

	suite.mockScoreRepo.On("FindLatestScore", ctx, "user-1").Return(latest, nil).Once()
	suite.mockScoreRepo.On("ListScoreHistory", ctx, "user-1", 12).Return([]domain.CreditScoreSnapshot{*latest}, nil).Once()

	response, err := suite.service.ExplainScore(ctx, "user-1")

	suite.Require().NoError(err)
	suite.Equal(710, response.Score)
	suite.Require().Len(response.Factors, 4)

	suite.Contains(response.Factors[0].Explanation, "income stability significantly boosts")
	suite.Contains(response.Factors[1].Explanation, "payment behavior positively contributes to")
	suite.Contains(response.Factors[2].Explanation, "savings rate has a roughly neutral effect on")
	suite.Contains(response.Factors[3].Explanation, "investment activity significantly reduces")

	// A strongly positive factor gets a keep-habits action, weaker ones get
	// concrete improvement actions.
	suite.Require().Len(response.Factors[0].Actions, 1)
	suite.Contains(response.Factors[0].Actions[0], "Keep your current")
	suite.Len(response.Factors[3].Actions, 2)
}

func (suite *ExplanationServiceTestSuite) TestExplainScore_TrendSeriesIsChronological() {
	ctx := context.Background()
	latest := suite.latestSnapshot()

	// History is stored most-recent-first.
	history := []domain.CreditScoreSnapshot{
		{ScoreID: uuid.NewString(), UserID: "user-1", Score: 710, CreatedAt: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)},
		{ScoreID: uuid.NewString(), UserID: "user-1", Score: 680, CreatedAt: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)},
		{ScoreID: uuid.NewString(), UserID: "user-1", Score: 620, CreatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)},
	}

	suite.mockScoreRepo.On("FindLatestScore", ctx, "user-1").Return(latest, nil).Once()
	suite.mockScoreRepo.On("ListScoreHistory", ctx, "user-1", 12).Return(history, nil).Once()

	response, err := suite.service.ExplainScore(ctx, "user-1")

	suite.Require().NoError(err)
	suite.Require().Len(response.HistoricalTrend, 3)

	first := response.HistoricalTrend[0]
	suite.Equal("2026-01-01", first.Period)
	suite.Equal(620, first.Score)
	suite.Equal(0, first.Delta)
	suite.Equal("Baseline score.", first.Reason)

	second := response.HistoricalTrend[1]
	suite.Equal(680, second.Score)
	suite.Equal(60, second.Delta)
	suite.Contains(second.Reason, "Significant improvement")

	third := response.HistoricalTrend[2]
	suite.Equal(710, third.Score)
	suite.Equal(30, third.Delta)
	suite.Contains(third.Reason, "Significant improvement")
}

func (suite *ExplanationServiceTestSuite) TestExplainScore_SameMonthSnapshotsGetDistinctPeriods() {
	ctx := context.Background()
	latest := suite.latestSnapshot()

	history := []domain.CreditScoreSnapshot{
		{ScoreID: uuid.NewString(), UserID: "user-1", Score: 710, CreatedAt: time.Date(2026, 3, 18, 9, 0, 0, 0, time.UTC)},
		{ScoreID: uuid.NewString(), UserID: "user-1", Score: 700, CreatedAt: time.Date(2026, 3, 4, 9, 0, 0, 0, time.UTC)},
	}

	suite.mockScoreRepo.On("FindLatestScore", ctx, "user-1").Return(latest, nil).Once()
	suite.mockScoreRepo.On("ListScoreHistory", ctx, "user-1", 12).Return(history, nil).Once()

	response, err := suite.service.ExplainScore(ctx, "user-1")

	suite.Require().NoError(err)
	suite.Require().Len(response.HistoricalTrend, 2)
	suite.Equal("2026-03-04", response.HistoricalTrend[0].Period)
	suite.Equal("2026-03-18", response.HistoricalTrend[1].Period)
	suite.NotEqual(response.HistoricalTrend[0].Period, response.HistoricalTrend[1].Period)
}

func (suite *ExplanationServiceTestSuite) TestExplainScore_TipsRankedByPriorityThenPotential() {
	ctx := context.Background()
	latest := suite.latestSnapshot()

	suite.mockScoreRepo.On("FindLatestScore", ctx, "user-1").Return(latest, nil).Once()
	suite.mockScoreRepo.On("ListScoreHistory", ctx, "user-1", 12).Return([]domain.CreditScoreSnapshot{*latest}, nil).Once()

	response, err := suite.service.ExplainScore(ctx, "user-1")

	suite.Require().NoError(err)
	suite.Require().Len(response.ImprovementTips, 4)

	// Investment activity (impact -40) is the only high-priority gap.
	suite.Equal(string(domain.FactorInvestmentActivity), response.ImprovementTips[0].Category)
	suite.Equal(services.PriorityHigh, response.ImprovementTips[0].Priority)
	// 0.15 * (100 - (-40)) = 21
	suite.Equal(21, response.ImprovementTips[0].PotentialImpact)

	// Medium-priority tips follow, ordered by weighted potential gain:
	// savings 0.25*(100-(-5))=26 ahead of payment 0.25*(100-15)=21.
	suite.Equal(services.PriorityMedium, response.ImprovementTips[1].Priority)
	suite.Equal(string(domain.FactorSavingsRate), response.ImprovementTips[1].Category)
	suite.Equal(26, response.ImprovementTips[1].PotentialImpact)
	suite.Equal(string(domain.FactorPaymentBehavior), response.ImprovementTips[2].Category)

	// The strong income factor lands last as low priority.
	suite.Equal(services.PriorityLow, response.ImprovementTips[3].Priority)
	suite.Equal(string(domain.FactorIncomeStability), response.ImprovementTips[3].Category)
}

func TestExplanationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ExplanationServiceTestSuite))
}
