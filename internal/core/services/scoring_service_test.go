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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

func defaultAnalyzers() []services.FactorAnalyzer {
	return []services.FactorAnalyzer{
		services.NewIncomeStabilityAnalyzer(20000),
		services.NewSavingsRateAnalyzer(),
		services.NewPaymentBehaviorAnalyzer(),
		services.NewInvestmentActivityAnalyzer(),
	}
}

func proceedReport(userID string) *domain.SufficiencyReport {
	return &domain.SufficiencyReport{
		UserID:     userID,
		Sufficient: true,
		CanProceed: true,
		Requirements: []domain.DataRequirement{
			{Name: domain.RequirementTransactionCount, Met: true, Weight: 0.30},
			{Name: domain.RequirementActiveAccounts, Met: true, Weight: 0.25},
		},
	}
}

type ScoringServiceTestSuite struct {
	suite.Suite
	mockSufficiency *MockSufficiencyService
	mockTxnRepo     *MockTransactionRepository
	mockScoreRepo   *MockScoreRepository
	service         portssvc.ScoringSvcFacade
}

func (suite *ScoringServiceTestSuite) SetupTest() {
	suite.mockSufficiency = new(MockSufficiencyService)
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.mockScoreRepo = new(MockScoreRepository)

	service, err := services.NewScoringService(suite.mockSufficiency, suite.mockTxnRepo, suite.mockScoreRepo, defaultAnalyzers())
	suite.Require().NoError(err)
	suite.service = service
}

func (suite *ScoringServiceTestSuite) TestNewScoringService_RejectsBadWeights() {
	_, err := services.NewScoringService(
		suite.mockSufficiency, suite.mockTxnRepo, suite.mockScoreRepo, defaultAnalyzers(),
		services.WithFactorWeights(map[domain.FactorCategory]float64{
			domain.FactorIncomeStability:    0.5,
			domain.FactorSavingsRate:        0.5,
			domain.FactorPaymentBehavior:    0.5,
			domain.FactorInvestmentActivity: 0.5,
		}),
	)
	suite.Require().Error(err)
	suite.Contains(err.Error(), "sum to 1.0")
}

func (suite *ScoringServiceTestSuite) TestNewScoringService_RejectsMissingWeight() {
	_, err := services.NewScoringService(
		suite.mockSufficiency, suite.mockTxnRepo, suite.mockScoreRepo, defaultAnalyzers(),
		services.WithFactorWeights(map[domain.FactorCategory]float64{
			domain.FactorIncomeStability: 1.0,
		}),
	)
	suite.Require().Error(err)
}

func (suite *ScoringServiceTestSuite) TestComputeScore_BlockedBySufficiencyGate() {
	ctx := context.Background()
	report := &domain.SufficiencyReport{
		UserID:     "user-1",
		CanProceed: false,
		Requirements: []domain.DataRequirement{
			{Name: domain.RequirementTransactionCount, Met: false, Weight: 0.30},
			{Name: domain.RequirementActiveAccounts, Met: true, Weight: 0.25},
		},
	}
	suite.mockSufficiency.On("EvaluateSufficiency", ctx, "user-1").Return(report, nil).Once()

	snapshot, err := suite.service.ComputeScore(ctx, "user-1")

	suite.Require().Error(err)
	suite.Nil(snapshot)
	suite.ErrorIs(err, apperrors.ErrInsufficientData)

	var insufficientErr *apperrors.InsufficientDataError
	suite.Require().ErrorAs(err, &insufficientErr)
	suite.Equal([]string{string(domain.RequirementTransactionCount)}, insufficientErr.UnmetRequirements)

	// No snapshot is written when the gate blocks.
	suite.mockScoreRepo.AssertNotCalled(suite.T(), "SaveSnapshot", mock.Anything, mock.Anything)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "ListTransactionsByUser", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ScoringServiceTestSuite) TestComputeScore_FirstScoreIsStable() {
	ctx := context.Background()
	start := time.Now().UTC().AddDate(0, -11, 0)
	txns := monthlySalaries(50000, 12, start)

	suite.mockSufficiency.On("EvaluateSufficiency", ctx, "user-1").Return(proceedReport("user-1"), nil).Once()
	suite.mockTxnRepo.On("ListTransactionsByUser", ctx, "user-1", mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Return(txns, nil).Once()
	suite.mockScoreRepo.On("ListScoreHistory", ctx, "user-1", 1).Return([]domain.CreditScoreSnapshot{}, nil).Once()

	var saved domain.CreditScoreSnapshot
	suite.mockScoreRepo.On("SaveSnapshot", ctx, mock.MatchedBy(func(s domain.CreditScoreSnapshot) bool {
		saved = s
		return s.UserID == "user-1"
	})).Return(nil).Once()

	snapshot, err := suite.service.ComputeScore(ctx, "user-1")

	suite.Require().NoError(err)
	suite.Require().NotNil(snapshot)
	suite.Equal(domain.TrendStable, snapshot.Trend)
	suite.GreaterOrEqual(snapshot.Score, domain.ScoreFloor)
	suite.LessOrEqual(snapshot.Score, domain.ScoreCap)

	suite.Require().Len(snapshot.Factors, 4)
	totalWeight := 0.0
	for _, factor := range snapshot.Factors {
		totalWeight += factor.Weight
		suite.GreaterOrEqual(factor.Impact, -100)
		suite.LessOrEqual(factor.Impact, 100)
		suite.Equal(snapshot.ScoreID, factor.ScoreID)
		suite.NotEmpty(factor.Description)
	}
	suite.InDelta(1.0, totalWeight, 1e-9)

	// 0.5 base + 0.1 consistent months + 0.1 low variability; only 12
	// transactions, so no volume bonus.
	suite.InDelta(0.7, snapshot.Confidence, 0.001)

	suite.Equal(saved.ScoreID, snapshot.ScoreID)
	suite.mockScoreRepo.AssertExpectations(suite.T())
}

func (suite *ScoringServiceTestSuite) TestComputeScore_TrendImprovesOverLowPriorScore() {
	ctx := context.Background()
	start := time.Now().UTC().AddDate(0, -11, 0)
	txns := monthlySalaries(80000, 12, start)

	prior := domain.CreditScoreSnapshot{ScoreID: uuid.NewString(), UserID: "user-1", Score: domain.ScoreFloor}

	suite.mockSufficiency.On("EvaluateSufficiency", ctx, "user-1").Return(proceedReport("user-1"), nil).Once()
	suite.mockTxnRepo.On("ListTransactionsByUser", ctx, "user-1", mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Return(txns, nil).Once()
	suite.mockScoreRepo.On("ListScoreHistory", ctx, "user-1", 1).Return([]domain.CreditScoreSnapshot{prior}, nil).Once()
	suite.mockScoreRepo.On("SaveSnapshot", ctx, mock.AnythingOfType("domain.CreditScoreSnapshot")).Return(nil).Once()

	snapshot, err := suite.service.ComputeScore(ctx, "user-1")

	suite.Require().NoError(err)
	suite.Equal(domain.TrendImproving, snapshot.Trend)
}

func (suite *ScoringServiceTestSuite) TestComputeScore_SaveError() {
	ctx := context.Background()
	start := time.Now().UTC().AddDate(0, -5, 0)

	suite.mockSufficiency.On("EvaluateSufficiency", ctx, "user-1").Return(proceedReport("user-1"), nil).Once()
	suite.mockTxnRepo.On("ListTransactionsByUser", ctx, "user-1", mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Return(monthlySalaries(30000, 6, start), nil).Once()
	suite.mockScoreRepo.On("ListScoreHistory", ctx, "user-1", 1).Return([]domain.CreditScoreSnapshot{}, nil).Once()
	suite.mockScoreRepo.On("SaveSnapshot", ctx, mock.AnythingOfType("domain.CreditScoreSnapshot")).Return(assert.AnError).Once()

	snapshot, err := suite.service.ComputeScore(ctx, "user-1")

	suite.Require().Error(err)
	suite.Nil(snapshot)
	suite.ErrorIs(err, assert.AnError)
}

func (suite *ScoringServiceTestSuite) TestGetLatestScore_NotFound() {
	ctx := context.Background()
	suite.mockScoreRepo.On("FindLatestScore", ctx, "user-1").Return(nil, apperrors.ErrNotFound).Once()

	snapshot, err := suite.service.GetLatestScore(ctx, "user-1")

	suite.Require().Error(err)
	suite.Nil(snapshot)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *ScoringServiceTestSuite) TestListScoreHistory_DefaultsLimit() {
	ctx := context.Background()
	suite.mockScoreRepo.On("ListScoreHistory", ctx, "user-1", 12).Return([]domain.CreditScoreSnapshot{}, nil).Once()

	_, err := suite.service.ListScoreHistory(ctx, "user-1", 0)

	suite.Require().NoError(err)
	suite.mockScoreRepo.AssertExpectations(suite.T())
}

func TestScoringServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ScoringServiceTestSuite))
}
