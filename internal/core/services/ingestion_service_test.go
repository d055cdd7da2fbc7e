package services_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/credvault/alt_credit_scoring_app/internal/apperrors"
	"github.com/credvault/alt_credit_scoring_app/internal/core/domain"
	portssvc "github.com/credvault/alt_credit_scoring_app/internal/core/ports/services"
	"github.com/credvault/alt_credit_scoring_app/internal/core/services"
	"github.com/credvault/alt_credit_scoring_app/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type IngestionServiceTestSuite struct {
	suite.Suite
	mockTxnRepo     *MockTransactionRepository
	mockAccountRepo *MockAccountRepository
	service         portssvc.IngestionSvcFacade
}

func (suite *IngestionServiceTestSuite) SetupTest() {
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.service = services.NewIngestionService(suite.mockTxnRepo, suite.mockAccountRepo, services.NewCategorizer())
}

// expectAccountOwned registers the account lookup performed before any
// transaction for that account is accepted.
func (suite *IngestionServiceTestSuite) expectAccountOwned(accountID, userID string) {
	suite.mockAccountRepo.On("FindAccountByID", mock.Anything, accountID).
		Return(&domain.Account{AccountID: accountID, UserID: userID, IsActive: true}, nil).Once()
}

func rawRecord(accountID string, amount float64, direction, description string, occurredAt time.Time) dto.RawTransactionRecord {
	return dto.RawTransactionRecord{
		AccountID:   accountID,
		Amount:      ptrDecimal(amount),
		Direction:   direction,
		Description: description,
		OccurredAt:  ptrTime(occurredAt),
	}
}

func (suite *IngestionServiceTestSuite) TestIngestTransactions_Success() {
	ctx := context.Background()
	occurred := time.Now().UTC().AddDate(0, 0, -10)

	records := []dto.RawTransactionRecord{
		rawRecord("acc-1", 50000, "CREDIT", "ACME salary", occurred),
		rawRecord("acc-1", 250, "DEBIT", "Swiggy order", occurred.AddDate(0, 0, 1)),
		{AccountID: "acc-1", Direction: "DEBIT", OccurredAt: ptrTime(occurred)}, // missing amount
	}

	suite.expectAccountOwned("acc-1", "user-1")
	suite.mockTxnRepo.On("ListTransactionsByAccountSince", ctx, "acc-1", mock.AnythingOfType("time.Time")).
		Return([]domain.Transaction{}, nil).Once()
	suite.mockTxnRepo.On("SaveTransactions", ctx, mock.MatchedBy(func(txns []domain.Transaction) bool {
		return len(txns) == 2 && txns[0].Category == domain.CategorySalary && txns[1].Category == domain.CategoryFood
	})).Return(2, nil).Once()
	suite.mockAccountRepo.On("TouchAccountSync", ctx, "acc-1", mock.AnythingOfType("time.Time"), "user-1").
		Return(nil).Once()

	stats, err := suite.service.IngestTransactions(ctx, "user-1", records)

	suite.Require().NoError(err)
	suite.Require().NotNil(stats)
	suite.Equal(3, stats.Processed)
	suite.Equal(2, stats.Accepted)
	suite.Equal(1, stats.Rejected)
	suite.Equal(0, stats.Duplicates)
	suite.Equal(2, stats.Categorized)

	suite.mockTxnRepo.AssertExpectations(suite.T())
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *IngestionServiceTestSuite) TestIngestTransactions_ReingestingSameBatchIsNoOp() {
	ctx := context.Background()
	occurred := time.Date(2026, 2, 10, 8, 0, 0, 0, time.UTC)

	records := []dto.RawTransactionRecord{
		rawRecord("acc-1", 50000, "CREDIT", "ACME salary", occurred),
		rawRecord("acc-1", 250, "DEBIT", "Swiggy order", occurred.AddDate(0, 0, 1)),
	}

	// The prior stored set already contains both identity keys.
	prior := services.NewNormalizer().NormalizeBatch("user-1", records, time.Now().UTC()).Accepted
	suite.expectAccountOwned("acc-1", "user-1")
	suite.mockTxnRepo.On("ListTransactionsByAccountSince", ctx, "acc-1", mock.AnythingOfType("time.Time")).
		Return(prior, nil).Once()

	stats, err := suite.service.IngestTransactions(ctx, "user-1", records)

	suite.Require().NoError(err)
	suite.Equal(2, stats.Processed)
	suite.Equal(0, stats.Accepted)
	suite.Equal(2, stats.Duplicates)

	// Nothing survives deduplication, so nothing is written.
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransactions", mock.Anything, mock.Anything)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "TouchAccountSync", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *IngestionServiceTestSuite) TestIngestTransactions_DuplicateWithinBatch() {
	ctx := context.Background()
	occurred := time.Date(2026, 2, 10, 8, 0, 0, 0, time.UTC)

	records := []dto.RawTransactionRecord{
		rawRecord("acc-1", 250, "DEBIT", "Swiggy order", occurred),
		rawRecord("acc-1", 250, "DEBIT", "Swiggy order", occurred),
	}

	suite.expectAccountOwned("acc-1", "user-1")
	suite.mockTxnRepo.On("ListTransactionsByAccountSince", ctx, "acc-1", mock.AnythingOfType("time.Time")).
		Return([]domain.Transaction{}, nil).Once()
	suite.mockTxnRepo.On("SaveTransactions", ctx, mock.MatchedBy(func(txns []domain.Transaction) bool {
		return len(txns) == 1
	})).Return(1, nil).Once()
	suite.mockAccountRepo.On("TouchAccountSync", ctx, "acc-1", mock.AnythingOfType("time.Time"), "user-1").
		Return(nil).Once()

	stats, err := suite.service.IngestTransactions(ctx, "user-1", records)

	suite.Require().NoError(err)
	suite.Equal(1, stats.Accepted)
	suite.Equal(1, stats.Duplicates)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *IngestionServiceTestSuite) TestIngestTransactions_ChunkedPersistence() {
	ctx := context.Background()
	occurred := time.Date(2026, 2, 10, 8, 0, 0, 0, time.UTC)

	chunked := services.NewIngestionService(
		suite.mockTxnRepo,
		suite.mockAccountRepo,
		services.NewCategorizer(),
		services.WithChunkSize(1),
	)

	records := []dto.RawTransactionRecord{
		rawRecord("acc-1", 100, "DEBIT", "first", occurred),
		rawRecord("acc-1", 200, "DEBIT", "second", occurred.AddDate(0, 0, 1)),
	}

	suite.expectAccountOwned("acc-1", "user-1")
	suite.mockTxnRepo.On("ListTransactionsByAccountSince", ctx, "acc-1", mock.AnythingOfType("time.Time")).
		Return([]domain.Transaction{}, nil).Once()
	suite.mockTxnRepo.On("SaveTransactions", ctx, mock.MatchedBy(func(txns []domain.Transaction) bool {
		return len(txns) == 1
	})).Return(1, nil).Twice()
	suite.mockAccountRepo.On("TouchAccountSync", ctx, "acc-1", mock.AnythingOfType("time.Time"), "user-1").
		Return(nil).Once()

	stats, err := chunked.IngestTransactions(ctx, "user-1", records)

	suite.Require().NoError(err)
	suite.Equal(2, stats.Accepted)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *IngestionServiceTestSuite) TestIngestTransactions_UnknownAccountFailsBatch() {
	ctx := context.Background()
	occurred := time.Date(2026, 2, 10, 8, 0, 0, 0, time.UTC)

	records := []dto.RawTransactionRecord{
		rawRecord("acc-ghost", 100, "DEBIT", "first", occurred),
	}

	suite.mockAccountRepo.On("FindAccountByID", mock.Anything, "acc-ghost").
		Return(nil, apperrors.ErrNotFound).Once()

	stats, err := suite.service.IngestTransactions(ctx, "user-1", records)

	suite.Require().Error(err)
	suite.Nil(stats)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransactions", mock.Anything, mock.Anything)
}

func (suite *IngestionServiceTestSuite) TestIngestTransactions_ForeignAccountFailsBatch() {
	ctx := context.Background()
	occurred := time.Date(2026, 2, 10, 8, 0, 0, 0, time.UTC)

	records := []dto.RawTransactionRecord{
		rawRecord("acc-2", 100, "DEBIT", "first", occurred),
	}

	// The account exists but belongs to a different user.
	suite.expectAccountOwned("acc-2", "user-2")

	stats, err := suite.service.IngestTransactions(ctx, "user-1", records)

	suite.Require().Error(err)
	suite.Nil(stats)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "ListTransactionsByAccountSince", mock.Anything, mock.Anything, mock.Anything)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransactions", mock.Anything, mock.Anything)
}

func (suite *IngestionServiceTestSuite) TestIngestTransactions_CompletionLogCarriesCounters() {
	ctx := context.Background()
	occurred := time.Now().UTC().AddDate(0, 0, -10)

	var buf bytes.Buffer
	previous := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, nil)))
	defer slog.SetDefault(previous)

	records := []dto.RawTransactionRecord{
		rawRecord("acc-1", 50000, "CREDIT", "ACME salary", occurred),
		rawRecord("acc-1", 250, "DEBIT", "Swiggy order", occurred.AddDate(0, 0, 1)),
	}

	suite.expectAccountOwned("acc-1", "user-1")
	suite.mockTxnRepo.On("ListTransactionsByAccountSince", ctx, "acc-1", mock.AnythingOfType("time.Time")).
		Return([]domain.Transaction{}, nil).Once()
	suite.mockTxnRepo.On("SaveTransactions", ctx, mock.Anything).Return(2, nil).Once()
	suite.mockAccountRepo.On("TouchAccountSync", ctx, "acc-1", mock.AnythingOfType("time.Time"), "user-1").
		Return(nil).Once()

	stats, err := suite.service.IngestTransactions(ctx, "user-1", records)

	suite.Require().NoError(err)
	suite.Equal(2, stats.Categorized)
	logged := buf.String()
	suite.Contains(logged, `"categorized":2`)
	suite.Contains(logged, `"accepted":2`)
	suite.Contains(logged, `"duplicates":0`)
}

func (suite *IngestionServiceTestSuite) TestIngestTransactions_DedupLoadError() {
	ctx := context.Background()
	occurred := time.Date(2026, 2, 10, 8, 0, 0, 0, time.UTC)

	records := []dto.RawTransactionRecord{
		rawRecord("acc-1", 100, "DEBIT", "first", occurred),
	}

	suite.expectAccountOwned("acc-1", "user-1")
	suite.mockTxnRepo.On("ListTransactionsByAccountSince", ctx, "acc-1", mock.AnythingOfType("time.Time")).
		Return(nil, assert.AnError).Once()

	stats, err := suite.service.IngestTransactions(ctx, "user-1", records)

	suite.Require().Error(err)
	suite.Nil(stats)
	suite.ErrorIs(err, assert.AnError)
}

func TestIngestionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(IngestionServiceTestSuite))
}
