package services_test

import (
	"context"
	"testing"

	"github.com/credvault/alt_credit_scoring_app/internal/core/domain"
	portssvc "github.com/credvault/alt_credit_scoring_app/internal/core/ports/services"
	"github.com/credvault/alt_credit_scoring_app/internal/core/services"
	"github.com/credvault/alt_credit_scoring_app/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type AccountServiceTestSuite struct {
	suite.Suite
	mockAccountRepo *MockAccountRepository
	service         portssvc.AccountSvcFacade
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.service = services.NewAccountService(suite.mockAccountRepo)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_Success() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{Name: "HDFC Salary", AccountType: "SAVINGS"}

	suite.mockAccountRepo.On("SaveAccount", ctx, mock.MatchedBy(func(a domain.Account) bool {
		return a.UserID == "user-1" && a.Name == "HDFC Salary" && a.AccountType == domain.Savings && a.IsActive
	})).Return(nil).Once()

	account, err := suite.service.CreateAccount(ctx, "user-1", req)

	suite.Require().NoError(err)
	suite.Require().NotNil(account)
	suite.NotEmpty(account.AccountID)
	suite.True(account.IsActive)
	suite.Equal("user-1", account.CreatedBy)
	suite.False(account.CreatedAt.IsZero())
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_SaveError() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{Name: "HDFC Salary", AccountType: "SAVINGS"}

	suite.mockAccountRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(assert.AnError).Once()

	account, err := suite.service.CreateAccount(ctx, "user-1", req)

	suite.Require().Error(err)
	suite.Nil(account)
	suite.ErrorIs(err, assert.AnError)
}

func (suite *AccountServiceTestSuite) TestListActiveAccounts_Passthrough() {
	ctx := context.Background()
	accounts := []domain.Account{{AccountID: "acc-1", UserID: "user-1", IsActive: true}}
	suite.mockAccountRepo.On("ListActiveAccountsByUser", ctx, "user-1").Return(accounts, nil).Once()

	got, err := suite.service.ListActiveAccounts(ctx, "user-1")

	suite.Require().NoError(err)
	suite.Equal(accounts, got)
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
