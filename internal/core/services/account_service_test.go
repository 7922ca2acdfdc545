package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SscSPs/rental_ledger/internal/apperrors"
	"github.com/SscSPs/rental_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/rental_ledger/internal/core/ports/services"
	"github.com/SscSPs/rental_ledger/internal/core/services"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockAccountRepository is a mock type for the AccountRepositoryFacade interface
type MockAccountRepository struct {
	mock.Mock
}

// --- Implement mock methods for AccountRepositoryFacade ---

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID int64) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountByName(ctx context.Context, name string) (*domain.Account, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountsByIDs(ctx context.Context, accountIDs []int64) (map[int64]domain.Account, error) {
	args := m.Called(ctx, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context, accountType *domain.AccountType) ([]domain.Account, error) {
	args := m.Called(ctx, accountType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) SeedAccount(ctx context.Context, account domain.Account) (bool, error) {
	args := m.Called(ctx, account)
	return args.Bool(0), args.Error(1)
}

// --- Test Suite Setup ---

type AccountServiceTestSuite struct {
	suite.Suite
	mockRepo *MockAccountRepository
	service  portssvc.AccountSvcFacade
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockAccountRepository)
	suite.service = services.NewAccountService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *AccountServiceTestSuite) TestGetAccountByID_Success() {
	ctx := context.Background()
	expected := &domain.Account{AccountID: 7, Name: "Cash", AccountType: domain.Asset}
	suite.mockRepo.On("FindAccountByID", ctx, int64(7)).Return(expected, nil).Once()

	account, err := suite.service.GetAccountByID(ctx, 7)

	suite.Require().NoError(err)
	suite.Equal(expected, account)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestGetAccountByID_Unknown() {
	ctx := context.Background()
	suite.mockRepo.On("FindAccountByID", ctx, int64(99)).Return(nil, apperrors.ErrNotFound).Once()

	account, err := suite.service.GetAccountByID(ctx, 99)

	suite.Nil(account)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.ErrorIs(err, apperrors.ErrUnknownAccount)
}

func (suite *AccountServiceTestSuite) TestGetAccountByID_RepoError() {
	ctx := context.Background()
	repoErr := errors.New("database unavailable")
	suite.mockRepo.On("FindAccountByID", ctx, int64(3)).Return(nil, repoErr).Once()

	_, err := suite.service.GetAccountByID(ctx, 3)

	suite.ErrorIs(err, repoErr)
	suite.NotErrorIs(err, apperrors.ErrNotFound)
}

func (suite *AccountServiceTestSuite) TestGetAccountByName_NotFound() {
	ctx := context.Background()
	suite.mockRepo.On("FindAccountByName", ctx, "Cash").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.GetAccountByName(ctx, "Cash")

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *AccountServiceTestSuite) TestListAccounts_FilterByType() {
	ctx := context.Background()
	revenue := domain.Revenue
	expected := []domain.Account{{AccountID: 1, Name: "AT Rental", AccountType: domain.Revenue}}
	suite.mockRepo.On("ListAccounts", ctx, &revenue).Return(expected, nil).Once()

	accounts, err := suite.service.ListAccounts(ctx, &revenue)

	suite.Require().NoError(err)
	suite.Equal(expected, accounts)
}

func (suite *AccountServiceTestSuite) TestListAccounts_UnknownType() {
	bogus := domain.AccountType("INCOME")

	_, err := suite.service.ListAccounts(context.Background(), &bogus)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "ListAccounts", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestSeedAccounts_CountsCreated() {
	ctx := context.Background()
	chart := []domain.Account{
		{Name: "Cash", AccountType: domain.Asset},
		{Name: "AT Rental", AccountType: domain.Revenue},
	}
	suite.mockRepo.On("SeedAccount", ctx, mock.MatchedBy(func(a domain.Account) bool {
		return a.Name == "Cash" && a.CreatedBy == "setup" && !a.CreatedAt.IsZero()
	})).Return(false, nil).Once()
	suite.mockRepo.On("SeedAccount", ctx, mock.MatchedBy(func(a domain.Account) bool {
		return a.Name == "AT Rental"
	})).Return(true, nil).Once()

	created, err := suite.service.SeedAccounts(ctx, chart, "setup")

	suite.Require().NoError(err)
	suite.Equal(1, created)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestSeedAccounts_InvalidatesReportsOnlyWhenCreating() {
	ctx := context.Background()
	stub := &stubCache{}
	svc := services.NewAccountService(suite.mockRepo, services.WithAccountReportCache(stub))
	cash := []domain.Account{{Name: "Cash", AccountType: domain.Asset}}

	suite.mockRepo.On("SeedAccount", ctx, mock.Anything).Return(true, nil).Once()
	_, err := svc.SeedAccounts(ctx, cash, "setup")
	suite.Require().NoError(err)
	suite.Equal(1, stub.invalidated)

	suite.mockRepo.On("SeedAccount", ctx, mock.Anything).Return(false, nil).Once()
	_, err = svc.SeedAccounts(ctx, cash, "setup")
	suite.Require().NoError(err)
	suite.Equal(1, stub.invalidated, "nothing new, cached reports stay valid")
}

func (suite *AccountServiceTestSuite) TestSeedAccounts_RejectsInvalidEntry() {
	ctx := context.Background()

	_, err := suite.service.SeedAccounts(ctx, []domain.Account{{Name: "Suspense", AccountType: "OTHER"}}, "setup")
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(apperrors.Fields(err), "accounts[0].accountType")

	_, err = suite.service.SeedAccounts(ctx, []domain.Account{{Name: " ", AccountType: domain.Asset}}, "setup")
	suite.Contains(apperrors.Fields(err), "accounts[0].name")
	suite.mockRepo.AssertNotCalled(suite.T(), "SeedAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestSeedAccounts_DefaultChartIsIdempotent() {
	f := newFixtureWithChart(suite.T(), domain.DefaultChart())
	ctx := context.Background()

	created, err := f.svc.Account.SeedAccounts(ctx, domain.DefaultChart(), "setup")
	suite.Require().NoError(err)
	suite.Zero(created)

	accounts, err := f.svc.Account.ListAccounts(ctx, nil)
	suite.Require().NoError(err)
	suite.Len(accounts, len(domain.DefaultChart()))
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
