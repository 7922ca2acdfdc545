package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/rental_ledger/internal/apperrors"
	"github.com/SscSPs/rental_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/rental_ledger/internal/core/ports/services"
	"github.com/SscSPs/rental_ledger/internal/core/services"
	"github.com/SscSPs/rental_ledger/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// MockReportCache is a mock type for the ReportCache interface
type MockReportCache struct {
	mock.Mock
}

func (m *MockReportCache) FetchTrialBalance(ctx context.Context, asOf time.Time, load func(ctx context.Context) (*domain.TrialBalanceReport, error)) (*domain.TrialBalanceReport, error) {
	args := m.Called(ctx, asOf, load)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TrialBalanceReport), args.Error(1)
}

func (m *MockReportCache) Invalidate(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type LedgerServiceTestSuite struct {
	suite.Suite
	f     *fixture
	cache *MockReportCache
	svc   portssvc.LedgerSvcFacade
	now   time.Time
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.f = newFixture(suite.T())
	suite.cache = new(MockReportCache)
	suite.now = time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC)
	suite.svc = services.NewLedgerService(suite.f.repos.TxManager, suite.f.repos.Store,
		services.NewDocumentNumberGenerator(10),
		services.WithLedgerReportCache(suite.cache),
		services.WithLedgerClock(func() time.Time { return suite.now }))
}

func (suite *LedgerServiceTestSuite) input(debit, credit string, amount string) domain.PostingInput {
	return domain.PostingInput{
		TransactionDate: time.Date(2024, 5, 10, 15, 4, 0, 0, time.UTC),
		Description:     "Owner contribution",
		DebitAccountID:  suite.f.id(debit),
		CreditAccountID: suite.f.id(credit),
		Amount:          money(amount),
		CreatedBy:       "clerk-1",
	}
}

func (suite *LedgerServiceTestSuite) TestPost_Success() {
	suite.cache.On("Invalidate", mock.Anything).Return(nil).Twice()
	ctx := context.Background()

	first, err := suite.svc.Post(ctx, suite.input("Cash", "Owner's Equity", "1000.00"))
	suite.Require().NoError(err)
	second, err := suite.svc.Post(ctx, suite.input("Fuel Expense", "Cash", "12.50"))
	suite.Require().NoError(err)

	suite.Equal("GL-001", first.TransactionNo)
	suite.Equal("GL-002", second.TransactionNo)
	suite.Equal(time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC), first.TransactionDate)
	suite.Equal(suite.now, first.CreatedAt)
	suite.Equal("clerk-1", first.CreatedBy)
	suite.True(first.IsManual())

	stored, err := suite.svc.GetPosting(ctx, first.PostingID)
	suite.Require().NoError(err)
	suite.True(money("1000").Equal(stored.Amount))
	suite.cache.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestPost_CacheFailureDoesNotFailPosting() {
	suite.cache.On("Invalidate", mock.Anything).Return(errors.New("redis down")).Once()

	posting, err := suite.svc.Post(context.Background(), suite.input("Cash", "Owner's Equity", "5.00"))
	suite.Require().NoError(err)
	suite.Equal("GL-001", posting.TransactionNo)
	suite.cache.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestPost_RejectsInvalidInput() {
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(*domain.PostingInput)
		wantErr error
		field   string
	}{
		{"same account", func(in *domain.PostingInput) { in.CreditAccountID = in.DebitAccountID }, apperrors.ErrSameAccount, "creditAccountID"},
		{"zero amount", func(in *domain.PostingInput) { in.Amount = money("0") }, apperrors.ErrInvalidAmount, "amount"},
		{"negative amount", func(in *domain.PostingInput) { in.Amount = money("-3.00") }, apperrors.ErrInvalidAmount, "amount"},
		{"three decimals", func(in *domain.PostingInput) { in.Amount = money("1.005") }, apperrors.ErrInvalidAmount, "amount"},
		{"unknown debit", func(in *domain.PostingInput) { in.DebitAccountID = 9999 }, apperrors.ErrUnknownAccount, "debitAccountID"},
		{"unknown credit", func(in *domain.PostingInput) { in.CreditAccountID = 9999 }, apperrors.ErrUnknownAccount, "creditAccountID"},
		{"blank description", func(in *domain.PostingInput) { in.Description = "  " }, apperrors.ErrValidation, "description"},
		{"missing date", func(in *domain.PostingInput) { in.TransactionDate = time.Time{} }, apperrors.ErrValidation, "transactionDate"},
		{"two origins", func(in *domain.PostingInput) {
			in.Origin = domain.Origin{SaleID: idPtr(1), ExpenseID: idPtr(2)}
		}, apperrors.ErrValidation, "origin"},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			in := suite.input("Cash", "Owner's Equity", "10.00")
			tt.mutate(&in)
			_, err := suite.svc.Post(ctx, in)
			suite.Require().Error(err)
			suite.ErrorIs(err, tt.wantErr)
			suite.ErrorIs(err, apperrors.ErrValidation)
			suite.Contains(apperrors.Fields(err), tt.field)
		})
	}

	postings, err := suite.svc.ListPostingsUpTo(ctx, time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC))
	suite.Require().NoError(err)
	suite.Empty(postings)
	suite.cache.AssertNotCalled(suite.T(), "Invalidate", mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestCreateManualPosting() {
	suite.cache.On("Invalidate", mock.Anything).Return(nil)
	ctx := context.Background()

	posting, err := suite.svc.CreateManualPosting(ctx, dto.CreateManualPostingRequest{
		TransactionDate: "2024-05-02",
		Description:     "Insurance prepaid",
		DebitAccountID:  suite.f.id("Cash"),
		CreditAccountID: suite.f.id("Accounts Payable"),
		Amount:          money("250.00"),
	}, "clerk-2")
	suite.Require().NoError(err)
	suite.Equal("GL-001", posting.TransactionNo)
	suite.Equal("clerk-2", posting.CreatedBy)

	_, err = suite.svc.CreateManualPosting(ctx, dto.CreateManualPostingRequest{
		TransactionDate: "02/05/2024",
		Description:     "bad date",
		DebitAccountID:  suite.f.id("Cash"),
		CreditAccountID: suite.f.id("Accounts Payable"),
		Amount:          money("1.00"),
	}, "clerk-2")
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(apperrors.Fields(err), "transactionDate")
}

func (suite *LedgerServiceTestSuite) TestListPostings_Pages() {
	suite.cache.On("Invalidate", mock.Anything).Return(nil)
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		_, err := suite.svc.Post(ctx, suite.input("Cash", "Owner's Equity", "1.00"))
		suite.Require().NoError(err)
	}

	page, err := suite.svc.ListPostings(ctx, dto.ListPostingsParams{Limit: 2})
	suite.Require().NoError(err)
	suite.Len(page.Postings, 2)
	suite.Require().NotNil(page.NextToken)

	rest, err := suite.svc.ListPostings(ctx, dto.ListPostingsParams{Limit: 2, NextToken: *page.NextToken})
	suite.Require().NoError(err)
	suite.Len(rest.Postings, 1)
	suite.Nil(rest.NextToken)

	_, err = suite.svc.ListPostings(ctx, dto.ListPostingsParams{NextToken: "garbage"})
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(apperrors.Fields(err), "nextToken")
}

func (suite *LedgerServiceTestSuite) TestGetPosting_NotFound() {
	_, err := suite.svc.GetPosting(context.Background(), 404)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}

func TestPost_ConcurrentPostingsGetDistinctNumbers(t *testing.T) {
	f := newFixture(t)
	const writers = 12
	ctx := context.Background()

	done := make(chan string, writers)
	errs := make(chan error, writers)
	for i := 0; i < writers; i++ {
		go func() {
			p, err := f.svc.Ledger.Post(ctx, domain.PostingInput{
				TransactionDate: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
				Description:     "float top-up",
				DebitAccountID:  f.id("Petty Float"),
				CreditAccountID: f.id("Cash"),
				Amount:          money("2.00"),
				CreatedBy:       "test",
			})
			if err != nil {
				errs <- err
				return
			}
			done <- p.TransactionNo
		}()
	}

	seen := make(map[string]bool)
	for i := 0; i < writers; i++ {
		select {
		case err := <-errs:
			require.NoError(t, err)
		case n := <-done:
			assert.False(t, seen[n])
			seen[n] = true
		}
	}
	assert.Len(t, seen, writers)
	assert.True(t, seen["GL-012"])
}
