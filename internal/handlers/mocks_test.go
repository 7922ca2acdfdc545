package handlers_test

import (
	"context"
	"time"

	"github.com/SscSPs/rental_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/rental_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/rental_ledger/internal/core/ports/services"
	"github.com/SscSPs/rental_ledger/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock AccountService ---
type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) GetAccountByID(ctx context.Context, accountID int64) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) GetAccountByName(ctx context.Context, name string) (*domain.Account, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) ListAccounts(ctx context.Context, accountType *domain.AccountType) ([]domain.Account, error) {
	args := m.Called(ctx, accountType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountService) SeedAccounts(ctx context.Context, accounts []domain.Account, creator string) (int, error) {
	args := m.Called(ctx, accounts, creator)
	return args.Int(0), args.Error(1)
}

var _ portssvc.AccountSvcFacade = (*MockAccountService)(nil)

// --- Mock LedgerService ---
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) Post(ctx context.Context, input domain.PostingInput) (*domain.Posting, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Posting), args.Error(1)
}

func (m *MockLedgerService) PostInTx(ctx context.Context, store portsrepo.Store, input domain.PostingInput) (*domain.Posting, error) {
	args := m.Called(ctx, store, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Posting), args.Error(1)
}

func (m *MockLedgerService) GetPosting(ctx context.Context, postingID int64) (*domain.Posting, error) {
	args := m.Called(ctx, postingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Posting), args.Error(1)
}

func (m *MockLedgerService) ListPostings(ctx context.Context, params dto.ListPostingsParams) (*dto.ListPostingsResponse, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListPostingsResponse), args.Error(1)
}

func (m *MockLedgerService) ListPostingsUpTo(ctx context.Context, cutoff time.Time) ([]domain.Posting, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Posting), args.Error(1)
}

func (m *MockLedgerService) CreateManualPosting(ctx context.Context, req dto.CreateManualPostingRequest, creator string) (*domain.Posting, error) {
	args := m.Called(ctx, req, creator)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Posting), args.Error(1)
}

var _ portssvc.LedgerSvcFacade = (*MockLedgerService)(nil)

// --- Mock SaleService ---
type MockSaleService struct {
	mock.Mock
}

func (m *MockSaleService) CreateSale(ctx context.Context, req dto.CreateSaleRequest, creator string) (*domain.Sale, error) {
	args := m.Called(ctx, req, creator)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Sale), args.Error(1)
}

func (m *MockSaleService) GetSale(ctx context.Context, saleID int64) (*domain.Sale, error) {
	args := m.Called(ctx, saleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Sale), args.Error(1)
}

func (m *MockSaleService) ListSales(ctx context.Context, params dto.ListParams) ([]domain.Sale, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Sale), args.Error(1)
}

func (m *MockSaleService) DeleteSale(ctx context.Context, saleID int64) error {
	return m.Called(ctx, saleID).Error(0)
}

var _ portssvc.SaleSvcFacade = (*MockSaleService)(nil)

// --- Mock ExpenseService ---
type MockExpenseService struct {
	mock.Mock
}

func (m *MockExpenseService) CreateExpense(ctx context.Context, req dto.CreateExpenseRequest, creator string) (*domain.Expense, error) {
	args := m.Called(ctx, req, creator)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}

func (m *MockExpenseService) GetExpense(ctx context.Context, expenseID int64) (*domain.Expense, error) {
	args := m.Called(ctx, expenseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}

func (m *MockExpenseService) ListExpenses(ctx context.Context, params dto.ListParams) ([]domain.Expense, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Expense), args.Error(1)
}

func (m *MockExpenseService) DeleteExpense(ctx context.Context, expenseID int64) error {
	return m.Called(ctx, expenseID).Error(0)
}

var _ portssvc.ExpenseSvcFacade = (*MockExpenseService)(nil)

// --- Mock ReportingService ---
type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) TrialBalance(ctx context.Context, asOf time.Time) (*domain.TrialBalanceReport, error) {
	args := m.Called(ctx, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TrialBalanceReport), args.Error(1)
}

var _ portssvc.ReportingService = (*MockReportingService)(nil)
