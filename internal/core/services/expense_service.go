package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/rental_ledger/internal/apperrors"
	"github.com/SscSPs/rental_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/rental_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/rental_ledger/internal/core/ports/services"
	"github.com/SscSPs/rental_ledger/internal/dto"
)

// expenseService records expenses through the posting rules and the ledger.
type expenseService struct {
	BaseService
	txManager portsrepo.TransactionManager
	store     portsrepo.Store
	parties   portsrepo.PartyDirectory
	rules     *PostingRules
	numbers   *DocumentNumberGenerator
	ledger    portssvc.LedgerPoster
	now       func() time.Time
}

// NewExpenseService creates a new expense service.
func NewExpenseService(deps SubsidiaryDeps) portssvc.ExpenseSvcFacade {
	return &expenseService{
		BaseService: BaseService{ReportCache: deps.ReportCache},
		txManager:   deps.TxManager,
		store:       deps.Store,
		parties:     deps.Parties,
		rules:       deps.Rules,
		numbers:     deps.Numbers,
		ledger:      deps.Ledger,
		now:         deps.clock(),
	}
}

// Ensure expenseService implements the ExpenseSvcFacade interface
var _ portssvc.ExpenseSvcFacade = (*expenseService)(nil)

func (s *expenseService) CreateExpense(ctx context.Context, req dto.CreateExpenseRequest, creator string) (*domain.Expense, error) {
	expenseDate, err := s.validateExpenseRequest(req)
	if err != nil {
		s.LogWarn(ctx, "Rejected expense request", slog.String("error", err.Error()))
		return nil, err
	}

	vendorName, err := s.parties.VendorName(ctx, req.VendorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewValidationError("vendorID", fmt.Sprintf("vendor %d does not exist", req.VendorID))
		}
		s.LogError(ctx, err, "Failed to look up vendor", slog.Int64("vendor_id", req.VendorID))
		return nil, fmt.Errorf("failed to look up vendor: %w", err)
	}

	expense := &domain.Expense{
		ExpenseDate:      expenseDate,
		VendorID:         req.VendorID,
		Description:      req.Description,
		Memo:             req.Memo,
		Amount:           req.Amount,
		PaymentType:      req.PaymentType,
		ExpenseAccountID: req.ExpenseAccountID,
		BankAccountID:    req.BankAccountID,
		AuditFields: domain.AuditFields{
			CreatedAt: s.now().UTC(),
			CreatedBy: creator,
		},
	}

	err = s.txManager.WithinTransaction(ctx, func(ctx context.Context, store portsrepo.Store) error {
		if _, err := s.numbers.Allocate(ctx, store.Sequences(), domain.ExpenseSeries, func(number string) error {
			expense.ExpenseNo = number
			return store.Expenses().InsertExpense(ctx, expense)
		}); err != nil {
			return fmt.Errorf("failed to record expense: %w", err)
		}

		pair, err := s.rules.ResolveExpensePosting(ctx, store.Accounts(), expense.PaymentType, expense.ExpenseAccountID, expense.BankAccountID)
		if err != nil {
			return err
		}

		memo := expense.Memo
		if memo == "" {
			memo = expense.ExpenseNo
		}
		posting, err := s.ledger.PostInTx(ctx, store, domain.PostingInput{
			TransactionDate: expense.ExpenseDate,
			Description:     fmt.Sprintf("Expense to %s for %s", vendorName, expense.Description),
			Memo:            memo,
			DebitAccountID:  pair.Debit.AccountID,
			CreditAccountID: pair.Credit.AccountID,
			Amount:          expense.Amount,
			Origin:          domain.ExpenseOrigin(expense.ExpenseID),
			CreatedBy:       creator,
		})
		if err != nil {
			return err
		}
		expense.Posting = posting
		return nil
	})
	if err != nil {
		if isRuleError(err) {
			s.LogWarn(ctx, "Expense rejected", slog.String("error", err.Error()))
		} else {
			s.LogError(ctx, err, "Failed to create expense", slog.Int64("vendor_id", req.VendorID))
		}
		return nil, err
	}

	s.ledgerChanged(ctx)
	s.LogInfo(ctx, "Expense recorded",
		slog.Int64("expense_id", expense.ExpenseID),
		slog.String("expense_no", expense.ExpenseNo),
		slog.String("transaction_no", expense.Posting.TransactionNo))
	return expense, nil
}

func (s *expenseService) validateExpenseRequest(req dto.CreateExpenseRequest) (time.Time, error) {
	verr := &apperrors.ValidationError{}
	expenseDate, err := domain.ParseDate(req.ExpenseDate)
	if err != nil {
		verr.Add("expenseDate", "must be a date in YYYY-MM-DD format")
	}
	if req.VendorID <= 0 {
		verr.Add("vendorID", "vendor is required")
	}
	if req.Description == "" {
		verr.Add("description", "description is required")
	}
	if !domain.ValidAmount(req.Amount) {
		verr.Add("amount", "must be positive with at most two decimal places")
	}
	if !req.PaymentType.ValidForExpense() {
		verr.Add("paymentType", "must be one of cash, bank")
	}
	if req.ExpenseAccountID <= 0 {
		verr.Add("expenseAccountID", "expense account is required")
	}
	return expenseDate, verr.OrNil()
}

func (s *expenseService) GetExpense(ctx context.Context, expenseID int64) (*domain.Expense, error) {
	expense, err := s.store.Expenses().FindExpenseByID(ctx, expenseID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get expense", slog.Int64("expense_id", expenseID))
		}
		return nil, fmt.Errorf("failed to get expense %d: %w", expenseID, err)
	}

	posting, err := s.store.Postings().FindPostingByOrigin(ctx, domain.ExpenseOrigin(expenseID))
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to get expense posting", slog.Int64("expense_id", expenseID))
		return nil, fmt.Errorf("failed to get posting for expense %d: %w", expenseID, err)
	}
	expense.Posting = posting
	return expense, nil
}

func (s *expenseService) ListExpenses(ctx context.Context, params dto.ListParams) ([]domain.Expense, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = defaultPageSize
	}
	expenses, err := s.store.Expenses().ListExpenses(ctx, limit, params.Offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list expenses")
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	return expenses, nil
}

func (s *expenseService) DeleteExpense(ctx context.Context, expenseID int64) error {
	var removed int64
	err := s.txManager.WithinTransaction(ctx, func(ctx context.Context, store portsrepo.Store) error {
		var err error
		removed, err = store.Postings().DeletePostingsByOrigin(ctx, domain.ExpenseOrigin(expenseID))
		if err != nil {
			return fmt.Errorf("failed to delete expense postings: %w", err)
		}
		if err := store.Expenses().DeleteExpense(ctx, expenseID); err != nil {
			return fmt.Errorf("failed to delete expense %d: %w", expenseID, err)
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete expense", slog.Int64("expense_id", expenseID))
		}
		return err
	}

	s.ledgerChanged(ctx)
	s.LogInfo(ctx, "Expense deleted", slog.Int64("expense_id", expenseID), slog.Int64("postings_removed", removed))
	return nil
}
