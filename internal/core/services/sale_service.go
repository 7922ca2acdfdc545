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

// saleService records sales through the posting rules and the ledger.
type saleService struct {
	BaseService
	txManager portsrepo.TransactionManager
	store     portsrepo.Store
	parties   portsrepo.PartyDirectory
	rules     *PostingRules
	numbers   *DocumentNumberGenerator
	ledger    portssvc.LedgerPoster
	now       func() time.Time
}

// SubsidiaryDeps groups what the sale and expense services share.
type SubsidiaryDeps struct {
	TxManager   portsrepo.TransactionManager
	Store       portsrepo.Store
	Parties     portsrepo.PartyDirectory
	Rules       *PostingRules
	Numbers     *DocumentNumberGenerator
	Ledger      portssvc.LedgerPoster
	ReportCache portsrepo.ReportCache
	Now         func() time.Time
}

func (d SubsidiaryDeps) clock() func() time.Time {
	if d.Now != nil {
		return d.Now
	}
	return time.Now
}

// NewSaleService creates a new sale service.
func NewSaleService(deps SubsidiaryDeps) portssvc.SaleSvcFacade {
	return &saleService{
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

// Ensure saleService implements the SaleSvcFacade interface
var _ portssvc.SaleSvcFacade = (*saleService)(nil)

func (s *saleService) CreateSale(ctx context.Context, req dto.CreateSaleRequest, creator string) (*domain.Sale, error) {
	saleDate, err := s.validateSaleRequest(req)
	if err != nil {
		s.LogWarn(ctx, "Rejected sale request", slog.String("error", err.Error()))
		return nil, err
	}

	customerName, err := s.parties.CustomerName(ctx, req.CustomerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewValidationError("customerID", fmt.Sprintf("customer %d does not exist", req.CustomerID))
		}
		s.LogError(ctx, err, "Failed to look up customer", slog.Int64("customer_id", req.CustomerID))
		return nil, fmt.Errorf("failed to look up customer: %w", err)
	}

	sale := &domain.Sale{
		SaleDate:         saleDate,
		CustomerID:       req.CustomerID,
		Description:      req.Description,
		Memo:             req.Memo,
		Amount:           req.Amount,
		PaymentType:      req.PaymentType,
		RevenueAccountID: req.RevenueAccountID,
		BankAccountID:    req.BankAccountID,
		AuditFields: domain.AuditFields{
			CreatedAt: s.now().UTC(),
			CreatedBy: creator,
		},
	}

	err = s.txManager.WithinTransaction(ctx, func(ctx context.Context, store portsrepo.Store) error {
		if _, err := s.numbers.Allocate(ctx, store.Sequences(), domain.SaleSeries, func(number string) error {
			sale.SaleNo = number
			return store.Sales().InsertSale(ctx, sale)
		}); err != nil {
			return fmt.Errorf("failed to record sale: %w", err)
		}

		pair, err := s.rules.ResolveSalePosting(ctx, store.Accounts(), sale.PaymentType, sale.RevenueAccountID, sale.BankAccountID)
		if err != nil {
			return err
		}

		memo := sale.Memo
		if memo == "" {
			memo = sale.SaleNo
		}
		posting, err := s.ledger.PostInTx(ctx, store, domain.PostingInput{
			TransactionDate: sale.SaleDate,
			Description:     fmt.Sprintf("Sale to %s - %s", customerName, sale.Description),
			Memo:            memo,
			DebitAccountID:  pair.Debit.AccountID,
			CreditAccountID: pair.Credit.AccountID,
			Amount:          sale.Amount,
			Origin:          domain.SaleOrigin(sale.SaleID),
			CreatedBy:       creator,
		})
		if err != nil {
			return err
		}
		sale.Posting = posting
		return nil
	})
	if err != nil {
		if isRuleError(err) {
			s.LogWarn(ctx, "Sale rejected", slog.String("error", err.Error()))
		} else {
			s.LogError(ctx, err, "Failed to create sale", slog.Int64("customer_id", req.CustomerID))
		}
		return nil, err
	}

	s.ledgerChanged(ctx)
	s.LogInfo(ctx, "Sale recorded",
		slog.Int64("sale_id", sale.SaleID),
		slog.String("sale_no", sale.SaleNo),
		slog.String("transaction_no", sale.Posting.TransactionNo))
	return sale, nil
}

func (s *saleService) validateSaleRequest(req dto.CreateSaleRequest) (time.Time, error) {
	verr := &apperrors.ValidationError{}
	saleDate, err := domain.ParseDate(req.SaleDate)
	if err != nil {
		verr.Add("saleDate", "must be a date in YYYY-MM-DD format")
	}
	if req.CustomerID <= 0 {
		verr.Add("customerID", "customer is required")
	}
	if req.Description == "" {
		verr.Add("description", "description is required")
	}
	if !domain.ValidAmount(req.Amount) {
		verr.Add("amount", "must be positive with at most two decimal places")
	}
	if !req.PaymentType.ValidForSale() {
		verr.Add("paymentType", "must be one of cash, bank, credit")
	}
	if req.RevenueAccountID <= 0 {
		verr.Add("revenueAccountID", "revenue account is required")
	}
	return saleDate, verr.OrNil()
}

func (s *saleService) GetSale(ctx context.Context, saleID int64) (*domain.Sale, error) {
	sale, err := s.store.Sales().FindSaleByID(ctx, saleID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get sale", slog.Int64("sale_id", saleID))
		}
		return nil, fmt.Errorf("failed to get sale %d: %w", saleID, err)
	}

	posting, err := s.store.Postings().FindPostingByOrigin(ctx, domain.SaleOrigin(saleID))
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to get sale posting", slog.Int64("sale_id", saleID))
		return nil, fmt.Errorf("failed to get posting for sale %d: %w", saleID, err)
	}
	sale.Posting = posting
	return sale, nil
}

func (s *saleService) ListSales(ctx context.Context, params dto.ListParams) ([]domain.Sale, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = defaultPageSize
	}
	sales, err := s.store.Sales().ListSales(ctx, limit, params.Offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list sales")
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}
	return sales, nil
}

func (s *saleService) DeleteSale(ctx context.Context, saleID int64) error {
	var removed int64
	err := s.txManager.WithinTransaction(ctx, func(ctx context.Context, store portsrepo.Store) error {
		var err error
		removed, err = store.Postings().DeletePostingsByOrigin(ctx, domain.SaleOrigin(saleID))
		if err != nil {
			return fmt.Errorf("failed to delete sale postings: %w", err)
		}
		if err := store.Sales().DeleteSale(ctx, saleID); err != nil {
			return fmt.Errorf("failed to delete sale %d: %w", saleID, err)
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete sale", slog.Int64("sale_id", saleID))
		}
		return err
	}

	s.ledgerChanged(ctx)
	s.LogInfo(ctx, "Sale deleted", slog.Int64("sale_id", saleID), slog.Int64("postings_removed", removed))
	return nil
}

// isRuleError reports whether err is a business-rule rejection rather than a system fault.
func isRuleError(err error) bool {
	return errors.Is(err, apperrors.ErrValidation) ||
		errors.Is(err, apperrors.ErrInvalidAccountClassification) ||
		errors.Is(err, apperrors.ErrNotFound)
}
