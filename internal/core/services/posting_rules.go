package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/rental_ledger/internal/apperrors"
	"github.com/SscSPs/rental_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/rental_ledger/internal/core/ports/repositories"
)

// PostingRules decides which accounts a sale or expense debits and credits.
type PostingRules struct {
	BaseService
	bankNameFallback bool
}

// PostingRulesOption is a functional option for configuring the posting rules
type PostingRulesOption func(*PostingRules)

// WithBankNameFallback toggles accepting ASSET accounts named "...Bank..." that lack the bank flag.
func WithBankNameFallback(enabled bool) PostingRulesOption {
	return func(r *PostingRules) {
		r.bankNameFallback = enabled
	}
}

// NewPostingRules creates the rules engine. The bank name fallback is on by default.
func NewPostingRules(options ...PostingRulesOption) *PostingRules {
	r := &PostingRules{bankNameFallback: true}
	for _, option := range options {
		option(r)
	}
	return r
}

// ResolveSalePosting returns the debit and credit accounts for a sale.
// Cash debits the canonical Cash account; bank and credit debit the supplied bank account.
// The revenue account is always credited.
func (r *PostingRules) ResolveSalePosting(ctx context.Context, accounts portsrepo.AccountReader, paymentType domain.PaymentType, revenueAccountID int64, bankAccountID *int64) (domain.PostingPair, error) {
	if !paymentType.ValidForSale() {
		return domain.PostingPair{}, apperrors.NewValidationError("paymentType",
			fmt.Sprintf("payment type %q is not one of cash, bank, credit", paymentType))
	}

	var debit domain.Account
	var err error
	switch paymentType {
	case domain.PaymentCash:
		debit, err = r.cashAccount(ctx, accounts)
	default:
		debit, err = r.bankAccount(ctx, accounts, bankAccountID)
	}
	if err != nil {
		return domain.PostingPair{}, err
	}

	credit, err := r.accountOfType(ctx, accounts, "revenueAccountID", revenueAccountID, domain.Revenue)
	if err != nil {
		return domain.PostingPair{}, err
	}

	return domain.PostingPair{Debit: debit, Credit: credit}, nil
}

// ResolveExpensePosting returns the debit and credit accounts for an expense.
// The expense account is always debited; cash credits Cash and bank credits the supplied bank account.
func (r *PostingRules) ResolveExpensePosting(ctx context.Context, accounts portsrepo.AccountReader, paymentType domain.PaymentType, expenseAccountID int64, bankAccountID *int64) (domain.PostingPair, error) {
	if !paymentType.ValidForExpense() {
		return domain.PostingPair{}, apperrors.NewValidationError("paymentType",
			fmt.Sprintf("payment type %q is not one of cash, bank", paymentType))
	}

	debit, err := r.accountOfType(ctx, accounts, "expenseAccountID", expenseAccountID, domain.ExpenseType)
	if err != nil {
		return domain.PostingPair{}, err
	}

	var credit domain.Account
	switch paymentType {
	case domain.PaymentCash:
		credit, err = r.cashAccount(ctx, accounts)
	default:
		credit, err = r.bankAccount(ctx, accounts, bankAccountID)
	}
	if err != nil {
		return domain.PostingPair{}, err
	}

	return domain.PostingPair{Debit: debit, Credit: credit}, nil
}

func (r *PostingRules) cashAccount(ctx context.Context, accounts portsrepo.AccountReader) (domain.Account, error) {
	cash, err := accounts.FindAccountByName(ctx, domain.CashAccountName)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			r.LogError(ctx, apperrors.ErrMissingCanonicalAccount, "Chart of accounts has no Cash account")
			return domain.Account{}, fmt.Errorf("%w: %q", apperrors.ErrMissingCanonicalAccount, domain.CashAccountName)
		}
		return domain.Account{}, fmt.Errorf("failed to look up cash account: %w", err)
	}
	return *cash, nil
}

func (r *PostingRules) bankAccount(ctx context.Context, accounts portsrepo.AccountReader, bankAccountID *int64) (domain.Account, error) {
	if bankAccountID == nil {
		return domain.Account{}, apperrors.NewValidationError("bankAccountID", "bank account is required for this payment type")
	}
	account, err := r.lookup(ctx, accounts, "bankAccountID", *bankAccountID)
	if err != nil {
		return domain.Account{}, err
	}
	if !account.IsBankAsset(r.bankNameFallback) {
		r.LogWarn(ctx, "Rejected non-bank account as bank target",
			slog.Int64("account_id", account.AccountID),
			slog.String("account_name", account.Name),
			slog.String("account_type", string(account.AccountType)))
		return domain.Account{}, apperrors.WithField("bankAccountID",
			fmt.Errorf("%w: account %q is not a bank asset account", apperrors.ErrInvalidAccountClassification, account.Name))
	}
	return account, nil
}

func (r *PostingRules) accountOfType(ctx context.Context, accounts portsrepo.AccountReader, field string, accountID int64, want domain.AccountType) (domain.Account, error) {
	account, err := r.lookup(ctx, accounts, field, accountID)
	if err != nil {
		return domain.Account{}, err
	}
	if account.AccountType != want {
		r.LogWarn(ctx, "Rejected account with wrong type",
			slog.Int64("account_id", account.AccountID),
			slog.String("account_type", string(account.AccountType)),
			slog.String("expected_type", string(want)))
		return domain.Account{}, apperrors.WithField(field,
			fmt.Errorf("%w: account %q is %s, expected %s", apperrors.ErrInvalidAccountClassification, account.Name, account.AccountType, want))
	}
	return account, nil
}

func (r *PostingRules) lookup(ctx context.Context, accounts portsrepo.AccountReader, field string, accountID int64) (domain.Account, error) {
	account, err := accounts.FindAccountByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return domain.Account{}, apperrors.WithField(field, fmt.Errorf("%w: id %d", apperrors.ErrUnknownAccount, accountID))
		}
		return domain.Account{}, fmt.Errorf("failed to look up account %d: %w", accountID, err)
	}
	return *account, nil
}
