package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/rental_ledger/internal/apperrors"
	"github.com/SscSPs/rental_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/rental_ledger/internal/core/ports/services"
	"github.com/SscSPs/rental_ledger/internal/dto"
	"github.com/SscSPs/rental_ledger/internal/handlers"
	"github.com/SscSPs/rental_ledger/internal/middleware"
	"github.com/SscSPs/rental_ledger/internal/platform/config"
	"github.com/SscSPs/rental_ledger/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const (
	testSecret = "test-secret-key-that-is-long-enough"
	testIssuer = "rental-ledger-test"
	testUser   = "clerk-7"
)

// --- Test Suite ---
type HandlerTestSuite struct {
	suite.Suite
	router    *gin.Engine
	accounts  *MockAccountService
	ledger    *MockLedgerService
	sales     *MockSaleService
	expenses  *MockExpenseService
	reporting *MockReportingService
	token     string
}

func (suite *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.accounts = new(MockAccountService)
	suite.ledger = new(MockLedgerService)
	suite.sales = new(MockSaleService)
	suite.expenses = new(MockExpenseService)
	suite.reporting = new(MockReportingService)

	cfg := &config.Config{
		IsProduction: true,
		JWTSecret:    testSecret,
		JWTIssuer:    testIssuer,
		RateLimit:    "1000-M",
	}
	container := &portssvc.ServiceContainer{
		Account:   suite.accounts,
		Ledger:    suite.ledger,
		Sale:      suite.sales,
		Expense:   suite.expenses,
		Reporting: suite.reporting,
	}

	suite.router = gin.New()
	suite.router.Use(middleware.StructuredLoggingMiddleware(slog.Default()))
	suite.Require().NoError(handlers.RegisterRoutes(suite.router, cfg, container))

	token, err := utils.GenerateJWT(testUser, testSecret, time.Hour, testIssuer)
	suite.Require().NoError(err)
	suite.token = token
}

func (suite *HandlerTestSuite) TearDownTest() {
	suite.accounts.AssertExpectations(suite.T())
	suite.ledger.AssertExpectations(suite.T())
	suite.sales.AssertExpectations(suite.T())
	suite.expenses.AssertExpectations(suite.T())
	suite.reporting.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) do(method, url string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, err := http.NewRequest(method, url, reader)
	suite.Require().NoError(err)
	req.Header.Set("Authorization", "Bearer "+suite.token)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *HandlerTestSuite) errorBody(w *httptest.ResponseRecorder) handlers.ErrorResponse {
	var resp handlers.ErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func saleBody() map[string]any {
	return map[string]any{
		"saleDate":         "2024-05-01",
		"customerID":       3,
		"description":      "AT rental 1 day",
		"amount":           "50.00",
		"paymentType":      "cash",
		"revenueAccountID": 4,
	}
}

// --- Test Cases ---

func (suite *HandlerTestSuite) TestHealthIsPublic() {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	suite.Equal(http.StatusOK, w.Code)
}

func (suite *HandlerTestSuite) TestRequiresBearerToken() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/accounts", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *HandlerTestSuite) TestListAccounts_FiltersByType() {
	revenue := domain.Revenue
	suite.accounts.On("ListAccounts", mock.Anything, &revenue).
		Return([]domain.Account{{AccountID: 4, Name: "AT Rental", AccountType: domain.Revenue}}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/accounts?type=REVENUE", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListAccountsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp.Accounts, 1)
	suite.Equal("AT Rental", resp.Accounts[0].Name)
}

func (suite *HandlerTestSuite) TestGetAccount() {
	suite.Run("found", func() {
		suite.accounts.On("GetAccountByID", mock.Anything, int64(1)).
			Return(&domain.Account{AccountID: 1, Name: "Cash", AccountType: domain.Asset}, nil).Once()
		w := suite.do(http.MethodGet, "/api/v1/accounts/1", nil)
		suite.Equal(http.StatusOK, w.Code)
	})
	suite.Run("unknown id", func() {
		suite.accounts.On("GetAccountByID", mock.Anything, int64(99)).
			Return(nil, fmt.Errorf("%w: %w", apperrors.ErrNotFound, apperrors.ErrUnknownAccount)).Once()
		w := suite.do(http.MethodGet, "/api/v1/accounts/99", nil)
		suite.Equal(http.StatusNotFound, w.Code)
		suite.Equal("not_found", suite.errorBody(w).Code)
	})
	suite.Run("malformed id", func() {
		w := suite.do(http.MethodGet, "/api/v1/accounts/abc", nil)
		suite.Equal(http.StatusBadRequest, w.Code)
		suite.Contains(suite.errorBody(w).Fields, "id")
	})
}

func (suite *HandlerTestSuite) TestCreateSale_Success() {
	sale := &domain.Sale{
		SaleID:           1,
		SaleNo:           "SALE-0001",
		SaleDate:         time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		CustomerID:       3,
		Description:      "AT rental 1 day",
		Amount:           decimal.RequireFromString("50.00"),
		PaymentType:      domain.PaymentCash,
		RevenueAccountID: 4,
	}
	suite.sales.On("CreateSale", mock.Anything, mock.MatchedBy(func(req dto.CreateSaleRequest) bool {
		return req.CustomerID == 3 && req.PaymentType == domain.PaymentCash &&
			req.Amount.Equal(decimal.RequireFromString("50"))
	}), testUser).Return(sale, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/sales", saleBody())

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.SaleResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("SALE-0001", resp.SaleNo)
	suite.Equal("2024-05-01", resp.SaleDate)
	suite.True(resp.Amount.Equal(decimal.RequireFromString("50")))
}

func (suite *HandlerTestSuite) TestCreateSale_BindingRejections() {
	cases := []struct {
		name  string
		edit  func(map[string]any)
		field string
	}{
		{"three decimal places", func(b map[string]any) { b["amount"] = "10.005" }, "amount"},
		{"negative amount", func(b map[string]any) { b["amount"] = "-5" }, "amount"},
		{"zero amount", func(b map[string]any) { b["amount"] = "0" }, "amount"},
		{"missing customer", func(b map[string]any) { delete(b, "customerID") }, "customerID"},
		{"unknown payment type", func(b map[string]any) { b["paymentType"] = "barter" }, "paymentType"},
		{"bad date", func(b map[string]any) { b["saleDate"] = "01/05/2024" }, "saleDate"},
	}
	for _, tc := range cases {
		suite.Run(tc.name, func() {
			body := saleBody()
			tc.edit(body)
			w := suite.do(http.MethodPost, "/api/v1/sales", body)
			suite.Equal(http.StatusBadRequest, w.Code)
			resp := suite.errorBody(w)
			suite.Equal("validation_error", resp.Code)
			suite.Contains(resp.Fields, tc.field)
		})
	}
	suite.sales.AssertNotCalled(suite.T(), "CreateSale", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestCreateSale_ServiceErrors() {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{
			name:   "wrong classification",
			err:    apperrors.WithField("revenueAccountID", fmt.Errorf("%w: account \"Cash\" is ASSET, expected REVENUE", apperrors.ErrInvalidAccountClassification)),
			status: http.StatusUnprocessableEntity,
			code:   "invalid_account_classification",
		},
		{
			name:   "missing canonical account",
			err:    fmt.Errorf("%w: Cash", apperrors.ErrMissingCanonicalAccount),
			status: http.StatusInternalServerError,
			code:   "configuration_error",
		},
		{
			name:   "retry budget exhausted",
			err:    apperrors.ErrExhaustedRetries,
			status: http.StatusServiceUnavailable,
			code:   "retry_exhausted",
		},
		{
			name:   "unknown customer",
			err:    apperrors.NewValidationError("customerID", "unknown customer"),
			status: http.StatusBadRequest,
			code:   "validation_error",
		},
		{
			name:   "unexpected",
			err:    fmt.Errorf("connection reset"),
			status: http.StatusInternalServerError,
		},
	}
	for _, tc := range cases {
		suite.Run(tc.name, func() {
			suite.sales.On("CreateSale", mock.Anything, mock.Anything, testUser).Return(nil, tc.err).Once()
			w := suite.do(http.MethodPost, "/api/v1/sales", saleBody())
			suite.Equal(tc.status, w.Code)
			resp := suite.errorBody(w)
			suite.Equal(tc.code, resp.Code)
			if tc.code == "" {
				suite.Equal("Failed to record sale", resp.Error)
			}
		})
	}
}

func (suite *HandlerTestSuite) TestCreateSale_ClassificationReportsField() {
	suite.sales.On("CreateSale", mock.Anything, mock.Anything, testUser).
		Return(nil, apperrors.WithField("bankAccountID", fmt.Errorf("%w: account \"Petty Float\" is not a bank asset account", apperrors.ErrInvalidAccountClassification))).Once()

	w := suite.do(http.MethodPost, "/api/v1/sales", saleBody())

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
	suite.Contains(suite.errorBody(w).Fields, "bankAccountID")
}

func (suite *HandlerTestSuite) TestCreateSale_RetryAfterHeader() {
	suite.sales.On("CreateSale", mock.Anything, mock.Anything, testUser).Return(nil, apperrors.ErrExhaustedRetries).Once()

	w := suite.do(http.MethodPost, "/api/v1/sales", saleBody())

	suite.Equal(http.StatusServiceUnavailable, w.Code)
	suite.Equal("1", w.Header().Get("Retry-After"))
}

func (suite *HandlerTestSuite) TestListSales_PassesWindow() {
	suite.sales.On("ListSales", mock.Anything, dto.ListParams{Limit: 5, Offset: 10}).Return([]domain.Sale{}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/sales?limit=5&offset=10", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq("[]", w.Body.String())
}

func (suite *HandlerTestSuite) TestDeleteSale() {
	suite.Run("deleted", func() {
		suite.sales.On("DeleteSale", mock.Anything, int64(1)).Return(nil).Once()
		w := suite.do(http.MethodDelete, "/api/v1/sales/1", nil)
		suite.Equal(http.StatusNoContent, w.Code)
	})
	suite.Run("missing", func() {
		suite.sales.On("DeleteSale", mock.Anything, int64(2)).Return(apperrors.ErrNotFound).Once()
		w := suite.do(http.MethodDelete, "/api/v1/sales/2", nil)
		suite.Equal(http.StatusNotFound, w.Code)
	})
}

func (suite *HandlerTestSuite) TestCreateExpense() {
	body := map[string]any{
		"expenseDate":      "2024-05-02",
		"vendorID":         2,
		"description":      "diesel for AT-07",
		"amount":           "12.50",
		"paymentType":      "bank",
		"expenseAccountID": 5,
		"bankAccountID":    2,
	}

	suite.Run("credit payment is not allowed", func() {
		b := map[string]any{}
		for k, v := range body {
			b[k] = v
		}
		b["paymentType"] = "credit"
		w := suite.do(http.MethodPost, "/api/v1/expenses", b)
		suite.Equal(http.StatusBadRequest, w.Code)
		suite.Contains(suite.errorBody(w).Fields, "paymentType")
	})

	suite.Run("created", func() {
		bank := int64(2)
		suite.expenses.On("CreateExpense", mock.Anything, mock.MatchedBy(func(req dto.CreateExpenseRequest) bool {
			return req.VendorID == 2 && req.BankAccountID != nil && *req.BankAccountID == bank
		}), testUser).Return(&domain.Expense{
			ExpenseID:        1,
			ExpenseNo:        "EXP-0001",
			ExpenseDate:      time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC),
			VendorID:         2,
			Amount:           decimal.RequireFromString("12.50"),
			PaymentType:      domain.PaymentBank,
			ExpenseAccountID: 5,
			BankAccountID:    &bank,
		}, nil).Once()

		w := suite.do(http.MethodPost, "/api/v1/expenses", body)
		suite.Equal(http.StatusCreated, w.Code)
		var resp dto.ExpenseResponse
		suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
		suite.Equal("EXP-0001", resp.ExpenseNo)
	})
}

func (suite *HandlerTestSuite) TestCreateManualPosting() {
	body := map[string]any{
		"transactionDate": "2024-05-03",
		"description":     "Owner top-up",
		"debitAccountID":  1,
		"creditAccountID": 7,
		"amount":          "1000.00",
	}

	suite.Run("same account on both sides", func() {
		b := map[string]any{}
		for k, v := range body {
			b[k] = v
		}
		b["creditAccountID"] = 1
		w := suite.do(http.MethodPost, "/api/v1/ledger/postings", b)
		suite.Equal(http.StatusBadRequest, w.Code)
		suite.Contains(suite.errorBody(w).Fields, "creditAccountID")
	})

	suite.Run("recorded", func() {
		suite.ledger.On("CreateManualPosting", mock.Anything, mock.AnythingOfType("dto.CreateManualPostingRequest"), testUser).
			Return(&domain.Posting{
				PostingID:       1,
				TransactionNo:   "GL-001",
				TransactionDate: time.Date(2024, 5, 3, 0, 0, 0, 0, time.UTC),
				DebitAccountID:  1,
				CreditAccountID: 7,
				Amount:          decimal.RequireFromString("1000"),
			}, nil).Once()

		w := suite.do(http.MethodPost, "/api/v1/ledger/postings", body)
		suite.Equal(http.StatusCreated, w.Code)
		var resp dto.PostingResponse
		suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
		suite.Equal("GL-001", resp.TransactionNo)
	})
}

func (suite *HandlerTestSuite) TestListPostings() {
	next := "token"
	suite.ledger.On("ListPostings", mock.Anything, dto.ListPostingsParams{Limit: 2, NextToken: "abc"}).
		Return(&dto.ListPostingsResponse{Postings: []dto.PostingResponse{{TransactionNo: "GL-002"}}, NextToken: &next}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/ledger/postings?limit=2&nextToken=abc", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListPostingsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().NotNil(resp.NextToken)
	suite.Equal("token", *resp.NextToken)

	w = suite.do(http.MethodGet, "/api/v1/ledger/postings?limit=500", nil)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestTrialBalance() {
	report := &domain.TrialBalanceReport{
		AsOf: time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC),
		Lines: []domain.TrialBalanceLine{
			{AccountID: 1, AccountName: "Cash", AccountType: domain.Asset, DebitBalance: decimal.NewFromInt(50), CreditBalance: decimal.Zero},
			{AccountID: 4, AccountName: "AT Rental", AccountType: domain.Revenue, DebitBalance: decimal.Zero, CreditBalance: decimal.NewFromInt(50)},
		},
		TotalDebit:  decimal.NewFromInt(50),
		TotalCredit: decimal.NewFromInt(50),
	}

	suite.Run("explicit date", func() {
		suite.reporting.On("TrialBalance", mock.Anything, time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC)).Return(report, nil).Once()
		w := suite.do(http.MethodGet, "/api/v1/reports/trial-balance?asOf=2024-05-31", nil)
		suite.Equal(http.StatusOK, w.Code)

		var resp dto.TrialBalanceResponse
		suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
		suite.Equal("2024-05-31", resp.AsOf)
		suite.Len(resp.Rows, 2)
		suite.True(resp.Balanced)
	})

	suite.Run("defaults to today", func() {
		suite.reporting.On("TrialBalance", mock.Anything, mock.MatchedBy(func(asOf time.Time) bool {
			return asOf.Equal(domain.DateOnly(asOf)) && time.Since(asOf) < 48*time.Hour
		})).Return(report, nil).Once()
		w := suite.do(http.MethodGet, "/api/v1/reports/trial-balance", nil)
		suite.Equal(http.StatusOK, w.Code)
	})

	suite.Run("invalid date", func() {
		w := suite.do(http.MethodGet, "/api/v1/reports/trial-balance?asOf=2024-13-01", nil)
		suite.Equal(http.StatusBadRequest, w.Code)
	})
}

// --- Run Test Suite ---
func TestHandlers(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
