package renewal

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/nvera/credicuotas/internal/domain"
	"github.com/nvera/credicuotas/internal/dto"
	renewalservice "github.com/nvera/credicuotas/internal/service/renewalservice"
	"github.com/nvera/credicuotas/pkg/auth"
	"github.com/nvera/credicuotas/pkg/utils"
)

func NewMock(t *testing.T) (*RenewalHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func authCtx(userID int, role auth.Role) context.Context {
	ctx := context.WithValue(context.Background(), auth.UserIDKey, userID)
	return context.WithValue(ctx, auth.RoleKey, role)
}

func TestCheckEligibilityHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		ctx          context.Context
		target       string
		prepareMock  func(ctx context.Context)
		expectedCode int
		expectedBody *dto.EligibilityResponseDTO
	}{
		{
			name:   "Borrower qualifies",
			ctx:    authCtx(12, auth.RoleBorrower),
			target: "/api/renewal/eligibility",
			prepareMock: func(ctx context.Context) {
				service.EXPECT().CheckEligibility(ctx, 12).Return(&renewalservice.EligibilityReport{
					Eligible: true,
					EligibleLoans: []renewalservice.EligibleLoan{
						{
							Loan:                  domain.Loan{ID: 7},
							TotalPaid:             decimal.NewFromInt(110000),
							PercentPaid:           decimal.NewFromFloat(0.92),
							RemainingInstallments: 3,
							PendingDebt:           decimal.NewFromInt(10000),
						},
					},
					TotalPendingDebt: decimal.NewFromInt(10000),
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: &dto.EligibilityResponseDTO{
				Eligible: true,
				EligibleLoans: []dto.EligibleLoanDTO{
					{LoanID: 7, TotalPaid: "110000", PercentPaid: "0.92", RemainingInstallments: 3, PendingDebt: "10000"},
				},
				TotalPendingDebt: "10000",
			},
		},
		{
			name:   "Collector checks another borrower",
			ctx:    authCtx(3, auth.RoleCollector),
			target: "/api/renewal/eligibility?borrower_id=12",
			prepareMock: func(ctx context.Context) {
				service.EXPECT().CheckEligibility(ctx, 12).Return(&renewalservice.EligibilityReport{
					TotalPendingDebt: decimal.Zero,
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Borrower cannot check another borrower",
			ctx:          authCtx(13, auth.RoleBorrower),
			target:       "/api/renewal/eligibility?borrower_id=12",
			prepareMock:  func(ctx context.Context) {},
			expectedCode: http.StatusForbidden,
		},
		{
			name:   "Internal server error",
			ctx:    authCtx(12, auth.RoleBorrower),
			target: "/api/renewal/eligibility",
			prepareMock: func(ctx context.Context) {
				service.EXPECT().CheckEligibility(ctx, 12).Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock(tt.ctx)

			r := httptest.NewRequest(http.MethodGet, tt.target, nil)
			r = r.WithContext(tt.ctx)
			w := httptest.NewRecorder()

			handler.CheckEligibility(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedBody != nil {
				var body dto.EligibilityResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, *tt.expectedBody, body)
			}
		})
	}
}

func TestCreateRenewalHandler(t *testing.T) {
	handler, service := NewMock(t)
	ctx := authCtx(3, auth.RoleAdmin)
	collectsFrom, _ := time.Parse("2006-01-02", "2024-04-01")

	validBody := `{"borrower_id":12,"new_principal":"200000","new_interest_percent":"20","new_plazo_dias":40,"new_fecha_inicio_cobro":"2024-04-01","loan_ids_to_close":[5,6]}`

	newLoan := &domain.Loan{
		ID:              9,
		BorrowerID:      12,
		Principal:       decimal.NewFromInt(200000),
		InterestPercent: decimal.NewFromInt(20),
		TotalToReturn:   decimal.NewFromInt(240000),
		TermDays:        40,
		DailyAmount:     decimal.NewFromInt(6000),
		GrantedAt:       collectsFrom,
		CollectsFrom:    collectsFrom,
		Status:          domain.ActiveLoanStatus,
	}

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful renewal",
			body: validBody,
			prepareMock: func() {
				service.EXPECT().
					CreateRenewal(ctx, 12, decimal.NewFromInt(200000), decimal.NewFromInt(20), 40, collectsFrom, []int{5, 6}).
					Return(&renewalservice.RenewalResult{
						Loan:           newLoan,
						CashDisbursed:  decimal.NewFromInt(163000),
						DebtRolledOver: decimal.NewFromInt(37000),
					}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid request body",
		},
		{
			name:          "Non-positive principal",
			body:          `{"borrower_id":12,"new_principal":"0","new_interest_percent":"20","new_plazo_dias":40,"new_fecha_inicio_cobro":"2024-04-01","loan_ids_to_close":[5]}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid renewal input",
		},
		{
			name: "New principal does not cover pending debt",
			body: validBody,
			prepareMock: func() {
				service.EXPECT().
					CreateRenewal(ctx, 12, decimal.NewFromInt(200000), decimal.NewFromInt(20), 40, collectsFrom, []int{5, 6}).
					Return(nil, renewalservice.ErrInsufficientRenewalAmount)
			},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: renewalservice.ErrInsufficientRenewalAmount.Error(),
		},
		{
			name: "Loan not active",
			body: validBody,
			prepareMock: func() {
				service.EXPECT().
					CreateRenewal(ctx, 12, decimal.NewFromInt(200000), decimal.NewFromInt(20), 40, collectsFrom, []int{5, 6}).
					Return(nil, renewalservice.ErrLoanNotActive)
			},
			expectedCode:  http.StatusConflict,
			expectedError: renewalservice.ErrLoanNotActive.Error(),
		},
		{
			name: "Loan not found",
			body: validBody,
			prepareMock: func() {
				service.EXPECT().
					CreateRenewal(ctx, 12, decimal.NewFromInt(200000), decimal.NewFromInt(20), 40, collectsFrom, []int{5, 6}).
					Return(nil, renewalservice.ErrLoanNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: renewalservice.ErrLoanNotFound.Error(),
		},
		{
			name: "Internal server error",
			body: validBody,
			prepareMock: func() {
				service.EXPECT().
					CreateRenewal(ctx, 12, decimal.NewFromInt(200000), decimal.NewFromInt(20), 40, collectsFrom, []int{5, 6}).
					Return(nil, errors.New("error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodPost, "/api/renewal", bytes.NewBufferString(tt.body))
			r = r.WithContext(ctx)
			w := httptest.NewRecorder()

			handler.CreateRenewal(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				_ = json.NewDecoder(w.Body).Decode(&resp)
				assert.Equal(t, tt.expectedError, resp.Message)
			} else {
				var body dto.RenewalResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, 9, body.Loan.ID)
				assert.Equal(t, "163000", body.CashDisbursed)
				assert.Equal(t, "37000", body.DebtRolledOver)
			}
		})
	}
}
