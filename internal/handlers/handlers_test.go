package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	_ "github.com/nvera/credicuotas/docs"
	authhandlers "github.com/nvera/credicuotas/internal/handlers/auth"
	fundshandlers "github.com/nvera/credicuotas/internal/handlers/funds"
	loanshandlers "github.com/nvera/credicuotas/internal/handlers/loans"
	paymentshandlers "github.com/nvera/credicuotas/internal/handlers/payments"
	renewalhandlers "github.com/nvera/credicuotas/internal/handlers/renewal"
	"github.com/nvera/credicuotas/internal/service"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	services := &service.Services{
		AuthService:    authhandlers.NewMockService(ctrl),
		LoanService:    loanshandlers.NewMockService(ctrl),
		PaymentService: paymentshandlers.NewMockService(ctrl),
		RenewalService: renewalhandlers.NewMockService(ctrl),
		FundService:    fundshandlers.NewMockService(ctrl),
	}

	h := New(services)
	assert.NotNil(t, h, "Handlers should not be nil")
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthHandler := NewMockAuthHandler(ctrl)
	mockLoanHandler := NewMockLoanHandler(ctrl)
	mockPaymentHandler := NewMockPaymentHandler(ctrl)
	mockRenewalHandler := NewMockRenewalHandler(ctrl)
	mockFundHandler := NewMockFundHandler(ctrl)

	mockAuthHandler.EXPECT().Register(gomock.Any(), gomock.Any()).AnyTimes()
	mockAuthHandler.EXPECT().Login(gomock.Any(), gomock.Any()).AnyTimes()
	mockLoanHandler.EXPECT().Originate(gomock.Any(), gomock.Any()).AnyTimes()
	mockLoanHandler.EXPECT().GetLoans(gomock.Any(), gomock.Any()).AnyTimes()
	mockLoanHandler.EXPECT().GetLoan(gomock.Any(), gomock.Any()).AnyTimes()
	mockPaymentHandler.EXPECT().Submit(gomock.Any(), gomock.Any()).AnyTimes()
	mockPaymentHandler.EXPECT().Confirm(gomock.Any(), gomock.Any()).AnyTimes()
	mockPaymentHandler.EXPECT().SubmitAndConfirm(gomock.Any(), gomock.Any()).AnyTimes()
	mockPaymentHandler.EXPECT().Edit(gomock.Any(), gomock.Any()).AnyTimes()
	mockPaymentHandler.EXPECT().Delete(gomock.Any(), gomock.Any()).AnyTimes()
	mockPaymentHandler.EXPECT().GetPayments(gomock.Any(), gomock.Any()).AnyTimes()
	mockRenewalHandler.EXPECT().CheckEligibility(gomock.Any(), gomock.Any()).AnyTimes()
	mockRenewalHandler.EXPECT().CreateRenewal(gomock.Any(), gomock.Any()).AnyTimes()
	mockFundHandler.EXPECT().GetFund(gomock.Any(), gomock.Any()).AnyTimes()

	h := &Handlers{
		AuthHandler:    mockAuthHandler,
		LoanHandler:    mockLoanHandler,
		PaymentHandler: mockPaymentHandler,
		RenewalHandler: mockRenewalHandler,
		FundHandler:    mockFundHandler,
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		method string
		url    string
		status int
	}{
		{"POST", "/api/user/register", http.StatusOK},
		{"POST", "/api/user/login", http.StatusOK},
		{"GET", "/api/user/fund", http.StatusUnauthorized},
		{"GET", "/api/loans", http.StatusUnauthorized},
		{"POST", "/api/loans", http.StatusUnauthorized},
		{"GET", "/api/loans/7", http.StatusUnauthorized},
		{"POST", "/api/installments/101/payments", http.StatusUnauthorized},
		{"GET", "/api/installments/101/payments", http.StatusUnauthorized},
		{"POST", "/api/installments/101/payments/confirmed", http.StatusUnauthorized},
		{"POST", "/api/payments/55/confirm", http.StatusUnauthorized},
		{"PATCH", "/api/payments/55", http.StatusUnauthorized},
		{"DELETE", "/api/payments/55", http.StatusUnauthorized},
		{"GET", "/api/renewal/eligibility", http.StatusUnauthorized},
		{"POST", "/api/renewal", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
