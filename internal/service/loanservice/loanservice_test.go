package loanservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/nvera/credicuotas/internal/domain"
	"github.com/nvera/credicuotas/internal/pg"
)

func NewMock(t *testing.T) (*Service, *MockLoanRepo, *MockInstallmentRepo, *MockOutbox) {
	ctrl := gomock.NewController(t)
	loanRepo := NewMockLoanRepo(ctrl)
	installmentRepo := NewMockInstallmentRepo(ctrl)
	outbox := NewMockOutbox(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	).AnyTimes()
	service := New(loanRepo, installmentRepo, outbox, txManager)
	defer ctrl.Finish()
	return service, loanRepo, installmentRepo, outbox
}

func TestOriginate(t *testing.T) {
	service, loanRepo, installmentRepo, outbox := NewMock(t)
	grantedAt := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	collectsFrom := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		borrowerID    int
		principal     decimal.Decimal
		dailyAmount   decimal.Decimal
		termDays      int
		prepareMock   func()
		expectedError error
	}{
		{
			name:        "Loan originated with full schedule",
			borrowerID:  12,
			principal:   decimal.NewFromInt(100000),
			dailyAmount: decimal.NewFromInt(4000),
			termDays:    30,
			prepareMock: func() {
				loanRepo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, loan *domain.Loan) (*domain.Loan, error) {
						assert.True(t, loan.TotalToReturn.Equal(decimal.NewFromInt(120000)))
						assert.Equal(t, "20", loan.InterestPercent.String())
						assert.Equal(t, domain.ActiveLoanStatus, loan.Status)
						loan.ID = 7
						return loan, nil
					})
				installmentRepo.EXPECT().SaveAll(gomock.Any(), 7, gomock.Len(30)).Return(nil)
				outbox.EXPECT().Enqueue(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:          "Non-positive principal rejected",
			borrowerID:    12,
			principal:     decimal.Zero,
			dailyAmount:   decimal.NewFromInt(4000),
			termDays:      30,
			expectedError: ErrInvalidLoanInput,
		},
		{
			name:          "Non-positive term rejected",
			borrowerID:    12,
			principal:     decimal.NewFromInt(100000),
			dailyAmount:   decimal.NewFromInt(4000),
			termDays:      0,
			expectedError: ErrInvalidLoanInput,
		},
		{
			name:        "Save failure aborts the transaction",
			borrowerID:  12,
			principal:   decimal.NewFromInt(100000),
			dailyAmount: decimal.NewFromInt(4000),
			termDays:    30,
			prepareMock: func() {
				loanRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
		{
			name:        "Schedule persistence failure aborts the transaction",
			borrowerID:  12,
			principal:   decimal.NewFromInt(100000),
			dailyAmount: decimal.NewFromInt(4000),
			termDays:    30,
			prepareMock: func() {
				loanRepo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, loan *domain.Loan) (*domain.Loan, error) {
						loan.ID = 7
						return loan, nil
					})
				installmentRepo.EXPECT().SaveAll(gomock.Any(), 7, gomock.Any()).Return(errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			loan, installments, err := service.Originate(context.Background(), tt.borrowerID, tt.principal, tt.dailyAmount, tt.termDays, grantedAt, collectsFrom)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 7, loan.ID)
				assert.Len(t, installments, tt.termDays)
				assert.Equal(t, collectsFrom, installments[0].DueDate)
				assert.Equal(t, collectsFrom.AddDate(0, 0, tt.termDays-1), installments[len(installments)-1].DueDate)
			}
		})
	}
}

func TestGetLoans(t *testing.T) {
	service, loanRepo, _, _ := NewMock(t)
	tests := []struct {
		name          string
		borrowerID    int
		prepareMock   func()
		expectedLoans []domain.Loan
		expectedError error
	}{
		{
			name:       "Loans listed",
			borrowerID: 12,
			prepareMock: func() {
				loanRepo.EXPECT().FindByBorrowerID(gomock.Any(), 12).Return([]domain.Loan{
					{ID: 7, BorrowerID: 12},
				}, nil)
			},
			expectedLoans: []domain.Loan{{ID: 7, BorrowerID: 12}},
		},
		{
			name:       "Error fetching loans",
			borrowerID: 12,
			prepareMock: func() {
				loanRepo.EXPECT().FindByBorrowerID(gomock.Any(), 12).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			loans, err := service.GetLoans(context.Background(), tt.borrowerID)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedLoans, loans)
			}
		})
	}
}

func TestGetLoan(t *testing.T) {
	service, loanRepo, installmentRepo, _ := NewMock(t)
	tests := []struct {
		name          string
		loanID        int
		prepareMock   func()
		expectedError error
	}{
		{
			name:   "Loan returned with its schedule",
			loanID: 7,
			prepareMock: func() {
				loanRepo.EXPECT().GetByID(gomock.Any(), 7).Return(&domain.Loan{ID: 7}, nil)
				installmentRepo.EXPECT().FindByLoanID(gomock.Any(), 7).Return([]domain.Installment{
					{ID: 101, LoanID: 7},
				}, nil)
			},
		},
		{
			name:   "Loan not found",
			loanID: 999,
			prepareMock: func() {
				loanRepo.EXPECT().GetByID(gomock.Any(), 999).Return(nil, nil)
			},
			expectedError: ErrLoanNotFound,
		},
		{
			name:   "Error fetching installments",
			loanID: 7,
			prepareMock: func() {
				loanRepo.EXPECT().GetByID(gomock.Any(), 7).Return(&domain.Loan{ID: 7}, nil)
				installmentRepo.EXPECT().FindByLoanID(gomock.Any(), 7).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			loan, installments, err := service.GetLoan(context.Background(), tt.loanID)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.loanID, loan.ID)
				assert.Len(t, installments, 1)
			}
		})
	}
}
