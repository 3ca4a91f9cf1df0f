package paymentservice

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/nvera/credicuotas/internal/domain"
	"github.com/nvera/credicuotas/internal/pg"
)

type decimalMatcher struct {
	want decimal.Decimal
}

func (m decimalMatcher) Matches(x any) bool {
	d, ok := x.(decimal.Decimal)
	return ok && d.Equal(m.want)
}

func (m decimalMatcher) String() string {
	return "decimal equal to " + m.want.String()
}

func decimalEq(v int64) gomock.Matcher {
	return decimalMatcher{want: decimal.NewFromInt(v)}
}

type mocks struct {
	paymentRepo     *MockPaymentRepo
	installmentRepo *MockInstallmentRepo
	loanRepo        *MockLoanRepo
	fund            *MockAccruer
	outbox          *MockOutbox
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		paymentRepo:     NewMockPaymentRepo(ctrl),
		installmentRepo: NewMockInstallmentRepo(ctrl),
		loanRepo:        NewMockLoanRepo(ctrl),
		fund:            NewMockAccruer(ctrl),
		outbox:          NewMockOutbox(ctrl),
	}
	txManager := pg.NewMockTXManager(ctrl)
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	).AnyTimes()
	service := New(m.paymentRepo, m.installmentRepo, m.loanRepo, m.fund, m.outbox, txManager)
	defer ctrl.Finish()
	return service, m
}

func activeLoan() *domain.Loan {
	return &domain.Loan{
		ID:            7,
		BorrowerID:    12,
		Principal:     decimal.NewFromInt(100000),
		TotalToReturn: decimal.NewFromInt(120000),
		Status:        domain.ActiveLoanStatus,
	}
}

func pendingInstallment() *domain.Installment {
	return &domain.Installment{
		ID:             101,
		LoanID:         7,
		ExpectedAmount: decimal.NewFromInt(4000),
		PaidAmount:     decimal.Zero,
		Status:         domain.PendingInstallmentStatus,
	}
}

func TestSubmit(t *testing.T) {
	service, m := NewMock(t)
	tests := []struct {
		name          string
		installmentID int
		borrowerID    int
		amount        decimal.Decimal
		prepareMock   func()
		expectedError error
	}{
		{
			name:          "Payment submitted successfully",
			installmentID: 101,
			borrowerID:    12,
			amount:        decimal.NewFromInt(4000),
			prepareMock: func() {
				m.installmentRepo.EXPECT().GetByID(gomock.Any(), 101).Return(pendingInstallment(), nil)
				m.loanRepo.EXPECT().GetByID(gomock.Any(), 7).Return(activeLoan(), nil)
				m.paymentRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(&domain.Payment{
					ID:            55,
					InstallmentID: 101,
					BorrowerID:    12,
					Amount:        decimal.NewFromInt(4000),
				}, nil)
			},
			expectedError: nil,
		},
		{
			name:          "Non-positive amount rejected",
			installmentID: 101,
			borrowerID:    12,
			amount:        decimal.Zero,
			expectedError: ErrInvalidAmount,
		},
		{
			name:          "Installment not found",
			installmentID: 999,
			borrowerID:    12,
			amount:        decimal.NewFromInt(4000),
			prepareMock: func() {
				m.installmentRepo.EXPECT().GetByID(gomock.Any(), 999).Return(nil, nil)
			},
			expectedError: ErrInstallmentNotFound,
		},
		{
			name:          "Installment belongs to another borrower",
			installmentID: 101,
			borrowerID:    13,
			amount:        decimal.NewFromInt(4000),
			prepareMock: func() {
				m.installmentRepo.EXPECT().GetByID(gomock.Any(), 101).Return(pendingInstallment(), nil)
				m.loanRepo.EXPECT().GetByID(gomock.Any(), 7).Return(activeLoan(), nil)
			},
			expectedError: ErrNotInstallmentBorrower,
		},
		{
			name:          "Settled loan rejects new payments",
			installmentID: 101,
			borrowerID:    12,
			amount:        decimal.NewFromInt(4000),
			prepareMock: func() {
				m.installmentRepo.EXPECT().GetByID(gomock.Any(), 101).Return(pendingInstallment(), nil)
				loan := activeLoan()
				loan.Status = domain.SettledLoanStatus
				m.loanRepo.EXPECT().GetByID(gomock.Any(), 7).Return(loan, nil)
			},
			expectedError: ErrLoanSettled,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			payment, err := service.Submit(context.Background(), tt.installmentID, tt.borrowerID, tt.amount, "receipts/a.jpg", "")
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, payment)
				assert.False(t, payment.Confirmed)
			}
		})
	}
}

func TestConfirm(t *testing.T) {
	service, m := NewMock(t)
	tests := []struct {
		name           string
		paymentID      int
		actorID        int
		prepareMock    func()
		expectedStatus string
		expectedError  error
	}{
		{
			name:      "Confirm applies amount and accrues fund",
			paymentID: 55,
			actorID:   3,
			prepareMock: func() {
				m.paymentRepo.EXPECT().GetByIDForUpdate(gomock.Any(), 55).Return(&domain.Payment{
					ID: 55, InstallmentID: 101, BorrowerID: 12, Amount: decimal.NewFromInt(1500),
				}, nil)
				m.installmentRepo.EXPECT().GetByIDForUpdate(gomock.Any(), 101).Return(pendingInstallment(), nil)
				m.loanRepo.EXPECT().GetByID(gomock.Any(), 7).Return(activeLoan(), nil)
				m.installmentRepo.EXPECT().SetPaid(gomock.Any(), 101, decimalEq(1500), domain.PartialInstallmentStatus).
					Return(&domain.Installment{ID: 101, LoanID: 7, PaidAmount: decimal.NewFromInt(1500), Status: domain.PartialInstallmentStatus}, nil)
				m.paymentRepo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, p *domain.Payment) (*domain.Payment, error) {
						assert.True(t, p.Confirmed)
						assert.NotNil(t, p.ConfirmedBy)
						assert.Equal(t, 3, *p.ConfirmedBy)
						return p, nil
					})
				m.fund.EXPECT().Accrue(gomock.Any(), gomock.Any(), decimalEq(1500)).Return(nil)
				m.installmentRepo.EXPECT().PaidSummary(gomock.Any(), 7).Return(decimal.NewFromInt(1500), 29, nil)
				m.outbox.EXPECT().Enqueue(gomock.Any(), gomock.Any()).Return(nil)
			},
			expectedStatus: domain.PartialInstallmentStatus,
		},
		{
			name:      "Confirm of the last installment settles the loan",
			paymentID: 56,
			actorID:   3,
			prepareMock: func() {
				m.paymentRepo.EXPECT().GetByIDForUpdate(gomock.Any(), 56).Return(&domain.Payment{
					ID: 56, InstallmentID: 101, BorrowerID: 12, Amount: decimal.NewFromInt(4000),
				}, nil)
				m.installmentRepo.EXPECT().GetByIDForUpdate(gomock.Any(), 101).Return(pendingInstallment(), nil)
				m.loanRepo.EXPECT().GetByID(gomock.Any(), 7).Return(activeLoan(), nil)
				m.installmentRepo.EXPECT().SetPaid(gomock.Any(), 101, decimalEq(4000), domain.PaidInstallmentStatus).
					Return(&domain.Installment{ID: 101, LoanID: 7, PaidAmount: decimal.NewFromInt(4000), Status: domain.PaidInstallmentStatus}, nil)
				m.paymentRepo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, p *domain.Payment) (*domain.Payment, error) { return p, nil })
				m.fund.EXPECT().Accrue(gomock.Any(), gomock.Any(), decimalEq(4000)).Return(nil)
				m.installmentRepo.EXPECT().PaidSummary(gomock.Any(), 7).Return(decimal.NewFromInt(120000), 0, nil)
				m.loanRepo.EXPECT().Settle(gomock.Any(), 7).Return(nil)
				m.outbox.EXPECT().Enqueue(gomock.Any(), gomock.Any()).Return(nil)
			},
			expectedStatus: domain.PaidInstallmentStatus,
		},
		{
			name:      "Payment not found",
			paymentID: 999,
			actorID:   3,
			prepareMock: func() {
				m.paymentRepo.EXPECT().GetByIDForUpdate(gomock.Any(), 999).Return(nil, nil)
			},
			expectedError: ErrPaymentNotFound,
		},
		{
			name:      "Second confirmation is rejected",
			paymentID: 55,
			actorID:   3,
			prepareMock: func() {
				m.paymentRepo.EXPECT().GetByIDForUpdate(gomock.Any(), 55).Return(&domain.Payment{
					ID: 55, InstallmentID: 101, Amount: decimal.NewFromInt(1500), Confirmed: true,
				}, nil)
			},
			expectedError: ErrAlreadyConfirmed,
		},
		{
			name:      "Stale payment on a renewed loan is rejected",
			paymentID: 58,
			actorID:   3,
			prepareMock: func() {
				m.paymentRepo.EXPECT().GetByIDForUpdate(gomock.Any(), 58).Return(&domain.Payment{
					ID: 58, InstallmentID: 101, BorrowerID: 12, Amount: decimal.NewFromInt(4000),
				}, nil)
				forcedPaid := &domain.Installment{
					ID: 101, LoanID: 7,
					ExpectedAmount: decimal.NewFromInt(4000),
					PaidAmount:     decimal.NewFromInt(4000),
					Status:         domain.PaidInstallmentStatus,
				}
				m.installmentRepo.EXPECT().GetByIDForUpdate(gomock.Any(), 101).Return(forcedPaid, nil)
				loan := activeLoan()
				loan.Status = domain.SettledLoanStatus
				m.loanRepo.EXPECT().GetByID(gomock.Any(), 7).Return(loan, nil)
			},
			expectedError: ErrLoanSettled,
		},
		{
			name:      "Accrual failure rolls back the confirmation",
			paymentID: 55,
			actorID:   3,
			prepareMock: func() {
				m.paymentRepo.EXPECT().GetByIDForUpdate(gomock.Any(), 55).Return(&domain.Payment{
					ID: 55, InstallmentID: 101, BorrowerID: 12, Amount: decimal.NewFromInt(1500),
				}, nil)
				m.installmentRepo.EXPECT().GetByIDForUpdate(gomock.Any(), 101).Return(pendingInstallment(), nil)
				m.loanRepo.EXPECT().GetByID(gomock.Any(), 7).Return(activeLoan(), nil)
				m.installmentRepo.EXPECT().SetPaid(gomock.Any(), 101, decimalEq(1500), domain.PartialInstallmentStatus).
					Return(&domain.Installment{ID: 101, LoanID: 7}, nil)
				m.paymentRepo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, p *domain.Payment) (*domain.Payment, error) { return p, nil })
				m.fund.EXPECT().Accrue(gomock.Any(), gomock.Any(), decimalEq(1500)).Return(errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			payment, installment, err := service.Confirm(context.Background(), tt.paymentID, tt.actorID)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.True(t, payment.Confirmed)
				assert.Equal(t, tt.expectedStatus, installment.Status)
			}
		})
	}
}

func TestSubmitAndConfirm(t *testing.T) {
	service, m := NewMock(t)

	t.Run("Submit and confirm in one transaction", func(t *testing.T) {
		m.installmentRepo.EXPECT().GetByIDForUpdate(gomock.Any(), 101).Return(pendingInstallment(), nil).Times(2)
		m.loanRepo.EXPECT().GetByID(gomock.Any(), 7).Return(activeLoan(), nil).Times(2)
		m.paymentRepo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p *domain.Payment) (*domain.Payment, error) {
				p.ID = 57
				return p, nil
			})
		m.installmentRepo.EXPECT().SetPaid(gomock.Any(), 101, decimalEq(4000), domain.PaidInstallmentStatus).
			Return(&domain.Installment{ID: 101, LoanID: 7, PaidAmount: decimal.NewFromInt(4000), Status: domain.PaidInstallmentStatus}, nil)
		m.paymentRepo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p *domain.Payment) (*domain.Payment, error) { return p, nil })
		m.fund.EXPECT().Accrue(gomock.Any(), gomock.Any(), decimalEq(4000)).Return(nil)
		m.installmentRepo.EXPECT().PaidSummary(gomock.Any(), 7).Return(decimal.NewFromInt(4000), 29, nil)
		m.outbox.EXPECT().Enqueue(gomock.Any(), gomock.Any()).Return(nil)

		payment, installment, err := service.SubmitAndConfirm(context.Background(), 101, 12, decimal.NewFromInt(4000), "receipts/a.jpg", "", 3)
		assert.NoError(t, err)
		assert.True(t, payment.Confirmed)
		assert.Equal(t, domain.PaidInstallmentStatus, installment.Status)
	})

	t.Run("Non-positive amount rejected", func(t *testing.T) {
		_, _, err := service.SubmitAndConfirm(context.Background(), 101, 12, decimal.NewFromInt(-100), "", "", 3)
		assert.ErrorIs(t, err, ErrInvalidAmount)
	})
}

func TestEdit(t *testing.T) {
	service, m := NewMock(t)
	newAmount := decimal.NewFromInt(3500)
	newComment := "monto corregido"

	tests := []struct {
		name          string
		paymentID     int
		amount        *decimal.Decimal
		comment       *string
		prepareMock   func()
		expectedError error
	}{
		{
			name:      "Editing a confirmed amount moves the ledger by the delta",
			paymentID: 55,
			amount:    &newAmount,
			prepareMock: func() {
				m.paymentRepo.EXPECT().GetByIDForUpdate(gomock.Any(), 55).Return(&domain.Payment{
					ID: 55, InstallmentID: 101, Amount: decimal.NewFromInt(4000), Confirmed: true,
				}, nil)
				paid := &domain.Installment{ID: 101, LoanID: 7, ExpectedAmount: decimal.NewFromInt(4000), PaidAmount: decimal.NewFromInt(4000)}
				m.installmentRepo.EXPECT().GetByIDForUpdate(gomock.Any(), 101).Return(paid, nil)
				m.loanRepo.EXPECT().GetByID(gomock.Any(), 7).Return(activeLoan(), nil)
				m.installmentRepo.EXPECT().SetPaid(gomock.Any(), 101, decimalEq(3500), domain.PartialInstallmentStatus).
					Return(&domain.Installment{ID: 101}, nil)
				m.fund.EXPECT().Accrue(gomock.Any(), gomock.Any(), decimalEq(-500)).Return(nil)
				m.paymentRepo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, p *domain.Payment) (*domain.Payment, error) {
						assert.True(t, p.Amount.Equal(decimal.NewFromInt(3500)))
						return p, nil
					})
			},
		},
		{
			name:      "Editing an unconfirmed payment touches nothing but the row",
			paymentID: 55,
			amount:    &newAmount,
			comment:   &newComment,
			prepareMock: func() {
				m.paymentRepo.EXPECT().GetByIDForUpdate(gomock.Any(), 55).Return(&domain.Payment{
					ID: 55, InstallmentID: 101, Amount: decimal.NewFromInt(4000),
				}, nil)
				m.paymentRepo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, p *domain.Payment) (*domain.Payment, error) {
						assert.Equal(t, "monto corregido", p.Comment)
						return p, nil
					})
			},
		},
		{
			name:      "Comment-only edit of a confirmed payment skips the ledger",
			paymentID: 55,
			comment:   &newComment,
			prepareMock: func() {
				m.paymentRepo.EXPECT().GetByIDForUpdate(gomock.Any(), 55).Return(&domain.Payment{
					ID: 55, InstallmentID: 101, Amount: decimal.NewFromInt(4000), Confirmed: true,
				}, nil)
				m.paymentRepo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, p *domain.Payment) (*domain.Payment, error) { return p, nil })
			},
		},
		{
			name:      "Confirmed amount on a settled loan cannot be edited",
			paymentID: 55,
			amount:    &newAmount,
			prepareMock: func() {
				m.paymentRepo.EXPECT().GetByIDForUpdate(gomock.Any(), 55).Return(&domain.Payment{
					ID: 55, InstallmentID: 101, Amount: decimal.NewFromInt(4000), Confirmed: true,
				}, nil)
				paid := &domain.Installment{ID: 101, LoanID: 7, ExpectedAmount: decimal.NewFromInt(4000), PaidAmount: decimal.NewFromInt(4000)}
				m.installmentRepo.EXPECT().GetByIDForUpdate(gomock.Any(), 101).Return(paid, nil)
				loan := activeLoan()
				loan.Status = domain.SettledLoanStatus
				m.loanRepo.EXPECT().GetByID(gomock.Any(), 7).Return(loan, nil)
			},
			expectedError: ErrLoanSettled,
		},
		{
			name:          "Non-positive amount rejected",
			paymentID:     55,
			amount:        func() *decimal.Decimal { d := decimal.Zero; return &d }(),
			expectedError: ErrInvalidAmount,
		},
		{
			name:      "Payment not found",
			paymentID: 999,
			amount:    &newAmount,
			prepareMock: func() {
				m.paymentRepo.EXPECT().GetByIDForUpdate(gomock.Any(), 999).Return(nil, nil)
			},
			expectedError: ErrPaymentNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			_, err := service.Edit(context.Background(), tt.paymentID, tt.amount, nil, tt.comment)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDelete(t *testing.T) {
	service, m := NewMock(t)
	tests := []struct {
		name          string
		paymentID     int
		prepareMock   func()
		expectedError error
	}{
		{
			name:      "Deleting a confirmed payment reverses its effect",
			paymentID: 55,
			prepareMock: func() {
				m.paymentRepo.EXPECT().GetByIDForUpdate(gomock.Any(), 55).Return(&domain.Payment{
					ID: 55, InstallmentID: 101, Amount: decimal.NewFromInt(4000), Confirmed: true,
				}, nil)
				paid := &domain.Installment{ID: 101, LoanID: 7, ExpectedAmount: decimal.NewFromInt(4000), PaidAmount: decimal.NewFromInt(4000)}
				m.installmentRepo.EXPECT().GetByIDForUpdate(gomock.Any(), 101).Return(paid, nil)
				m.loanRepo.EXPECT().GetByID(gomock.Any(), 7).Return(activeLoan(), nil)
				m.installmentRepo.EXPECT().SetPaid(gomock.Any(), 101, decimalEq(0), domain.PendingInstallmentStatus).
					Return(&domain.Installment{ID: 101}, nil)
				m.fund.EXPECT().Accrue(gomock.Any(), gomock.Any(), decimalEq(-4000)).Return(nil)
				m.paymentRepo.EXPECT().Delete(gomock.Any(), 55).Return(nil)
			},
		},
		{
			name:      "Reversal floors the paid amount at zero",
			paymentID: 55,
			prepareMock: func() {
				m.paymentRepo.EXPECT().GetByIDForUpdate(gomock.Any(), 55).Return(&domain.Payment{
					ID: 55, InstallmentID: 101, Amount: decimal.NewFromInt(4000), Confirmed: true,
				}, nil)
				partiallyPaid := &domain.Installment{ID: 101, LoanID: 7, ExpectedAmount: decimal.NewFromInt(4000), PaidAmount: decimal.NewFromInt(3000)}
				m.installmentRepo.EXPECT().GetByIDForUpdate(gomock.Any(), 101).Return(partiallyPaid, nil)
				m.loanRepo.EXPECT().GetByID(gomock.Any(), 7).Return(activeLoan(), nil)
				m.installmentRepo.EXPECT().SetPaid(gomock.Any(), 101, decimalEq(0), domain.PendingInstallmentStatus).
					Return(&domain.Installment{ID: 101}, nil)
				m.fund.EXPECT().Accrue(gomock.Any(), gomock.Any(), decimalEq(-4000)).Return(nil)
				m.paymentRepo.EXPECT().Delete(gomock.Any(), 55).Return(nil)
			},
		},
		{
			name:      "Confirmed payment on a settled loan cannot be deleted",
			paymentID: 55,
			prepareMock: func() {
				m.paymentRepo.EXPECT().GetByIDForUpdate(gomock.Any(), 55).Return(&domain.Payment{
					ID: 55, InstallmentID: 101, Amount: decimal.NewFromInt(4000), Confirmed: true,
				}, nil)
				paid := &domain.Installment{ID: 101, LoanID: 7, ExpectedAmount: decimal.NewFromInt(4000), PaidAmount: decimal.NewFromInt(4000)}
				m.installmentRepo.EXPECT().GetByIDForUpdate(gomock.Any(), 101).Return(paid, nil)
				loan := activeLoan()
				loan.Status = domain.SettledLoanStatus
				m.loanRepo.EXPECT().GetByID(gomock.Any(), 7).Return(loan, nil)
			},
			expectedError: ErrLoanSettled,
		},
		{
			name:      "Deleting an unconfirmed payment skips the reversal",
			paymentID: 55,
			prepareMock: func() {
				m.paymentRepo.EXPECT().GetByIDForUpdate(gomock.Any(), 55).Return(&domain.Payment{
					ID: 55, InstallmentID: 101, Amount: decimal.NewFromInt(4000),
				}, nil)
				m.paymentRepo.EXPECT().Delete(gomock.Any(), 55).Return(nil)
			},
		},
		{
			name:      "Payment not found",
			paymentID: 999,
			prepareMock: func() {
				m.paymentRepo.EXPECT().GetByIDForUpdate(gomock.Any(), 999).Return(nil, nil)
			},
			expectedError: ErrPaymentNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			err := service.Delete(context.Background(), tt.paymentID)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGetPayments(t *testing.T) {
	service, m := NewMock(t)
	tests := []struct {
		name          string
		installmentID int
		prepareMock   func()
		expectedCount int
		expectedError error
	}{
		{
			name:          "Payments listed",
			installmentID: 101,
			prepareMock: func() {
				m.installmentRepo.EXPECT().GetByID(gomock.Any(), 101).Return(pendingInstallment(), nil)
				m.paymentRepo.EXPECT().FindByInstallmentID(gomock.Any(), 101).Return([]domain.Payment{
					{ID: 55}, {ID: 56},
				}, nil)
			},
			expectedCount: 2,
		},
		{
			name:          "Installment not found",
			installmentID: 999,
			prepareMock: func() {
				m.installmentRepo.EXPECT().GetByID(gomock.Any(), 999).Return(nil, nil)
			},
			expectedError: ErrInstallmentNotFound,
		},
		{
			name:          "Error fetching payments",
			installmentID: 101,
			prepareMock: func() {
				m.installmentRepo.EXPECT().GetByID(gomock.Any(), 101).Return(pendingInstallment(), nil)
				m.paymentRepo.EXPECT().FindByInstallmentID(gomock.Any(), 101).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			payments, err := service.GetPayments(context.Background(), tt.installmentID)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Len(t, payments, tt.expectedCount)
			}
		})
	}
}
