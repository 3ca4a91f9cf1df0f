package paymentservice

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/nvera/credicuotas/internal/domain"
	"github.com/nvera/credicuotas/internal/notify"
	"github.com/nvera/credicuotas/internal/pg"
)

type PaymentRepo interface {
	Save(ctx context.Context, payment *domain.Payment) (*domain.Payment, error)
	GetByIDForUpdate(ctx context.Context, paymentID int) (*domain.Payment, error)
	FindByInstallmentID(ctx context.Context, installmentID int) ([]domain.Payment, error)
	Update(ctx context.Context, payment *domain.Payment) (*domain.Payment, error)
	Delete(ctx context.Context, paymentID int) error
}

type InstallmentRepo interface {
	GetByID(ctx context.Context, installmentID int) (*domain.Installment, error)
	GetByIDForUpdate(ctx context.Context, installmentID int) (*domain.Installment, error)
	SetPaid(ctx context.Context, installmentID int, paid decimal.Decimal, status string) (*domain.Installment, error)
	PaidSummary(ctx context.Context, loanID int) (decimal.Decimal, int, error)
}

type LoanRepo interface {
	GetByID(ctx context.Context, loanID int) (*domain.Loan, error)
	Settle(ctx context.Context, loanID int) error
}

// Accruer moves the margin share of a confirmed-amount delta into the
// borrower's fund.
type Accruer interface {
	Accrue(ctx context.Context, loan *domain.Loan, delta decimal.Decimal) error
}

type Outbox interface {
	Enqueue(ctx context.Context, notification *domain.Notification) error
}

type Service struct {
	paymentRepo     PaymentRepo
	installmentRepo InstallmentRepo
	loanRepo        LoanRepo
	fund            Accruer
	outbox          Outbox
	txManager       pg.TXManager
}

func New(paymentRepo PaymentRepo, installmentRepo InstallmentRepo, loanRepo LoanRepo, fund Accruer, outbox Outbox, txManager pg.TXManager) *Service {
	return &Service{
		paymentRepo:     paymentRepo,
		installmentRepo: installmentRepo,
		loanRepo:        loanRepo,
		fund:            fund,
		outbox:          outbox,
		txManager:       txManager,
	}
}

var (
	ErrPaymentNotFound        = errors.New("payment not found")
	ErrInstallmentNotFound    = errors.New("installment not found")
	ErrLoanNotFound           = errors.New("loan not found")
	ErrAlreadyConfirmed       = errors.New("payment already confirmed")
	ErrLoanSettled            = errors.New("loan already settled")
	ErrNotInstallmentBorrower = errors.New("installment belongs to another borrower")
	ErrInvalidAmount          = errors.New("payment amount must be positive")
)

// Submit records an unconfirmed payment against an installment. The
// installment's paid amount and status do not move until confirmation.
func (s *Service) Submit(ctx context.Context, installmentID, borrowerID int, amount decimal.Decimal, receiptRef, comment string) (*domain.Payment, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	var payment *domain.Payment
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		loan, installment, err := s.getLedgerTarget(ctx, installmentID, false)
		if err != nil {
			return err
		}
		if loan.BorrowerID != borrowerID {
			return ErrNotInstallmentBorrower
		}

		payment, err = s.paymentRepo.Save(ctx, &domain.Payment{
			InstallmentID: installment.ID,
			BorrowerID:    borrowerID,
			Amount:        amount,
			ReceiptRef:    receiptRef,
			Comment:       comment,
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	zap.L().Info("payment submitted", zap.Int("paymentID", payment.ID), zap.Int("installmentID", installmentID))
	return payment, nil
}

// Confirm transitions a payment to confirmed, applies its amount to the
// installment, accrues the margin share into the borrower's fund and settles
// the loan when the final installment becomes paid. All in one transaction.
func (s *Service) Confirm(ctx context.Context, paymentID, actorID int) (*domain.Payment, *domain.Installment, error) {
	var payment *domain.Payment
	var installment *domain.Installment

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		p, err := s.paymentRepo.GetByIDForUpdate(ctx, paymentID)
		if err != nil {
			return err
		}
		if p == nil {
			return ErrPaymentNotFound
		}
		if p.Confirmed {
			return ErrAlreadyConfirmed
		}

		payment, installment, err = s.confirmLocked(ctx, p, actorID)
		return err
	})
	if err != nil {
		return nil, nil, err
	}
	return payment, installment, nil
}

// SubmitAndConfirm is the collector fast path: one atomic submit + confirm.
func (s *Service) SubmitAndConfirm(ctx context.Context, installmentID, borrowerID int, amount decimal.Decimal, receiptRef, comment string, actorID int) (*domain.Payment, *domain.Installment, error) {
	if !amount.IsPositive() {
		return nil, nil, ErrInvalidAmount
	}

	var payment *domain.Payment
	var installment *domain.Installment

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		loan, _, err := s.getLedgerTarget(ctx, installmentID, true)
		if err != nil {
			return err
		}
		if loan.BorrowerID != borrowerID {
			return ErrNotInstallmentBorrower
		}

		p, err := s.paymentRepo.Save(ctx, &domain.Payment{
			InstallmentID: installmentID,
			BorrowerID:    borrowerID,
			Amount:        amount,
			ReceiptRef:    receiptRef,
			Comment:       comment,
		})
		if err != nil {
			return err
		}

		payment, installment, err = s.confirmLocked(ctx, p, actorID)
		return err
	})
	if err != nil {
		return nil, nil, err
	}
	return payment, installment, nil
}

// confirmLocked applies a not-yet-confirmed payment whose row is already
// locked by the surrounding transaction. The loan must still be active: a
// payment submitted before a renewal cannot land on the closed ledger.
func (s *Service) confirmLocked(ctx context.Context, p *domain.Payment, actorID int) (*domain.Payment, *domain.Installment, error) {
	locked, err := s.installmentRepo.GetByIDForUpdate(ctx, p.InstallmentID)
	if err != nil {
		return nil, nil, err
	}
	if locked == nil {
		return nil, nil, ErrInstallmentNotFound
	}
	loan, err := s.loanRepo.GetByID(ctx, locked.LoanID)
	if err != nil {
		return nil, nil, err
	}
	if loan == nil {
		return nil, nil, ErrLoanNotFound
	}
	if loan.Status == domain.SettledLoanStatus {
		return nil, nil, ErrLoanSettled
	}

	newPaid := locked.PaidAmount.Add(p.Amount)
	installment, err := s.installmentRepo.SetPaid(ctx, locked.ID, newPaid, domain.InstallmentStatusFor(newPaid, locked.ExpectedAmount))
	if err != nil {
		return nil, nil, err
	}

	p.Confirmed = true
	p.ConfirmedBy = &actorID
	payment, err := s.paymentRepo.Update(ctx, p)
	if err != nil {
		return nil, nil, err
	}

	if err := s.fund.Accrue(ctx, loan, payment.Amount); err != nil {
		return nil, nil, err
	}

	if err := s.settleIfPaidOff(ctx, loan); err != nil {
		return nil, nil, err
	}

	if err := s.outbox.Enqueue(ctx, notify.NewPaymentConfirmed(loan.BorrowerID, payment, installment)); err != nil {
		return nil, nil, err
	}

	zap.L().Info("payment confirmed",
		zap.Int("paymentID", payment.ID),
		zap.Int("installmentID", installment.ID),
		zap.String("amount", payment.Amount.String()),
	)
	return payment, installment, nil
}

// Edit changes a payment's amount, receipt reference or comment. When the
// payment was already confirmed and the amount changes, the installment and
// the fund move by exactly the delta, never by recomputation from scratch.
func (s *Service) Edit(ctx context.Context, paymentID int, newAmount *decimal.Decimal, newReceiptRef, newComment *string) (*domain.Payment, error) {
	if newAmount != nil && !newAmount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	var payment *domain.Payment
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		p, err := s.paymentRepo.GetByIDForUpdate(ctx, paymentID)
		if err != nil {
			return err
		}
		if p == nil {
			return ErrPaymentNotFound
		}

		if p.Confirmed && newAmount != nil && !newAmount.Equal(p.Amount) {
			delta := newAmount.Sub(p.Amount)
			if err := s.applyDelta(ctx, p.InstallmentID, delta); err != nil {
				return err
			}
		}

		if newAmount != nil {
			p.Amount = *newAmount
		}
		if newReceiptRef != nil {
			p.ReceiptRef = *newReceiptRef
		}
		if newComment != nil {
			p.Comment = *newComment
		}

		payment, err = s.paymentRepo.Update(ctx, p)
		return err
	})
	if err != nil {
		return nil, err
	}
	return payment, nil
}

// Delete removes a payment. A confirmed payment first has its ledger effect
// reversed: the installment's paid amount drops by the payment amount
// (floored at zero) and the fund gives back the margin share.
func (s *Service) Delete(ctx context.Context, paymentID int) error {
	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		p, err := s.paymentRepo.GetByIDForUpdate(ctx, paymentID)
		if err != nil {
			return err
		}
		if p == nil {
			return ErrPaymentNotFound
		}

		if p.Confirmed {
			if err := s.applyDelta(ctx, p.InstallmentID, p.Amount.Neg()); err != nil {
				return err
			}
		}

		if err := s.paymentRepo.Delete(ctx, p.ID); err != nil {
			return err
		}
		zap.L().Info("payment deleted", zap.Int("paymentID", p.ID), zap.Bool("wasConfirmed", p.Confirmed))
		return nil
	})
}

func (s *Service) GetPayments(ctx context.Context, installmentID int) ([]domain.Payment, error) {
	installment, err := s.installmentRepo.GetByID(ctx, installmentID)
	if err != nil {
		return nil, err
	}
	if installment == nil {
		return nil, ErrInstallmentNotFound
	}
	return s.paymentRepo.FindByInstallmentID(ctx, installmentID)
}

// applyDelta shifts an installment's paid amount by delta and accrues the
// matching fund movement. Settled loans reject the move; paid_amount never
// goes below zero; the status is always recomputed after the move.
func (s *Service) applyDelta(ctx context.Context, installmentID int, delta decimal.Decimal) error {
	locked, err := s.installmentRepo.GetByIDForUpdate(ctx, installmentID)
	if err != nil {
		return err
	}
	if locked == nil {
		return ErrInstallmentNotFound
	}
	loan, err := s.loanRepo.GetByID(ctx, locked.LoanID)
	if err != nil {
		return err
	}
	if loan == nil {
		return ErrLoanNotFound
	}
	if loan.Status == domain.SettledLoanStatus {
		return ErrLoanSettled
	}

	newPaid := locked.PaidAmount.Add(delta)
	if newPaid.IsNegative() {
		newPaid = decimal.Zero
	}
	if _, err := s.installmentRepo.SetPaid(ctx, locked.ID, newPaid, domain.InstallmentStatusFor(newPaid, locked.ExpectedAmount)); err != nil {
		return err
	}

	return s.fund.Accrue(ctx, loan, delta)
}

func (s *Service) settleIfPaidOff(ctx context.Context, loan *domain.Loan) error {
	if loan.Status != domain.ActiveLoanStatus {
		return nil
	}
	_, unpaid, err := s.installmentRepo.PaidSummary(ctx, loan.ID)
	if err != nil {
		return err
	}
	if unpaid > 0 {
		return nil
	}
	zap.L().Info("loan fully paid off, settling", zap.Int("loanID", loan.ID))
	return s.loanRepo.Settle(ctx, loan.ID)
}

// getLedgerTarget resolves an installment and its loan, rejecting settled
// loans. forUpdate locks the installment row for a mutation path.
func (s *Service) getLedgerTarget(ctx context.Context, installmentID int, forUpdate bool) (*domain.Loan, *domain.Installment, error) {
	var installment *domain.Installment
	var err error
	if forUpdate {
		installment, err = s.installmentRepo.GetByIDForUpdate(ctx, installmentID)
	} else {
		installment, err = s.installmentRepo.GetByID(ctx, installmentID)
	}
	if err != nil {
		return nil, nil, err
	}
	if installment == nil {
		return nil, nil, ErrInstallmentNotFound
	}

	loan, err := s.loanRepo.GetByID(ctx, installment.LoanID)
	if err != nil {
		return nil, nil, err
	}
	if loan == nil {
		return nil, nil, ErrLoanNotFound
	}
	if loan.Status == domain.SettledLoanStatus {
		return nil, nil, ErrLoanSettled
	}
	return loan, installment, nil
}
