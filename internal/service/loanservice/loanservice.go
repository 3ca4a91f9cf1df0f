package loanservice

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/nvera/credicuotas/internal/domain"
	"github.com/nvera/credicuotas/internal/notify"
	"github.com/nvera/credicuotas/internal/pg"
	"github.com/nvera/credicuotas/internal/schedule"
)

type LoanRepo interface {
	Save(ctx context.Context, loan *domain.Loan) (*domain.Loan, error)
	GetByID(ctx context.Context, loanID int) (*domain.Loan, error)
	FindByBorrowerID(ctx context.Context, borrowerID int) ([]domain.Loan, error)
}

type InstallmentRepo interface {
	SaveAll(ctx context.Context, loanID int, installments []domain.Installment) error
	FindByLoanID(ctx context.Context, loanID int) ([]domain.Installment, error)
}

type Outbox interface {
	Enqueue(ctx context.Context, notification *domain.Notification) error
}

type Service struct {
	loanRepo        LoanRepo
	installmentRepo InstallmentRepo
	outbox          Outbox
	txManager       pg.TXManager
}

func New(loanRepo LoanRepo, installmentRepo InstallmentRepo, outbox Outbox, txManager pg.TXManager) *Service {
	return &Service{
		loanRepo:        loanRepo,
		installmentRepo: installmentRepo,
		outbox:          outbox,
		txManager:       txManager,
	}
}

var (
	ErrInvalidLoanInput = errors.New("invalid loan input")
	ErrLoanNotFound     = errors.New("loan not found")
)

var hundred = decimal.NewFromInt(100)

// Originate disburses a loan and creates its full installment schedule in one
// transaction. total_a_devolver = monto_diario * plazo_dias is authoritative;
// the interest percent is derived from it.
func (s *Service) Originate(ctx context.Context, borrowerID int, principal, dailyAmount decimal.Decimal, termDays int, grantedAt, collectsFrom time.Time) (*domain.Loan, []domain.Installment, error) {
	if !principal.IsPositive() || !dailyAmount.IsPositive() || termDays <= 0 || grantedAt.IsZero() || collectsFrom.IsZero() {
		return nil, nil, ErrInvalidLoanInput
	}

	total := dailyAmount.Mul(decimal.NewFromInt(int64(termDays)))
	interestPercent := total.Sub(principal).Div(principal).Mul(hundred).RoundBank(2)

	installments, err := schedule.Generate(principal, dailyAmount, termDays, collectsFrom)
	if err != nil {
		return nil, nil, err
	}

	var loan *domain.Loan
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		loan, err = s.loanRepo.Save(ctx, &domain.Loan{
			BorrowerID:      borrowerID,
			Principal:       principal,
			InterestPercent: interestPercent,
			TotalToReturn:   total,
			TermDays:        termDays,
			DailyAmount:     dailyAmount,
			GrantedAt:       grantedAt,
			CollectsFrom:    collectsFrom,
			Status:          domain.ActiveLoanStatus,
		})
		if err != nil {
			return err
		}
		if err := s.installmentRepo.SaveAll(ctx, loan.ID, installments); err != nil {
			return err
		}
		return s.outbox.Enqueue(ctx, notify.NewLoanOriginated(loan))
	})
	if err != nil {
		zap.L().Error("can't originate loan", zap.Error(err))
		return nil, nil, err
	}

	zap.L().Info("loan originated",
		zap.Int("loanID", loan.ID),
		zap.Int("borrowerID", borrowerID),
		zap.String("principal", principal.String()),
		zap.String("total", total.String()),
	)
	return loan, installments, nil
}

func (s *Service) GetLoans(ctx context.Context, borrowerID int) ([]domain.Loan, error) {
	loans, err := s.loanRepo.FindByBorrowerID(ctx, borrowerID)
	if err != nil {
		zap.L().Error("can't get loans", zap.Error(err))
		return nil, err
	}
	return loans, nil
}

func (s *Service) GetLoan(ctx context.Context, loanID int) (*domain.Loan, []domain.Installment, error) {
	loan, err := s.loanRepo.GetByID(ctx, loanID)
	if err != nil {
		return nil, nil, err
	}
	if loan == nil {
		return nil, nil, ErrLoanNotFound
	}
	installments, err := s.installmentRepo.FindByLoanID(ctx, loanID)
	if err != nil {
		return nil, nil, err
	}
	return loan, installments, nil
}
