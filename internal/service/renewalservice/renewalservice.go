package renewalservice

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
	GetByIDForUpdate(ctx context.Context, loanID int) (*domain.Loan, error)
	FindActiveByBorrowerID(ctx context.Context, borrowerID int) ([]domain.Loan, error)
	Settle(ctx context.Context, loanID int) error
}

type InstallmentRepo interface {
	SaveAll(ctx context.Context, loanID int, installments []domain.Installment) error
	PaidSummary(ctx context.Context, loanID int) (decimal.Decimal, int, error)
	ForceAllPaid(ctx context.Context, loanID int) error
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
	ErrInvalidRenewalInput       = errors.New("invalid renewal input")
	ErrInsufficientRenewalAmount = errors.New("new principal does not cover pending debt")
	ErrLoanNotFound              = errors.New("loan not found")
	ErrNotBorrowersLoan          = errors.New("loan belongs to another borrower")
	ErrLoanNotActive             = errors.New("loan is not active")
)

// A loan qualifies for consolidation once 90% of its principal came back or
// at most one installment is still unpaid.
var eligibilityThreshold = decimal.NewFromFloat(0.90)

var hundred = decimal.NewFromInt(100)

type EligibleLoan struct {
	Loan                  domain.Loan
	TotalPaid             decimal.Decimal
	PercentPaid           decimal.Decimal
	RemainingInstallments int
	PendingDebt           decimal.Decimal
}

type EligibilityReport struct {
	Eligible         bool
	EligibleLoans    []EligibleLoan
	TotalPendingDebt decimal.Decimal
}

type RenewalResult struct {
	Loan           *domain.Loan
	Installments   []domain.Installment
	CashDisbursed  decimal.Decimal
	DebtRolledOver decimal.Decimal
}

// CheckEligibility inspects each active loan of the borrower and reports the
// ones that qualify for consolidation together with their pending debt.
func (s *Service) CheckEligibility(ctx context.Context, borrowerID int) (*EligibilityReport, error) {
	loans, err := s.loanRepo.FindActiveByBorrowerID(ctx, borrowerID)
	if err != nil {
		zap.L().Error("can't get active loans", zap.Error(err))
		return nil, err
	}

	report := &EligibilityReport{TotalPendingDebt: decimal.Zero}
	for _, loan := range loans {
		totalPaid, unpaid, err := s.installmentRepo.PaidSummary(ctx, loan.ID)
		if err != nil {
			return nil, err
		}
		percentPaid := totalPaid.Div(loan.Principal)
		if percentPaid.LessThan(eligibilityThreshold) && unpaid > 1 {
			continue
		}
		pending := loan.TotalToReturn.Sub(totalPaid)
		report.EligibleLoans = append(report.EligibleLoans, EligibleLoan{
			Loan:                  loan,
			TotalPaid:             totalPaid,
			PercentPaid:           percentPaid,
			RemainingInstallments: unpaid,
			PendingDebt:           pending,
		})
		report.TotalPendingDebt = report.TotalPendingDebt.Add(pending)
	}
	report.Eligible = len(report.EligibleLoans) > 0
	return report, nil
}

// CreateRenewal retires the named loans into a single new one, all or
// nothing: the new loan and schedule are created, every old loan is settled
// with its unpaid installments force-closed at their expected amount, and the
// borrower receives the surplus over the rolled-over debt in cash. Forced
// closure is bookkeeping, not collection, so it never touches the fund.
func (s *Service) CreateRenewal(ctx context.Context, borrowerID int, newPrincipal, newInterestPercent decimal.Decimal, newTermDays int, collectsFrom time.Time, loanIDs []int) (*RenewalResult, error) {
	if !newPrincipal.IsPositive() || newInterestPercent.IsNegative() || newTermDays <= 0 || collectsFrom.IsZero() || len(loanIDs) == 0 {
		return nil, ErrInvalidRenewalInput
	}

	var result *RenewalResult
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		pendingDebt := decimal.Zero
		for _, loanID := range loanIDs {
			loan, err := s.loanRepo.GetByIDForUpdate(ctx, loanID)
			if err != nil {
				return err
			}
			if loan == nil {
				return ErrLoanNotFound
			}
			if loan.BorrowerID != borrowerID {
				return ErrNotBorrowersLoan
			}
			if loan.Status != domain.ActiveLoanStatus {
				return ErrLoanNotActive
			}

			totalPaid, _, err := s.installmentRepo.PaidSummary(ctx, loanID)
			if err != nil {
				return err
			}
			pendingDebt = pendingDebt.Add(loan.TotalToReturn.Sub(totalPaid))
		}

		if !newPrincipal.GreaterThan(pendingDebt) {
			return ErrInsufficientRenewalAmount
		}

		total := newPrincipal.Mul(decimal.NewFromInt(1).Add(newInterestPercent.Div(hundred))).RoundBank(2)
		dailyAmount := total.Div(decimal.NewFromInt(int64(newTermDays))).RoundBank(2)

		installments, err := schedule.Generate(newPrincipal, dailyAmount, newTermDays, collectsFrom)
		if err != nil {
			return err
		}

		newLoan, err := s.loanRepo.Save(ctx, &domain.Loan{
			BorrowerID:      borrowerID,
			Principal:       newPrincipal,
			InterestPercent: newInterestPercent,
			TotalToReturn:   total,
			TermDays:        newTermDays,
			DailyAmount:     dailyAmount,
			GrantedAt:       time.Now(),
			CollectsFrom:    collectsFrom,
			Status:          domain.ActiveLoanStatus,
		})
		if err != nil {
			return err
		}
		if err := s.installmentRepo.SaveAll(ctx, newLoan.ID, installments); err != nil {
			return err
		}

		for _, loanID := range loanIDs {
			if err := s.installmentRepo.ForceAllPaid(ctx, loanID); err != nil {
				return err
			}
			if err := s.loanRepo.Settle(ctx, loanID); err != nil {
				return err
			}
		}

		cashDisbursed := newPrincipal.Sub(pendingDebt)
		if err := s.outbox.Enqueue(ctx, notify.NewLoanRenewed(borrowerID, newLoan, pendingDebt, cashDisbursed)); err != nil {
			return err
		}

		result = &RenewalResult{
			Loan:           newLoan,
			Installments:   installments,
			CashDisbursed:  cashDisbursed,
			DebtRolledOver: pendingDebt,
		}
		return nil
	})
	if err != nil {
		zap.L().Error("can't create renewal", zap.Error(err))
		return nil, err
	}

	zap.L().Info("renewal created",
		zap.Int("loanID", result.Loan.ID),
		zap.Int("borrowerID", borrowerID),
		zap.String("debtRolledOver", result.DebtRolledOver.String()),
		zap.String("cashDisbursed", result.CashDisbursed.String()),
	)
	return result, nil
}
