package fundservice

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/nvera/credicuotas/internal/domain"
)

type UserRepo interface {
	GetByID(ctx context.Context, userID int) (*domain.User, error)
	AdjustFundBalance(ctx context.Context, userID int, delta decimal.Decimal) (*domain.User, error)
}

type Service struct {
	userRepo UserRepo
}

func New(userRepo UserRepo) *Service {
	return &Service{
		userRepo: userRepo,
	}
}

var (
	ErrInvalidLoanEconomics = errors.New("loan total to return is zero")
	ErrUserNotFound         = errors.New("user not found")
)

// InterestFraction is the share of every collected guarani that is margin
// rather than principal return: (total - principal) / total.
func InterestFraction(loan *domain.Loan) (decimal.Decimal, error) {
	if loan.TotalToReturn.IsZero() {
		return decimal.Zero, ErrInvalidLoanEconomics
	}
	return loan.TotalToReturn.Sub(loan.Principal).Div(loan.TotalToReturn), nil
}

// Accrue moves the margin share of a confirmed-amount change into the
// borrower's fund. delta is positive on confirmation or an amount increase,
// negative on a decrease or reversal, so the fund always mirrors exactly the
// margin portion of currently-confirmed collections.
func (s *Service) Accrue(ctx context.Context, loan *domain.Loan, delta decimal.Decimal) error {
	fraction, err := InterestFraction(loan)
	if err != nil {
		zap.L().Error("can't compute interest fraction", zap.Int("loanID", loan.ID), zap.Error(err))
		return err
	}
	if delta.IsZero() {
		return nil
	}

	credit := delta.Mul(fraction).RoundBank(2)
	if _, err := s.userRepo.AdjustFundBalance(ctx, loan.BorrowerID, credit); err != nil {
		zap.L().Error("can't adjust fund balance", zap.Int("borrowerID", loan.BorrowerID), zap.Error(err))
		return err
	}
	return nil
}

func (s *Service) GetFund(ctx context.Context, userID int) (decimal.Decimal, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		zap.L().Error("can't get user fund", zap.Error(err))
		return decimal.Zero, err
	}
	if user == nil {
		return decimal.Zero, ErrUserNotFound
	}
	return user.FundBalance, nil
}
