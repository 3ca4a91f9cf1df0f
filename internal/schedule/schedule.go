package schedule

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nvera/credicuotas/internal/domain"
)

var ErrInvalidScheduleParameters = errors.New("invalid schedule parameters")

// Generate builds the uniform daily schedule for a loan: one installment per
// day of the term, each expecting dailyAmount, starting at startDate. No
// calendar adjustment is applied. Deterministic, no side effects.
func Generate(principal, dailyAmount decimal.Decimal, termDays int, startDate time.Time) ([]domain.Installment, error) {
	if termDays <= 0 || !principal.IsPositive() || !dailyAmount.IsPositive() {
		return nil, ErrInvalidScheduleParameters
	}

	installments := make([]domain.Installment, termDays)
	for i := 0; i < termDays; i++ {
		installments[i] = domain.Installment{
			DueDate:        startDate.AddDate(0, 0, i),
			ExpectedAmount: dailyAmount,
			PaidAmount:     decimal.Zero,
			Status:         domain.PendingInstallmentStatus,
		}
	}
	return installments, nil
}
