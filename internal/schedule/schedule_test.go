package schedule

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/nvera/credicuotas/internal/domain"
)

func TestGenerate(t *testing.T) {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	principal := decimal.NewFromInt(100000)
	daily := decimal.NewFromInt(4000)

	installments, err := Generate(principal, daily, 30, start)
	assert.NoError(t, err)
	assert.Len(t, installments, 30)

	for i, inst := range installments {
		assert.Equal(t, start.AddDate(0, 0, i), inst.DueDate)
		assert.True(t, inst.ExpectedAmount.Equal(daily))
		assert.True(t, inst.PaidAmount.IsZero())
		assert.Equal(t, domain.PendingInstallmentStatus, inst.Status)
	}
}

func TestGenerateInvalidParameters(t *testing.T) {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		principal decimal.Decimal
		daily     decimal.Decimal
		termDays  int
	}{
		{"Zero term", decimal.NewFromInt(100000), decimal.NewFromInt(4000), 0},
		{"Negative term", decimal.NewFromInt(100000), decimal.NewFromInt(4000), -5},
		{"Zero principal", decimal.Zero, decimal.NewFromInt(4000), 30},
		{"Negative principal", decimal.NewFromInt(-100000), decimal.NewFromInt(4000), 30},
		{"Zero daily amount", decimal.NewFromInt(100000), decimal.Zero, 30},
		{"Negative daily amount", decimal.NewFromInt(100000), decimal.NewFromInt(-100), 30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			installments, err := Generate(tt.principal, tt.daily, tt.termDays, start)
			assert.ErrorIs(t, err, ErrInvalidScheduleParameters)
			assert.Nil(t, installments)
		})
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	principal := decimal.NewFromInt(50000)
	daily := decimal.NewFromFloat(3333.33)

	first, err := Generate(principal, daily, 15, start)
	assert.NoError(t, err)
	second, err := Generate(principal, daily, 15, start)
	assert.NoError(t, err)
	assert.Equal(t, first, second)
}
