package validate

import (
	"time"

	"github.com/shopspring/decimal"
)

// IsPositiveAmount reports whether s parses as a strictly positive decimal
// amount with at most two fractional digits.
func IsPositiveAmount(s string) bool {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return false
	}
	return d.IsPositive() && d.Exponent() >= -2
}

func IsDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}
