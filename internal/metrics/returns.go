// Package metrics implements the financial metrics engine: the
// investment return calculator, the budget reconciler, and the
// calendar-month helpers they share. Everything here is a pure
// computation over already-loaded records; persistence and transport
// live elsewhere.
package metrics

import (
	"fmt"

	"github.com/shopspring/decimal"

	apperrors "dhanam/internal/errors"
)

// TotalReturn computes the projected return of an investment:
//
//	amount * (1 + ratePercent/100)^tenureMonths - amount
//
// rounded to two decimals. The rate compounds once per tenure month and
// is deliberately not annualized, matching the instrument model. A zero
// tenure yields a zero return. Inputs are rejected with a computation
// error when the principal is negative, the rate falls outside [0,100],
// or the tenure is negative.
func TotalReturn(amount, ratePercent float64, tenureMonths int) (float64, error) {
	if amount < 0 {
		return 0, apperrors.WithMessage(apperrors.ErrComputation,
			fmt.Sprintf("principal must be non-negative, got %v", amount))
	}
	if ratePercent < 0 || ratePercent > 100 {
		return 0, apperrors.WithMessage(apperrors.ErrComputation,
			fmt.Sprintf("interest rate must be within [0,100], got %v", ratePercent))
	}
	if tenureMonths < 0 {
		return 0, apperrors.WithMessage(apperrors.ErrComputation,
			fmt.Sprintf("tenure must be non-negative, got %v", tenureMonths))
	}
	if tenureMonths == 0 {
		return 0, nil
	}

	principal := decimal.NewFromFloat(amount)
	growth := decimal.NewFromInt(1).
		Add(decimal.NewFromFloat(ratePercent).Div(decimal.NewFromInt(100))).
		Pow(decimal.NewFromInt(int64(tenureMonths)))

	return principal.Mul(growth).Sub(principal).Round(2).InexactFloat64(), nil
}

// ProjectedReturn computes TotalReturn for an investment record where
// the tenure may be absent. Open-ended instruments (no tenure) project
// a zero return.
func ProjectedReturn(amount, ratePercent float64, tenureMonths *int) (float64, error) {
	if tenureMonths == nil {
		return 0, nil
	}
	return TotalReturn(amount, ratePercent, *tenureMonths)
}
