package metrics

import (
	"github.com/shopspring/decimal"

	"dhanam/internal/models"
)

// ProgressUnbounded is the progress value reported when a budget entry
// has a zero limit but spending exists. A percentage of a zero limit is
// undefined; this sentinel stands in for "infinitely over budget" while
// staying representable in JSON.
const ProgressUnbounded float64 = -1

// BudgetStatus is one reconciled budget entry: the declared limit, the
// actual spend in the entry's category, and the spend as a percentage
// of the limit rounded to two decimals.
type BudgetStatus struct {
	Category models.ExpenseCategory `json:"category"`
	Limit    float64                `json:"limit"`
	Actual   float64                `json:"actual"`
	Progress float64                `json:"progress"`
}

// ReconcileBudgets matches the budget entries declared for the given
// month against the supplied expense records.
//
// Actual spend is the per-category total over the whole supplied
// expense set; expenses are not themselves month-filtered. Callers
// control the spend scope through the set they pass in. Duplicate
// entries for the same (category, month) are reconciled independently
// and each produces an output row.
func ReconcileBudgets(entries []models.BudgetEntry, expenses []models.Expense, month string) []BudgetStatus {
	totals := make(map[models.ExpenseCategory]decimal.Decimal, len(models.ExpenseCategories))
	for i := range expenses {
		totals[expenses[i].Category] = totals[expenses[i].Category].Add(decimal.NewFromFloat(expenses[i].Amount))
	}

	statuses := make([]BudgetStatus, 0, len(entries))
	for i := range entries {
		if entries[i].Month != month {
			continue
		}
		actual := totals[entries[i].Category]
		statuses = append(statuses, BudgetStatus{
			Category: entries[i].Category,
			Limit:    entries[i].Limit,
			Actual:   actual.InexactFloat64(),
			Progress: progress(actual, entries[i].Limit),
		})
	}
	return statuses
}

// progress returns actual/limit*100 rounded to two decimals. A zero
// limit yields 0 for zero spend and ProgressUnbounded otherwise, never
// a numeric error.
func progress(actual decimal.Decimal, limit float64) float64 {
	if limit == 0 {
		if actual.IsZero() {
			return 0
		}
		return ProgressUnbounded
	}
	return actual.
		Div(decimal.NewFromFloat(limit)).
		Mul(decimal.NewFromInt(100)).
		Round(2).
		InexactFloat64()
}
