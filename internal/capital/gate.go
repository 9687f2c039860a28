package capital

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/sunduq/backend/internal/models"
	"gorm.io/gorm"
)

// Check is the outcome of a transaction gate decision.
//
// A failed check is not an error: it carries a user-facing reason citing
// the shortfall and the two recovery paths (wait for next year's
// reallocation, or request an administrative reset).
type Check struct {
	Allowed   bool            `json:"allowed" example:"false"`
	Reason    string          `json:"reason,omitempty" example:"the requested amount (250) exceeds the available balance of the flexible capital layer (200): wait for next year's reallocation or request a reset from a guardian"`
	Layer     string          `json:"layer" example:"flexible"`
	Available decimal.Decimal `json:"available" example:"200"`
	Requested decimal.Decimal `json:"requested" example:"250"`
}

// CheckLoan decides whether a loan of the given amount fits into the
// flexible layer's available balance for a year.
//
// The allocation is recomputed fresh so the decision reflects the current
// ledger, never a stale snapshot. Callers must run this before persisting
// the loan and rebalance again after a successful insert.
func CheckLoan(db *gorm.DB, amount decimal.Decimal, year uint) (Check, error) {
	result, err := Rebalance(db, year)
	if err != nil {
		return Check{}, err
	}

	return checkLayer(LayerFlexible, "flexible capital", result.Flexible.Available, amount), nil
}

// CheckExpense decides whether an expense fits into its layer's available
// balance for a year. Emergency expenses draw from the emergency reserve,
// all other categories from the flexible layer.
func CheckExpense(db *gorm.DB, amount decimal.Decimal, category models.ExpenseCategory, year uint) (Check, error) {
	result, err := Rebalance(db, year)
	if err != nil {
		return Check{}, err
	}

	if category == models.ExpenseCategoryEmergency {
		return checkLayer(LayerEmergency, "emergency reserve", result.Emergency.Available, amount), nil
	}

	return checkLayer(LayerFlexible, "flexible capital", result.Flexible.Available, amount), nil
}

func checkLayer(layer, label string, available, requested decimal.Decimal) Check {
	if requested.GreaterThan(available) {
		return Check{
			Allowed: false,
			Reason: fmt.Sprintf(
				"the requested amount (%s) exceeds the available balance of the %s layer (%s): wait for next year's reallocation or request a reset from a guardian",
				requested, label, available),
			Layer:     layer,
			Available: available,
			Requested: requested,
		}
	}

	return Check{
		Allowed:   true,
		Layer:     layer,
		Available: available,
		Requested: requested,
	}
}
