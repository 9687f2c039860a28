package capital

import (
	"github.com/shopspring/decimal"
	"github.com/sunduq/backend/internal/models"
	"gorm.io/gorm"
)

// Usage is the consumed capacity per layer for a year.
type Usage struct {
	Flexible  decimal.Decimal
	Emergency decimal.Decimal
	Growth    decimal.Decimal
}

// usedAmounts derives how much of each layer has been consumed in a year.
//
// The flexible layer carries all approved loans plus every expense outside
// the emergency category. The emergency layer carries emergency expenses.
// The growth layer has no consumption path, its usage is always zero.
func usedAmounts(db *gorm.DB, year uint) (Usage, error) {
	used := Usage{
		Flexible:  decimal.Zero,
		Emergency: decimal.Zero,
		Growth:    decimal.Zero,
	}

	loans, err := approvedLoans(db, year)
	if err != nil {
		return Usage{}, err
	}

	for _, loan := range loans {
		used.Flexible = used.Flexible.Add(loan.Amount)
	}

	expenses, err := yearExpenses(db, year)
	if err != nil {
		return Usage{}, err
	}

	for _, expense := range expenses {
		if expense.Category == models.ExpenseCategoryEmergency {
			used.Emergency = used.Emergency.Add(expense.Amount)
		} else {
			used.Flexible = used.Flexible.Add(expense.Amount)
		}
	}

	return used, nil
}
