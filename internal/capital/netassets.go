package capital

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/sunduq/backend/internal/models"
	"gorm.io/gorm"
)

// yearWindow returns the calendar-year window [start, end) in UTC.
func yearWindow(year uint) (start, end time.Time) {
	start = time.Date(int(year), time.January, 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(1, 0, 0)
}

// approvedLoans returns the approved loans attributed to a year.
//
// Loans are attributed by their actual approval time, falling back to the
// creation time for rows approved before ApprovedAt existed.
func approvedLoans(db *gorm.DB, year uint) ([]models.Loan, error) {
	var loans []models.Loan

	err := db.Where(models.Loan{Status: models.LoanStatusApproved}).Find(&loans).Error
	if err != nil {
		return nil, err
	}

	start, end := yearWindow(year)

	inYear := make([]models.Loan, 0, len(loans))
	for _, loan := range loans {
		at := loan.CreatedAt
		if loan.ApprovedAt != nil {
			at = *loan.ApprovedAt
		}

		if !at.Before(start) && at.Before(end) {
			inYear = append(inYear, loan)
		}
	}

	return inYear, nil
}

// yearExpenses returns the expenses attributed to a year, by the time they
// were incurred.
func yearExpenses(db *gorm.DB, year uint) ([]models.Expense, error) {
	var expenses []models.Expense

	err := db.Find(&expenses).Error
	if err != nil {
		return nil, err
	}

	start, end := yearWindow(year)

	inYear := make([]models.Expense, 0, len(expenses))
	for _, expense := range expenses {
		if !expense.CreatedAt.Before(start) && expense.CreatedAt.Before(end) {
			inYear = append(inYear, expense)
		}
	}

	return inYear, nil
}

// NetAssets derives a year's net assets: approved contributions minus
// approved loans minus expenses, floored at zero.
//
// Contributions count toward the period the member declared for them, while
// loans and expenses count toward the year they actually happened in. The
// asymmetry is deliberate: payments are designated for a period, consumption
// is not.
func NetAssets(db *gorm.DB, year uint) (decimal.Decimal, error) {
	var contributions []models.Contribution

	err := db.
		Where(models.Contribution{Status: models.ContributionStatusApproved, Year: year}).
		Find(&contributions).Error
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, contribution := range contributions {
		total = total.Add(contribution.Amount)
	}

	loans, err := approvedLoans(db, year)
	if err != nil {
		return decimal.Zero, err
	}

	for _, loan := range loans {
		total = total.Sub(loan.Amount)
	}

	expenses, err := yearExpenses(db, year)
	if err != nil {
		return decimal.Zero, err
	}

	for _, expense := range expenses {
		total = total.Sub(expense.Amount)
	}

	if total.IsNegative() {
		return decimal.Zero, nil
	}

	return total, nil
}
