package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ExpenseCategory is the spending category of an expense.
//
// Emergency expenses draw from the emergency layer, all other categories
// draw from the flexible layer.
type ExpenseCategory string

const (
	ExpenseCategoryZakat     ExpenseCategory = "zakat"
	ExpenseCategoryCharity   ExpenseCategory = "charity"
	ExpenseCategoryGeneral   ExpenseCategory = "general"
	ExpenseCategoryEmergency ExpenseCategory = "emergency"
)

// Expense represents money spent from the fund.
//
// Expenses have no approval state. Creation is immediate consumption,
// gated only by the transaction check performed before the insert.
type Expense struct {
	DefaultModel
	Title       string
	Amount      decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Category    ExpenseCategory
	Description string
}

var (
	ErrExpenseCategoryInvalid   = errors.New("the specified expense category is invalid")
	ErrExpenseAmountNotPositive = errors.New("expense amounts must be larger than zero")
)

func (e *Expense) BeforeSave(_ *gorm.DB) error {
	e.Title = strings.TrimSpace(e.Title)
	e.Description = strings.TrimSpace(e.Description)

	switch e.Category {
	case ExpenseCategoryZakat, ExpenseCategoryCharity, ExpenseCategoryGeneral, ExpenseCategoryEmergency:
	default:
		return fmt.Errorf("%w: %s", ErrExpenseCategoryInvalid, e.Category)
	}

	if !e.Amount.IsPositive() {
		return ErrExpenseAmountNotPositive
	}

	return nil
}
