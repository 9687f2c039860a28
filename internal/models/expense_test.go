package models_test

import (
	"github.com/shopspring/decimal"
	"github.com/sunduq/backend/internal/models"
)

func (suite *TestSuiteStandard) TestExpenseCategoryInvalid() {
	expense := models.Expense{
		Title:    "Unknown",
		Amount:   decimal.NewFromInt(10),
		Category: "entertainment",
	}

	err := models.DB.Create(&expense).Error
	suite.Assert().ErrorIs(err, models.ErrExpenseCategoryInvalid)
}

func (suite *TestSuiteStandard) TestExpenseAmountNotPositive() {
	expense := models.Expense{
		Title:    "Nothing",
		Amount:   decimal.Zero,
		Category: models.ExpenseCategoryGeneral,
	}

	err := models.DB.Create(&expense).Error
	suite.Assert().ErrorIs(err, models.ErrExpenseAmountNotPositive)
}

func (suite *TestSuiteStandard) TestExpenseTrimWhitespace() {
	expense := models.Expense{
		Title:       " Water bill ",
		Amount:      decimal.NewFromFloat(8.2),
		Category:    models.ExpenseCategoryGeneral,
		Description: "\tPaid in cash ",
	}
	suite.Require().Nil(models.DB.Create(&expense).Error)

	suite.Assert().Equal("Water bill", expense.Title)
	suite.Assert().Equal("Paid in cash", expense.Description)
}
