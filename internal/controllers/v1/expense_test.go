package v1_test

import (
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"
	v1 "github.com/sunduq/backend/internal/controllers/v1"
	"github.com/sunduq/backend/internal/models"
	"github.com/sunduq/backend/test"
)

func (suite *TestSuiteStandard) createTestExpense(editable v1.ExpenseEditable) v1.Expense {
	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/expenses", editable)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.ExpenseResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Data)

	return *response.Data
}

func (suite *TestSuiteStandard) TestCreateExpenseRejectedWithoutFunds() {
	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/expenses", v1.ExpenseEditable{
		Title:    "School supplies",
		Amount:   decimal.NewFromInt(50),
		Category: models.ExpenseCategoryCharity,
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	var count int64
	suite.Require().Nil(models.DB.Model(&models.Expense{}).Count(&count).Error)
	suite.Assert().Equal(int64(0), count)
}

func (suite *TestSuiteStandard) TestCreateExpenseDrawsFlexible() {
	member := suite.createTestMember(models.MemberRoleMember)
	suite.fundFlexibleLayer(member.ID)

	_ = suite.createTestExpense(v1.ExpenseEditable{
		Title:    "School supplies",
		Amount:   decimal.NewFromInt(150),
		Category: models.ExpenseCategoryCharity,
	})

	var allocation models.CapitalAllocation
	suite.Require().Nil(models.DB.Where(models.CapitalAllocation{Year: currentYear()}).First(&allocation).Error)
	suite.Assert().True(allocation.FlexibleUsed.Equal(decimal.NewFromInt(150)), "flexible used is %s, expected 150", allocation.FlexibleUsed)
	suite.Assert().True(allocation.EmergencyUsed.IsZero(), "emergency used is %s, expected 0", allocation.EmergencyUsed)
}

func (suite *TestSuiteStandard) TestCreateEmergencyExpenseDrawsReserve() {
	member := suite.createTestMember(models.MemberRoleMember)
	suite.fundFlexibleLayer(member.ID)

	// With 1000 of net assets the emergency reserve holds 150
	_ = suite.createTestExpense(v1.ExpenseEditable{
		Title:    "Hospital bill",
		Amount:   decimal.NewFromInt(100),
		Category: models.ExpenseCategoryEmergency,
	})

	var allocation models.CapitalAllocation
	suite.Require().Nil(models.DB.Where(models.CapitalAllocation{Year: currentYear()}).First(&allocation).Error)
	suite.Assert().True(allocation.EmergencyUsed.Equal(decimal.NewFromInt(100)), "emergency used is %s, expected 100", allocation.EmergencyUsed)
	suite.Assert().True(allocation.FlexibleUsed.IsZero(), "flexible used is %s, expected 0", allocation.FlexibleUsed)
}

func (suite *TestSuiteStandard) TestCreateEmergencyExpenseOverReserve() {
	member := suite.createTestMember(models.MemberRoleMember)
	suite.fundFlexibleLayer(member.ID)

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/expenses", v1.ExpenseEditable{
		Title:    "Hospital bill",
		Amount:   decimal.NewFromInt(200),
		Category: models.ExpenseCategoryEmergency,
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	var response v1.ExpenseResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Error)
	suite.Assert().Contains(*response.Error, "emergency reserve")
}

func (suite *TestSuiteStandard) TestDeleteExpenseReleasesLayer() {
	member := suite.createTestMember(models.MemberRoleMember)
	suite.fundFlexibleLayer(member.ID)

	expense := suite.createTestExpense(v1.ExpenseEditable{
		Title:    "School supplies",
		Amount:   decimal.NewFromInt(150),
		Category: models.ExpenseCategoryCharity,
	})

	recorder := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/v1/expenses/%s", expense.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	var allocation models.CapitalAllocation
	suite.Require().Nil(models.DB.Where(models.CapitalAllocation{Year: currentYear()}).First(&allocation).Error)
	suite.Assert().True(allocation.FlexibleUsed.IsZero(), "flexible used is %s, expected 0", allocation.FlexibleUsed)
}

func (suite *TestSuiteStandard) TestGetExpensesSearch() {
	member := suite.createTestMember(models.MemberRoleMember)
	suite.fundFlexibleLayer(member.ID)

	_ = suite.createTestExpense(v1.ExpenseEditable{
		Title:       "Water bill",
		Amount:      decimal.NewFromInt(20),
		Category:    models.ExpenseCategoryGeneral,
		Description: "Paid in cash",
	})
	_ = suite.createTestExpense(v1.ExpenseEditable{
		Title:    "School supplies",
		Amount:   decimal.NewFromInt(30),
		Category: models.ExpenseCategoryCharity,
	})

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/expenses?search=cash", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.ExpenseListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().Len(response.Data, 1)
	suite.Assert().Equal("Water bill", response.Data[0].Title)
}

func (suite *TestSuiteStandard) TestGetExpensesFilterCategory() {
	member := suite.createTestMember(models.MemberRoleMember)
	suite.fundFlexibleLayer(member.ID)

	_ = suite.createTestExpense(v1.ExpenseEditable{
		Title:    "Water bill",
		Amount:   decimal.NewFromInt(20),
		Category: models.ExpenseCategoryGeneral,
	})
	_ = suite.createTestExpense(v1.ExpenseEditable{
		Title:    "School supplies",
		Amount:   decimal.NewFromInt(30),
		Category: models.ExpenseCategoryCharity,
	})

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/expenses?category=charity", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.ExpenseListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().Len(response.Data, 1)
	suite.Assert().Equal(models.ExpenseCategoryCharity, response.Data[0].Category)
}

func (suite *TestSuiteStandard) TestGetExpenseNotFound() {
	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/expenses/ec0b9d67-2eb5-4c78-9b38-bd0318393537", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}
