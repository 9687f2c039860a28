package v1_test

import (
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"
	v1 "github.com/sunduq/backend/internal/controllers/v1"
	"github.com/sunduq/backend/internal/models"
	"github.com/sunduq/backend/test"
)

func (suite *TestSuiteStandard) createTestLoan(editable v1.LoanEditable) v1.Loan {
	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/loans", editable)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.LoanResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Data)

	return *response.Data
}

func (suite *TestSuiteStandard) TestCreateLoanRejectedWithoutFunds() {
	member := suite.createTestMember(models.MemberRoleMember)

	// No approved contributions exist, the flexible layer is empty
	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/loans", v1.LoanEditable{
		MemberID:        member.ID,
		Type:            models.LoanTypeStandard,
		Title:           "Car repair",
		Amount:          decimal.NewFromInt(150),
		RepaymentMonths: 12,
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	var response v1.LoanResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Error)

	// A rejected request never reaches the ledger
	var count int64
	suite.Require().Nil(models.DB.Model(&models.Loan{}).Count(&count).Error)
	suite.Assert().Equal(int64(0), count)
}

func (suite *TestSuiteStandard) TestCreateLoan() {
	member := suite.createTestMember(models.MemberRoleMember)
	suite.fundFlexibleLayer(member.ID)

	loan := suite.createTestLoan(v1.LoanEditable{
		MemberID:        member.ID,
		Type:            models.LoanTypeStandard,
		Title:           "Car repair",
		Amount:          decimal.NewFromInt(150),
		RepaymentMonths: 12,
	})

	suite.Assert().Equal(models.LoanStatusPending, loan.Status)
	suite.Assert().Nil(loan.ApprovedAt)
	suite.Assert().Contains(loan.Links.Repayments, fmt.Sprintf("/v1/loans/%s/repayments", loan.ID))

	// The repayment schedule is created together with the loan
	var count int64
	suite.Require().Nil(models.DB.Model(&models.LoanRepayment{}).Where("loan_id = ?", loan.ID).Count(&count).Error)
	suite.Assert().Equal(int64(12), count)
}

func (suite *TestSuiteStandard) TestApproveLoanConsumesFlexible() {
	member := suite.createTestMember(models.MemberRoleMember)
	suite.fundFlexibleLayer(member.ID)

	loan := suite.createTestLoan(v1.LoanEditable{
		MemberID:        member.ID,
		Type:            models.LoanTypeStandard,
		Title:           "Car repair",
		Amount:          decimal.NewFromInt(150),
		RepaymentMonths: 12,
	})

	// Pending loans do not consume the layer yet
	var allocation models.CapitalAllocation
	suite.Require().Nil(models.DB.Where(models.CapitalAllocation{Year: currentYear()}).First(&allocation).Error)
	suite.Assert().True(allocation.FlexibleUsed.IsZero(), "flexible used is %s, expected 0", allocation.FlexibleUsed)

	recorder := test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("http://example.com/v1/loans/%s/status", loan.ID), v1.LoanStatusEditable{
		Status: models.LoanStatusApproved,
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.LoanResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().Equal(models.LoanStatusApproved, response.Data.Status)
	suite.Assert().NotNil(response.Data.ApprovedAt)

	suite.Require().Nil(models.DB.Where(models.CapitalAllocation{Year: currentYear()}).First(&allocation).Error)
	suite.Assert().True(allocation.FlexibleUsed.Equal(decimal.NewFromInt(150)), "flexible used is %s, expected 150", allocation.FlexibleUsed)
}

func (suite *TestSuiteStandard) TestUpdateLoanStatusUnknown() {
	member := suite.createTestMember(models.MemberRoleMember)
	suite.fundFlexibleLayer(member.ID)

	loan := suite.createTestLoan(v1.LoanEditable{
		MemberID:        member.ID,
		Type:            models.LoanTypeStandard,
		Title:           "Car repair",
		Amount:          decimal.NewFromInt(10),
		RepaymentMonths: 2,
	})

	recorder := test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("http://example.com/v1/loans/%s/status", loan.ID), `{ "status": "revoked" }`)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestGetLoansFilterStatus() {
	member := suite.createTestMember(models.MemberRoleMember)
	suite.fundFlexibleLayer(member.ID)

	loan := suite.createTestLoan(v1.LoanEditable{
		MemberID:        member.ID,
		Type:            models.LoanTypeStandard,
		Title:           "Car repair",
		Amount:          decimal.NewFromInt(50),
		RepaymentMonths: 6,
	})
	_ = suite.createTestLoan(v1.LoanEditable{
		MemberID:        member.ID,
		Type:            models.LoanTypeStandard,
		Title:           "School books",
		Amount:          decimal.NewFromInt(30),
		RepaymentMonths: 3,
	})

	recorder := test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("http://example.com/v1/loans/%s/status", loan.ID), v1.LoanStatusEditable{
		Status: models.LoanStatusRejected,
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	recorder = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/loans?status=pending", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.LoanListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Len(response.Data, 1)
	suite.Assert().Equal("School books", response.Data[0].Title)
}

func (suite *TestSuiteStandard) TestGetLoansSearch() {
	member := suite.createTestMember(models.MemberRoleMember)
	suite.fundFlexibleLayer(member.ID)

	_ = suite.createTestLoan(v1.LoanEditable{
		MemberID:        member.ID,
		Type:            models.LoanTypeStandard,
		Title:           "Car repair",
		Amount:          decimal.NewFromInt(50),
		RepaymentMonths: 6,
	})

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/loans?search=repair", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.LoanListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Len(response.Data, 1)
}

func (suite *TestSuiteStandard) TestGetLoanRepayments() {
	member := suite.createTestMember(models.MemberRoleMember)
	suite.fundFlexibleLayer(member.ID)

	loan := suite.createTestLoan(v1.LoanEditable{
		MemberID:        member.ID,
		Type:            models.LoanTypeStandard,
		Title:           "Car repair",
		Amount:          decimal.NewFromInt(120),
		RepaymentMonths: 4,
	})

	recorder := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/loans/%s/repayments", loan.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.RepaymentListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().Len(response.Data, 4)

	suite.Assert().Equal(uint(1), response.Data[0].InstallmentNumber)
	suite.Assert().True(response.Data[0].Amount.Equal(decimal.NewFromInt(30)), "installment amount is %s, expected 30", response.Data[0].Amount)
	suite.Assert().Equal(models.RepaymentStatusScheduled, response.Data[0].Status)
}

func (suite *TestSuiteStandard) TestDeleteLoanRemovesSchedule() {
	member := suite.createTestMember(models.MemberRoleMember)
	suite.fundFlexibleLayer(member.ID)

	loan := suite.createTestLoan(v1.LoanEditable{
		MemberID:        member.ID,
		Type:            models.LoanTypeStandard,
		Title:           "Car repair",
		Amount:          decimal.NewFromInt(120),
		RepaymentMonths: 4,
	})

	recorder := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/v1/loans/%s", loan.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	var count int64
	suite.Require().Nil(models.DB.Model(&models.LoanRepayment{}).Where("loan_id = ?", loan.ID).Count(&count).Error)
	suite.Assert().Equal(int64(0), count)
}

func (suite *TestSuiteStandard) TestGetLoanNotFound() {
	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/loans/828cf6f5-bb49-4bfb-a1dc-7e7b15e55d55", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}
