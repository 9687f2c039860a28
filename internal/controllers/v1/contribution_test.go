package v1_test

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	v1 "github.com/sunduq/backend/internal/controllers/v1"
	"github.com/sunduq/backend/internal/models"
	"github.com/sunduq/backend/test"
)

func (suite *TestSuiteStandard) createTestContribution(editable v1.ContributionEditable) v1.Contribution {
	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/contributions", editable)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.ContributionResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Data)

	return *response.Data
}

func (suite *TestSuiteStandard) TestOptionsContribution() {
	recorder := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/contributions", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET, POST", recorder.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestCreateContributionIsPending() {
	member := suite.createTestMember(models.MemberRoleMember)

	contribution := suite.createTestContribution(v1.ContributionEditable{
		MemberID: member.ID,
		Year:     2024,
		Month:    3,
		Amount:   decimal.NewFromFloat(120.5),
	})

	suite.Assert().Equal(models.ContributionStatusPending, contribution.Status)
	suite.Assert().Nil(contribution.ApprovedAt)
	suite.Assert().Contains(contribution.Links.Member, fmt.Sprintf("/v1/members/%s", member.ID))
}

func (suite *TestSuiteStandard) TestCreateContributionUnknownMember() {
	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/contributions", v1.ContributionEditable{
		MemberID: uuid.New(),
		Year:     2024,
		Month:    3,
		Amount:   decimal.NewFromInt(100),
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestApproveContribution() {
	member := suite.createTestMember(models.MemberRoleGuardian)
	contribution := suite.createTestContribution(v1.ContributionEditable{
		MemberID: member.ID,
		Year:     2024,
		Month:    1,
		Amount:   decimal.NewFromInt(1000),
	})

	recorder := test.Request(suite.T(), http.MethodPost, fmt.Sprintf("http://example.com/v1/contributions/%s/approve", contribution.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.ContributionResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().Equal(models.ContributionStatusApproved, response.Data.Status)
	suite.Assert().NotNil(response.Data.ApprovedAt)

	// The allocation snapshot for the declared year is recomputed
	var allocation models.CapitalAllocation
	suite.Require().Nil(models.DB.Where(models.CapitalAllocation{Year: 2024}).First(&allocation).Error)
	suite.Assert().True(allocation.NetAssets.Equal(decimal.NewFromInt(1000)), "net assets are %s, expected 1000", allocation.NetAssets)
}

func (suite *TestSuiteStandard) TestApproveContributionTwice() {
	member := suite.createTestMember(models.MemberRoleGuardian)
	contribution := suite.createTestContribution(v1.ContributionEditable{
		MemberID: member.ID,
		Year:     2024,
		Month:    1,
		Amount:   decimal.NewFromInt(50),
	})

	recorder := test.Request(suite.T(), http.MethodPost, fmt.Sprintf("http://example.com/v1/contributions/%s/approve", contribution.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	recorder = test.Request(suite.T(), http.MethodPost, fmt.Sprintf("http://example.com/v1/contributions/%s/approve", contribution.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestGetContributionsFilterStatus() {
	member := suite.createTestMember(models.MemberRoleMember)
	first := suite.createTestContribution(v1.ContributionEditable{
		MemberID: member.ID,
		Year:     2024,
		Month:    1,
		Amount:   decimal.NewFromInt(10),
	})
	_ = suite.createTestContribution(v1.ContributionEditable{
		MemberID: member.ID,
		Year:     2024,
		Month:    2,
		Amount:   decimal.NewFromInt(20),
	})

	recorder := test.Request(suite.T(), http.MethodPost, fmt.Sprintf("http://example.com/v1/contributions/%s/approve", first.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	recorder = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/contributions?status=pending_approval", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.ContributionListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Len(response.Data, 1)
}

func (suite *TestSuiteStandard) TestUpdateContribution() {
	member := suite.createTestMember(models.MemberRoleMember)
	contribution := suite.createTestContribution(v1.ContributionEditable{
		MemberID: member.ID,
		Year:     2024,
		Month:    1,
		Amount:   decimal.NewFromInt(100),
	})

	recorder := test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("http://example.com/v1/contributions/%s", contribution.ID), map[string]any{
		"amount": "250",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.ContributionResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().True(response.Data.Amount.Equal(decimal.NewFromInt(250)), "amount is %s, expected 250", response.Data.Amount)
}

func (suite *TestSuiteStandard) TestUpdateApprovedContributionRejected() {
	member := suite.createTestMember(models.MemberRoleMember)
	contribution := suite.createTestContribution(v1.ContributionEditable{
		MemberID: member.ID,
		Year:     2024,
		Month:    1,
		Amount:   decimal.NewFromInt(100),
	})

	recorder := test.Request(suite.T(), http.MethodPost, fmt.Sprintf("http://example.com/v1/contributions/%s/approve", contribution.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	recorder = test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("http://example.com/v1/contributions/%s", contribution.ID), map[string]any{
		"amount": "999",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	// The stored amount and the allocation are untouched
	var stored models.Contribution
	suite.Require().Nil(models.DB.First(&stored, contribution.ID).Error)
	suite.Assert().True(stored.Amount.Equal(decimal.NewFromInt(100)), "amount is %s, expected 100", stored.Amount)

	var allocation models.CapitalAllocation
	suite.Require().Nil(models.DB.Where(models.CapitalAllocation{Year: 2024}).First(&allocation).Error)
	suite.Assert().True(allocation.NetAssets.Equal(decimal.NewFromInt(100)), "net assets are %s, expected 100", allocation.NetAssets)
}

func (suite *TestSuiteStandard) TestDeleteContribution() {
	member := suite.createTestMember(models.MemberRoleMember)
	contribution := suite.createTestContribution(v1.ContributionEditable{
		MemberID: member.ID,
		Year:     2024,
		Month:    1,
		Amount:   decimal.NewFromInt(100),
	})

	recorder := test.Request(suite.T(), http.MethodPost, fmt.Sprintf("http://example.com/v1/contributions/%s/approve", contribution.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	recorder = test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/v1/contributions/%s", contribution.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	// The deleted contribution no longer counts towards the allocation
	var allocation models.CapitalAllocation
	suite.Require().Nil(models.DB.Where(models.CapitalAllocation{Year: 2024}).First(&allocation).Error)
	suite.Assert().True(allocation.NetAssets.IsZero(), "net assets are %s, expected 0", allocation.NetAssets)
}

func (suite *TestSuiteStandard) TestGetContributionNotFound() {
	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/contributions/5b8dcbbf-fb97-4a5c-9ce5-eb0aba2e2478", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}
