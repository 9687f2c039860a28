package v1_test

import (
	"fmt"
	"net/http"

	v1 "github.com/sunduq/backend/internal/controllers/v1"
	"github.com/sunduq/backend/internal/models"
	"github.com/sunduq/backend/test"
)

func (suite *TestSuiteStandard) TestOptionsMember() {
	recorder := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/members", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET, POST", recorder.Header().Get("allow"))

	member := suite.createTestMember(models.MemberRoleMember)
	recorder = test.Request(suite.T(), http.MethodOptions, fmt.Sprintf("http://example.com/v1/members/%s", member.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET, PATCH, DELETE", recorder.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestCreateMember() {
	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/members", v1.MemberEditable{
		Name: "Aisha",
		Role: models.MemberRoleGuardian,
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.MemberResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().NotNil(response.Data)
	suite.Assert().Equal("Aisha", response.Data.Name)
	suite.Assert().Equal(models.MemberRoleGuardian, response.Data.Role)
	suite.Assert().Contains(response.Data.Links.Self, fmt.Sprintf("/v1/members/%s", response.Data.ID))
}

func (suite *TestSuiteStandard) TestCreateMemberInvalidRole() {
	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/members", `{ "name": "Aisha", "role": "overlord" }`)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestCreateMemberEmptyBody() {
	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/members", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestGetMembers() {
	_ = suite.createTestMember(models.MemberRoleGuardian)
	_ = suite.createTestMember(models.MemberRoleMember)

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/members", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.MemberListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Assert().Len(response.Data, 2)
	suite.Require().NotNil(response.Pagination)
	suite.Assert().Equal(int64(2), response.Pagination.Total)
}

func (suite *TestSuiteStandard) TestGetMembersFilterRole() {
	_ = suite.createTestMember(models.MemberRoleGuardian)
	_ = suite.createTestMember(models.MemberRoleMember)
	_ = suite.createTestMember(models.MemberRoleMember)

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/members?role=member", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.MemberListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Len(response.Data, 2)
}

func (suite *TestSuiteStandard) TestGetMember() {
	member := suite.createTestMember(models.MemberRoleMember)

	recorder := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/members/%s", member.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.MemberResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().Equal(member.ID, response.Data.ID)
}

func (suite *TestSuiteStandard) TestGetMemberNotFound() {
	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/members/ec6a9b05-4f0f-4a8a-b4d9-b47ed40ea6af", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestGetMemberInvalidID() {
	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/members/not-a-uuid", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestUpdateMember() {
	member := suite.createTestMember(models.MemberRoleMember)

	recorder := test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("http://example.com/v1/members/%s", member.ID), map[string]any{
		"role": "custodian",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.MemberResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().Equal(models.MemberRoleCustodian, response.Data.Role)

	// The name is untouched by the partial update
	suite.Assert().Equal("Ahmed", response.Data.Name)
}

func (suite *TestSuiteStandard) TestDeleteMember() {
	member := suite.createTestMember(models.MemberRoleMember)

	recorder := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/v1/members/%s", member.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	recorder = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/members/%s", member.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestGetMembersDBError() {
	suite.CloseDB()

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/members", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusInternalServerError)
}
