package models_test

import (
	"github.com/sunduq/backend/internal/models"
)

func (suite *TestSuiteStandard) TestMemberTrimWhitespace() {
	member := models.Member{
		Name:   " Maryam\t",
		Role:   models.MemberRoleCustodian,
		Avatar: " /avatars/maryam.webp ",
	}
	suite.Require().Nil(models.DB.Create(&member).Error)

	suite.Assert().Equal("Maryam", member.Name)
	suite.Assert().Equal("/avatars/maryam.webp", member.Avatar)
}

func (suite *TestSuiteStandard) TestMemberRoleDefault() {
	member := models.Member{Name: "Khalid"}
	suite.Require().Nil(models.DB.Create(&member).Error)

	suite.Assert().Equal(models.MemberRoleMember, member.Role)
}

func (suite *TestSuiteStandard) TestMemberRoleInvalid() {
	member := models.Member{Name: "Khalid", Role: "overlord"}

	err := models.DB.Create(&member).Error
	suite.Assert().ErrorIs(err, models.ErrMemberRoleInvalid)
}
