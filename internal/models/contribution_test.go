package models_test

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sunduq/backend/internal/models"
)

func (suite *TestSuiteStandard) TestContributionStatusDefault() {
	member := suite.createTestMember(models.MemberRoleMember)

	contribution := models.Contribution{
		MemberID: member.ID,
		Year:     2024,
		Month:    3,
		Amount:   decimal.NewFromFloat(12.5),
	}
	suite.Require().Nil(models.DB.Create(&contribution).Error)

	suite.Assert().Equal(models.ContributionStatusPending, contribution.Status)
	suite.Assert().Nil(contribution.ApprovedAt)
}

func (suite *TestSuiteStandard) TestContributionStatusInvalid() {
	member := suite.createTestMember(models.MemberRoleMember)

	contribution := models.Contribution{
		MemberID: member.ID,
		Year:     2024,
		Month:    3,
		Amount:   decimal.NewFromFloat(12.5),
		Status:   "maybe",
	}

	err := models.DB.Create(&contribution).Error
	suite.Assert().ErrorIs(err, models.ErrContributionStatusInvalid)
}

func (suite *TestSuiteStandard) TestContributionAmountNotPositive() {
	member := suite.createTestMember(models.MemberRoleMember)

	contribution := models.Contribution{
		MemberID: member.ID,
		Year:     2024,
		Month:    3,
		Amount:   decimal.Zero,
	}

	err := models.DB.Create(&contribution).Error
	suite.Assert().ErrorIs(err, models.ErrContributionAmountNotPositive)
}

func (suite *TestSuiteStandard) TestContributionRequiresMember() {
	contribution := models.Contribution{
		MemberID: uuid.New(),
		Year:     2024,
		Month:    3,
		Amount:   decimal.NewFromFloat(12.5),
	}

	err := models.DB.Create(&contribution).Error
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestContributionApprove() {
	member := suite.createTestMember(models.MemberRoleMember)

	contribution := models.Contribution{
		MemberID: member.ID,
		Year:     2024,
		Month:    3,
		Amount:   decimal.NewFromFloat(12.5),
	}
	suite.Require().Nil(models.DB.Create(&contribution).Error)

	suite.Require().Nil(contribution.Approve(models.DB))

	suite.Assert().Equal(models.ContributionStatusApproved, contribution.Status)
	suite.Require().NotNil(contribution.ApprovedAt)

	// The approval is persisted
	var reloaded models.Contribution
	suite.Require().Nil(models.DB.First(&reloaded, contribution.ID).Error)
	suite.Assert().Equal(models.ContributionStatusApproved, reloaded.Status)
	suite.Assert().NotNil(reloaded.ApprovedAt)
}
