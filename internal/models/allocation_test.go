package models_test

import (
	"github.com/shopspring/decimal"
	"github.com/sunduq/backend/internal/models"
)

func (suite *TestSuiteStandard) TestAllocationYearUnique() {
	allocation := models.CapitalAllocation{
		Year:      2024,
		NetAssets: decimal.NewFromInt(1000),
	}
	suite.Require().Nil(models.DB.Create(&allocation).Error)

	duplicate := models.CapitalAllocation{
		Year:      2024,
		NetAssets: decimal.NewFromInt(500),
	}

	err := models.DB.Create(&duplicate).Error
	suite.Assert().ErrorIs(err, models.ErrAllocationYearNotUnique)
}

func (suite *TestSuiteStandard) TestResourceNotFoundMessage() {
	var allocation models.CapitalAllocation

	err := models.DB.Where(models.CapitalAllocation{Year: 1999}).First(&allocation).Error
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
	suite.Assert().Contains(err.Error(), "capital allocation")
}

func (suite *TestSuiteStandard) TestGeneralErrorOnClosedDB() {
	suite.CloseDB()

	var member models.Member
	err := models.DB.First(&member).Error
	suite.Assert().ErrorIs(err, models.ErrGeneral)
}
