package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/sunduq/backend/internal/models"
)

// FamilySettingsEditable represents all user configurable parameters
type FamilySettingsEditable struct {
	FamilyName       string `json:"familyName" example:"Al-Busaidi Fund"`       // Display name of the fund
	Currency         string `json:"currency" example:"OMR" default:"OMR"`       // Currency code used for display
	ProtectedPercent uint   `json:"protectedPercent" example:"45" default:"45"` // Percentage of net assets locked in the protected layer
	EmergencyPercent uint   `json:"emergencyPercent" example:"15" default:"15"` // Percentage of net assets reserved for emergencies
	FlexiblePercent  uint   `json:"flexiblePercent" example:"20" default:"20"`  // Percentage of net assets available for loans and expenses
	GrowthPercent    uint   `json:"growthPercent" example:"20" default:"20"`    // Percentage of net assets earmarked for growth
}

func newFamilySettingsEditable(model models.FamilySettings) FamilySettingsEditable {
	return FamilySettingsEditable{
		FamilyName:       model.FamilyName,
		Currency:         model.Currency,
		ProtectedPercent: model.ProtectedPercent,
		EmergencyPercent: model.EmergencyPercent,
		FlexiblePercent:  model.FlexiblePercent,
		GrowthPercent:    model.GrowthPercent,
	}
}

type FamilySettingsLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/settings"` // The settings themselves
}

type FamilySettings struct {
	models.DefaultModel
	FamilySettingsEditable
	Links FamilySettingsLinks `json:"links"`
}

func newFamilySettings(c *gin.Context, model models.FamilySettings) FamilySettings {
	url := c.GetString(string(models.DBContextURL))

	return FamilySettings{
		DefaultModel:           model.DefaultModel,
		FamilySettingsEditable: newFamilySettingsEditable(model),
		Links: FamilySettingsLinks{
			Self: fmt.Sprintf("%s/v1/settings", url),
		},
	}
}

type FamilySettingsResponse struct {
	Data  *FamilySettings `json:"data"`                                                          // Data for the settings
	Error *string         `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}
