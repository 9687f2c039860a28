package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sunduq/backend/internal/httputil"
	"github.com/sunduq/backend/internal/models"
)

// RegisterSettingsRoutes registers the routes for the family settings with
// the RouterGroup that is passed.
func RegisterSettingsRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsSettings)
	r.GET("", GetSettings)
	r.PATCH("", UpdateSettings)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Settings
// @Success		204
// @Router			/v1/settings [options]
func OptionsSettings(c *gin.Context) {
	httputil.OptionsGetPatch(c)
}

// @Summary		Get settings
// @Description	Returns the family settings. The settings are created with their default values on first read.
// @Tags			Settings
// @Produce		json
// @Success		200	{object}	FamilySettingsResponse
// @Failure		500	{object}	FamilySettingsResponse
// @Router			/v1/settings [get]
func GetSettings(c *gin.Context) {
	settings, err := models.GetFamilySettings(models.DB)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), FamilySettingsResponse{
			Error: &s,
		})
		return
	}

	data := newFamilySettings(c, settings)
	c.JSON(http.StatusOK, FamilySettingsResponse{Data: &data})
}

// @Summary		Update settings
// @Description	Update the family settings. Only values to be updated need to be specified. The four layer percentages must add up to 100, a partial update resulting in a different sum is rejected.
// @Tags			Settings
// @Accept			json
// @Produce		json
// @Success		200			{object}	FamilySettingsResponse
// @Failure		400			{object}	FamilySettingsResponse
// @Failure		500			{object}	FamilySettingsResponse
// @Param			settings	body		FamilySettingsEditable	true	"Settings"
// @Router			/v1/settings [patch]
func UpdateSettings(c *gin.Context) {
	settings, err := models.GetFamilySettings(models.DB)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), FamilySettingsResponse{
			Error: &s,
		})
		return
	}

	// The percentage sum is validated against the full set of percentages, so
	// fields missing from the request keep their current value before saving
	data := newFamilySettingsEditable(settings)
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), FamilySettingsResponse{
			Error: &s,
		})
		return
	}

	settings.FamilyName = data.FamilyName
	settings.Currency = data.Currency
	settings.ProtectedPercent = data.ProtectedPercent
	settings.EmergencyPercent = data.EmergencyPercent
	settings.FlexiblePercent = data.FlexiblePercent
	settings.GrowthPercent = data.GrowthPercent

	err = models.DB.Save(&settings).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), FamilySettingsResponse{
			Error: &s,
		})
		return
	}

	// Changed percentages change the layer amounts of the current year
	rebalance(uint(time.Now().UTC().Year()))

	r := newFamilySettings(c, settings)
	c.JSON(http.StatusOK, FamilySettingsResponse{Data: &r})
}
