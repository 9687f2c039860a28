package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/sunduq/backend/internal/httputil"
	"github.com/sunduq/backend/internal/models"
)

// resourceOptionsDetail returns the appropriate response for an HTTP OPTIONS request for a specific resource.
//
// Note: This function only works for resources with an ID, not for configurations (like /settings) or calculated endpoints (like /allocations)
func resourceOptionsDetail[R models.Member | models.Contribution | models.Loan | models.Expense](c *gin.Context, resource R) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&resource, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}
