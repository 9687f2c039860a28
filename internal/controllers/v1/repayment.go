package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sunduq/backend/internal/httputil"
	"github.com/sunduq/backend/internal/models"
)

// RegisterRepaymentRoutes registers the routes for loan repayments with
// the RouterGroup that is passed.
func RegisterRepaymentRoutes(r *gin.RouterGroup) {
	// Repayment with ID
	{
		r.OPTIONS("/:id", OptionsRepaymentDetail)
		r.GET("/:id", GetRepayment)
		r.PATCH("/:id/pay", PayRepayment)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Repayments
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/repayments/{id} [options]
func OptionsRepaymentDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.LoanRepayment{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGet(c)
}

// @Summary		Get repayment
// @Description	Returns a specific repayment installment
// @Tags			Repayments
// @Produce		json
// @Success		200	{object}	RepaymentResponse
// @Failure		400	{object}	RepaymentResponse
// @Failure		404	{object}	RepaymentResponse
// @Failure		500	{object}	RepaymentResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/repayments/{id} [get]
func GetRepayment(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RepaymentResponse{
			Error: &s,
		})
		return
	}

	var repayment models.LoanRepayment
	err = models.DB.First(&repayment, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RepaymentResponse{
			Error: &s,
		})
		return
	}

	data := newRepayment(c, repayment)
	c.JSON(http.StatusOK, RepaymentResponse{Data: &data})
}

// @Summary		Pay repayment
// @Description	Marks a repayment installment as paid and recomputes the allocation snapshot of the loan's year. Repayments track the schedule only, they do not release borrowed capital back into the year's layers.
// @Tags			Repayments
// @Produce		json
// @Success		200	{object}	RepaymentResponse
// @Failure		400	{object}	RepaymentResponse
// @Failure		404	{object}	RepaymentResponse
// @Failure		500	{object}	RepaymentResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/repayments/{id}/pay [patch]
func PayRepayment(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RepaymentResponse{
			Error: &s,
		})
		return
	}

	var repayment models.LoanRepayment
	err = models.DB.First(&repayment, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RepaymentResponse{
			Error: &s,
		})
		return
	}

	if repayment.Status == models.RepaymentStatusPaid {
		s := errRepaymentAlreadyPaid.Error()
		c.JSON(http.StatusBadRequest, RepaymentResponse{
			Error: &s,
		})
		return
	}

	err = repayment.MarkPaid(models.DB)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RepaymentResponse{
			Error: &s,
		})
		return
	}

	var loan models.Loan
	if err := models.DB.First(&loan, repayment.LoanID).Error; err == nil {
		rebalance(attributionYear(loan))
	}

	data := newRepayment(c, repayment)
	c.JSON(http.StatusOK, RepaymentResponse{Data: &data})
}
