package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sunduq/backend/internal/capital"
	"github.com/sunduq/backend/internal/httputil"
	"github.com/sunduq/backend/internal/models"
)

// RegisterAllocationRoutes registers the routes for capital allocations with
// the RouterGroup that is passed.
func RegisterAllocationRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/:year", OptionsAllocationDetail)
	r.GET("/:year", GetAllocation)
	r.GET("/:year/check", GetAllocationCheck)
	r.POST("/:year/reset", ResetAllocation)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Allocations
// @Success		204
// @Failure		400	{object}	httpError
// @Param			year	path	uint	true	"Year of the allocation"
// @Router			/v1/allocations/{year} [options]
func OptionsAllocationDetail(c *gin.Context) {
	var uri URIYear
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGet(c)
}

// @Summary		Get allocation
// @Description	Returns the capital allocation for a year. The allocation is recomputed from the ledger on every read and the stored snapshot is updated, so the response always reflects the current contributions, loans and expenses.
// @Tags			Allocations
// @Produce		json
// @Success		200		{object}	AllocationResponse
// @Failure		400		{object}	AllocationResponse
// @Failure		500		{object}	AllocationResponse
// @Param			year	path		uint	true	"Year of the allocation"
// @Router			/v1/allocations/{year} [get]
func GetAllocation(c *gin.Context) {
	var uri URIYear
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AllocationResponse{
			Error: &s,
		})
		return
	}

	defer capital.LockYear(uri.Year)()

	result, err := capital.GetAllocation(models.DB, uri.Year)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AllocationResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, AllocationResponse{Data: &result})
}

// @Summary		Check transaction
// @Description	Checks whether a loan or expense of the given amount would fit into the available balance of the layer it draws from, without persisting anything.
// @Tags			Allocations
// @Produce		json
// @Success		200		{object}	AllocationCheckResponse
// @Failure		400		{object}	AllocationCheckResponse
// @Failure		500		{object}	AllocationCheckResponse
// @Param			year		path	uint	true	"Year of the allocation"
// @Param			type		query	string	true	"Kind of transaction, 'loan' or 'expense'"
// @Param			amount		query	string	true	"Amount of the transaction"
// @Param			category	query	string	false	"Category of the expense, ignored for loans"
// @Router			/v1/allocations/{year}/check [get]
func GetAllocationCheck(c *gin.Context) {
	var uri URIYear
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AllocationCheckResponse{
			Error: &s,
		})
		return
	}

	var query AllocationCheckQuery
	if err := c.Bind(&query); err != nil {
		s := httputil.ErrInvalidQuery.Error()
		c.JSON(http.StatusBadRequest, AllocationCheckResponse{
			Error: &s,
		})
		return
	}

	if !query.Amount.IsPositive() {
		s := errCheckAmountNotSet.Error()
		c.JSON(http.StatusBadRequest, AllocationCheckResponse{
			Error: &s,
		})
		return
	}

	defer capital.LockYear(uri.Year)()

	var check capital.Check
	switch query.Type {
	case "loan":
		check, err = capital.CheckLoan(models.DB, query.Amount, uri.Year)
	case "expense":
		check, err = capital.CheckExpense(models.DB, query.Amount, models.ExpenseCategory(query.Category), uri.Year)
	default:
		s := errCheckTypeInvalid.Error()
		c.JSON(http.StatusBadRequest, AllocationCheckResponse{
			Error: &s,
		})
		return
	}

	if err != nil {
		s := err.Error()
		c.JSON(status(err), AllocationCheckResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, AllocationCheckResponse{Data: &check})
}

// @Summary		Reset allocation
// @Description	Zeroes the used balances of the year's allocation and stamps who reset it. Usage backed by loans and expenses still in the ledger reappears with the recompute, delete those records to actually free capital.
// @Tags			Allocations
// @Produce		json
// @Success		200		{object}	AllocationResponse
// @Failure		400		{object}	AllocationResponse
// @Failure		404		{object}	AllocationResponse
// @Failure		500		{object}	AllocationResponse
// @Param			year	path		uint					true	"Year of the allocation"
// @Param			reset	body		AllocationResetEditable	true	"Reset"
// @Router			/v1/allocations/{year}/reset [post]
func ResetAllocation(c *gin.Context) {
	var uri URIYear
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AllocationResponse{
			Error: &s,
		})
		return
	}

	var editable AllocationResetEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AllocationResponse{
			Error: &s,
		})
		return
	}

	if editable.ResetBy == uuid.Nil {
		s := errResetByNotSet.Error()
		c.JSON(http.StatusBadRequest, AllocationResponse{
			Error: &s,
		})
		return
	}

	var member models.Member
	err = models.DB.First(&member, editable.ResetBy).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AllocationResponse{
			Error: &s,
		})
		return
	}

	if member.Role != models.MemberRoleGuardian {
		s := errResetNotGuardian.Error()
		c.JSON(http.StatusBadRequest, AllocationResponse{
			Error: &s,
		})
		return
	}

	defer capital.LockYear(uri.Year)()

	result, err := capital.Reset(models.DB, uri.Year, member.ID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AllocationResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, AllocationResponse{Data: &result})
}
