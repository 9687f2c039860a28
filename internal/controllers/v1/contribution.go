package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/sunduq/backend/internal/capital"
	"github.com/sunduq/backend/internal/httputil"
	"github.com/sunduq/backend/internal/models"
	"golang.org/x/exp/slices"
)

// RegisterContributionRoutes registers the routes for contributions with
// the RouterGroup that is passed.
func RegisterContributionRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsContributionList)
		r.GET("", GetContributions)
		r.POST("", CreateContribution)
	}

	// Contribution with ID
	{
		r.OPTIONS("/:id", OptionsContributionDetail)
		r.GET("/:id", GetContribution)
		r.PATCH("/:id", UpdateContribution)
		r.DELETE("/:id", DeleteContribution)
		r.POST("/:id/approve", ApproveContribution)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Contributions
// @Success		204
// @Router			/v1/contributions [options]
func OptionsContributionList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Contributions
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/contributions/{id} [options]
func OptionsContributionDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.Contribution{})
}

// @Summary		Declare contribution
// @Description	Declares a new contribution. Contributions start in the "pending_approval" status and only count towards the fund's net assets once a guardian approves them.
// @Tags			Contributions
// @Produce		json
// @Success		201				{object}	ContributionResponse
// @Failure		400				{object}	ContributionResponse
// @Failure		404				{object}	ContributionResponse
// @Failure		500				{object}	ContributionResponse
// @Param			contribution	body		ContributionEditable	true	"Contribution"
// @Router			/v1/contributions [post]
func CreateContribution(c *gin.Context) {
	var editable ContributionEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ContributionResponse{
			Error: &s,
		})
		return
	}

	contribution := editable.model()

	err = models.DB.Create(&contribution).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ContributionResponse{
			Error: &s,
		})
		return
	}

	data := newContribution(c, contribution)
	c.JSON(http.StatusCreated, ContributionResponse{Data: &data})
}

// @Summary		Get contributions
// @Description	Returns a list of contributions
// @Tags			Contributions
// @Produce		json
// @Success		200	{object}	ContributionListResponse
// @Failure		400	{object}	ContributionListResponse
// @Failure		500	{object}	ContributionListResponse
// @Router			/v1/contributions [get]
// @Param			member	query	string	false	"Filter by member ID"
// @Param			year	query	uint	false	"Filter by declared year"
// @Param			month	query	uint8	false	"Filter by declared month"
// @Param			status	query	string	false	"Filter by approval status"
// @Param			offset	query	uint	false	"The offset of the first contribution returned. Defaults to 0."
// @Param			limit	query	int		false	"Maximum number of contributions to return. Defaults to 50."
func GetContributions(c *gin.Context) {
	var filter ContributionQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	// Get the fields that we are filtering for
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	filterModel, err := filter.model()
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ContributionListResponse{
			Error: &s,
		})
		return
	}

	q := models.DB.
		Order("year DESC, month DESC, created_at DESC").
		Where(&filterModel, queryFields...)

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 contributions and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var contributions []models.Contribution
	err = q.Find(&contributions).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ContributionListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ContributionListResponse{
			Error: &s,
		})
		return
	}

	data := make([]Contribution, 0)
	for _, contribution := range contributions {
		data = append(data, newContribution(c, contribution))
	}

	c.JSON(http.StatusOK, ContributionListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get contribution
// @Description	Returns a specific contribution
// @Tags			Contributions
// @Produce		json
// @Success		200	{object}	ContributionResponse
// @Failure		400	{object}	ContributionResponse
// @Failure		404	{object}	ContributionResponse
// @Failure		500	{object}	ContributionResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/contributions/{id} [get]
func GetContribution(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ContributionResponse{
			Error: &s,
		})
		return
	}

	var contribution models.Contribution
	err = models.DB.First(&contribution, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ContributionResponse{
			Error: &s,
		})
		return
	}

	data := newContribution(c, contribution)
	c.JSON(http.StatusOK, ContributionResponse{Data: &data})
}

// @Summary		Update contribution
// @Description	Update a pending contribution. Only values to be updated need to be specified. Approved contributions are immutable and can only be deleted.
// @Tags			Contributions
// @Accept			json
// @Produce		json
// @Success		200				{object}	ContributionResponse
// @Failure		400				{object}	ContributionResponse
// @Failure		404				{object}	ContributionResponse
// @Failure		500				{object}	ContributionResponse
// @Param			id				path		URIID					true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			contribution	body		ContributionEditable	true	"Contribution"
// @Router			/v1/contributions/{id} [patch]
func UpdateContribution(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ContributionResponse{
			Error: &s,
		})
		return
	}

	var contribution models.Contribution
	err = models.DB.First(&contribution, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ContributionResponse{
			Error: &s,
		})
		return
	}

	if contribution.Status == models.ContributionStatusApproved {
		s := errContributionImmutable.Error()
		c.JSON(http.StatusBadRequest, ContributionResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, ContributionEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ContributionResponse{
			Error: &s,
		})
		return
	}

	var data ContributionEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ContributionResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Model(&contribution).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ContributionResponse{
			Error: &s,
		})
		return
	}

	r := newContribution(c, contribution)
	c.JSON(http.StatusOK, ContributionResponse{Data: &r})
}

// @Summary		Delete contribution
// @Description	Deletes a contribution
// @Tags			Contributions
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/contributions/{id} [delete]
func DeleteContribution(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var contribution models.Contribution
	err = models.DB.First(&contribution, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&contribution).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	if contribution.Status == models.ContributionStatusApproved {
		rebalance(contribution.Year)
	}

	c.JSON(http.StatusNoContent, nil)
}

// @Summary		Approve contribution
// @Description	Approves a pending contribution. The contribution then counts towards the net assets of its declared year and the allocation snapshot for that year is recomputed.
// @Tags			Contributions
// @Produce		json
// @Success		200	{object}	ContributionResponse
// @Failure		400	{object}	ContributionResponse
// @Failure		404	{object}	ContributionResponse
// @Failure		500	{object}	ContributionResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/contributions/{id}/approve [post]
func ApproveContribution(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ContributionResponse{
			Error: &s,
		})
		return
	}

	var contribution models.Contribution
	err = models.DB.First(&contribution, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ContributionResponse{
			Error: &s,
		})
		return
	}

	if contribution.Status == models.ContributionStatusApproved {
		s := errContributionImmutable.Error()
		c.JSON(http.StatusBadRequest, ContributionResponse{
			Error: &s,
		})
		return
	}

	defer capital.LockYear(contribution.Year)()

	err = contribution.Approve(models.DB)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ContributionResponse{
			Error: &s,
		})
		return
	}

	if _, err := capital.Rebalance(models.DB, contribution.Year); err != nil {
		log.Error().Msgf("could not rebalance the allocation for %d: %v", contribution.Year, err)
	}

	data := newContribution(c, contribution)
	c.JSON(http.StatusOK, ContributionResponse{Data: &data})
}

// rebalance recomputes the allocation snapshot for a year after a ledger
// change. The snapshot is derived data, a failed recompute is corrected by
// the next read, so the error is only logged.
func rebalance(year uint) {
	defer capital.LockYear(year)()

	if _, err := capital.Rebalance(models.DB, year); err != nil {
		log.Error().Msgf("could not rebalance the allocation for %d: %v", year, err)
	}
}
