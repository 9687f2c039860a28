package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/sunduq/backend/internal/capital"
	"github.com/sunduq/backend/internal/httputil"
	"github.com/sunduq/backend/internal/models"
	"golang.org/x/exp/slices"
)

// RegisterLoanRoutes registers the routes for loans with
// the RouterGroup that is passed.
func RegisterLoanRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsLoanList)
		r.GET("", GetLoans)
		r.POST("", CreateLoan)
	}

	// Loan with ID
	{
		r.OPTIONS("/:id", OptionsLoanDetail)
		r.GET("/:id", GetLoan)
		r.PATCH("/:id", UpdateLoan)
		r.DELETE("/:id", DeleteLoan)
		r.PATCH("/:id/status", UpdateLoanStatus)
		r.GET("/:id/repayments", GetLoanRepayments)
	}
}

// attributionYear returns the calendar year a loan draws its capital from.
// Approved loans count towards the year they were approved in, everything
// else towards the year of the request.
func attributionYear(loan models.Loan) uint {
	if loan.ApprovedAt != nil {
		return uint(loan.ApprovedAt.Year())
	}

	return uint(loan.CreatedAt.Year())
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Loans
// @Success		204
// @Router			/v1/loans [options]
func OptionsLoanList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Loans
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/loans/{id} [options]
func OptionsLoanDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.Loan{})
}

// @Summary		Request loan
// @Description	Requests a new loan. The requested amount is checked against the available balance of the flexible capital layer for the current year, a request exceeding it is rejected.
// @Tags			Loans
// @Produce		json
// @Success		201		{object}	LoanResponse
// @Failure		400		{object}	LoanResponse
// @Failure		404		{object}	LoanResponse
// @Failure		500		{object}	LoanResponse
// @Param			loan	body		LoanEditable	true	"Loan"
// @Router			/v1/loans [post]
func CreateLoan(c *gin.Context) {
	var editable LoanEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), LoanResponse{
			Error: &s,
		})
		return
	}

	loan := editable.model()
	year := uint(time.Now().UTC().Year())

	defer capital.LockYear(year)()

	check, err := capital.CheckLoan(models.DB, loan.Amount, year)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), LoanResponse{
			Error: &s,
		})
		return
	}

	if !check.Allowed {
		c.JSON(http.StatusBadRequest, LoanResponse{
			Error: &check.Reason,
		})
		return
	}

	err = models.DB.Create(&loan).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), LoanResponse{
			Error: &s,
		})
		return
	}

	_, err = loan.CreateRepaymentSchedule(models.DB)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), LoanResponse{
			Error: &s,
		})
		return
	}

	if _, err := capital.Rebalance(models.DB, year); err != nil {
		log.Error().Msgf("could not rebalance the allocation for %d: %v", year, err)
	}

	data := newLoan(c, loan)
	c.JSON(http.StatusCreated, LoanResponse{Data: &data})
}

// @Summary		Get loans
// @Description	Returns a list of loans
// @Tags			Loans
// @Produce		json
// @Success		200	{object}	LoanListResponse
// @Failure		400	{object}	LoanListResponse
// @Failure		500	{object}	LoanListResponse
// @Router			/v1/loans [get]
// @Param			member	query	string	false	"Filter by member ID"
// @Param			type	query	string	false	"Filter by loan type"
// @Param			status	query	string	false	"Filter by loan status"
// @Param			title	query	string	false	"Filter by title"
// @Param			search	query	string	false	"Search for this text in the title"
// @Param			offset	query	uint	false	"The offset of the first loan returned. Defaults to 0."
// @Param			limit	query	int		false	"Maximum number of loans to return. Defaults to 50."
func GetLoans(c *gin.Context) {
	var filter LoanQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	// Get the fields that we are filtering for
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	filterModel, err := filter.model()
	if err != nil {
		s := err.Error()
		c.JSON(status(err), LoanListResponse{
			Error: &s,
		})
		return
	}

	q := models.DB.
		Order("created_at DESC").
		Where(&filterModel, queryFields...)

	q = titleFilters(q, setFields, filter.Title, filter.Search)

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 loans and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var loans []models.Loan
	err = q.Find(&loans).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), LoanListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), LoanListResponse{
			Error: &s,
		})
		return
	}

	data := make([]Loan, 0)
	for _, loan := range loans {
		data = append(data, newLoan(c, loan))
	}

	c.JSON(http.StatusOK, LoanListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get loan
// @Description	Returns a specific loan
// @Tags			Loans
// @Produce		json
// @Success		200	{object}	LoanResponse
// @Failure		400	{object}	LoanResponse
// @Failure		404	{object}	LoanResponse
// @Failure		500	{object}	LoanResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/loans/{id} [get]
func GetLoan(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), LoanResponse{
			Error: &s,
		})
		return
	}

	var loan models.Loan
	err = models.DB.First(&loan, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), LoanResponse{
			Error: &s,
		})
		return
	}

	data := newLoan(c, loan)
	c.JSON(http.StatusOK, LoanResponse{Data: &data})
}

// @Summary		Update loan
// @Description	Update an existing loan. Only values to be updated need to be specified. The status can not be updated here, use the status endpoint for that.
// @Tags			Loans
// @Accept			json
// @Produce		json
// @Success		200		{object}	LoanResponse
// @Failure		400		{object}	LoanResponse
// @Failure		404		{object}	LoanResponse
// @Failure		500		{object}	LoanResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			loan	body		LoanEditable	true	"Loan"
// @Router			/v1/loans/{id} [patch]
func UpdateLoan(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), LoanResponse{
			Error: &s,
		})
		return
	}

	var loan models.Loan
	err = models.DB.First(&loan, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), LoanResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, LoanEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), LoanResponse{
			Error: &s,
		})
		return
	}

	var data LoanEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), LoanResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Model(&loan).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), LoanResponse{
			Error: &s,
		})
		return
	}

	if loan.Status == models.LoanStatusApproved {
		rebalance(attributionYear(loan))
	}

	r := newLoan(c, loan)
	c.JSON(http.StatusOK, LoanResponse{Data: &r})
}

// @Summary		Update loan status
// @Description	Approves or rejects a pending loan. Approval stamps the approval time, which fixes the year the loan draws its capital from.
// @Tags			Loans
// @Accept			json
// @Produce		json
// @Success		200		{object}	LoanResponse
// @Failure		400		{object}	LoanResponse
// @Failure		404		{object}	LoanResponse
// @Failure		500		{object}	LoanResponse
// @Param			id		path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			status	body		LoanStatusEditable	true	"Status"
// @Router			/v1/loans/{id}/status [patch]
func UpdateLoanStatus(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), LoanResponse{
			Error: &s,
		})
		return
	}

	var data LoanStatusEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), LoanResponse{
			Error: &s,
		})
		return
	}

	if !slices.Contains([]models.LoanStatus{models.LoanStatusPending, models.LoanStatusApproved, models.LoanStatusRejected}, data.Status) {
		s := errLoanStatusUnknown.Error()
		c.JSON(http.StatusBadRequest, LoanResponse{
			Error: &s,
		})
		return
	}

	var loan models.Loan
	err = models.DB.First(&loan, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), LoanResponse{
			Error: &s,
		})
		return
	}

	err = loan.SetStatus(models.DB, data.Status)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), LoanResponse{
			Error: &s,
		})
		return
	}

	rebalance(attributionYear(loan))

	r := newLoan(c, loan)
	c.JSON(http.StatusOK, LoanResponse{Data: &r})
}

// @Summary		Delete loan
// @Description	Deletes a loan and its repayment schedule
// @Tags			Loans
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/loans/{id} [delete]
func DeleteLoan(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var loan models.Loan
	err = models.DB.First(&loan, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Where("loan_id = ?", loan.ID).Delete(&models.LoanRepayment{}).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&loan).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	if loan.Status == models.LoanStatusApproved {
		rebalance(attributionYear(loan))
	}

	c.JSON(http.StatusNoContent, nil)
}

// @Summary		Get repayment schedule
// @Description	Returns the repayment schedule of a loan, ordered by installment number
// @Tags			Loans
// @Produce		json
// @Success		200	{object}	RepaymentListResponse
// @Failure		400	{object}	RepaymentListResponse
// @Failure		404	{object}	RepaymentListResponse
// @Failure		500	{object}	RepaymentListResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/loans/{id}/repayments [get]
func GetLoanRepayments(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RepaymentListResponse{
			Error: &s,
		})
		return
	}

	var loan models.Loan
	err = models.DB.First(&loan, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RepaymentListResponse{
			Error: &s,
		})
		return
	}

	repayments, err := loan.Repayments(models.DB)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RepaymentListResponse{
			Error: &s,
		})
		return
	}

	data := make([]Repayment, 0)
	for _, repayment := range repayments {
		data = append(data, newRepayment(c, repayment))
	}

	c.JSON(http.StatusOK, RepaymentListResponse{
		Data: data,
	})
}
