package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sunduq/backend/internal/httputil"
	"github.com/sunduq/backend/internal/models"
	"golang.org/x/exp/slices"
)

// RegisterMemberRoutes registers the routes for members with
// the RouterGroup that is passed.
func RegisterMemberRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsMemberList)
		r.GET("", GetMembers)
		r.POST("", CreateMember)
	}

	// Member with ID
	{
		r.OPTIONS("/:id", OptionsMemberDetail)
		r.GET("/:id", GetMember)
		r.PATCH("/:id", UpdateMember)
		r.DELETE("/:id", DeleteMember)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Members
// @Success		204
// @Router			/v1/members [options]
func OptionsMemberList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Members
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/members/{id} [options]
func OptionsMemberDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.Member{})
}

// @Summary		Create member
// @Description	Creates a new member of the family fund
// @Tags			Members
// @Produce		json
// @Success		201		{object}	MemberResponse
// @Failure		400		{object}	MemberResponse
// @Failure		500		{object}	MemberResponse
// @Param			member	body		MemberEditable	true	"Member"
// @Router			/v1/members [post]
func CreateMember(c *gin.Context) {
	var editable MemberEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MemberResponse{
			Error: &s,
		})
		return
	}

	member := editable.model()

	err = models.DB.Create(&member).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MemberResponse{
			Error: &s,
		})
		return
	}

	data := newMember(c, member)
	c.JSON(http.StatusCreated, MemberResponse{Data: &data})
}

// @Summary		Get members
// @Description	Returns a list of members
// @Tags			Members
// @Produce		json
// @Success		200	{object}	MemberListResponse
// @Failure		400	{object}	MemberListResponse
// @Failure		500	{object}	MemberListResponse
// @Router			/v1/members [get]
// @Param			name	query	string	false	"Filter by name"
// @Param			role	query	string	false	"Filter by role"
// @Param			search	query	string	false	"Search for this text in the name"
// @Param			offset	query	uint	false	"The offset of the first member returned. Defaults to 0."
// @Param			limit	query	int		false	"Maximum number of members to return. Defaults to 50."
func GetMembers(c *gin.Context) {
	var filter MemberQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	// Get the fields that we are filtering for
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	filterModel, err := filter.model()
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MemberListResponse{
			Error: &s,
		})
		return
	}

	q := models.DB.
		Order("name ASC").
		Where(&filterModel, queryFields...)

	q = nameFilters(q, setFields, filter.Name, filter.Search)

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 members and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var members []models.Member
	err = q.Find(&members).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MemberListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MemberListResponse{
			Error: &s,
		})
		return
	}

	data := make([]Member, 0)
	for _, member := range members {
		data = append(data, newMember(c, member))
	}

	c.JSON(http.StatusOK, MemberListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get member
// @Description	Returns a specific member
// @Tags			Members
// @Produce		json
// @Success		200	{object}	MemberResponse
// @Failure		400	{object}	MemberResponse
// @Failure		404	{object}	MemberResponse
// @Failure		500	{object}	MemberResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/members/{id} [get]
func GetMember(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MemberResponse{
			Error: &s,
		})
		return
	}

	var member models.Member
	err = models.DB.First(&member, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MemberResponse{
			Error: &s,
		})
		return
	}

	data := newMember(c, member)
	c.JSON(http.StatusOK, MemberResponse{Data: &data})
}

// @Summary		Update member
// @Description	Update an existing member. Only values to be updated need to be specified.
// @Tags			Members
// @Accept			json
// @Produce		json
// @Success		200		{object}	MemberResponse
// @Failure		400		{object}	MemberResponse
// @Failure		404		{object}	MemberResponse
// @Failure		500		{object}	MemberResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			member	body		MemberEditable	true	"Member"
// @Router			/v1/members/{id} [patch]
func UpdateMember(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MemberResponse{
			Error: &s,
		})
		return
	}

	var member models.Member
	err = models.DB.First(&member, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MemberResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, MemberEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MemberResponse{
			Error: &s,
		})
		return
	}

	var data MemberEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MemberResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Model(&member).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MemberResponse{
			Error: &s,
		})
		return
	}

	r := newMember(c, member)
	c.JSON(http.StatusOK, MemberResponse{Data: &r})
}

// @Summary		Delete member
// @Description	Deletes a member
// @Tags			Members
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/members/{id} [delete]
func DeleteMember(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var member models.Member
	err = models.DB.First(&member, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&member).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
