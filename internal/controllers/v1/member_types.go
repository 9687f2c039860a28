package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/sunduq/backend/internal/models"
)

// MemberEditable represents all user configurable parameters
type MemberEditable struct {
	Name   string            `json:"name" example:"Aisha" default:""`      // Name of the member
	Role   models.MemberRole `json:"role" example:"guardian"`              // Role of the member in the fund
	Avatar string            `json:"avatar" example:"/avatars/aisha.webp"` // URL or path of the member's avatar
}

func (editable MemberEditable) model() models.Member {
	return models.Member{
		Name:   editable.Name,
		Role:   editable.Role,
		Avatar: editable.Avatar,
	}
}

type MemberLinks struct {
	Self          string `json:"self" example:"https://example.com/api/v1/members/af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"`                        // The member itself
	Contributions string `json:"contributions" example:"https://example.com/api/v1/contributions?member=af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"` // Contributions made by this member
	Loans         string `json:"loans" example:"https://example.com/api/v1/loans?member=af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"`                  // Loans requested by this member
}

type Member struct {
	models.DefaultModel
	MemberEditable
	Links MemberLinks `json:"links"`
}

func newMember(c *gin.Context, model models.Member) Member {
	url := c.GetString(string(models.DBContextURL))

	return Member{
		DefaultModel: model.DefaultModel,
		MemberEditable: MemberEditable{
			Name:   model.Name,
			Role:   model.Role,
			Avatar: model.Avatar,
		},
		Links: MemberLinks{
			Self:          fmt.Sprintf("%s/v1/members/%s", url, model.ID),
			Contributions: fmt.Sprintf("%s/v1/contributions?member=%s", url, model.ID),
			Loans:         fmt.Sprintf("%s/v1/loans?member=%s", url, model.ID),
		},
	}
}

type MemberListResponse struct {
	Data       []Member    `json:"data"`                                                          // List of members
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type MemberResponse struct {
	Data  *Member `json:"data"`                                                          // Data for the member
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type MemberQueryFilter struct {
	Name   string `form:"name" filterField:"false"`   // By name
	Role   string `form:"role"`                       // By role
	Search string `form:"search" filterField:"false"` // By string in name
	Offset uint   `form:"offset" filterField:"false"` // The offset of the first member returned. Defaults to 0.
	Limit  int    `form:"limit" filterField:"false"`  // Maximum number of members to return. Defaults to 50.
}

func (f MemberQueryFilter) model() (models.Member, error) {
	return models.Member{
		Role: models.MemberRole(f.Role),
	}, nil
}
