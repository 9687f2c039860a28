package v1

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sunduq/backend/internal/models"
	ez_uuid "github.com/sunduq/backend/internal/uuid"
)

// ContributionEditable represents all user configurable parameters
type ContributionEditable struct {
	MemberID uuid.UUID       `json:"memberId" example:"af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"` // ID of the member making the contribution
	Year     uint            `json:"year" example:"2024"`                                     // Year the contribution is declared for
	Month    uint8           `json:"month" example:"3" minimum:"1" maximum:"12"`              // Month the contribution is declared for
	Amount   decimal.Decimal `json:"amount" example:"120.5" minimum:"0.00000001"`             // Amount of the contribution
}

func (editable ContributionEditable) model() models.Contribution {
	return models.Contribution{
		MemberID: editable.MemberID,
		Year:     editable.Year,
		Month:    editable.Month,
		Amount:   editable.Amount,
	}
}

type ContributionLinks struct {
	Self   string `json:"self" example:"https://example.com/api/v1/contributions/d1aae8ee-1a3d-4d7e-a6a8-9d0f885a09e4"` // The contribution itself
	Member string `json:"member" example:"https://example.com/api/v1/members/af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"`     // The member who made the contribution
}

type Contribution struct {
	models.DefaultModel
	ContributionEditable
	Status     models.ContributionStatus `json:"status" example:"pending_approval"`         // Approval status of the contribution
	ApprovedAt *time.Time                `json:"approvedAt" example:"2024-03-02T07:12:00Z"` // Time the contribution was approved, if it was
	Links      ContributionLinks         `json:"links"`
}

func newContribution(c *gin.Context, model models.Contribution) Contribution {
	url := c.GetString(string(models.DBContextURL))

	return Contribution{
		DefaultModel: model.DefaultModel,
		ContributionEditable: ContributionEditable{
			MemberID: model.MemberID,
			Year:     model.Year,
			Month:    model.Month,
			Amount:   model.Amount,
		},
		Status:     model.Status,
		ApprovedAt: model.ApprovedAt,
		Links: ContributionLinks{
			Self:   fmt.Sprintf("%s/v1/contributions/%s", url, model.ID),
			Member: fmt.Sprintf("%s/v1/members/%s", url, model.MemberID),
		},
	}
}

type ContributionListResponse struct {
	Data       []Contribution `json:"data"`                                                          // List of contributions
	Error      *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination    `json:"pagination"`                                                    // Pagination information
}

type ContributionResponse struct {
	Data  *Contribution `json:"data"`                                                          // Data for the contribution
	Error *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type ContributionQueryFilter struct {
	MemberID ez_uuid.UUID `form:"member"`                     // By ID of the member
	Year     uint         `form:"year"`                       // By declared year
	Month    uint8        `form:"month"`                      // By declared month
	Status   string       `form:"status"`                     // By approval status
	Offset   uint         `form:"offset" filterField:"false"` // The offset of the first contribution returned. Defaults to 0.
	Limit    int          `form:"limit" filterField:"false"`  // Maximum number of contributions to return. Defaults to 50.
}

func (f ContributionQueryFilter) model() (models.Contribution, error) {
	return models.Contribution{
		MemberID: f.MemberID.UUID,
		Year:     f.Year,
		Month:    f.Month,
		Status:   models.ContributionStatus(f.Status),
	}, nil
}
