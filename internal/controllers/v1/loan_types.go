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

// LoanEditable represents all user configurable parameters
type LoanEditable struct {
	MemberID        uuid.UUID       `json:"memberId" example:"af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"` // ID of the member requesting the loan
	Type            models.LoanType `json:"type" example:"standard"`                                 // Type of the loan
	Title           string          `json:"title" example:"Car repair" default:""`                   // Title of the loan request
	Amount          decimal.Decimal `json:"amount" example:"150" minimum:"0.00000001"`               // Requested amount
	RepaymentMonths uint            `json:"repaymentMonths" example:"12" default:"12"`               // Number of monthly installments
}

func (editable LoanEditable) model() models.Loan {
	return models.Loan{
		MemberID:        editable.MemberID,
		Type:            editable.Type,
		Title:           editable.Title,
		Amount:          editable.Amount,
		RepaymentMonths: editable.RepaymentMonths,
	}
}

// LoanStatusEditable contains the fields of a loan only a guardian may change
type LoanStatusEditable struct {
	Status models.LoanStatus `json:"status" example:"approved"` // Status of the loan
}

type LoanLinks struct {
	Self       string `json:"self" example:"https://example.com/api/v1/loans/49ea3d38-9b21-4b4b-a4a4-8dd2a54f0f86"`                  // The loan itself
	Member     string `json:"member" example:"https://example.com/api/v1/members/af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"`              // The member who requested the loan
	Repayments string `json:"repayments" example:"https://example.com/api/v1/loans/49ea3d38-9b21-4b4b-a4a4-8dd2a54f0f86/repayments"` // The repayment schedule of the loan
}

type Loan struct {
	models.DefaultModel
	LoanEditable
	Status     models.LoanStatus `json:"status" example:"pending"`                  // Status of the loan
	ApprovedAt *time.Time        `json:"approvedAt" example:"2024-03-02T07:12:00Z"` // Time the loan was approved, if it was
	Links      LoanLinks         `json:"links"`
}

func newLoan(c *gin.Context, model models.Loan) Loan {
	url := c.GetString(string(models.DBContextURL))

	return Loan{
		DefaultModel: model.DefaultModel,
		LoanEditable: LoanEditable{
			MemberID:        model.MemberID,
			Type:            model.Type,
			Title:           model.Title,
			Amount:          model.Amount,
			RepaymentMonths: model.RepaymentMonths,
		},
		Status:     model.Status,
		ApprovedAt: model.ApprovedAt,
		Links: LoanLinks{
			Self:       fmt.Sprintf("%s/v1/loans/%s", url, model.ID),
			Member:     fmt.Sprintf("%s/v1/members/%s", url, model.MemberID),
			Repayments: fmt.Sprintf("%s/v1/loans/%s/repayments", url, model.ID),
		},
	}
}

type LoanListResponse struct {
	Data       []Loan      `json:"data"`                                                          // List of loans
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type LoanResponse struct {
	Data  *Loan   `json:"data"`                                                          // Data for the loan
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type LoanQueryFilter struct {
	MemberID ez_uuid.UUID `form:"member"`                     // By ID of the member
	Type     string       `form:"type"`                       // By loan type
	Status   string       `form:"status"`                     // By loan status
	Title    string       `form:"title" filterField:"false"`  // By title
	Search   string       `form:"search" filterField:"false"` // By string in the title
	Offset   uint         `form:"offset" filterField:"false"` // The offset of the first loan returned. Defaults to 0.
	Limit    int          `form:"limit" filterField:"false"`  // Maximum number of loans to return. Defaults to 50.
}

func (f LoanQueryFilter) model() (models.Loan, error) {
	return models.Loan{
		MemberID: f.MemberID.UUID,
		Type:     models.LoanType(f.Type),
		Status:   models.LoanStatus(f.Status),
	}, nil
}
