package v1

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sunduq/backend/internal/models"
)

type RepaymentLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/repayments/0dd2eeb6-1e84-4bd7-be03-d6d3998c1ab5"` // The repayment itself
	Loan string `json:"loan" example:"https://example.com/api/v1/loans/49ea3d38-9b21-4b4b-a4a4-8dd2a54f0f86"`      // The loan the repayment belongs to
}

type Repayment struct {
	models.DefaultModel
	LoanID            uuid.UUID              `json:"loanId" example:"49ea3d38-9b21-4b4b-a4a4-8dd2a54f0f86"` // ID of the loan
	InstallmentNumber uint                   `json:"installmentNumber" example:"3"`                         // Position of the installment in the schedule
	Amount            decimal.Decimal        `json:"amount" example:"12.5"`                                 // Amount of the installment
	DueDate           time.Time              `json:"dueDate" example:"2024-06-02T07:12:00Z"`                // Due date of the installment
	PaidAt            *time.Time             `json:"paidAt" example:"2024-06-01T18:43:00Z"`                 // Time the installment was paid, if it was
	Status            models.RepaymentStatus `json:"status" example:"scheduled"`                            // Status of the installment
	Links             RepaymentLinks         `json:"links"`
}

func newRepayment(c *gin.Context, model models.LoanRepayment) Repayment {
	url := c.GetString(string(models.DBContextURL))

	return Repayment{
		DefaultModel:      model.DefaultModel,
		LoanID:            model.LoanID,
		InstallmentNumber: model.InstallmentNumber,
		Amount:            model.Amount,
		DueDate:           model.DueDate,
		PaidAt:            model.PaidAt,
		Status:            model.Status,
		Links: RepaymentLinks{
			Self: fmt.Sprintf("%s/v1/repayments/%s", url, model.ID),
			Loan: fmt.Sprintf("%s/v1/loans/%s", url, model.LoanID),
		},
	}
}

type RepaymentListResponse struct {
	Data  []Repayment `json:"data"`                                                          // List of repayments
	Error *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type RepaymentResponse struct {
	Data  *Repayment `json:"data"`                                                          // Data for the repayment
	Error *string    `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}
