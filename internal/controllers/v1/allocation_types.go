package v1

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sunduq/backend/internal/capital"
)

// AllocationCheckQuery are the query parameters for a gate check.
type AllocationCheckQuery struct {
	Type     string          `form:"type" example:"loan"`      // Kind of transaction to check, "loan" or "expense"
	Amount   decimal.Decimal `form:"amount" example:"250"`     // Amount of the transaction
	Category string          `form:"category" example:"zakat"` // Category of the expense, ignored for loans
}

// AllocationResetEditable is the request body of a reset.
type AllocationResetEditable struct {
	ResetBy uuid.UUID `json:"resetBy" example:"af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"` // ID of the guardian performing the reset
}

type AllocationResponse struct {
	Data  *capital.Result `json:"data"`                                                          // The allocation snapshot
	Error *string         `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type AllocationCheckResponse struct {
	Data  *capital.Check `json:"data"`                                                          // The gate decision
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}
