package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/sunduq/backend/internal/models"
)

// ExpenseEditable represents all user configurable parameters
type ExpenseEditable struct {
	Title       string                 `json:"title" example:"Ramadan food baskets" default:""`      // Title of the expense
	Amount      decimal.Decimal        `json:"amount" example:"85.75" minimum:"0.00000001"`          // Amount of the expense
	Category    models.ExpenseCategory `json:"category" example:"charity"`                           // Category of the expense
	Description string                 `json:"description" example:"Distributed by Omar" default:""` // Description of the expense
}

func (editable ExpenseEditable) model() models.Expense {
	return models.Expense{
		Title:       editable.Title,
		Amount:      editable.Amount,
		Category:    editable.Category,
		Description: editable.Description,
	}
}

type ExpenseLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/expenses/a29bb600-2b3f-4e38-badc-23e268ab0b18"` // The expense itself
}

type Expense struct {
	models.DefaultModel
	ExpenseEditable
	Links ExpenseLinks `json:"links"`
}

func newExpense(c *gin.Context, model models.Expense) Expense {
	url := c.GetString(string(models.DBContextURL))

	return Expense{
		DefaultModel: model.DefaultModel,
		ExpenseEditable: ExpenseEditable{
			Title:       model.Title,
			Amount:      model.Amount,
			Category:    model.Category,
			Description: model.Description,
		},
		Links: ExpenseLinks{
			Self: fmt.Sprintf("%s/v1/expenses/%s", url, model.ID),
		},
	}
}

type ExpenseListResponse struct {
	Data       []Expense   `json:"data"`                                                          // List of expenses
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type ExpenseResponse struct {
	Data  *Expense `json:"data"`                                                          // Data for the expense
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type ExpenseQueryFilter struct {
	Category    string `form:"category"`                        // By category
	Title       string `form:"title" filterField:"false"`       // By title
	Description string `form:"description" filterField:"false"` // By description
	Search      string `form:"search" filterField:"false"`      // By string in title or description
	Offset      uint   `form:"offset" filterField:"false"`      // The offset of the first expense returned. Defaults to 0.
	Limit       int    `form:"limit" filterField:"false"`       // Maximum number of expenses to return. Defaults to 50.
}

func (f ExpenseQueryFilter) model() (models.Expense, error) {
	return models.Expense{
		Category: models.ExpenseCategory(f.Category),
	}, nil
}
