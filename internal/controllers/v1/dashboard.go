package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/sunduq/backend/internal/httputil"
	"github.com/sunduq/backend/internal/models"
)

// RegisterDashboardRoutes registers the routes for the dashboard with
// the RouterGroup that is passed.
func RegisterDashboardRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/summary", OptionsDashboardSummary)
	r.GET("/summary", GetDashboardSummary)
}

// DashboardLayer is one capital layer in the all-time overview.
type DashboardLayer struct {
	ID      string          `json:"id" example:"protected"`           // Identifier of the layer
	Name    string          `json:"name" example:"Protected Capital"` // Display name of the layer
	Percent uint            `json:"percent" example:"45"`             // Percentage of net assets in this layer
	Amount  decimal.Decimal `json:"amount" example:"450"`             // Amount of net assets in this layer
	Locked  bool            `json:"locked" example:"true"`            // Is the layer displayed as locked? Emergency spending still goes through the reserve check.
}

// DashboardSummary is the all-time overview of the fund.
type DashboardSummary struct {
	FamilyName           string           `json:"familyName" example:"Al-Busaidi Fund"` // Display name of the fund
	Currency             string           `json:"currency" example:"OMR"`               // Currency code used for display
	MemberCount          int64            `json:"memberCount" example:"7"`              // Number of members
	TotalContributions   decimal.Decimal  `json:"totalContributions" example:"1250"`    // Sum of all approved contributions
	TotalLoans           decimal.Decimal  `json:"totalLoans" example:"180"`             // Sum of all approved loans
	TotalExpenses        decimal.Decimal  `json:"totalExpenses" example:"70"`           // Sum of all expenses, regardless of category
	NetAssets            decimal.Decimal  `json:"netAssets" example:"1000"`             // Contributions minus loans and expenses, floored at zero
	PendingContributions int64            `json:"pendingContributions" example:"2"`     // Number of contributions waiting for approval
	PendingLoans         int64            `json:"pendingLoans" example:"1"`             // Number of loan requests waiting for a decision
	Layers               []DashboardLayer `json:"layers"`                               // Net assets split into the four capital layers
}

type DashboardResponse struct {
	Data  *DashboardSummary `json:"data"`                                            // The dashboard summary
	Error *string           `json:"error" example:"there is no matching allocation"` // The error, if any occurred
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Dashboard
// @Success		204
// @Router			/v1/dashboard/summary [options]
func OptionsDashboardSummary(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get dashboard summary
// @Description	Returns an all-time overview of the fund: totals across all years, pending approvals and the current split of the net assets into the four capital layers.
// @Tags			Dashboard
// @Produce		json
// @Success		200	{object}	DashboardResponse
// @Failure		500	{object}	DashboardResponse
// @Router			/v1/dashboard/summary [get]
func GetDashboardSummary(c *gin.Context) {
	settings, err := models.GetFamilySettings(models.DB)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DashboardResponse{
			Error: &s,
		})
		return
	}

	summary := DashboardSummary{
		FamilyName: settings.FamilyName,
		Currency:   settings.Currency,
	}

	err = models.DB.Model(&models.Member{}).Count(&summary.MemberCount).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DashboardResponse{
			Error: &s,
		})
		return
	}

	var contributions []models.Contribution
	err = models.DB.Where(&models.Contribution{Status: models.ContributionStatusApproved}).Find(&contributions).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DashboardResponse{
			Error: &s,
		})
		return
	}

	for _, contribution := range contributions {
		summary.TotalContributions = summary.TotalContributions.Add(contribution.Amount)
	}

	var loans []models.Loan
	err = models.DB.Where(&models.Loan{Status: models.LoanStatusApproved}).Find(&loans).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DashboardResponse{
			Error: &s,
		})
		return
	}

	for _, loan := range loans {
		summary.TotalLoans = summary.TotalLoans.Add(loan.Amount)
	}

	var expenses []models.Expense
	err = models.DB.Find(&expenses).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DashboardResponse{
			Error: &s,
		})
		return
	}

	for _, expense := range expenses {
		summary.TotalExpenses = summary.TotalExpenses.Add(expense.Amount)
	}

	err = models.DB.Model(&models.Contribution{}).
		Where(&models.Contribution{Status: models.ContributionStatusPending}).
		Count(&summary.PendingContributions).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DashboardResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Model(&models.Loan{}).
		Where(&models.Loan{Status: models.LoanStatusPending}).
		Count(&summary.PendingLoans).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DashboardResponse{
			Error: &s,
		})
		return
	}

	summary.NetAssets = summary.TotalContributions.Sub(summary.TotalLoans).Sub(summary.TotalExpenses)
	if summary.NetAssets.IsNegative() {
		summary.NetAssets = decimal.Zero
	}

	hundred := decimal.NewFromInt(100)
	layer := func(id, name string, percent uint, locked bool) DashboardLayer {
		return DashboardLayer{
			ID:      id,
			Name:    name,
			Percent: percent,
			Amount:  summary.NetAssets.Mul(decimal.NewFromInt(int64(percent))).Div(hundred),
			Locked:  locked,
		}
	}

	summary.Layers = []DashboardLayer{
		layer("protected", "Protected Capital", settings.ProtectedPercent, true),
		layer("emergency", "Emergency Reserve", settings.EmergencyPercent, true),
		layer("flexible", "Flexible Capital", settings.FlexiblePercent, false),
		layer("growth", "Growth Capital", settings.GrowthPercent, true),
	}

	c.JSON(http.StatusOK, DashboardResponse{Data: &summary})
}
