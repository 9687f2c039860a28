// Package capital implements the capital allocation engine.
//
// A year's net assets are locked into four percentage layers: protected,
// emergency, flexible and growth. Approved loans and expenses consume the
// flexible and emergency layers, and every new loan or expense is gated
// against the remaining available balance of its layer.
//
// The per-year CapitalAllocation row is a derived snapshot. All numbers are
// recomputed from the contribution, loan and expense tables on every call,
// so a stale snapshot heals on the next read.
package capital

import (
	"github.com/shopspring/decimal"
	"github.com/sunduq/backend/internal/models"
	"gorm.io/gorm"
)

// Layer names as reported by transaction checks.
const (
	LayerFlexible  = "flexible"
	LayerEmergency = "emergency"
)

// Percentages is the configured percentage split for the four layers.
type Percentages struct {
	Protected uint
	Emergency uint
	Flexible  uint
	Growth    uint
}

// DefaultPercentages returns the split used as long as no settings row
// exists.
func DefaultPercentages() Percentages {
	return Percentages{
		Protected: models.DefaultProtectedPercent,
		Emergency: models.DefaultEmergencyPercent,
		Flexible:  models.DefaultFlexiblePercent,
		Growth:    models.DefaultGrowthPercent,
	}
}

// percentages reads the configured split. The settings row is authoritative
// once it exists.
func percentages(db *gorm.DB) Percentages {
	var settings models.FamilySettings

	err := db.First(&settings).Error
	if err != nil {
		return DefaultPercentages()
	}

	return Percentages{
		Protected: settings.ProtectedPercent,
		Emergency: settings.EmergencyPercent,
		Flexible:  settings.FlexiblePercent,
		Growth:    settings.GrowthPercent,
	}
}

// LockedLayer is a layer that cannot be drawn from.
type LockedLayer struct {
	Amount  decimal.Decimal `json:"amount" example:"450"`
	Percent uint            `json:"percent" example:"45"`
}

// Layer is a layer with a consumption path.
type Layer struct {
	Amount    decimal.Decimal `json:"amount" example:"200"`
	Percent   uint            `json:"percent" example:"20"`
	Used      decimal.Decimal `json:"used" example:"150"`
	Available decimal.Decimal `json:"available" example:"50"`
}

// Result is the full allocation breakdown for a year.
type Result struct {
	Year      uint            `json:"year" example:"2024"`
	NetAssets decimal.Decimal `json:"netAssets" example:"1000"`
	Protected LockedLayer     `json:"protected"`
	Emergency Layer           `json:"emergency"`
	Flexible  Layer           `json:"flexible"`
	Growth    Layer           `json:"growth"`
}

// Allocate combines net assets, usage and the configured split into the
// allocation breakdown. Pure computation, no database access.
//
// The growth layer accumulates only: it has no consumption path, so it
// reports used and available as zero even though it holds its share of the
// net assets.
func Allocate(year uint, netAssets decimal.Decimal, used Usage, pct Percentages) Result {
	protectedAmount := share(netAssets, pct.Protected)
	emergencyAmount := share(netAssets, pct.Emergency)
	flexibleAmount := share(netAssets, pct.Flexible)
	growthAmount := share(netAssets, pct.Growth)

	return Result{
		Year:      year,
		NetAssets: netAssets,
		Protected: LockedLayer{
			Amount:  protectedAmount,
			Percent: pct.Protected,
		},
		Emergency: Layer{
			Amount:    emergencyAmount,
			Percent:   pct.Emergency,
			Used:      used.Emergency,
			Available: available(emergencyAmount, used.Emergency),
		},
		Flexible: Layer{
			Amount:    flexibleAmount,
			Percent:   pct.Flexible,
			Used:      used.Flexible,
			Available: available(flexibleAmount, used.Flexible),
		},
		Growth: Layer{
			Amount:    growthAmount,
			Percent:   pct.Growth,
			Used:      decimal.Zero,
			Available: decimal.Zero,
		},
	}
}

// share returns amount × percent / 100.
func share(amount decimal.Decimal, percent uint) decimal.Decimal {
	return amount.Mul(decimal.NewFromInt(int64(percent))).Div(decimal.NewFromInt(100))
}

// available returns the layer amount minus its usage, floored at zero.
func available(amount, used decimal.Decimal) decimal.Decimal {
	remaining := amount.Sub(used)
	if remaining.IsNegative() {
		return decimal.Zero
	}

	return remaining
}
