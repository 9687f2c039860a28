package capital

import (
	"errors"
	"time"

	"github.com/sunduq/backend/internal/models"
	"gorm.io/gorm"
)

// Rebalance recomputes the allocation for a year and upserts the snapshot
// row. Idempotent and safe to call repeatedly: with no intervening ledger
// changes, every call produces the same result.
//
// The upsert overwrites all derived fields but leaves LockedAt, ResetAt and
// ResetBy untouched. Concurrent calls for the same year race on the upsert
// with last-write-wins semantics, which is acceptable because every read
// triggers a fresh recompute.
func Rebalance(db *gorm.DB, year uint) (Result, error) {
	pct := percentages(db)

	netAssets, err := NetAssets(db, year)
	if err != nil {
		return Result{}, err
	}

	used, err := usedAmounts(db, year)
	if err != nil {
		return Result{}, err
	}

	result := Allocate(year, netAssets, used, pct)

	var allocation models.CapitalAllocation
	err = db.Where(models.CapitalAllocation{Year: year}).First(&allocation).Error
	if err != nil {
		if !errors.Is(err, models.ErrResourceNotFound) && !errors.Is(err, gorm.ErrRecordNotFound) {
			return Result{}, err
		}

		allocation = models.CapitalAllocation{
			Year:            year,
			NetAssets:       result.NetAssets,
			ProtectedAmount: result.Protected.Amount,
			EmergencyAmount: result.Emergency.Amount,
			FlexibleAmount:  result.Flexible.Amount,
			GrowthAmount:    result.Growth.Amount,
			FlexibleUsed:    used.Flexible,
			GrowthUsed:      used.Growth,
			EmergencyUsed:   used.Emergency,
			LockedAt:        time.Now().In(time.UTC),
		}

		err = db.Create(&allocation).Error
		if err != nil {
			return Result{}, err
		}

		return result, nil
	}

	// Updates with a map so that zero values overwrite previous usage
	err = db.Model(&allocation).Updates(map[string]interface{}{
		"net_assets":       result.NetAssets,
		"protected_amount": result.Protected.Amount,
		"emergency_amount": result.Emergency.Amount,
		"flexible_amount":  result.Flexible.Amount,
		"growth_amount":    result.Growth.Amount,
		"flexible_used":    used.Flexible,
		"growth_used":      used.Growth,
		"emergency_used":   used.Emergency,
	}).Error
	if err != nil {
		return Result{}, err
	}

	return result, nil
}

// GetAllocation returns the allocation for a year. Reads are full
// recomputes, the snapshot row is only a write-through cache.
func GetAllocation(db *gorm.DB, year uint) (Result, error) {
	return Rebalance(db, year)
}
