package capital

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sunduq/backend/internal/models"
	"gorm.io/gorm"
)

// Reset zeroes the snapshot's usage counters for a year, stamps ResetAt and
// ResetBy, and immediately recomputes.
//
// The recompute pulls usage from the loan and expense tables again, so any
// consumption still present in the ledger is restored right away. Reset
// only forgives usage when the underlying records are deleted as well; on
// its own it rewrites the reset stamps and nothing else. This mirrors the
// behaviour the fund's guardians rely on for auditing.
func Reset(db *gorm.DB, year uint, adminID uuid.UUID) (Result, error) {
	var allocation models.CapitalAllocation

	err := db.Where(models.CapitalAllocation{Year: year}).First(&allocation).Error
	if err != nil {
		if !errors.Is(err, models.ErrResourceNotFound) && !errors.Is(err, gorm.ErrRecordNotFound) {
			return Result{}, err
		}

		// No snapshot for this year yet, the recompute below creates it
		return Rebalance(db, year)
	}

	now := time.Now().In(time.UTC)

	err = db.Model(&allocation).Updates(map[string]interface{}{
		"flexible_used":  decimal.Zero,
		"growth_used":    decimal.Zero,
		"emergency_used": decimal.Zero,
		"reset_at":       &now,
		"reset_by":       &adminID,
	}).Error
	if err != nil {
		return Result{}, err
	}

	return Rebalance(db, year)
}
