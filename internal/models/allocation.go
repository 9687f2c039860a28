package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CapitalAllocation is the per-year snapshot of the capital layers.
//
// It is a cache of a pure function over the ledger, not a source of truth:
// every recompute overwrites all derived fields from the contribution, loan
// and expense tables. The row is created on the first recompute for a year
// and never deleted.
//
// LockedAt is stamped once at creation. ResetAt and ResetBy are only
// written by an administrative reset.
type CapitalAllocation struct {
	DefaultModel
	Year            uint            `gorm:"uniqueIndex"`
	NetAssets       decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	ProtectedAmount decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	EmergencyAmount decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	FlexibleAmount  decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	GrowthAmount    decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	FlexibleUsed    decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	GrowthUsed      decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	EmergencyUsed   decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	LockedAt        time.Time
	ResetAt         *time.Time
	ResetBy         *uuid.UUID
}
