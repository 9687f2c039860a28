package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ContributionStatus is the approval state of a contribution.
type ContributionStatus string

const (
	ContributionStatusPending  ContributionStatus = "pending_approval"
	ContributionStatusApproved ContributionStatus = "approved"
)

// Contribution represents a monthly sum a member pays into the fund.
//
// Year and Month are the period the member designated when submitting, not
// the time the contribution was recorded. Net asset calculations attribute
// the contribution to this declared period.
type Contribution struct {
	DefaultModel
	MemberID   uuid.UUID
	Member     Member          `json:"-"`
	Year       uint            `gorm:"index"`
	Month      uint8           `gorm:"check:month >= 1 AND month <= 12"`
	Amount     decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Status     ContributionStatus
	ApprovedAt *time.Time
}

var (
	ErrContributionStatusInvalid     = errors.New("the specified contribution status is invalid")
	ErrContributionAmountNotPositive = errors.New("contribution amounts must be larger than zero")
)

func (c *Contribution) BeforeSave(_ *gorm.DB) error {
	if c.Status == "" {
		c.Status = ContributionStatusPending
	}

	switch c.Status {
	case ContributionStatusPending, ContributionStatusApproved:
	default:
		return fmt.Errorf("%w: %s", ErrContributionStatusInvalid, c.Status)
	}

	if !c.Amount.IsPositive() {
		return ErrContributionAmountNotPositive
	}

	if c.ApprovedAt != nil {
		t := c.ApprovedAt.In(time.UTC)
		c.ApprovedAt = &t
	}

	return nil
}

func (c *Contribution) BeforeCreate(tx *gorm.DB) error {
	_ = c.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*Contribution)
	return tx.First(&Member{}, toSave.MemberID).Error
}

// Approve marks the contribution as approved and stamps the approval time.
// Approved contributions are immutable except for deletion.
func (c *Contribution) Approve(db *gorm.DB) error {
	now := time.Now().In(time.UTC)

	return db.Model(c).Updates(Contribution{
		Status:     ContributionStatusApproved,
		ApprovedAt: &now,
	}).Error
}
