package models

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// Default percentage split. The settings row, once created, is
// authoritative; these values are only used as long as none exists.
const (
	DefaultProtectedPercent uint = 45
	DefaultEmergencyPercent uint = 15
	DefaultFlexiblePercent  uint = 20
	DefaultGrowthPercent    uint = 20
)

// FamilySettings is the fund-wide configuration. There is exactly one row;
// reads return the first one.
type FamilySettings struct {
	DefaultModel
	FamilyName       string `gorm:"default:'Family Fund'"`
	Currency         string `gorm:"default:'OMR'"`
	ProtectedPercent uint
	EmergencyPercent uint
	FlexiblePercent  uint
	GrowthPercent    uint
}

var ErrSettingsPercentSum = errors.New("the four layer percentages must sum to 100")

// BeforeSave verifies that the configured percentages sum to 100.
// An allocation computed from any other sum would not add up to the
// net assets.
func (s *FamilySettings) BeforeSave(_ *gorm.DB) error {
	s.FamilyName = strings.TrimSpace(s.FamilyName)
	s.Currency = strings.TrimSpace(s.Currency)

	if s.ProtectedPercent+s.EmergencyPercent+s.FlexiblePercent+s.GrowthPercent != 100 {
		return ErrSettingsPercentSum
	}

	return nil
}

// GetFamilySettings returns the settings row, creating it with the default
// split when none exists yet.
func GetFamilySettings(db *gorm.DB) (FamilySettings, error) {
	var settings FamilySettings

	err := db.First(&settings).Error
	if err == nil {
		return settings, nil
	}

	if !errors.Is(err, ErrResourceNotFound) && !errors.Is(err, gorm.ErrRecordNotFound) {
		return FamilySettings{}, err
	}

	settings = FamilySettings{
		ProtectedPercent: DefaultProtectedPercent,
		EmergencyPercent: DefaultEmergencyPercent,
		FlexiblePercent:  DefaultFlexiblePercent,
		GrowthPercent:    DefaultGrowthPercent,
	}

	err = db.Create(&settings).Error
	if err != nil {
		return FamilySettings{}, err
	}

	return settings, nil
}
