package models

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// MemberRole is the role of a member within the family fund.
type MemberRole string

const (
	MemberRoleGuardian  MemberRole = "guardian"
	MemberRoleCustodian MemberRole = "custodian"
	MemberRoleMember    MemberRole = "member"
)

// Member represents a family member participating in the fund.
type Member struct {
	DefaultModel
	Name   string
	Role   MemberRole `gorm:"default:member"`
	Avatar string
}

var ErrMemberRoleInvalid = errors.New("the specified member role is invalid")

// BeforeSave trims whitespace and verifies the role.
func (m *Member) BeforeSave(_ *gorm.DB) error {
	m.Name = strings.TrimSpace(m.Name)
	m.Avatar = strings.TrimSpace(m.Avatar)

	if m.Role == "" {
		m.Role = MemberRoleMember
	}

	switch m.Role {
	case MemberRoleGuardian, MemberRoleCustodian, MemberRoleMember:
	default:
		return fmt.Errorf("%w: %s", ErrMemberRoleInvalid, m.Role)
	}

	return nil
}
