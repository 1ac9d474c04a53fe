package models

import (
	"time"

	"gorm.io/datatypes"
)

// RegistrationStatus is the review state of a league signup
type RegistrationStatus string

const (
	RegistrationPending  RegistrationStatus = "pending"
	RegistrationApproved RegistrationStatus = "approved"
	RegistrationRejected RegistrationStatus = "rejected"
)

// ParseRegistrationStatus returns false for anything outside the three known states
func ParseRegistrationStatus(s string) (RegistrationStatus, bool) {
	switch RegistrationStatus(s) {
	case RegistrationPending, RegistrationApproved, RegistrationRejected:
		return RegistrationStatus(s), true
	}
	return "", false
}

// Cricket roles a player can register for
const (
	PlayerRoleBatsman      = "Batsman"
	PlayerRoleBowler       = "Bowler"
	PlayerRoleAllRounder   = "All-rounder"
	PlayerRoleWicketkeeper = "Wicketkeeper"
)

// DefaultLeagueType is used when a signup does not name a league
const DefaultLeagueType = "trial"

// Registration is a player's league signup
type Registration struct {
	Base
	LeagueType   string                      `gorm:"not null;default:trial;uniqueIndex:idx_registration_email_league;index" json:"leagueType"`
	Name         string                      `gorm:"not null" json:"name"`
	Age          int                         `gorm:"not null" json:"age"`
	Mobile       string                      `gorm:"type:varchar(10);not null" json:"mobile"`
	Email        string                      `gorm:"not null;uniqueIndex:idx_registration_email_league" json:"email"`
	District     string                      `gorm:"not null" json:"district"`
	State        string                      `gorm:"not null" json:"state"`
	Role         string                      `gorm:"not null" json:"role"`
	ProfileImage *string                     `json:"profileImage"`
	Documents    datatypes.JSONSlice[string] `json:"documents"`
	Status       RegistrationStatus          `gorm:"type:varchar(20);not null;default:pending;index" json:"status"`
	RegisteredAt time.Time                   `gorm:"index" json:"registeredAt"`
}
