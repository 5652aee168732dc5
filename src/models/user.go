package models

import (
	"scrimhub/src/types"
)

// User mirrors the identity provider's profile. Rows are created on first
// login and refreshed on every subsequent one; never hard-deleted.
type User struct {
	ID              string  `gorm:"primaryKey;default:gen_random_uuid()" json:"id"`
	Email           *string `gorm:"uniqueIndex" json:"email,omitempty"`
	FirstName       *string `json:"first_name,omitempty"`
	LastName        *string `json:"last_name,omitempty"`
	ProfileImageURL *string `json:"profile_image_url,omitempty"`

	OwnedTeams  []Team        `gorm:"foreignKey:owner_id" json:"owned_teams,omitempty"`
	Memberships []*TeamMember `gorm:"foreignKey:user_id" json:"memberships,omitempty"`
	Reviews     []*Review     `gorm:"foreignKey:reviewer_id" json:"reviews,omitempty"`

	types.Timestamps
}
