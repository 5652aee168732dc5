package models

import (
	"time"

	"scrimhub/src/types"
)

type Team struct {
	ID               string  `gorm:"primaryKey;default:gen_random_uuid()" json:"id"`
	Name             string  `json:"name"`
	LogoURL          *string `json:"logo_url,omitempty"`
	Region           string  `json:"region"`
	Tier             *string `json:"tier,omitempty"`
	Rating           float64 `gorm:"type:decimal(3,2);default:0.00" json:"rating"`
	GamesPlayed      int     `gorm:"default:0" json:"games_played"`
	ResponseRate     int     `gorm:"default:100" json:"response_rate"`
	CancellationRate int     `gorm:"default:0" json:"cancellation_rate"`
	OwnerID          string  `json:"owner_id"`

	Owner   User          `gorm:"foreignKey:owner_id" json:"-"`
	Members []*TeamMember `gorm:"foreignKey:team_id" json:"members,omitempty"`

	types.Timestamps
}

type TeamMember struct {
	ID       string    `gorm:"primaryKey;default:gen_random_uuid()" json:"id"`
	TeamID   string    `json:"team_id"`
	UserID   string    `json:"user_id"`
	Role     string    `gorm:"default:'member'" json:"role"`
	JoinedAt time.Time `gorm:"autoCreateTime" json:"joined_at"`

	Team Team `gorm:"foreignKey:team_id" json:"-"`
	User User `gorm:"foreignKey:user_id" json:"-"`
}
