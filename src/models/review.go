package models

import "time"

type Review struct {
	ID             string  `gorm:"primaryKey;default:gen_random_uuid()" json:"id"`
	ReviewerID     string  `json:"reviewer_id"`
	RevieweeTeamID string  `json:"reviewee_team_id"`
	ScrimID        *string `json:"scrim_id,omitempty"`
	Rating         int     `json:"rating"`
	Comment        *string `json:"comment,omitempty"`
	IsPositive     *bool   `gorm:"default:true" json:"is_positive"`

	Reviewer     *User  `gorm:"foreignKey:reviewer_id" json:"reviewer,omitempty"`
	RevieweeTeam *Team  `gorm:"foreignKey:reviewee_team_id" json:"-"`
	Scrim        *Scrim `gorm:"foreignKey:scrim_id" json:"-"`

	CreatedAt time.Time `gorm:"autoCreateTime:nano" json:"created_at"`
}
