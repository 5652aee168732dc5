package models

import (
	"time"

	"scrimhub/src/types"

	"github.com/lib/pq"
)

// Scrim is a posted practice slot. OpponentTeamID stays nil while the slot is
// open and is set exactly once when a booking lands.
type Scrim struct {
	ID             string            `gorm:"primaryKey;default:gen_random_uuid()" json:"id"`
	HostTeamID     string            `json:"host_team_id"`
	OpponentTeamID *string           `json:"opponent_team_id,omitempty"`
	ScheduledAt    time.Time         `json:"scheduled_at"`
	EndTime        *time.Time        `json:"end_time,omitempty"`
	Format         string            `json:"format"`
	Maps           pq.StringArray    `gorm:"type:text[]" json:"maps"`
	Servers        pq.StringArray    `gorm:"type:text[]" json:"servers"`
	Status         types.ScrimStatus `gorm:"default:'open'" json:"status"`
	GameMode       string            `gorm:"default:'Competitive'" json:"game_mode"`
	MinRank        *string           `json:"min_rank,omitempty"`
	MaxRank        *string           `json:"max_rank,omitempty"`
	Description    *string           `json:"description,omitempty"`

	HostTeam     *Team `gorm:"foreignKey:host_team_id" json:"host_team,omitempty"`
	OpponentTeam *Team `gorm:"foreignKey:opponent_team_id" json:"opponent_team,omitempty"`

	types.Timestamps
}
