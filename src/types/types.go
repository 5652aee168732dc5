package types

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"
)

type Timestamps struct {
	CreatedAt time.Time      `gorm:"autoCreateTime:nano" json:"created_at,omitempty"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime:nano" json:"updated_at,omitempty"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty,omitnil"`
}

type JSONB map[string]any

func (a JSONB) Value() (driver.Value, error) {
	valueString, err := json.Marshal(a)
	return string(valueString), err
}
func (a *JSONB) Scan(value any) error {
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	return nil
}

type ScrimStatus string

const (
	SCRIM_OPEN      ScrimStatus = "open"
	SCRIM_BOOKED    ScrimStatus = "booked"
	SCRIM_COMPLETED ScrimStatus = "completed"
	SCRIM_CANCELLED ScrimStatus = "cancelled"
)

// scrimTransitions is the allowed lifecycle: open -> booked -> completed,
// with cancellation possible from open or booked.
var scrimTransitions = map[ScrimStatus][]ScrimStatus{
	SCRIM_OPEN:   {SCRIM_BOOKED, SCRIM_CANCELLED},
	SCRIM_BOOKED: {SCRIM_COMPLETED, SCRIM_CANCELLED},
}

func (s ScrimStatus) CanTransition(next ScrimStatus) bool {
	for _, allowed := range scrimTransitions[s] {
		if next == allowed {
			return true
		}
	}
	return false
}

const (
	ROLE_OWNER  = "owner"
	ROLE_MEMBER = "member"
)

type SimpleRequestParams struct {
	ID string `uri:"id" binding:"required"`
}

type UpsertUserData struct {
	ID              string  `json:"id"`
	Email           *string `json:"email,omitempty"`
	FirstName       *string `json:"first_name,omitempty"`
	LastName        *string `json:"last_name,omitempty"`
	ProfileImageURL *string `json:"profile_image_url,omitempty"`
}

type LoginRequestBody struct {
	IDToken string `json:"id_token" binding:"required"`
}

type CreateTeamRequestBody struct {
	Name    string  `json:"name" binding:"required"`
	LogoURL *string `json:"logo_url,omitempty"`
	Region  string  `json:"region" binding:"required"`
	Tier    *string `json:"tier,omitempty"`
}

type UpdateTeamStatsRequestBody struct {
	Rating           *float64 `json:"rating,omitempty" binding:"omitempty,min=0,max=5"`
	GamesPlayed      *int     `json:"games_played,omitempty" binding:"omitempty,min=0"`
	ResponseRate     *int     `json:"response_rate,omitempty" binding:"omitempty,min=0,max=100"`
	CancellationRate *int     `json:"cancellation_rate,omitempty" binding:"omitempty,min=0,max=100"`
}

type CreateScrimRequestBody struct {
	TeamID      string   `json:"team_id" binding:"required"`
	ScheduledAt string   `json:"scheduled_at" binding:"required,scrimdate"`
	EndTime     *string  `json:"end_time,omitempty"`
	Format      string   `json:"format" binding:"required"`
	Maps        []string `json:"maps,omitempty"`
	Servers     []string `json:"servers" binding:"required,min=1"`
	GameMode    string   `json:"game_mode,omitempty"`
	MinRank     *string  `json:"min_rank,omitempty"`
	MaxRank     *string  `json:"max_rank,omitempty"`
	Description *string  `json:"description,omitempty"`
}

type BookScrimRequestBody struct {
	TeamID string `json:"team_id" binding:"required"`
}

type UpdateScrimStatusRequestBody struct {
	NewStatus *ScrimStatus `json:"new_status" binding:"required"`
}

type CreateReviewRequestBody struct {
	Rating         int     `json:"rating" binding:"required,min=1,max=5"`
	Comment        *string `json:"comment,omitempty"`
	IsPositive     *bool   `json:"is_positive,omitempty"`
	RevieweeTeamID string  `json:"reviewee_team_id" binding:"required"`
	ScrimID        *string `json:"scrim_id,omitempty"`
}

// ScrimQueryFilters narrows the open-scrim listing. Filters combine with
// logical AND; absent fields impose no restriction. Time, Maps and Region are
// accepted for wire compatibility but not applied to the query.
type ScrimQueryFilters struct {
	Date    string
	Time    string
	Format  string
	Maps    []string
	Servers []string
	Region  string
}
