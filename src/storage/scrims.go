package storage

import (
	"errors"
	"fmt"
	"time"

	"scrimhub/src/config"
	"scrimhub/src/db"
	"scrimhub/src/models"
	"scrimhub/src/types"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

var (
	// ErrBookingConflict is returned when a booking loses the race for an
	// open slot: the guarded update matched zero rows.
	ErrBookingConflict = errors.New("scrim is no longer open for booking")

	ErrOwnScrim = errors.New("host team cannot book its own scrim")

	ErrInvalidTransition = errors.New("invalid scrim status transition")
)

func CreateScrim(hostTeamID string, body *types.CreateScrimRequestBody) (*models.Scrim, error) {
	scheduledAt, err := time.Parse(config.TIME_PARSE_FORMAT, body.ScheduledAt)
	if err != nil {
		return nil, err
	}
	var endTime *time.Time
	if body.EndTime != nil {
		et, err := time.Parse(config.TIME_PARSE_FORMAT, *body.EndTime)
		if err != nil {
			return nil, err
		}
		endTime = &et
	}
	scrim := models.Scrim{
		HostTeamID:  hostTeamID,
		ScheduledAt: scheduledAt,
		EndTime:     endTime,
		Format:      body.Format,
		Maps:        pq.StringArray(body.Maps),
		Servers:     pq.StringArray(body.Servers),
		GameMode:    body.GameMode,
		MinRank:     body.MinRank,
		MaxRank:     body.MaxRank,
		Description: body.Description,
	}
	if err := db.GetDb().Create(&scrim).Error; err != nil {
		return nil, err
	}
	return &scrim, nil
}

func GetScrim(id string) (*models.Scrim, error) {
	var scrim models.Scrim
	if err := db.GetDb().
		Model(&models.Scrim{}).
		Where(&models.Scrim{ID: id}).
		First(&scrim).
		Error; err != nil {
		return nil, err
	}
	return &scrim, nil
}

// GetAvailableScrims lists open scrims with their host team, soonest first.
// Filters combine with AND; the date filter covers [day 00:00, next day
// 00:00) and the servers filter is a Postgres array-overlap test.
func GetAvailableScrims(filters *types.ScrimQueryFilters) ([]models.Scrim, error) {
	q := db.GetDb().
		Model(&models.Scrim{}).
		Where(&models.Scrim{Status: types.SCRIM_OPEN}).
		Preload("HostTeam")
	if filters != nil {
		if filters.Date != "" {
			startOfDay, err := time.Parse(config.DATE_PARSE_FORMAT, filters.Date)
			if err != nil {
				return nil, fmt.Errorf("invalid date filter %q: %w", filters.Date, err)
			}
			q = q.Where("scheduled_at >= ? AND scheduled_at < ?", startOfDay, startOfDay.AddDate(0, 0, 1))
		}
		if len(filters.Servers) > 0 {
			q = q.Where("servers && ?", pq.StringArray(filters.Servers))
		}
		if filters.Format != "" {
			q = q.Where("format = ?", filters.Format)
		}
	}
	var scrims []models.Scrim
	if err := q.
		Order("scheduled_at asc").
		Find(&scrims).
		Error; err != nil {
		return nil, err
	}
	return scrims, nil
}

// BookScrim assigns the opponent and flips the slot to booked, but only while
// it is still open: the update carries a status precondition and a zero-row
// result surfaces as ErrBookingConflict instead of silently overwriting an
// earlier booking.
func BookScrim(scrimID string, opponentTeamID string) error {
	return db.GetDb().Transaction(func(tx *gorm.DB) error {
		var scrim models.Scrim
		if err := tx.
			Model(&models.Scrim{}).
			Where(&models.Scrim{ID: scrimID}).
			First(&scrim).
			Error; err != nil {
			return err
		}
		if scrim.HostTeamID == opponentTeamID {
			return ErrOwnScrim
		}
		res := tx.
			Model(&models.Scrim{}).
			Where("id = ? AND status = ?", scrimID, types.SCRIM_OPEN).
			Updates(map[string]any{
				"opponent_team_id": opponentTeamID,
				"status":           types.SCRIM_BOOKED,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrBookingConflict
		}
		return nil
	})
}

// UpdateScrimStatus applies a lifecycle transition, rejecting anything the
// state machine does not allow (e.g. completed back to open).
func UpdateScrimStatus(scrimID string, status types.ScrimStatus) error {
	return db.GetDb().Transaction(func(tx *gorm.DB) error {
		var scrim models.Scrim
		if err := tx.
			Model(&models.Scrim{}).
			Where(&models.Scrim{ID: scrimID}).
			First(&scrim).
			Error; err != nil {
			return err
		}
		if !scrim.Status.CanTransition(status) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, scrim.Status, status)
		}
		return tx.
			Model(&models.Scrim{}).
			Where("id = ?", scrimID).
			Update("status", status).
			Error
	})
}
