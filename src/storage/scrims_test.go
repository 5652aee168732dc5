package storage

import (
	"testing"
	"time"

	"scrimhub/src/types"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestGetAvailableScrims(t *testing.T) {
	_, mock := newMockDB()

	scheduled := time.Date(2024, 6, 1, 22, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`SELECT (.+) FROM "scrims"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "host_team_id", "scheduled_at", "format", "servers", "status"}).
			AddRow("scrim-1", "team-h", scheduled, "Bo3", "{HK,SG}", "open"))
	mock.ExpectQuery(`SELECT (.+) FROM "teams"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "region"}).
			AddRow("team-h", "Night Owls", "APAC"))

	scrims, err := GetAvailableScrims(&types.ScrimQueryFilters{
		Date:    "2024-06-01",
		Servers: []string{"SG"},
	})
	assert.Nil(t, err)
	assert.Len(t, scrims, 1)
	assert.Equal(t, types.SCRIM_OPEN, scrims[0].Status)
	assert.Contains(t, []string(scrims[0].Servers), "SG")
	assert.NotNil(t, scrims[0].HostTeam)
	assert.Equal(t, "Night Owls", scrims[0].HostTeam.Name)
	assert.Nil(t, mock.ExpectationsWereMet())
}

func TestGetAvailableScrimsBadDate(t *testing.T) {
	newMockDB()

	_, err := GetAvailableScrims(&types.ScrimQueryFilters{Date: "junk"})
	assert.NotNil(t, err)
}

func TestBookScrim(t *testing.T) {
	_, mock := newMockDB()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM "scrims"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "host_team_id", "status"}).
			AddRow("scrim-1", "team-h", "open"))
	mock.ExpectExec(`UPDATE "scrims" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := BookScrim("scrim-1", "team-o")
	assert.Nil(t, err)
	assert.Nil(t, mock.ExpectationsWereMet())
}

func TestBookScrimConflict(t *testing.T) {
	_, mock := newMockDB()

	// Slot already flipped to booked by a concurrent request: the guarded
	// update matches zero rows.
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM "scrims"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "host_team_id", "status"}).
			AddRow("scrim-1", "team-h", "booked"))
	mock.ExpectExec(`UPDATE "scrims" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := BookScrim("scrim-1", "team-z")
	assert.ErrorIs(t, err, ErrBookingConflict)
	assert.Nil(t, mock.ExpectationsWereMet())
}

func TestBookScrimOwnTeam(t *testing.T) {
	_, mock := newMockDB()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM "scrims"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "host_team_id", "status"}).
			AddRow("scrim-1", "team-h", "open"))
	mock.ExpectRollback()

	err := BookScrim("scrim-1", "team-h")
	assert.ErrorIs(t, err, ErrOwnScrim)
	assert.Nil(t, mock.ExpectationsWereMet())
}

func TestUpdateScrimStatusInvalidTransition(t *testing.T) {
	_, mock := newMockDB()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM "scrims"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "host_team_id", "status"}).
			AddRow("scrim-1", "team-h", "completed"))
	mock.ExpectRollback()

	err := UpdateScrimStatus("scrim-1", types.SCRIM_OPEN)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Nil(t, mock.ExpectationsWereMet())
}

func TestUpdateScrimStatusAllowed(t *testing.T) {
	_, mock := newMockDB()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM "scrims"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "host_team_id", "status"}).
			AddRow("scrim-1", "team-h", "booked"))
	mock.ExpectExec(`UPDATE "scrims" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := UpdateScrimStatus("scrim-1", types.SCRIM_COMPLETED)
	assert.Nil(t, err)
	assert.Nil(t, mock.ExpectationsWereMet())
}

func TestCreateScrimDefaultsToOpen(t *testing.T) {
	_, mock := newMockDB()

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "scrims"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "status"}).
			AddRow("scrim-1", "open"))
	mock.ExpectCommit()

	scrim, err := CreateScrim("team-h", &types.CreateScrimRequestBody{
		TeamID:      "team-h",
		ScheduledAt: "2024-06-01T22:00:00Z",
		Format:      "Bo3",
		Servers:     []string{"HK", "SG"},
		GameMode:    "Competitive",
	})
	assert.Nil(t, err)
	assert.Equal(t, "scrim-1", scrim.ID)
	assert.Equal(t, types.SCRIM_OPEN, scrim.Status)
	assert.Nil(t, mock.ExpectationsWereMet())
}
