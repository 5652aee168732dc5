package storage

import (
	"errors"
	"testing"

	"scrimhub/src/types"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestCreateTeam(t *testing.T) {
	_, mock := newMockDB()

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "teams"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("team-1"))
	mock.ExpectQuery(`INSERT INTO "team_members"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("member-1"))
	mock.ExpectCommit()

	team, err := CreateTeam("user-1", &types.CreateTeamRequestBody{
		Name:   "Night Owls",
		Region: "APAC",
	})
	assert.Nil(t, err)
	assert.Equal(t, "team-1", team.ID)
	assert.Equal(t, "user-1", team.OwnerID)
	assert.Nil(t, mock.ExpectationsWereMet())
}

func TestCreateTeamRollsBackOnMembershipFailure(t *testing.T) {
	_, mock := newMockDB()

	// The membership insert failing must not leave an ownerless team behind.
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "teams"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("team-1"))
	mock.ExpectQuery(`INSERT INTO "team_members"`).
		WillReturnError(errors.New("insert failed"))
	mock.ExpectRollback()

	_, err := CreateTeam("user-1", &types.CreateTeamRequestBody{
		Name:   "Night Owls",
		Region: "APAC",
	})
	assert.NotNil(t, err)
	assert.Nil(t, mock.ExpectationsWereMet())
}

func TestGetUserTeams(t *testing.T) {
	_, mock := newMockDB()

	mock.ExpectQuery(`SELECT (.+) FROM "teams" JOIN team_members`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "region", "owner_id"}).
			AddRow("team-1", "Night Owls", "APAC", "user-1").
			AddRow("team-2", "Dawn Patrol", "EU", "user-2"))

	teams, err := GetUserTeams("user-1")
	assert.Nil(t, err)
	assert.Len(t, teams, 2)
	assert.Nil(t, mock.ExpectationsWereMet())
}

func TestRecomputeTeamRating(t *testing.T) {
	_, mock := newMockDB()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT AVG\(rating\) FROM "reviews"`).
		WillReturnRows(sqlmock.NewRows([]string{"avg"}).AddRow(4.333333))
	mock.ExpectExec(`UPDATE "teams" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	rating, err := RecomputeTeamRating("team-1")
	assert.Nil(t, err)
	assert.Equal(t, 4.33, rating)
	assert.Nil(t, mock.ExpectationsWereMet())
}

func TestRecomputeTeamRatingNoReviews(t *testing.T) {
	_, mock := newMockDB()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT AVG\(rating\) FROM "reviews"`).
		WillReturnRows(sqlmock.NewRows([]string{"avg"}).AddRow(nil))
	mock.ExpectExec(`UPDATE "teams" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	rating, err := RecomputeTeamRating("team-1")
	assert.Nil(t, err)
	assert.Equal(t, 0.0, rating)
	assert.Nil(t, mock.ExpectationsWereMet())
}
