package storage

import (
	"testing"

	"scrimhub/src/types"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestUpsertUser(t *testing.T) {
	_, mock := newMockDB()

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "users"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	email := "ana@example.com"
	first := "Ana"
	user, err := UpsertUser(&types.UpsertUserData{
		ID:        "user-1",
		Email:     &email,
		FirstName: &first,
	})
	assert.Nil(t, err)
	assert.Equal(t, "user-1", user.ID)
	assert.Equal(t, email, *user.Email)
	assert.Nil(t, mock.ExpectationsWereMet())
}

func TestGetUserNotFound(t *testing.T) {
	_, mock := newMockDB()

	mock.ExpectQuery(`SELECT (.+) FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := GetUser("ghost")
	assert.NotNil(t, err)
}
