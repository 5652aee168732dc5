package storage

import (
	"testing"
	"time"

	"scrimhub/src/types"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestCreateReview(t *testing.T) {
	_, mock := newMockDB()

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "reviews"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("review-1"))
	mock.ExpectCommit()

	positive := true
	comment := "Clean comms, showed up on time"
	review, err := CreateReview("user-1", &types.CreateReviewRequestBody{
		Rating:         5,
		Comment:        &comment,
		IsPositive:     &positive,
		RevieweeTeamID: "team-1",
	})
	assert.Nil(t, err)
	assert.Equal(t, "review-1", review.ID)
	assert.Equal(t, "user-1", review.ReviewerID)
	assert.Nil(t, mock.ExpectationsWereMet())
}

func TestGetTeamReviews(t *testing.T) {
	_, mock := newMockDB()

	newer := time.Date(2024, 6, 2, 10, 0, 0, 0, time.UTC)
	older := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`SELECT (.+) FROM "reviews"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "reviewer_id", "reviewee_team_id", "rating", "created_at"}).
			AddRow("review-2", "user-2", "team-1", 4, newer).
			AddRow("review-1", "user-1", "team-1", 5, older))
	mock.ExpectQuery(`SELECT (.+) FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "first_name"}).
			AddRow("user-1", "Ana").
			AddRow("user-2", "Bo"))

	reviews, err := GetTeamReviews("team-1")
	assert.Nil(t, err)
	assert.Len(t, reviews, 2)
	assert.True(t, reviews[0].CreatedAt.After(reviews[1].CreatedAt))
	assert.NotNil(t, reviews[0].Reviewer)
	assert.NotNil(t, reviews[1].Reviewer)
	assert.Nil(t, mock.ExpectationsWereMet())
}
