package storage

import (
	"scrimhub/src/db"
	"scrimhub/src/models"
	"scrimhub/src/types"
)

// CreateReview stores post-match feedback. Nothing ties the positive flag to
// the numeric rating, and a reviewer may review the same team more than once.
func CreateReview(reviewerID string, body *types.CreateReviewRequestBody) (*models.Review, error) {
	review := models.Review{
		ReviewerID:     reviewerID,
		RevieweeTeamID: body.RevieweeTeamID,
		ScrimID:        body.ScrimID,
		Rating:         body.Rating,
		Comment:        body.Comment,
		IsPositive:     body.IsPositive,
	}
	if err := db.GetDb().Create(&review).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

func GetTeamReviews(teamID string) ([]models.Review, error) {
	var reviews []models.Review
	if err := db.GetDb().
		Model(&models.Review{}).
		Where(&models.Review{RevieweeTeamID: teamID}).
		Preload("Reviewer").
		Order("created_at desc").
		Find(&reviews).
		Error; err != nil {
		return nil, err
	}
	return reviews, nil
}
