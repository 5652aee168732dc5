package storage

import (
	"scrimhub/src/db"
	"scrimhub/src/models"
	"scrimhub/src/types"

	"gorm.io/gorm/clause"
)

func GetUser(id string) (*models.User, error) {
	var user models.User
	if err := db.GetDb().
		Model(&models.User{}).
		Where(&models.User{ID: id}).
		First(&user).
		Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// UpsertUser inserts the user row or, on id conflict, overwrites the mutable
// profile fields. Keeps the local record in sync with the identity provider.
func UpsertUser(data *types.UpsertUserData) (*models.User, error) {
	user := models.User{
		ID:              data.ID,
		Email:           data.Email,
		FirstName:       data.FirstName,
		LastName:        data.LastName,
		ProfileImageURL: data.ProfileImageURL,
	}
	if err := db.GetDb().
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"email", "first_name", "last_name", "profile_image_url", "updated_at"}),
		}).
		Create(&user).
		Error; err != nil {
		return nil, err
	}
	return &user, nil
}
