package storage

import (
	"math"

	"scrimhub/src/db"
	"scrimhub/src/models"
	"scrimhub/src/types"

	"gorm.io/gorm"
)

// CreateTeam inserts the team and its owner membership as one transaction so
// a team can never exist without exactly one owner row.
func CreateTeam(ownerID string, body *types.CreateTeamRequestBody) (*models.Team, error) {
	team := models.Team{
		Name:    body.Name,
		LogoURL: body.LogoURL,
		Region:  body.Region,
		Tier:    body.Tier,
		OwnerID: ownerID,
	}
	if err := db.GetDb().Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&team).Error; err != nil {
			return err
		}
		member := models.TeamMember{
			TeamID: team.ID,
			UserID: ownerID,
			Role:   types.ROLE_OWNER,
		}
		if err := tx.Create(&member).Error; err != nil {
			return err
		}
		return nil
	}); err != nil {
		return nil, err
	}
	return &team, nil
}

func GetTeam(id string) (*models.Team, error) {
	var team models.Team
	if err := db.GetDb().
		Model(&models.Team{}).
		Where(&models.Team{ID: id}).
		First(&team).
		Error; err != nil {
		return nil, err
	}
	return &team, nil
}

// GetUserTeams returns every team the user belongs to through a membership
// row, owner or not.
func GetUserTeams(userID string) ([]models.Team, error) {
	var teams []models.Team
	if err := db.GetDb().
		Model(&models.Team{}).
		Joins("JOIN team_members ON team_members.team_id = teams.id").
		Where("team_members.user_id = ?", userID).
		Find(&teams).
		Error; err != nil {
		return nil, err
	}
	return teams, nil
}

// UpdateTeamStats merges the supplied fields into the team row. The rating is
// denormalized; callers wanting it derived from reviews use
// RecomputeTeamRating instead.
func UpdateTeamStats(teamID string, stats *types.UpdateTeamStatsRequestBody) error {
	fields := map[string]any{}
	if stats.Rating != nil {
		fields["rating"] = *stats.Rating
	}
	if stats.GamesPlayed != nil {
		fields["games_played"] = *stats.GamesPlayed
	}
	if stats.ResponseRate != nil {
		fields["response_rate"] = *stats.ResponseRate
	}
	if stats.CancellationRate != nil {
		fields["cancellation_rate"] = *stats.CancellationRate
	}
	if len(fields) == 0 {
		return nil
	}
	return db.GetDb().
		Model(&models.Team{}).
		Where("id = ?", teamID).
		Updates(fields).
		Error
}

// RecomputeTeamRating rewrites the denormalized rating as the mean of the
// team's review ratings, rounded to two fractional digits. A team with no
// reviews goes back to 0.
func RecomputeTeamRating(teamID string) (float64, error) {
	var rating float64
	err := db.GetDb().Transaction(func(tx *gorm.DB) error {
		var avg *float64
		if err := tx.
			Model(&models.Review{}).
			Where(&models.Review{RevieweeTeamID: teamID}).
			Select("AVG(rating)").
			Scan(&avg).
			Error; err != nil {
			return err
		}
		if avg != nil {
			rating = math.Round(*avg*100) / 100
		}
		return tx.
			Model(&models.Team{}).
			Where("id = ?", teamID).
			Update("rating", rating).
			Error
	})
	if err != nil {
		return 0, err
	}
	return rating, nil
}
