package boot

import (
	"log"

	"scrimhub/src/db"
	"scrimhub/src/models"
	"scrimhub/src/storage"

	"gorm.io/gorm"
)

func InitDb() *gorm.DB {
	db := db.GetDb()

	err := db.AutoMigrate(
		&models.Session{},
		&models.User{},
		&models.Team{},
		&models.TeamMember{},
		&models.Scrim{},
		&models.Review{},
	)
	if err != nil {
		log.Fatalf("error migration: %s", err.Error())
	}

	if pruned, err := storage.PruneExpiredSessions(); err != nil {
		log.Printf("Error pruning expired sessions: %s\n", err.Error())
	} else if pruned > 0 {
		log.Printf("Pruned %d expired sessions", pruned)
	}

	return db
}
