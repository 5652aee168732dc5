package storage

import (
	"time"

	"scrimhub/src/db"
	"scrimhub/src/models"
	"scrimhub/src/types"
)

func CreateSession(sid string, sess types.JSONB, expire time.Time) error {
	session := models.Session{
		SID:    sid,
		Sess:   sess,
		Expire: expire,
	}
	return db.GetDb().Create(&session).Error
}

func DeleteSession(sid string) error {
	return db.GetDb().
		Where("sid = ?", sid).
		Delete(&models.Session{}).
		Error
}

// PruneExpiredSessions clears stale rows; run once at startup.
func PruneExpiredSessions() (int64, error) {
	res := db.GetDb().
		Where("expire < ?", time.Now()).
		Delete(&models.Session{})
	return res.RowsAffected, res.Error
}
