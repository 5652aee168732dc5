package models

import (
	"time"

	"scrimhub/src/types"
)

// Session rows back issued session tokens; the sid travels as the token jti.
type Session struct {
	SID    string      `gorm:"column:sid;primaryKey" json:"sid"`
	Sess   types.JSONB `gorm:"type:jsonb" json:"sess"`
	Expire time.Time   `gorm:"index" json:"expire"`
}
