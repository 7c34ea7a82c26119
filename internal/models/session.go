package models

import (
	"time"

	"gorm.io/datatypes"
)

// Session is a server-side session row. Data holds the JSON identity
// snapshot {id, email, name, role}; the SID travels in an HttpOnly
// cookie.
type Session struct {
	SID       string         `gorm:"column:sid;size:255;primaryKey" json:"sid"`
	Data      datatypes.JSON `gorm:"not null" json:"data"`
	ExpiresAt time.Time      `gorm:"not null;index" json:"expires_at"`
	CreatedAt time.Time      `json:"created_at"`
}
