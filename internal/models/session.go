package models

import "time"

// Session is the single server-side credential record. One row (ID 1) exists
// at most; a new login overwrites it.
type Session struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	UserID    string    `gorm:"not null" json:"userId"`
	ExpiresAt time.Time `gorm:"not null" json:"expiresAt"`
}
