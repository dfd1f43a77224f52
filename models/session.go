package models

import "time"

// UserSession maps an opaque upstream-minted token to a user. At most one
// session is kept per user: a new login deletes all prior rows first.
type UserSession struct {
	ID           uint      `gorm:"primaryKey" json:"-"`
	UserID       string    `gorm:"size:32;index;not null" json:"user_id"`
	SessionToken string    `gorm:"size:255;uniqueIndex;not null" json:"session_token"`
	ExpiresAt    time.Time `gorm:"not null" json:"expires_at"`
	CreatedAt    time.Time `json:"created_at"`
}
