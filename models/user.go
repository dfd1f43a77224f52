package models

import (
	"time"
)

// User is created on the first successful session exchange for a new email
// and is never deleted by the application itself.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	UserID    string    `gorm:"size:32;uniqueIndex;not null" json:"user_id"`
	Email     string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Name      string    `gorm:"size:255" json:"name"`
	Picture   string    `gorm:"size:512" json:"picture,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
