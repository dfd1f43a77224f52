package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SpendingLog records one expense.
type SpendingLog struct {
	ID       string    `gorm:"primaryKey;size:36" json:"id"`
	UserID   string    `gorm:"size:32;index:idx_spending_user_date" json:"user_id"`
	Amount   float64   `json:"amount"`
	Category string    `gorm:"size:64" json:"category"`
	Notes    string    `gorm:"size:512" json:"notes"`
	LoggedAt time.Time `json:"logged_at"`
	Date     string    `gorm:"size:10;index:idx_spending_user_date" json:"date"`
}

// BeforeCreate assigns the generated id and the creation timestamp.
func (l *SpendingLog) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	if l.LoggedAt.IsZero() {
		l.LoggedAt = time.Now().UTC()
	}
	return nil
}
