package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ExerciseLog records one exercise session.
type ExerciseLog struct {
	ID              string    `gorm:"primaryKey;size:36" json:"id"`
	UserID          string    `gorm:"size:32;index:idx_exercise_user_date" json:"user_id"`
	ExerciseType    string    `gorm:"size:64" json:"exercise_type"`
	DurationMinutes int       `json:"duration_minutes"`
	Notes           string    `gorm:"size:512" json:"notes,omitempty"`
	LoggedAt        time.Time `json:"logged_at"`
	Date            string    `gorm:"size:10;index:idx_exercise_user_date" json:"date"`
}

// BeforeCreate assigns the generated id and the creation timestamp.
func (l *ExerciseLog) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	if l.LoggedAt.IsZero() {
		l.LoggedAt = time.Now().UTC()
	}
	return nil
}
