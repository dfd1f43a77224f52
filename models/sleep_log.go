package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SleepLog stores one night's sleep. hours_slept is derived from the raw
// timestamps at creation time; the date field is caller-supplied and is the
// only key used for range queries.
type SleepLog struct {
	ID         string    `gorm:"primaryKey;size:36" json:"id"`
	UserID     string    `gorm:"size:32;index:idx_sleep_user_date" json:"user_id"`
	SleepTime  time.Time `json:"sleep_time"`
	WakeTime   time.Time `json:"wake_time"`
	HoursSlept float64   `json:"hours_slept"`
	Date       string    `gorm:"size:10;index:idx_sleep_user_date" json:"date"`
}

// BeforeCreate assigns the generated id.
func (l *SleepLog) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}
