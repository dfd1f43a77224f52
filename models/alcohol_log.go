package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AlcoholLog records one drink entry. standard_drinks is supplied by the
// caller (computed client-side from the catalog) and is not re-derived here.
type AlcoholLog struct {
	ID             string    `gorm:"primaryKey;size:36" json:"id"`
	UserID         string    `gorm:"size:32;index:idx_alcohol_user_date" json:"user_id"`
	DrinkID        string    `gorm:"size:64" json:"drink_id"`
	DrinkName      string    `gorm:"size:128" json:"drink_name"`
	Servings       float64   `json:"servings"`
	StandardDrinks float64   `json:"standard_drinks"`
	LoggedAt       time.Time `json:"logged_at"`
	Date           string    `gorm:"size:10;index:idx_alcohol_user_date" json:"date"`
}

// BeforeCreate assigns the generated id and the creation timestamp.
func (l *AlcoholLog) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	if l.LoggedAt.IsZero() {
		l.LoggedAt = time.Now().UTC()
	}
	return nil
}
