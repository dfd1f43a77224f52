package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NutritionLog stores one meal. Calories, protein and is_healthy come from
// the meal analysis service and are zeroed when the analysis fails.
type NutritionLog struct {
	ID              string    `gorm:"primaryKey;size:36" json:"id"`
	UserID          string    `gorm:"size:32;index:idx_nutrition_user_date" json:"user_id"`
	MealDescription string    `gorm:"type:text" json:"meal_description"`
	Calories        int       `json:"calories"`
	Protein         float64   `json:"protein"`
	IsHealthy       bool      `json:"is_healthy"`
	MealType        string    `gorm:"size:32" json:"meal_type"`
	LoggedAt        time.Time `json:"logged_at"`
	Date            string    `gorm:"size:10;index:idx_nutrition_user_date" json:"date"`
}

// BeforeCreate assigns the generated id and the creation timestamp.
func (l *NutritionLog) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	if l.LoggedAt.IsZero() {
		l.LoggedAt = time.Now().UTC()
	}
	return nil
}
