package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringList stores a JSON array of strings in a text column.
type StringList []string

// Value implements driver.Valuer.
func (s StringList) Value() (driver.Value, error) {
	if len(s) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (s *StringList) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*s = StringList{}
		return nil
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return fmt.Errorf("unsupported type for StringList: %T", value)
	}
}

// UserPreferences holds per-user goal values. One row per user, created with
// defaults alongside the User and mutated via partial update only.
type UserPreferences struct {
	ID               uint       `gorm:"primaryKey" json:"-"`
	UserID           string     `gorm:"size:32;uniqueIndex;not null" json:"user_id"`
	TargetSleepHours float64    `json:"target_sleep_hours"`
	UsualSleepTime   string     `gorm:"size:8" json:"usual_sleep_time"`
	UsualWakeTime    string     `gorm:"size:8" json:"usual_wake_time"`
	LateNightDays    StringList `gorm:"type:text" json:"late_night_days"`
	DailyCalorieGoal int        `json:"daily_calorie_goal"`
	DailyProteinGoal int        `json:"daily_protein_goal"`
	SetupCompleted   bool       `json:"setup_completed"`
}

// DefaultPreferences returns the preferences document created for a new user.
func DefaultPreferences(userID string) UserPreferences {
	return UserPreferences{
		UserID:           userID,
		TargetSleepHours: 7.5,
		UsualSleepTime:   "23:00",
		UsualWakeTime:    "06:30",
		LateNightDays:    StringList{},
		DailyCalorieGoal: 2000,
		DailyProteinGoal: 100,
		SetupCompleted:   false,
	}
}
