package controllers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/LmaoGamer22487/MyWellness-App/models"
)

func ptr[T any](v T) *T { return &v }

func TestApplyPreferencesUpdate(t *testing.T) {
	t.Run("empty update leaves defaults untouched", func(t *testing.T) {
		prefs := models.DefaultPreferences("user_abc")
		applyPreferencesUpdate(&prefs, preferencesUpdate{})

		assert.Equal(t, models.DefaultPreferences("user_abc"), prefs)
	})

	t.Run("partial update touches only the present fields", func(t *testing.T) {
		prefs := models.DefaultPreferences("user_abc")
		applyPreferencesUpdate(&prefs, preferencesUpdate{
			TargetSleepHours: ptr(8.0),
			SetupCompleted:   ptr(true),
		})

		assert.Equal(t, 8.0, prefs.TargetSleepHours)
		assert.True(t, prefs.SetupCompleted)
		assert.Equal(t, "23:00", prefs.UsualSleepTime)
		assert.Equal(t, 2000, prefs.DailyCalorieGoal)
		assert.Equal(t, 100, prefs.DailyProteinGoal)
	})

	t.Run("full update replaces everything", func(t *testing.T) {
		prefs := models.DefaultPreferences("user_abc")
		applyPreferencesUpdate(&prefs, preferencesUpdate{
			TargetSleepHours: ptr(6.5),
			UsualSleepTime:   ptr("00:30"),
			UsualWakeTime:    ptr("07:00"),
			LateNightDays:    ptr([]string{"Friday", "Saturday"}),
			DailyCalorieGoal: ptr(2400),
			DailyProteinGoal: ptr(140),
			SetupCompleted:   ptr(true),
		})

		assert.Equal(t, 6.5, prefs.TargetSleepHours)
		assert.Equal(t, "00:30", prefs.UsualSleepTime)
		assert.Equal(t, "07:00", prefs.UsualWakeTime)
		assert.Equal(t, models.StringList{"Friday", "Saturday"}, prefs.LateNightDays)
		assert.Equal(t, 2400, prefs.DailyCalorieGoal)
		assert.Equal(t, 140, prefs.DailyProteinGoal)
		assert.True(t, prefs.SetupCompleted)
	})

	t.Run("explicit zero values are applied", func(t *testing.T) {
		prefs := models.DefaultPreferences("user_abc")
		applyPreferencesUpdate(&prefs, preferencesUpdate{
			LateNightDays:  ptr([]string{}),
			SetupCompleted: ptr(false),
		})

		assert.Empty(t, prefs.LateNightDays)
		assert.False(t, prefs.SetupCompleted)
	})
}
