package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/LmaoGamer22487/MyWellness-App/middleware"
	"github.com/LmaoGamer22487/MyWellness-App/models"
	"github.com/LmaoGamer22487/MyWellness-App/utils"
)

// PreferencesController reads and partially updates per-user goals.
type PreferencesController struct {
	db *gorm.DB
}

// NewPreferencesController creates a PreferencesController.
func NewPreferencesController(db *gorm.DB) *PreferencesController {
	return &PreferencesController{db: db}
}

// preferencesUpdate carries the optional fields of a partial update. Only
// non-nil fields overwrite stored values.
type preferencesUpdate struct {
	TargetSleepHours *float64  `json:"target_sleep_hours"`
	UsualSleepTime   *string   `json:"usual_sleep_time"`
	UsualWakeTime    *string   `json:"usual_wake_time"`
	LateNightDays    *[]string `json:"late_night_days"`
	DailyCalorieGoal *int      `json:"daily_calorie_goal"`
	DailyProteinGoal *int      `json:"daily_protein_goal"`
	SetupCompleted   *bool     `json:"setup_completed"`
}

// GetPreferences returns the stored preferences, or a minimal stub when the
// user has none yet.
func (p *PreferencesController) GetPreferences(ctx *gin.Context) {
	user, ok := middleware.CurrentUser(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, "Not authenticated")
		return
	}

	var prefs models.UserPreferences
	if err := p.db.Where("user_id = ?", user.UserID).First(&prefs).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusOK, gin.H{"user_id": user.UserID, "setup_completed": false})
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, "failed to load preferences")
		return
	}
	ctx.JSON(http.StatusOK, prefs)
}

// UpdatePreferences merges the supplied fields into the stored document,
// creating it from defaults when absent, and returns the result.
func (p *PreferencesController) UpdatePreferences(ctx *gin.Context) {
	user, ok := middleware.CurrentUser(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, "Not authenticated")
		return
	}

	var update preferencesUpdate
	if err := ctx.ShouldBindJSON(&update); err != nil {
		utils.Error(ctx, http.StatusBadRequest, "invalid request payload")
		return
	}

	var prefs models.UserPreferences
	err := p.db.Where("user_id = ?", user.UserID).First(&prefs).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		prefs = models.DefaultPreferences(user.UserID)
	} else if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, "failed to load preferences")
		return
	}

	applyPreferencesUpdate(&prefs, update)

	if err := p.db.Save(&prefs).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, "failed to update preferences")
		return
	}
	ctx.JSON(http.StatusOK, prefs)
}

// applyPreferencesUpdate copies the present fields onto prefs.
func applyPreferencesUpdate(prefs *models.UserPreferences, update preferencesUpdate) {
	if update.TargetSleepHours != nil {
		prefs.TargetSleepHours = *update.TargetSleepHours
	}
	if update.UsualSleepTime != nil {
		prefs.UsualSleepTime = *update.UsualSleepTime
	}
	if update.UsualWakeTime != nil {
		prefs.UsualWakeTime = *update.UsualWakeTime
	}
	if update.LateNightDays != nil {
		prefs.LateNightDays = models.StringList(*update.LateNightDays)
	}
	if update.DailyCalorieGoal != nil {
		prefs.DailyCalorieGoal = *update.DailyCalorieGoal
	}
	if update.DailyProteinGoal != nil {
		prefs.DailyProteinGoal = *update.DailyProteinGoal
	}
	if update.SetupCompleted != nil {
		prefs.SetupCompleted = *update.SetupCompleted
	}
}
