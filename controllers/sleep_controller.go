package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/LmaoGamer22487/MyWellness-App/middleware"
	"github.com/LmaoGamer22487/MyWellness-App/models"
	"github.com/LmaoGamer22487/MyWellness-App/utils"
)

// SleepController records sleep logs and reports weekly sleep debt.
type SleepController struct {
	db *gorm.DB
}

// NewSleepController creates a SleepController.
func NewSleepController(db *gorm.DB) *SleepController {
	return &SleepController{db: db}
}

// CreateLog derives hours_slept from the raw timestamps and persists the log.
func (s *SleepController) CreateLog(ctx *gin.Context) {
	user, ok := middleware.CurrentUser(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, "Not authenticated")
		return
	}

	var req struct {
		SleepTime string `json:"sleep_time" binding:"required"`
		WakeTime  string `json:"wake_time" binding:"required"`
		Date      string `json:"date" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, "invalid request payload")
		return
	}

	sleepTime, err := parseSleepTimestamp(req.SleepTime)
	if err != nil {
		utils.Error(ctx, http.StatusBadRequest, "invalid sleep_time")
		return
	}
	wakeTime, err := parseSleepTimestamp(req.WakeTime)
	if err != nil {
		utils.Error(ctx, http.StatusBadRequest, "invalid wake_time")
		return
	}

	wakeTime, hours := computeHoursSlept(sleepTime, wakeTime)

	logEntry := models.SleepLog{
		UserID:     user.UserID,
		SleepTime:  sleepTime,
		WakeTime:   wakeTime,
		HoursSlept: hours,
		Date:       req.Date,
	}
	if err := s.db.Create(&logEntry).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, "failed to save log")
		return
	}
	ctx.JSON(http.StatusOK, logEntry)
}

// ListLogs returns the user's sleep logs, newest date first, capped at 1000.
func (s *SleepController) ListLogs(ctx *gin.Context) {
	user, ok := middleware.CurrentUser(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, "Not authenticated")
		return
	}

	logs := make([]models.SleepLog, 0)
	q := dateFilter(ctx, s.db.Where("user_id = ?", user.UserID))
	if err := q.Order("date DESC").Limit(listLimit).Find(&logs).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, "failed to list logs")
		return
	}
	ctx.JSON(http.StatusOK, logs)
}

// DeleteLog removes one log owned by the caller.
func (s *SleepController) DeleteLog(ctx *gin.Context) {
	user, ok := middleware.CurrentUser(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, "Not authenticated")
		return
	}

	res := s.db.Where("id = ? AND user_id = ?", ctx.Param("id"), user.UserID).Delete(&models.SleepLog{})
	if res.Error != nil {
		utils.Error(ctx, http.StatusInternalServerError, "failed to delete log")
		return
	}
	if res.RowsAffected == 0 {
		utils.Error(ctx, http.StatusNotFound, "Log not found")
		return
	}
	utils.Message(ctx, "Deleted")
}

// sleepDebtSummary is the weekly sleep debt report.
type sleepDebtSummary struct {
	TargetPerDay float64 `json:"target_per_day"`
	DaysLogged   int     `json:"days_logged"`
	TotalSlept   float64 `json:"total_slept"`
	TargetTotal  float64 `json:"target_total"`
	Debt         float64 `json:"debt"`
	Surplus      float64 `json:"surplus"`
}

// Debt reports the cumulative sleep shortfall over the current ISO week.
func (s *SleepController) Debt(ctx *gin.Context) {
	user, ok := middleware.CurrentUser(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, "Not authenticated")
		return
	}

	target := 7.5
	var prefs models.UserPreferences
	if err := s.db.Where("user_id = ?", user.UserID).First(&prefs).Error; err == nil {
		target = prefs.TargetSleepHours
	}

	start, end := weekWindow(time.Now())
	var logs []models.SleepLog
	if err := s.db.Where("user_id = ? AND date >= ? AND date <= ?", user.UserID, start, end).
		Limit(listLimit).Find(&logs).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, "failed to load logs")
		return
	}

	ctx.JSON(http.StatusOK, sleepDebtFor(target, logs))
}

// sleepDebtFor computes the debt report; zero logged days means zero debt
// and zero surplus, not an undefined value.
func sleepDebtFor(target float64, logs []models.SleepLog) sleepDebtSummary {
	total := 0.0
	for _, l := range logs {
		total += l.HoursSlept
	}
	targetTotal := float64(len(logs)) * target
	debt := targetTotal - total
	return sleepDebtSummary{
		TargetPerDay: target,
		DaysLogged:   len(logs),
		TotalSlept:   round2(total),
		TargetTotal:  round2(targetTotal),
		Debt:         round2(max(0, debt)),
		Surplus:      round2(max(0, -debt)),
	}
}

// parseSleepTimestamp accepts RFC3339 timestamps and naive local forms
// without an offset; naive values are taken as UTC.
func parseSleepTimestamp(s string) (time.Time, error) {
	layouts := []string{
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02T15:04",
	}
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.New("unrecognized timestamp")
}

// computeHoursSlept rolls a wake time at or before the sleep time forward by
// one day (clock values crossing midnight) and returns the adjusted wake
// time with the elapsed hours rounded to two decimals.
func computeHoursSlept(sleepTime, wakeTime time.Time) (time.Time, float64) {
	if !wakeTime.After(sleepTime) {
		wakeTime = wakeTime.Add(24 * time.Hour)
	}
	return wakeTime, round2(wakeTime.Sub(sleepTime).Hours())
}
