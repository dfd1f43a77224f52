package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/LmaoGamer22487/MyWellness-App/middleware"
	"github.com/LmaoGamer22487/MyWellness-App/models"
	"github.com/LmaoGamer22487/MyWellness-App/utils"
)

// ExerciseController records exercise sessions and reports weekly totals.
type ExerciseController struct {
	db *gorm.DB
}

// NewExerciseController creates an ExerciseController.
func NewExerciseController(db *gorm.DB) *ExerciseController {
	return &ExerciseController{db: db}
}

// CreateLog persists one exercise session.
func (e *ExerciseController) CreateLog(ctx *gin.Context) {
	user, ok := middleware.CurrentUser(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, "Not authenticated")
		return
	}

	// duration_minutes is a pointer so an explicit zero still binds.
	var req struct {
		ExerciseType    string `json:"exercise_type" binding:"required"`
		DurationMinutes *int   `json:"duration_minutes" binding:"required"`
		Notes           string `json:"notes"`
		Date            string `json:"date" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, "invalid request payload")
		return
	}

	logEntry := models.ExerciseLog{
		UserID:          user.UserID,
		ExerciseType:    req.ExerciseType,
		DurationMinutes: *req.DurationMinutes,
		Notes:           utils.Sanitize(req.Notes),
		Date:            req.Date,
	}
	if err := e.db.Create(&logEntry).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, "failed to save log")
		return
	}
	ctx.JSON(http.StatusOK, logEntry)
}

// ListLogs returns the user's exercise logs, newest first, capped at 1000.
func (e *ExerciseController) ListLogs(ctx *gin.Context) {
	user, ok := middleware.CurrentUser(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, "Not authenticated")
		return
	}

	logs := make([]models.ExerciseLog, 0)
	q := dateFilter(ctx, e.db.Where("user_id = ?", user.UserID))
	if err := q.Order("logged_at DESC").Limit(listLimit).Find(&logs).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, "failed to list logs")
		return
	}
	ctx.JSON(http.StatusOK, logs)
}

// DeleteLog removes one log owned by the caller.
func (e *ExerciseController) DeleteLog(ctx *gin.Context) {
	user, ok := middleware.CurrentUser(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, "Not authenticated")
		return
	}

	res := e.db.Where("id = ? AND user_id = ?", ctx.Param("id"), user.UserID).Delete(&models.ExerciseLog{})
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

// exerciseWeekSummary is the weekly activity report.
type exerciseWeekSummary struct {
	DaysExercised int            `json:"days_exercised"`
	TotalMinutes  int            `json:"total_minutes"`
	ByType        map[string]int `json:"by_type"`
}

// Summary reports distinct active days, total minutes and per-type minutes
// over the current ISO week.
func (e *ExerciseController) Summary(ctx *gin.Context) {
	user, ok := middleware.CurrentUser(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, "Not authenticated")
		return
	}

	start, end := weekWindow(time.Now())
	var logs []models.ExerciseLog
	if err := e.db.Where("user_id = ? AND date >= ? AND date <= ?", user.UserID, start, end).
		Limit(listLimit).Find(&logs).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, "failed to load logs")
		return
	}

	ctx.JSON(http.StatusOK, summarizeExercise(logs))
}

func summarizeExercise(logs []models.ExerciseLog) exerciseWeekSummary {
	days := map[string]struct{}{}
	byType := map[string]int{}
	total := 0
	for _, l := range logs {
		days[l.Date] = struct{}{}
		byType[l.ExerciseType] += l.DurationMinutes
		total += l.DurationMinutes
	}
	return exerciseWeekSummary{
		DaysExercised: len(days),
		TotalMinutes:  total,
		ByType:        byType,
	}
}
