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

// SpendingController records expenses and reports monthly totals.
type SpendingController struct {
	db *gorm.DB
}

// NewSpendingController creates a SpendingController.
func NewSpendingController(db *gorm.DB) *SpendingController {
	return &SpendingController{db: db}
}

// CreateLog persists one expense.
func (s *SpendingController) CreateLog(ctx *gin.Context) {
	user, ok := middleware.CurrentUser(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, "Not authenticated")
		return
	}

	// amount is a pointer so an explicit zero still binds.
	var req struct {
		Amount   *float64 `json:"amount" binding:"required"`
		Category string   `json:"category" binding:"required"`
		Notes    string   `json:"notes"`
		Date     string   `json:"date" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, "invalid request payload")
		return
	}

	logEntry := models.SpendingLog{
		UserID:   user.UserID,
		Amount:   *req.Amount,
		Category: req.Category,
		Notes:    utils.Sanitize(req.Notes),
		Date:     req.Date,
	}
	if err := s.db.Create(&logEntry).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, "failed to save log")
		return
	}
	ctx.JSON(http.StatusOK, logEntry)
}

// ListLogs returns the user's expenses, newest first, capped at 1000.
func (s *SpendingController) ListLogs(ctx *gin.Context) {
	user, ok := middleware.CurrentUser(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, "Not authenticated")
		return
	}

	logs := make([]models.SpendingLog, 0)
	q := dateFilter(ctx, s.db.Where("user_id = ?", user.UserID))
	if err := q.Order("logged_at DESC").Limit(listLimit).Find(&logs).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, "failed to list logs")
		return
	}
	ctx.JSON(http.StatusOK, logs)
}

// DeleteLog removes one log owned by the caller.
func (s *SpendingController) DeleteLog(ctx *gin.Context) {
	user, ok := middleware.CurrentUser(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, "Not authenticated")
		return
	}

	res := s.db.Where("id = ? AND user_id = ?", ctx.Param("id"), user.UserID).Delete(&models.SpendingLog{})
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

// spendingSummary is the monthly spending report. Categories come straight
// from the logs; nothing is remapped to "Other" here.
type spendingSummary struct {
	Total       float64            `json:"total"`
	ByCategory  map[string]float64 `json:"by_category"`
	DailyTotals map[string]float64 `json:"daily_totals"`
}

// Summary reports totals for an explicit YYYY-MM month or, by default, the
// current calendar month through today.
func (s *SpendingController) Summary(ctx *gin.Context) {
	user, ok := middleware.CurrentUser(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, "Not authenticated")
		return
	}

	start, end, err := monthWindow(ctx.Query("month"), time.Now())
	if err != nil {
		utils.Error(ctx, http.StatusBadRequest, "invalid month")
		return
	}

	var logs []models.SpendingLog
	if err := s.db.Where("user_id = ? AND date >= ? AND date <= ?", user.UserID, start, end).
		Limit(listLimit).Find(&logs).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, "failed to load logs")
		return
	}

	ctx.JSON(http.StatusOK, summarizeSpending(logs))
}

func summarizeSpending(logs []models.SpendingLog) spendingSummary {
	total := 0.0
	byCategory := map[string]float64{}
	daily := map[string]float64{}
	for _, l := range logs {
		total += l.Amount
		byCategory[l.Category] += l.Amount
		daily[l.Date] += l.Amount
	}
	return spendingSummary{
		Total:       round2(total),
		ByCategory:  byCategory,
		DailyTotals: daily,
	}
}
