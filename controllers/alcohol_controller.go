package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/LmaoGamer22487/MyWellness-App/middleware"
	"github.com/LmaoGamer22487/MyWellness-App/models"
	"github.com/LmaoGamer22487/MyWellness-App/utils"
)

// AlcoholController records and lists drink logs.
type AlcoholController struct {
	db *gorm.DB
}

// NewAlcoholController creates an AlcoholController.
func NewAlcoholController(db *gorm.DB) *AlcoholController {
	return &AlcoholController{db: db}
}

// CreateLog persists one drink entry. standard_drinks arrives pre-computed
// from the client against the catalog and is stored as-is.
func (a *AlcoholController) CreateLog(ctx *gin.Context) {
	user, ok := middleware.CurrentUser(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, "Not authenticated")
		return
	}

	// servings is a pointer so an explicit zero still binds.
	var req struct {
		DrinkID        string   `json:"drink_id" binding:"required"`
		DrinkName      string   `json:"drink_name" binding:"required"`
		Servings       *float64 `json:"servings" binding:"required"`
		StandardDrinks float64  `json:"standard_drinks"`
		Date           string   `json:"date" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, "invalid request payload")
		return
	}

	logEntry := models.AlcoholLog{
		UserID:         user.UserID,
		DrinkID:        req.DrinkID,
		DrinkName:      req.DrinkName,
		Servings:       *req.Servings,
		StandardDrinks: req.StandardDrinks,
		Date:           req.Date,
	}
	if err := a.db.Create(&logEntry).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, "failed to save log")
		return
	}
	ctx.JSON(http.StatusOK, logEntry)
}

// ListLogs returns the user's drink logs, newest first, capped at 1000.
func (a *AlcoholController) ListLogs(ctx *gin.Context) {
	user, ok := middleware.CurrentUser(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, "Not authenticated")
		return
	}

	logs := make([]models.AlcoholLog, 0)
	q := dateFilter(ctx, a.db.Where("user_id = ?", user.UserID))
	if err := q.Order("logged_at DESC").Limit(listLimit).Find(&logs).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, "failed to list logs")
		return
	}
	ctx.JSON(http.StatusOK, logs)
}

// DeleteLog removes one log owned by the caller.
func (a *AlcoholController) DeleteLog(ctx *gin.Context) {
	user, ok := middleware.CurrentUser(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, "Not authenticated")
		return
	}

	res := a.db.Where("id = ? AND user_id = ?", ctx.Param("id"), user.UserID).Delete(&models.AlcoholLog{})
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
