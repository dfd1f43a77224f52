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

// NutritionController records meals, estimating macros through the meal
// analysis service.
type NutritionController struct {
	db       *gorm.DB
	analyzer *utils.MealAnalyzer
}

// NewNutritionController creates a NutritionController.
func NewNutritionController(db *gorm.DB, analyzer *utils.MealAnalyzer) *NutritionController {
	return &NutritionController{db: db, analyzer: analyzer}
}

// CreateLog analyzes the meal description and persists the log. An analysis
// failure never fails the request; the derived fields are stored zeroed.
func (n *NutritionController) CreateLog(ctx *gin.Context) {
	user, ok := middleware.CurrentUser(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, "Not authenticated")
		return
	}

	var req struct {
		MealDescription string `json:"meal_description" binding:"required"`
		MealType        string `json:"meal_type" binding:"required"`
		Date            string `json:"date" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, "invalid request payload")
		return
	}

	description := utils.Sanitize(req.MealDescription)
	nutrition := n.analyzer.Analyze(ctx.Request.Context(), description)

	logEntry := models.NutritionLog{
		UserID:          user.UserID,
		MealDescription: description,
		Calories:        nutrition.Calories,
		Protein:         nutrition.Protein,
		IsHealthy:       nutrition.IsHealthy,
		MealType:        req.MealType,
		Date:            req.Date,
	}
	if err := n.db.Create(&logEntry).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, "failed to save log")
		return
	}
	ctx.JSON(http.StatusOK, logEntry)
}

// ListLogs returns the user's nutrition logs, newest first, capped at 1000.
func (n *NutritionController) ListLogs(ctx *gin.Context) {
	user, ok := middleware.CurrentUser(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, "Not authenticated")
		return
	}

	logs := make([]models.NutritionLog, 0)
	q := dateFilter(ctx, n.db.Where("user_id = ?", user.UserID))
	if err := q.Order("logged_at DESC").Limit(listLimit).Find(&logs).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, "failed to list logs")
		return
	}
	ctx.JSON(http.StatusOK, logs)
}

// DeleteLog removes one log owned by the caller.
func (n *NutritionController) DeleteLog(ctx *gin.Context) {
	user, ok := middleware.CurrentUser(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, "Not authenticated")
		return
	}

	res := n.db.Where("id = ? AND user_id = ?", ctx.Param("id"), user.UserID).Delete(&models.NutritionLog{})
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

// dayNutritionTotals holds one day's summed intake.
type dayNutritionTotals struct {
	Calories int     `json:"calories"`
	Protein  float64 `json:"protein"`
}

// nutritionWeekSummary is the weekly goal-hit report.
type nutritionWeekSummary struct {
	CalorieGoal     int                           `json:"calorie_goal"`
	ProteinGoal     int                           `json:"protein_goal"`
	DaysLogged      int                           `json:"days_logged"`
	DaysHitCalories int                           `json:"days_hit_calories"`
	DaysHitProtein  int                           `json:"days_hit_protein"`
	DailyTotals     map[string]dayNutritionTotals `json:"daily_totals"`
}

// Summary reports daily totals and goal hits over the current ISO week.
func (n *NutritionController) Summary(ctx *gin.Context) {
	user, ok := middleware.CurrentUser(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, "Not authenticated")
		return
	}

	calorieGoal, proteinGoal := 2000, 100
	var prefs models.UserPreferences
	if err := n.db.Where("user_id = ?", user.UserID).First(&prefs).Error; err == nil {
		calorieGoal = prefs.DailyCalorieGoal
		proteinGoal = prefs.DailyProteinGoal
	}

	start, end := weekWindow(time.Now())
	var logs []models.NutritionLog
	if err := n.db.Where("user_id = ? AND date >= ? AND date <= ?", user.UserID, start, end).
		Limit(listLimit).Find(&logs).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, "failed to load logs")
		return
	}

	ctx.JSON(http.StatusOK, summarizeNutrition(logs, calorieGoal, proteinGoal))
}

// summarizeNutrition buckets the logs by date and counts goal hits. A day
// hits calories inside ±10% of the goal; protein needs only ≥90% of the goal
// with no upper bound.
func summarizeNutrition(logs []models.NutritionLog, calorieGoal, proteinGoal int) nutritionWeekSummary {
	daily := map[string]dayNutritionTotals{}
	for _, l := range logs {
		t := daily[l.Date]
		t.Calories += l.Calories
		t.Protein += l.Protein
		daily[l.Date] = t
	}

	hitCalories, hitProtein := 0, 0
	for _, t := range daily {
		cals := float64(t.Calories)
		if cals >= float64(calorieGoal)*0.9 && cals <= float64(calorieGoal)*1.1 {
			hitCalories++
		}
		if t.Protein >= float64(proteinGoal)*0.9 {
			hitProtein++
		}
	}

	return nutritionWeekSummary{
		CalorieGoal:     calorieGoal,
		ProteinGoal:     proteinGoal,
		DaysLogged:      len(daily),
		DaysHitCalories: hitCalories,
		DaysHitProtein:  hitProtein,
		DailyTotals:     daily,
	}
}
