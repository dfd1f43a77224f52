package controllers

import (
	"math"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/LmaoGamer22487/MyWellness-App/middleware"
	"github.com/LmaoGamer22487/MyWellness-App/models"
	"github.com/LmaoGamer22487/MyWellness-App/utils"
)

// DashboardController scores a day's logs against the user's goals.
type DashboardController struct {
	db *gorm.DB
}

// NewDashboardController creates a DashboardController.
func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{db: db}
}

type exerciseScore struct {
	Done       bool `json:"done"`
	Percentage int  `json:"percentage"`
}

type sleepScore struct {
	Consistent bool    `json:"consistent"`
	Percentage int     `json:"percentage"`
	Hours      float64 `json:"hours"`
}

type alcoholScore struct {
	Healthy        bool    `json:"healthy"`
	Percentage     int     `json:"percentage"`
	StandardDrinks float64 `json:"standard_drinks"`
}

type nutritionScore struct {
	HitGoals   bool    `json:"hit_goals"`
	Percentage int     `json:"percentage"`
	Calories   int     `json:"calories"`
	Protein    float64 `json:"protein"`
}

// completionResult is one day's composite wellness score. total_percentage
// is always one of 0, 25, 50, 75 or 100.
type completionResult struct {
	Date            string         `json:"date"`
	Exercise        exerciseScore  `json:"exercise"`
	Sleep           sleepScore     `json:"sleep"`
	Alcohol         alcoholScore   `json:"alcohol"`
	Nutrition       nutritionScore `json:"nutrition"`
	TotalPercentage int            `json:"total_percentage"`
}

// Completion scores the given date (default: today, UTC calendar).
func (d *DashboardController) Completion(ctx *gin.Context) {
	user, ok := middleware.CurrentUser(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, "Not authenticated")
		return
	}

	date := ctx.Query("date")
	if date == "" {
		date = time.Now().UTC().Format(dateLayout)
	}

	result, err := d.completionFor(user.UserID, date)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, "failed to load logs")
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// Weekly scores each of the 7 days ending today, oldest first.
func (d *DashboardController) Weekly(ctx *gin.Context) {
	user, ok := middleware.CurrentUser(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, "Not authenticated")
		return
	}

	start := time.Now().UTC().AddDate(0, 0, -6)
	results := make([]completionResult, 0, 7)
	for i := 0; i < 7; i++ {
		date := start.AddDate(0, 0, i).Format(dateLayout)
		result, err := d.completionFor(user.UserID, date)
		if err != nil {
			utils.Error(ctx, http.StatusInternalServerError, "failed to load logs")
			return
		}
		results = append(results, result)
	}
	ctx.JSON(http.StatusOK, results)
}

func (d *DashboardController) completionFor(userID, date string) (completionResult, error) {
	prefs := models.DefaultPreferences(userID)
	var stored models.UserPreferences
	if err := d.db.Where("user_id = ?", userID).First(&stored).Error; err == nil {
		prefs = stored
	}

	var sleepLogs []models.SleepLog
	if err := d.db.Where("user_id = ? AND date = ?", userID, date).Find(&sleepLogs).Error; err != nil {
		return completionResult{}, err
	}
	var alcoholLogs []models.AlcoholLog
	if err := d.db.Where("user_id = ? AND date = ?", userID, date).Find(&alcoholLogs).Error; err != nil {
		return completionResult{}, err
	}
	var nutritionLogs []models.NutritionLog
	if err := d.db.Where("user_id = ? AND date = ?", userID, date).Find(&nutritionLogs).Error; err != nil {
		return completionResult{}, err
	}
	var exerciseLogs []models.ExerciseLog
	if err := d.db.Where("user_id = ? AND date = ?", userID, date).Find(&exerciseLogs).Error; err != nil {
		return completionResult{}, err
	}

	return scoreDay(date, prefs, sleepLogs, alcoholLogs, nutritionLogs, exerciseLogs), nil
}

// scoreDay converts one day's raw logs into the composite score. Each of the
// four dimensions is pass/fail worth 25 points:
//   - exercise passes with at least one log
//   - sleep passes when total hours are within 1.5 of the target
//   - alcohol passes when total standard drinks stay at or below 2
//   - nutrition passes when calories land within ±10% of the goal and
//     protein reaches at least 90% of its goal
func scoreDay(date string, prefs models.UserPreferences, sleepLogs []models.SleepLog, alcoholLogs []models.AlcoholLog, nutritionLogs []models.NutritionLog, exerciseLogs []models.ExerciseLog) completionResult {
	exerciseDone := len(exerciseLogs) > 0

	totalSleep := 0.0
	for _, l := range sleepLogs {
		totalSleep += l.HoursSlept
	}
	sleepConsistent := math.Abs(totalSleep-prefs.TargetSleepHours) <= 1.5

	totalDrinks := 0.0
	for _, l := range alcoholLogs {
		totalDrinks += l.StandardDrinks
	}
	alcoholHealthy := totalDrinks <= 2

	totalCalories := 0
	totalProtein := 0.0
	for _, l := range nutritionLogs {
		totalCalories += l.Calories
		totalProtein += l.Protein
	}
	calGoal := float64(prefs.DailyCalorieGoal)
	protGoal := float64(prefs.DailyProteinGoal)
	nutritionHit := float64(totalCalories) >= calGoal*0.9 &&
		float64(totalCalories) <= calGoal*1.1 &&
		totalProtein >= protGoal*0.9

	result := completionResult{
		Date:      date,
		Exercise:  exerciseScore{Done: exerciseDone, Percentage: points(exerciseDone)},
		Sleep:     sleepScore{Consistent: sleepConsistent, Percentage: points(sleepConsistent), Hours: totalSleep},
		Alcohol:   alcoholScore{Healthy: alcoholHealthy, Percentage: points(alcoholHealthy), StandardDrinks: totalDrinks},
		Nutrition: nutritionScore{HitGoals: nutritionHit, Percentage: points(nutritionHit), Calories: totalCalories, Protein: totalProtein},
	}
	result.TotalPercentage = result.Exercise.Percentage + result.Sleep.Percentage +
		result.Alcohol.Percentage + result.Nutrition.Percentage
	return result
}

func points(passed bool) int {
	if passed {
		return 25
	}
	return 0
}
