package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/LmaoGamer22487/MyWellness-App/config"
	"github.com/LmaoGamer22487/MyWellness-App/controllers"
	"github.com/LmaoGamer22487/MyWellness-App/middleware"
	"github.com/LmaoGamer22487/MyWellness-App/utils"
)

// SetupRouter wires middleware, controllers and routes onto a gin engine.
func SetupRouter(db *gorm.DB) *gin.Engine {
	cfg := config.Get()
	gin.SetMode(cfg.GinMode)

	r := gin.New()
	r.Use(utils.RequestLogger(), utils.RecoveryLogger())
	r.Use(corsMiddleware(cfg.AllowedOrigins))

	authController := controllers.NewAuthController(db)
	preferencesController := controllers.NewPreferencesController(db)
	catalogController := controllers.NewCatalogController()
	alcoholController := controllers.NewAlcoholController(db)
	sleepController := controllers.NewSleepController(db)
	nutritionController := controllers.NewNutritionController(db, utils.NewMealAnalyzer())
	spendingController := controllers.NewSpendingController(db)
	exerciseController := controllers.NewExerciseController(db)
	dashboardController := controllers.NewDashboardController(db)

	requireSession := middleware.SessionAuth(db)

	api := r.Group("/api")
	{
		api.GET("/", func(ctx *gin.Context) {
			ctx.JSON(http.StatusOK, gin.H{"message": "MyWellness Sync API"})
		})

		// Reference data needs no session.
		api.GET("/drinks", catalogController.Drinks)
		api.GET("/drinks/categories", catalogController.DrinkCategories)
		api.GET("/spending/categories", catalogController.SpendingCategories)
		api.GET("/exercise/types", catalogController.ExerciseTypes)

		auth := api.Group("/auth")
		auth.Use(middleware.RateLimitMiddleware())
		{
			auth.POST("/session", authController.CreateSession)
			auth.GET("/me", requireSession, authController.Me)
			auth.POST("/logout", requireSession, authController.Logout)
		}

		authed := api.Group("")
		authed.Use(requireSession)
		{
			authed.GET("/preferences", preferencesController.GetPreferences)
			authed.PUT("/preferences", preferencesController.UpdatePreferences)

			authed.POST("/alcohol", alcoholController.CreateLog)
			authed.GET("/alcohol", alcoholController.ListLogs)
			authed.DELETE("/alcohol/:id", alcoholController.DeleteLog)

			authed.POST("/sleep", sleepController.CreateLog)
			authed.GET("/sleep", sleepController.ListLogs)
			authed.DELETE("/sleep/:id", sleepController.DeleteLog)
			authed.GET("/sleep/debt", sleepController.Debt)

			authed.POST("/nutrition", nutritionController.CreateLog)
			authed.GET("/nutrition", nutritionController.ListLogs)
			authed.DELETE("/nutrition/:id", nutritionController.DeleteLog)
			authed.GET("/nutrition/summary", nutritionController.Summary)

			authed.POST("/spending", spendingController.CreateLog)
			authed.GET("/spending", spendingController.ListLogs)
			authed.DELETE("/spending/:id", spendingController.DeleteLog)
			authed.GET("/spending/summary", spendingController.Summary)

			authed.POST("/exercise", exerciseController.CreateLog)
			authed.GET("/exercise", exerciseController.ListLogs)
			authed.DELETE("/exercise/:id", exerciseController.DeleteLog)
			authed.GET("/exercise/summary", exerciseController.Summary)

			authed.GET("/dashboard/completion", dashboardController.Completion)
			authed.GET("/dashboard/weekly", dashboardController.Weekly)
		}
	}

	return r
}

// corsMiddleware allows credentialed requests from the configured origins.
// A single "*" entry switches to allow-all, still with credentials, for
// local development.
func corsMiddleware(origins []string) gin.HandlerFunc {
	corsConfig := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Session-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(origins) == 1 && origins[0] == "*" {
		corsConfig.AllowOriginFunc = func(string) bool { return true }
	} else {
		corsConfig.AllowOrigins = origins
	}
	return cors.New(corsConfig)
}
