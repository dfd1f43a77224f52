package main

import (
	"github.com/LmaoGamer22487/MyWellness-App/config"
	"github.com/LmaoGamer22487/MyWellness-App/models"
	"github.com/LmaoGamer22487/MyWellness-App/routes"
	"github.com/LmaoGamer22487/MyWellness-App/utils"
)

func main() {
	cfg := config.Load()

	// Initialize logger early
	if err := utils.InitLogger(cfg); err != nil {
		panic(err)
	}
	defer utils.Logger.Sync()

	db := config.InitDatabase(
		&models.User{},
		&models.UserSession{},
		&models.UserPreferences{},
		&models.AlcoholLog{},
		&models.SleepLog{},
		&models.NutritionLog{},
		&models.SpendingLog{},
		&models.ExerciseLog{},
	)

	r := routes.SetupRouter(db)

	utils.Sugar.Infof("Starting server on port %s (graceful)", cfg.AppPort)
	if err := utils.GraceServer(":"+cfg.AppPort, r); err != nil {
		utils.Sugar.Fatalf("server stopped with error: %v", err)
	}
}
