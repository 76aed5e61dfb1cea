// main.go
package main

import (
	"log"

	"course-enrollment/cmd"
	"course-enrollment/internal/data/repository"
	"course-enrollment/internal/wire"
	"course-enrollment/pkg/database"
	"course-enrollment/pkg/security"
	"course-enrollment/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Name, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	// Apply schema migrations
	if config.Database.AutoMigrate {
		if err := database.RunMigrations(config.Database); err != nil {
			logger.Fatal("Failed to run migrations", zap.Error(err))
		}
		logger.Info("Database migrations applied")
	}

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	repos := repository.NewRepository(db, logger)
	tokens := security.NewTokenService(config.JWT.Secret, config.JWT.Expiry())

	// Wire all dependencies
	app := wire.Wiring(repos, db, tokens, logger)

	if err := cmd.APIServer(app.Router, config.App.Port, logger); err != nil {
		logger.Error("Server error", zap.Error(err))
	}
	logger.Info("Server stopped")
}
