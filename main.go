// main.go
package main

import (
	"log"

	"streaming-catalog/cmd"
	"streaming-catalog/internal/data/repository"
	"streaming-catalog/internal/wire"
	"streaming-catalog/pkg/database"
	"streaming-catalog/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.String("driver", config.Database.Driver),
		zap.Bool("debug", config.App.Debug),
	)

	// Initialize repositories. The catalog is always seeded in memory;
	// users and sessions can be persisted in Postgres.
	var repos *repository.Repository
	switch config.Database.Driver {
	case "postgres":
		db, err := database.InitDB(config.Database)
		if err != nil {
			logger.Fatal("Failed to connect to database", zap.Error(err))
		}
		defer db.Close()

		logger.Info("Database connected successfully")
		repos = repository.NewRepository(db, logger)
	default:
		repos, err = repository.NewMemoryRepository(logger)
		if err != nil {
			logger.Fatal("Failed to seed in-memory stores", zap.Error(err))
		}
	}

	// Wire all dependencies
	app := wire.Wiring(repos, config, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
