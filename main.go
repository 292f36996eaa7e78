package main

import (
	"log"

	"shop-backend/cmd"
	"shop-backend/internal/data/repository"
	"shop-backend/internal/wire"
	"shop-backend/pkg/database"
	"shop-backend/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Init logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("name", config.App.Name),
		zap.String("port", config.App.Port),
	)

	// 3. Connect database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect database", zap.Error(err))
	}
	defer db.Close()

	// 4. Build repositories and wire everything together
	repo := repository.NewRepository(db, logger)
	app := wire.Wiring(repo, config, logger)

	// 5. Serve
	logger.Info("Server listening", zap.String("port", config.App.Port))
	if err := cmd.APIServer(app.Router, config.App.Port); err != nil {
		logger.Fatal("Server stopped", zap.Error(err))
	}
}
