// main.go
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"hotel-booking/cmd"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/wire"
	"hotel-booking/pkg/database"
	"hotel-booking/pkg/tracing"
	"hotel-booking/pkg/utils"

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

	err = run(config, logger)
	if err != nil {
		logger.Error("Application stopped with error", zap.Error(err))
	}
	logger.Sync()

	if err != nil {
		os.Exit(1)
	}
}

// run owns every resource opened after the logger so deferred cleanup always
// happens before main exits.
func run(config *utils.Config, logger *zap.Logger) error {
	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	shutdownTracing, err := tracing.Init(context.Background(), config.App.Name, config.Tracing.Endpoint)
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logger.Warn("Failed to flush traces", zap.Error(err))
		}
	}()

	if config.Database.Migrate {
		if err := database.Migrate(config.Database); err != nil {
			return fmt.Errorf("run migrations: %w", err)
		}
		logger.Info("Migrations applied")
	}

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	repos := repository.NewRepository(db, logger)

	app := wire.Wiring(repos, config, logger)

	return cmd.APIServer(app.Router, config.App.Port, config.App.ShutdownTimeout, logger)
}
