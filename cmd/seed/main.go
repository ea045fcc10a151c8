package main

import (
	"context"
	"log"

	"finledger/internal/repository"
	"finledger/internal/service"
	"finledger/pkg/config"
	"finledger/pkg/logger"
	"finledger/pkg/postgres"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	if err := postgres.RunMigrations(&cfg.Database); err != nil {
		appLogger.Fatal("Failed to run migrations", zap.Error(err))
	}

	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	categoryRepo := repository.NewCategoryRepository(db, appLogger)
	categoryService := service.NewCategoryService(categoryRepo, appLogger)

	appLogger.Info("Seeding predefined categories")
	if err := categoryService.SeedPredefined(ctx); err != nil {
		appLogger.Fatal("Failed to seed predefined categories", zap.Error(err))
	}
	appLogger.Info("Seeding completed")
}
