package main

import (
	"context"
	"log"

	api "lovemypet-backend/cmd/api"
	authRepo "lovemypet-backend/internal/auth/repository"
	authUsecase "lovemypet-backend/internal/auth/usecase"
	petRepo "lovemypet-backend/internal/pet/repository"
	petUsecase "lovemypet-backend/internal/pet/usecase"
	"lovemypet-backend/pkg/config"
	"lovemypet-backend/pkg/database"
	"lovemypet-backend/pkg/logger"
	"lovemypet-backend/pkg/storage"
)

func main() {
	// Load configuration
	cfg := config.Load()

	if err := logger.Init(cfg.LogLevel); err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}

	ctx := context.Background()

	// Initialize database
	db, err := database.NewMongoConnection(ctx, cfg)
	if err != nil {
		logger.Log.Fatalw("Failed to connect to database", "error", err)
	}
	if err := database.EnsureIndexes(ctx, db); err != nil {
		logger.Log.Fatalw("Failed to create indexes", "error", err)
	}

	// Initialize object storage
	uploader, err := storage.NewS3Uploader(ctx, cfg)
	if err != nil {
		logger.Log.Fatalw("Failed to initialize object storage", "error", err)
	}

	// Initialize repositories (dependency injection)
	userRepository := authRepo.NewUserRepository(db)
	petRepository := petRepo.NewPetRepository(db)

	// Initialize use cases
	authUsecaseInstance := authUsecase.NewAuthUsecase(userRepository, cfg)
	petUsecaseInstance := petUsecase.NewPetUsecase(petRepository, userRepository)

	// Initialize HTTP handler
	handler := api.NewHandler(authUsecaseInstance, petUsecaseInstance, uploader)

	logger.Log.Infow("Server starting", "port", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		logger.Log.Fatalw("Failed to start server", "error", err)
	}
}
