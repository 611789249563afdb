package main

import (
	"log"

	"github.com/triviahq/trivia-api/internal/config"
	"github.com/triviahq/trivia-api/internal/database"
	"github.com/triviahq/trivia-api/internal/logger"
	"github.com/triviahq/trivia-api/models"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if err := logger.Initialize(cfg.Logger); err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	db, err := database.Connect(cfg.DB)
	if err != nil {
		logger.Get().Fatal("failed to connect", zap.Error(err))
	}
	if err := database.AutoMigrate(db); err != nil {
		logger.Get().Fatal("failed to migrate", zap.Error(err))
	}

	s := &seeder{
		categories: models.NewCategoriesRepository(db),
		questions:  models.NewQuestionsRepository(db),
	}
	created, updated, err := s.seed(bank)
	if err != nil {
		logger.Get().Fatal("seed failed", zap.Error(err))
	}
	logger.Get().Info("seed complete", zap.Int("created", created), zap.Int("updated", updated))
}
