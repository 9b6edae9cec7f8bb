package main

import (
	"os"

	"rentdesk/server/config"
	"rentdesk/server/internal/api"
	"rentdesk/server/internal/database"
	"rentdesk/server/internal/storage"
	"rentdesk/server/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.WithError(err).Fatal("Failed to load configuration")
	}

	// Initialize database
	db, err := database.Connect(cfg, logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to initialize database")
	}

	// Run database migrations
	logger.Info("Running database migrations...")
	if err := database.RunMigrations(db); err != nil {
		logger.WithError(err).Fatal("Failed to run database migrations")
	}

	// Seed the first manager account when configured
	if err := database.EnsureManagerExists(db, cfg, logger); err != nil {
		logger.WithError(err).Error("Failed to seed manager account")
	}

	// Initialize file storage
	files, err := storage.NewStore(cfg, logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to initialize file storage")
	}

	// Initialize handler and router
	handler := api.NewHandler(store.NewStore(db), cfg, files, logger)

	router := gin.Default()
	api.SetupRoutes(router, handler, cfg)

	logger.Infof("Starting server on port %s", cfg.Server.Port)
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		logger.WithError(err).Fatal("Server failed to start")
	}
}
