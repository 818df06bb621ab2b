package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"quizbuilder/cache"
	"quizbuilder/config"
	"quizbuilder/handlers"
	"quizbuilder/logger"
	"quizbuilder/middleware"
	"quizbuilder/models"
	"quizbuilder/repository"
	"quizbuilder/routes"
	"quizbuilder/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	appLog, err := logger.New(cfg.Mode)
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer appLog.Sync()

	// Initialize database
	db, err := config.InitDB(cfg)
	if err != nil {
		appLog.Fatal("failed to connect to database", "error", err)
	}

	// Auto-migrate database models
	err = db.AutoMigrate(
		&models.Quiz{},
		&models.Question{},
		&models.Option{},
	)
	if err != nil {
		appLog.Fatal("failed to migrate database", "error", err)
	}

	// Initialize Redis-backed summary cache (nil client disables it)
	redisClient := config.InitRedis(cfg)
	summaryCache := cache.NewSummaryCache(redisClient, appLog)

	// Initialize repository and services
	quizRepo := repository.NewQuizRepository(db, appLog)
	quizService := services.NewQuizService(quizRepo, summaryCache, appLog)

	// Initialize handlers
	quizHandler := handlers.NewQuizHandler(quizService, appLog)

	// Setup Gin router
	if cfg.Mode == "prod" || cfg.Mode == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(appLog),
		middleware.CORS(),
		gin.Recovery(),
	)

	// Setup routes
	routes.SetupRoutes(router, quizHandler)

	// Start server
	appLog.Info("server starting", "port", cfg.Port)
	if err := router.Run(cfg.BindAddress + ":" + cfg.Port); err != nil {
		appLog.Fatal("failed to start server", "error", err)
	}
}
