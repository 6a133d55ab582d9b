package main

import (
	"log"
	"quizlab/backend/config"
	"quizlab/backend/middleware"
	"quizlab/backend/models"
	"quizlab/backend/quiz"
	"quizlab/backend/routes"
	"quizlab/backend/storage"
	"quizlab/backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Initialize logger
	logger := utils.InitLogger()

	// Question bank: external file if configured, built-in set otherwise.
	// A broken bank file is fatal; a half-loaded bank must never serve.
	bank := models.DefaultBank()
	if cfg.BankFile != "" {
		bank, err = models.LoadBank(cfg.BankFile)
		if err != nil {
			log.Fatalf("Error loading question bank: %v", err)
		}
	}

	// Result storage is best effort: fall back to process memory when the
	// database is disabled or unreachable.
	var store storage.ResultStore = storage.NewMemoryStore()
	if !cfg.DBDisabled {
		db, err := utils.InitDB(cfg)
		if err != nil {
			logger.Printf("database unavailable, keeping results in memory: %v", err)
		} else {
			store = storage.NewGormStore(db)
		}
	}

	engine := quiz.NewController(bank, store, cfg.MaxQuestions)

	// Create Fiber app
	app := fiber.New()

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(middleware.LoggingMiddleware(logger))

	// Setup routes
	routes.SetupRoutes(app, engine, cfg)

	// Start server
	log.Fatal(app.Listen(":" + cfg.ServerPort))
}
