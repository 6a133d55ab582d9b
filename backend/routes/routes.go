package routes

import (
	"quizlab/backend/config"
	"quizlab/backend/controllers"
	"quizlab/backend/quiz"

	"github.com/gofiber/fiber/v2"
)

func SetupRoutes(app *fiber.App, engine *quiz.Controller, cfg *config.Config) {
	quizController := controllers.NewQuizController(engine, cfg)

	api := app.Group("/api/quiz")
	api.Get("/tiers", quizController.ListTiers)
	api.Post("/start", quizController.StartQuiz)
	api.Post("/:id/submit", quizController.SubmitQuiz)
	api.Get("/result/latest", quizController.GetLatestResult)
}
