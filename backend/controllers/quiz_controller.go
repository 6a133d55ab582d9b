package controllers

import (
	"errors"
	"quizlab/backend/config"
	"quizlab/backend/models"
	"quizlab/backend/quiz"
	"quizlab/backend/storage"
	"quizlab/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type QuizController struct {
	Quiz *quiz.Controller
	Cfg  *config.Config
}

func NewQuizController(q *quiz.Controller, cfg *config.Config) *QuizController {
	return &QuizController{Quiz: q, Cfg: cfg}
}

// ListTiers godoc
// @Summary List difficulty tiers
// @Description Returns the available tiers with their question counts
// @Tags quiz
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /quiz/tiers [get]
func (qc *QuizController) ListTiers(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"tiers": qc.Quiz.Tiers(),
	})
}

// StartQuiz godoc
// @Summary Start a quiz session
// @Description Validates the learner data and draws a randomized question set for the tier
// @Tags quiz
// @Accept json
// @Produce json
// @Param request body map[string]interface{} true "Learner name, group and tier"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Router /quiz/start [post]
func (qc *QuizController) StartQuiz(c *fiber.Ctx) error {
	var input struct {
		Name  string `json:"name"`
		Group string `json:"group"`
		Tier  string `json:"tier"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	session, err := qc.Quiz.Start(input.Tier, input.Name, input.Group)
	if err != nil {
		var verr *quiz.ValidationError
		if errors.As(err, &verr) {
			return utils.ValidationError(c, verr.Fields)
		}
		return utils.InternalServerError(c, "Could not start session")
	}

	return c.JSON(fiber.Map{
		"session_id": session.ID,
		"user":       session.User,
		"questions":  session.Rendered(),
	})
}

// SubmitQuiz godoc
// @Summary Submit quiz answers
// @Description Scores the answers against the session's questions and persists the result
// @Tags quiz
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body map[string]interface{} true "Answers keyed by question id"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /quiz/{id}/submit [post]
func (qc *QuizController) SubmitQuiz(c *fiber.Ctx) error {
	sessionID := c.Params("id")

	var input struct {
		Answers map[int]models.Answer `json:"answers"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	outcome, err := qc.Quiz.Submit(sessionID, input.Answers)
	if err != nil {
		if errors.Is(err, quiz.ErrSessionNotFound) {
			return utils.NotFound(c, "Session not found")
		}
		return utils.InternalServerError(c, "Could not score session")
	}

	return c.JSON(fiber.Map{
		"score":     outcome.Result.Score,
		"max_score": outcome.Result.MaxScore,
		"user":      outcome.Result.User,
		"date":      outcome.Result.Date,
		"saved":     outcome.Saved,
	})
}

// GetLatestResult godoc
// @Summary Get the last persisted result
// @Tags quiz
// @Produce json
// @Success 200 {object} models.Result
// @Failure 404 {object} utils.ErrorResponse
// @Failure 503 {object} utils.ErrorResponse
// @Router /quiz/result/latest [get]
func (qc *QuizController) GetLatestResult(c *fiber.Ctx) error {
	result, err := qc.Quiz.LastResult()
	if err != nil {
		if errors.Is(err, storage.ErrNoResult) {
			return utils.NotFound(c, "No result stored")
		}
		return utils.ServiceUnavailable(c, "Result storage unavailable")
	}
	return c.JSON(result)
}
