package handler

import (
	"errors"

	"quiz-supply/internal/domain"
	"quiz-supply/internal/dto"
	"quiz-supply/internal/logger"
	"quiz-supply/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// QuizHandler handles quiz-related HTTP requests
type QuizHandler struct {
	service service.QuizSupplyService
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(service service.QuizSupplyService) *QuizHandler {
	return &QuizHandler{
		service: service,
	}
}

// GetQuiz godoc
// @Summary Get the next quiz
// @Description Returns one binary-choice trivia quiz from the supply pipeline
// @Tags quiz
// @Produce json
// @Success 200 {object} dto.QuizResponse
// @Failure 429 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /quiz [get]
func (h *QuizHandler) GetQuiz(c *fiber.Ctx) error {
	quiz, err := h.service.NextQuiz(c.UserContext())
	if err != nil {
		var domainErr *domain.DomainError
		if errors.As(err, &domainErr) {
			switch domainErr.Code {
			case domain.CodeRateLimited, domain.CodeExhausted:
				return c.Status(fiber.StatusTooManyRequests).JSON(dto.ErrorResponse{
					Error: domainErr.Message,
				})
			case domain.CodeGenerationParse, domain.CodeUpstreamCall:
				return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
					Error: domainErr.Message,
				})
			}
		}

		logger.Get().Error("Failed to supply quiz", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: "Internal server error",
		})
	}

	return c.JSON(quiz)
}
