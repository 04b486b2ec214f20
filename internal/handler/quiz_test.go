package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"os"
	"testing"

	"quiz-supply/internal/config"
	"quiz-supply/internal/domain"
	"quiz-supply/internal/dto"
	"quiz-supply/internal/handler"
	"quiz-supply/internal/logger"
	"quiz-supply/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(config.LoggerConfig{}); err != nil {
		panic("Failed to initialize logger for tests: " + err.Error())
	}
	exitVal := m.Run()
	_ = logger.Sync()
	os.Exit(exitVal)
}

// --- Manual Mocks ---

type MockQuizSupplyService struct {
	NextQuizFunc func(ctx context.Context) (*dto.QuizResponse, error)
}

func (m *MockQuizSupplyService) NextQuiz(ctx context.Context) (*dto.QuizResponse, error) {
	if m.NextQuizFunc != nil {
		return m.NextQuizFunc(ctx)
	}
	panic("MockQuizSupplyService.NextQuizFunc not implemented")
}

func newTestApp(svc *MockQuizSupplyService) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler(),
	})
	quizHandler := handler.NewQuizHandler(svc)
	app.Get("/quiz", quizHandler.GetQuiz)
	return app
}

func decodeBody(t *testing.T, body io.Reader, out interface{}) {
	t.Helper()
	require.NoError(t, json.NewDecoder(body).Decode(out))
}

func TestQuizHandler_GetQuiz(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := &MockQuizSupplyService{
			NextQuizFunc: func(ctx context.Context) (*dto.QuizResponse, error) {
				return &dto.QuizResponse{
					Question:     "Which came first, the Kamakura or the Muromachi shogunate?",
					Options:      []string{"Kamakura", "Muromachi"},
					Answer:       "Kamakura",
					ExplanationA: "The Kamakura shogunate was founded in 1185.",
					ExplanationB: "The Muromachi shogunate followed in 1336.",
				}, nil
			},
		}
		app := newTestApp(svc)

		resp, err := app.Test(httptest.NewRequest("GET", "/quiz", nil))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var quiz dto.QuizResponse
		decodeBody(t, resp.Body, &quiz)
		assert.Equal(t, "Kamakura", quiz.Answer)
		assert.Len(t, quiz.Options, 2)
		assert.NotEmpty(t, quiz.ExplanationA)
	})

	t.Run("Rate Limited", func(t *testing.T) {
		svc := &MockQuizSupplyService{
			NextQuizFunc: func(ctx context.Context) (*dto.QuizResponse, error) {
				return nil, domain.NewRateLimitedError(55)
			},
		}
		app := newTestApp(svc)

		resp, err := app.Test(httptest.NewRequest("GET", "/quiz", nil))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)

		var body dto.ErrorResponse
		decodeBody(t, resp.Body, &body)
		assert.Equal(t, "Rate limit of 55 requests per minute exceeded.", body.Error)
	})

	t.Run("Supply Exhausted", func(t *testing.T) {
		svc := &MockQuizSupplyService{
			NextQuizFunc: func(ctx context.Context) (*dto.QuizResponse, error) {
				return nil, domain.NewExhaustedError()
			},
		}
		app := newTestApp(svc)

		resp, err := app.Test(httptest.NewRequest("GET", "/quiz", nil))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)

		var body dto.ErrorResponse
		decodeBody(t, resp.Body, &body)
		assert.Equal(t, "Daily API limit reached and no quizzes are available.", body.Error)
	})

	t.Run("Generation Parse Error", func(t *testing.T) {
		svc := &MockQuizSupplyService{
			NextQuizFunc: func(ctx context.Context) (*dto.QuizResponse, error) {
				return nil, domain.NewGenerationParseError("garbage output", errors.New("no JSON object delimiters in response"))
			},
		}
		app := newTestApp(svc)

		resp, err := app.Test(httptest.NewRequest("GET", "/quiz", nil))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

		var body dto.ErrorResponse
		decodeBody(t, resp.Body, &body)
		assert.Equal(t, "Generator returned an unparseable response.", body.Error)
	})

	t.Run("Upstream Call Error", func(t *testing.T) {
		svc := &MockQuizSupplyService{
			NextQuizFunc: func(ctx context.Context) (*dto.QuizResponse, error) {
				return nil, domain.NewUpstreamCallError(errors.New("connection refused"))
			},
		}
		app := newTestApp(svc)

		resp, err := app.Test(httptest.NewRequest("GET", "/quiz", nil))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	})

	t.Run("Unknown Error", func(t *testing.T) {
		svc := &MockQuizSupplyService{
			NextQuizFunc: func(ctx context.Context) (*dto.QuizResponse, error) {
				return nil, errors.New("something odd")
			},
		}
		app := newTestApp(svc)

		resp, err := app.Test(httptest.NewRequest("GET", "/quiz", nil))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

		var body dto.ErrorResponse
		decodeBody(t, resp.Body, &body)
		assert.Equal(t, "Internal server error", body.Error)
	})
}
