package quizgen

import (
	"context"
	"fmt"

	"quiz-supply/internal/domain"
	"quiz-supply/internal/logger"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
	"go.uber.org/zap"
)

// GeminiGenerator implements domain.QuizGenerator on top of the Google
// AI (Gemini) chat models via langchaingo.
type GeminiGenerator struct {
	llm       *googleai.GoogleAI
	modelName string
}

// NewGeminiGenerator creates a Gemini-backed generator. The credential
// must already be resolved; an empty key is a configuration error.
func NewGeminiGenerator(ctx context.Context, apiKey string, modelName string) (*GeminiGenerator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key cannot be empty")
	}
	if modelName == "" {
		return nil, fmt.Errorf("gemini model name cannot be empty")
	}

	llm, err := googleai.New(ctx,
		googleai.WithAPIKey(apiKey),
		googleai.WithDefaultModel(modelName),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	logger.Get().Info("Gemini generator initialized", zap.String("model", modelName))
	return &GeminiGenerator{llm: llm, modelName: modelName}, nil
}

// Generate sends the prompt to the model and returns the raw response
// text. No timeout is imposed beyond what the client itself enforces.
func (g *GeminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	response, err := llms.GenerateFromSinglePrompt(ctx, g.llm, prompt, llms.WithTemperature(0.7))
	if err != nil {
		return "", fmt.Errorf("gemini call failed: %w", err)
	}
	return response, nil
}

// Static assertion to ensure GeminiGenerator implements QuizGenerator
var _ domain.QuizGenerator = (*GeminiGenerator)(nil)
