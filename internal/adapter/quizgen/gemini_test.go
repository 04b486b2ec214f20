package quizgen

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewGeminiGenerator_RequiresAPIKey(t *testing.T) {
	_, err := NewGeminiGenerator(context.Background(), "", "gemini-1.5-flash-latest")
	assert.Error(t, err)
}

func TestNewGeminiGenerator_RequiresModelName(t *testing.T) {
	_, err := NewGeminiGenerator(context.Background(), "sk-test", "")
	assert.Error(t, err)
}
