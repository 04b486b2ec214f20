package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"quiz-supply/internal/config"
	"quiz-supply/internal/domain"
	"quiz-supply/internal/dto"
	"quiz-supply/internal/logger"

	"go.uber.org/zap"
)

// quizPrompt is the fixed instruction sent to the generator. The
// response must contain exactly one JSON object in the shape below;
// anything around it is stripped before parsing.
const quizPrompt = `Generate one interesting binary-choice trivia quiz about Japanese history, in JSON.
Follow this format exactly and include the rationale for each option:

{
  "question": "the question text",
  "options": ["option A", "option B"],
  "answer": "the correct option (e.g. option A or option B)",
  "explanation_A": "a concise explanation of option A and why it is or is not correct.",
  "explanation_B": "a concise explanation of option B and why it is or is not correct."
}
`

// QuizSupplyService defines the interface for the quiz supply pipeline
type QuizSupplyService interface {
	NextQuiz(ctx context.Context) (*dto.QuizResponse, error)
}

// quizSupplyService implements QuizSupplyService. It owns all four
// state blocks (rate limiter window, upstream budget, stock, serving
// pool) behind one mutex: the whole NextQuiz sequence is a single
// critical section, including the generator call, so upstream calls
// are serialized and no two requests can reserve the same budget slot
// or double-serve a pool item.
type quizSupplyService struct {
	mu          sync.Mutex
	limiter     *domain.RateLimiter
	budget      *domain.UpstreamBudget
	stock       *domain.QuizStock
	pool        *domain.ServingPool
	generator   domain.QuizGenerator
	clock       domain.Clock
	stockTarget int
	rng         *rand.Rand
}

// NewQuizSupplyService creates a new instance of quizSupplyService.
// All state starts empty; nothing survives a process restart.
func NewQuizSupplyService(generator domain.QuizGenerator, clock domain.Clock, cfg config.SupplyConfig) QuizSupplyService {
	return &quizSupplyService{
		limiter:     domain.NewRateLimiter(cfg.MinuteLimit, cfg.MinuteWindow),
		budget:      domain.NewUpstreamBudget(cfg.DailyLimit, clock.Now()),
		stock:       domain.NewQuizStock(),
		pool:        domain.NewServingPool(),
		generator:   generator,
		clock:       clock,
		stockTarget: cfg.StockTarget,
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// NextQuiz implements QuizSupplyService. A call either pops from the
// serving pool, grows the stock by exactly one generated item, or
// batches the stock into a fresh pool and pops from that; never more
// than one of these.
func (s *quizSupplyService) NextQuiz(ctx context.Context) (*dto.QuizResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	if !s.limiter.Admit(now) {
		logger.Get().Warn("Per-minute request limit reached",
			zap.Int("minute_limit", s.limiter.Limit()))
		return nil, domain.NewRateLimitedError(s.limiter.Limit())
	}

	// Fast path: drain the current serving pool.
	if item, ok := s.pool.Pop(); ok {
		logger.Get().Info("Serving from pool",
			zap.Int("pool_remaining", s.pool.Len()))
		return toQuizResponse(item), nil
	}

	// Slow path: grow the stock while below target and budget remains.
	// Day rollover happens inside TryReserve.
	if s.stock.Len() < s.stockTarget && s.budget.TryReserve(now) {
		logger.Get().Info("Ordering a new quiz from the generator",
			zap.Int("calls_today", s.budget.CallsToday()),
			zap.Int("daily_limit", s.budget.DailyLimit()))

		item, err := s.generateQuiz(ctx)
		if err != nil {
			return nil, err
		}

		s.stock.Append(*item)
		logger.Get().Info("Added quiz to stock",
			zap.Int("stock_size", s.stock.Len()))
		return toQuizResponse(*item), nil
	}

	// Stock target met or budget exhausted: serve from a rebatched pool.
	if s.stock.Len() == 0 {
		logger.Get().Warn("Supply exhausted: no stock and no budget")
		return nil, domain.NewExhaustedError()
	}

	s.pool.Refill(s.stock.Snapshot(), s.rng)
	logger.Get().Info("Built a new serving pool from stock",
		zap.Int("pool_size", s.pool.Len()))

	item, _ := s.pool.Pop()
	return toQuizResponse(item), nil
}

// generateQuiz makes one upstream call and parses the result. The
// budget reservation is already made and is never rolled back here:
// a failed call or an unparseable response has still cost a slot.
func (s *quizSupplyService) generateQuiz(ctx context.Context) (*domain.QuizItem, error) {
	raw, err := s.generator.Generate(ctx, quizPrompt)
	if err != nil {
		logger.Get().Error("Generator call failed", zap.Error(err))
		return nil, domain.NewUpstreamCallError(err)
	}

	span, ok := extractJSONObject(raw)
	if !ok {
		logger.Get().Error("No JSON object found in generator response",
			zap.String("raw_response", raw))
		return nil, domain.NewGenerationParseError(raw, fmt.Errorf("no JSON object delimiters in response"))
	}

	var item domain.QuizItem
	if err := json.Unmarshal([]byte(span), &item); err != nil {
		logger.Get().Error("Failed to unmarshal generator response",
			zap.Error(err),
			zap.String("raw_response", raw))
		return nil, domain.NewGenerationParseError(raw, err)
	}

	return &item, nil
}

// extractJSONObject returns the inclusive span between the first '{'
// and the last '}' of the raw model text.
func extractJSONObject(raw string) (string, bool) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end == -1 || end < start {
		return "", false
	}
	return raw[start : end+1], true
}

func toQuizResponse(item domain.QuizItem) *dto.QuizResponse {
	return &dto.QuizResponse{
		Question:     item.Question,
		Options:      item.Options,
		Answer:       item.Answer,
		ExplanationA: item.ExplanationA,
		ExplanationB: item.ExplanationB,
	}
}
