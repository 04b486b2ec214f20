package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"quiz-supply/internal/adapter/quizgen"
	"quiz-supply/internal/config"
	"quiz-supply/internal/domain"
	"quiz-supply/internal/handler"
	"quiz-supply/internal/logger"
	"quiz-supply/internal/middleware"
	"quiz-supply/internal/secrets"
	"quiz-supply/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

// requestLogger is a middleware that logs HTTP requests
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		path := c.Path()
		method := c.Method()

		err := c.Next()

		duration := time.Since(start)
		status := c.Response().StatusCode()
		requestID, _ := c.Locals(middleware.LocalsRequestID).(string)

		logger.Get().Info("HTTP Request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
			zap.Duration("duration", duration),
			zap.String("ip", c.IP()),
			zap.String("request_id", requestID),
		)

		return err
	}
}

// resolveCredential returns the generator API key per the configured
// secret source. A missing credential is fatal for the caller: the
// service must not accept traffic without it.
func resolveCredential(ctx context.Context, cfg *config.Config) (string, error) {
	if cfg.Secrets.Source == "ssm" {
		provider, err := secrets.NewSSMProvider(cfg.Secrets.Region, cfg.Secrets.ParameterName)
		if err != nil {
			return "", err
		}
		return provider.GetSecret(ctx)
	}

	if cfg.Gemini.APIKey != "" {
		return cfg.Gemini.APIKey, nil
	}
	return secrets.NewEnvProvider("GOOGLE_API_KEY").GetSecret(ctx)
}

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	ctx := context.Background()

	apiKey, err := resolveCredential(ctx, cfg)
	if err != nil {
		appLogger.Fatal("Failed to resolve generator credential", zap.Error(err))
	}

	generator, err := quizgen.NewGeminiGenerator(ctx, apiKey, cfg.Gemini.Model)
	if err != nil {
		appLogger.Fatal("Failed to create Gemini generator", zap.Error(err))
	}

	supplyService := service.NewQuizSupplyService(generator, domain.NewSystemClock(), cfg.Supply)
	appLogger.Info("Quiz supply service initialized",
		zap.Int("minute_limit", cfg.Supply.MinuteLimit),
		zap.Int("daily_limit", cfg.Supply.DailyLimit),
		zap.Int("stock_target", cfg.Supply.StockTarget),
	)

	quizHandler := handler.NewQuizHandler(supplyService)

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(middleware.RequestID())
	app.Use(requestLogger())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
		MaxAge:       300,
	}))
	app.Use(recover.New())

	app.Get("/quiz", quizHandler.GetQuiz)

	// Start server
	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Logger.Env))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		appLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
