package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig
	Logger  LoggerConfig
	Supply  SupplyConfig
	Gemini  GeminiConfig
	Secrets SecretsConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type LoggerConfig struct {
	Env   string
	Level string
}

// SupplyConfig holds the tunables of the quiz supply pipeline.
type SupplyConfig struct {
	MinuteLimit  int           // inbound requests admitted per window
	MinuteWindow time.Duration // sliding window size
	DailyLimit   int           // upstream generator calls per calendar day
	StockTarget  int           // stock stops growing at this size
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

// SecretsConfig selects where the generator credential comes from.
// Source "env" reads GOOGLE_API_KEY; "ssm" fetches a SecureString
// parameter from AWS Systems Manager Parameter Store.
type SecretsConfig struct {
	Source        string
	ParameterName string
	Region        string
}

func LoadConfig() (*Config, error) {
	// .env is optional; real deployments set plain environment variables.
	_ = godotenv.Load()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./configs")

	viper.SetDefault("server.port", 5000)
	viper.SetDefault("server.read_timeout", 20)
	viper.SetDefault("server.write_timeout", 20)
	viper.SetDefault("logger.env", "development")
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("supply.minute_limit", 55)
	viper.SetDefault("supply.minute_window", 60)
	viper.SetDefault("supply.daily_limit", 500)
	viper.SetDefault("supply.stock_target", 5)
	viper.SetDefault("gemini.model", "gemini-1.5-flash-latest")
	viper.SetDefault("secrets.source", "env")
	viper.SetDefault("secrets.region", "ap-southeast-2")

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// No config file is fine; defaults and environment cover everything.
	}

	config := &Config{
		Server: ServerConfig{
			Port:         viper.GetInt("server.port"),
			ReadTimeout:  viper.GetDuration("server.read_timeout") * time.Second,
			WriteTimeout: viper.GetDuration("server.write_timeout") * time.Second,
		},
		Logger: LoggerConfig{
			Env:   viper.GetString("logger.env"),
			Level: viper.GetString("logger.level"),
		},
		Supply: SupplyConfig{
			MinuteLimit:  viper.GetInt("supply.minute_limit"),
			MinuteWindow: viper.GetDuration("supply.minute_window") * time.Second,
			DailyLimit:   viper.GetInt("supply.daily_limit"),
			StockTarget:  viper.GetInt("supply.stock_target"),
		},
		Gemini: GeminiConfig{
			APIKey: viper.GetString("gemini.api_key"),
			Model:  viper.GetString("gemini.model"),
		},
		Secrets: SecretsConfig{
			Source:        viper.GetString("secrets.source"),
			ParameterName: viper.GetString("secrets.parameter_name"),
			Region:        viper.GetString("secrets.region"),
		},
	}

	// Override with environment variables if set
	if port := os.Getenv("SERVER_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}
	if env := os.Getenv("ENV"); env != "" {
		config.Logger.Env = env
	}
	if key := os.Getenv("GOOGLE_API_KEY"); key != "" {
		config.Gemini.APIKey = key
	}
	if model := os.Getenv("GEMINI_MODEL"); model != "" {
		config.Gemini.Model = model
	}
	if source := os.Getenv("SECRETS_SOURCE"); source != "" {
		config.Secrets.Source = source
	}
	if param := os.Getenv("GOOGLE_AI_STUDIO_KEY_PARAM_NAME"); param != "" {
		config.Secrets.ParameterName = param
	}
	if region := os.Getenv("AWS_REGION"); region != "" {
		config.Secrets.Region = region
	}

	return config, nil
}
