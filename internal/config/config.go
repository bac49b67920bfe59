package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap/zapcore"
)

// Config holds application configuration
type Config struct {
	TelegramToken string   `envconfig:"TELEGRAM_BOT_TOKEN" required:"true"`
	DatabasePath  string   `envconfig:"DATABASE_PATH" default:"./birthdays.db"`
	LogLevel      string   `envconfig:"LOG_LEVEL" default:"info"` // debug|info|warn|error
	DefaultLocale string   `envconfig:"DEFAULT_LOCALE" default:"en"`
	HTTPAddr      string   `envconfig:"HTTP_ADDR" default:":8080"`
	Lookup        Lookup   `envconfig:"LOOKUP"`
	Platform      Platform `envconfig:"PLATFORM"`
}

// Lookup configures the username lookup service (LOOKUP_*)
type Lookup struct {
	Addr    string        `envconfig:"ADDR" default:"127.0.0.1:9894"`
	Timeout time.Duration `envconfig:"TIMEOUT" default:"15s"`
}

// Platform bounds calls to the Telegram API (PLATFORM_*)
type Platform struct {
	Timeout time.Duration `envconfig:"TIMEOUT" default:"10s"`
	Rate    float64       `envconfig:"RATE" default:"25"`
	Burst   int           `envconfig:"BURST" default:"5"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	if cfg.TelegramToken == "" {
		return nil, fmt.Errorf("TELEGRAM_BOT_TOKEN is required")
	}
	if _, err := zapcore.ParseLevel(cfg.LogLevel); err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", cfg.LogLevel, err)
	}
	if cfg.Platform.Timeout <= 0 {
		return nil, fmt.Errorf("PLATFORM_TIMEOUT must be positive")
	}
	if cfg.Platform.Rate <= 0 || cfg.Platform.Burst < 1 {
		return nil, fmt.Errorf("PLATFORM_RATE and PLATFORM_BURST must be positive")
	}

	return &cfg, nil
}
