package config

import (
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"github.com/soundvault/audiodeck-bot/internal/domain"
)

// EnvProduction marks a production deployment; it forces webhook mode
// unless polling is explicitly requested.
const EnvProduction = "production"

// Config holds all configuration for the bot. It is built once at
// startup and passed into components; nothing reads the environment
// after Load returns.
type Config struct {
	Telegram TelegramConfig
	Catalog  CatalogConfig
	Logging  LoggingConfig
	Service  ServiceConfig
}

// TelegramConfig holds Telegram transport configuration
type TelegramConfig struct {
	BotToken      string
	WebhookDomain string
	WebhookSecret string
	ForcePolling  bool
}

// CatalogConfig holds audio catalog configuration
type CatalogConfig struct {
	Path string
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level string
}

// ServiceConfig holds service configuration
type ServiceConfig struct {
	Name string
	Port string
	Env  string
}

// Result provides config parts for fx dependency injection using fx.Out pattern
type Result struct {
	fx.Out

	Config   *Config
	Telegram *TelegramConfig
	Catalog  *CatalogConfig
	Logging  *LoggingConfig
	Service  *ServiceConfig
}

// Out loads configuration and returns Result for fx injection
func Out() (Result, error) {
	cfg, err := Load()
	if err != nil {
		return Result{}, err
	}

	return Result{
		Config:   cfg,
		Telegram: &cfg.Telegram,
		Catalog:  &cfg.Catalog,
		Logging:  &cfg.Logging,
		Service:  &cfg.Service,
	}, nil
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists
	_ = godotenv.Load()

	cfg := &Config{
		Telegram: TelegramConfig{
			BotToken:      getEnv("BOT_TOKEN", ""),
			WebhookDomain: getEnv("WEBHOOK_DOMAIN", ""),
			WebhookSecret: getEnv("WEBHOOK_SECRET", uuid.NewString()),
			ForcePolling:  getBool("FORCE_POLLING", false),
		},
		Catalog: CatalogConfig{
			Path: getEnv("CATALOG_FILE", "audios.json"),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Service: ServiceConfig{
			Name: getEnv("SERVICE_NAME", "audiodeck-bot"),
			Port: getEnv("PORT", "3000"),
			Env:  getEnv("APP_ENV", "development"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Telegram.BotToken == "" {
		return domain.ErrMissingBotToken
	}

	return nil
}

// getEnv gets environment variable with default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getBool gets a boolean environment variable with default value
func getBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	switch strings.ToLower(value) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}
