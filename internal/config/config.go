package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	HTTPAddr           string
	AssetBaseURL       string
	EntitlementTimeout time.Duration
	Telegram           TelegramConfig
	Database           DatabaseConfig
}

// TelegramConfig holds the optional operator-alert channel settings
type TelegramConfig struct {
	Token     string
	OpsChatID int64
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	timeoutSec, err := strconv.Atoi(getEnv("ENTITLEMENT_TIMEOUT_SECONDS", "3"))
	if err != nil || timeoutSec <= 0 {
		return nil, fmt.Errorf("ENTITLEMENT_TIMEOUT_SECONDS must be a positive integer")
	}

	var opsChatID int64
	if raw := os.Getenv("TELEGRAM_OPS_CHAT"); raw != "" {
		opsChatID, err = strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("TELEGRAM_OPS_CHAT must be a chat id: %w", err)
		}
	}

	cfg := &Config{
		HTTPAddr:           getEnv("HTTP_ADDR", ":8080"),
		AssetBaseURL:       getEnv("ASSET_BASE_URL", "https://tones.example.com/"),
		EntitlementTimeout: time.Duration(timeoutSec) * time.Second,
		Telegram: TelegramConfig{
			Token:     os.Getenv("TELEGRAM_BOT_TOKEN"),
			OpsChatID: opsChatID,
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			Name:     getEnv("DB_NAME", "toneskill"),
			User:     getEnv("DB_USER", "toneskill"),
			Password: os.Getenv("DB_PASSWORD"),
		},
	}

	// Validate required fields
	if cfg.Database.Password == "" {
		return nil, fmt.Errorf("DB_PASSWORD is required")
	}
	if cfg.Telegram.Token != "" && cfg.Telegram.OpsChatID == 0 {
		return nil, fmt.Errorf("TELEGRAM_OPS_CHAT is required when TELEGRAM_BOT_TOKEN is set")
	}

	return cfg, nil
}

// DSN returns PostgreSQL connection string
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
