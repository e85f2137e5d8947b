// Package config loads the application configuration from an optional .env
// file, an optional YAML file and environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultConfigPath is read when METRO_CONFIG is not set
const DefaultConfigPath = "config.yml"

// Config holds all application configuration
type Config struct {
	WMATA    WMATAConfig    `yaml:"wmata"`
	Telegram TelegramConfig `yaml:"telegram"`
	OpenAI   OpenAIConfig   `yaml:"openai"`
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Watcher  WatcherConfig  `yaml:"watcher"`
}

// WMATAConfig configures the transit API client. An empty key is allowed;
// requests are still attempted.
type WMATAConfig struct {
	APIKey        string        `yaml:"api_key"`
	BaseURL       string        `yaml:"base_url" validate:"required,url"`
	Timeout       time.Duration `yaml:"timeout" validate:"gt=0"`
	RatePerSecond float64       `yaml:"rate_per_second" validate:"gt=0"`
}

type TelegramConfig struct {
	BotToken string `yaml:"bot_token"`
}

type OpenAIConfig struct {
	APIKey string `yaml:"api_key"`
}

type ServerConfig struct {
	Addr string `yaml:"addr" validate:"required"`
}

type DatabaseConfig struct {
	Path string `yaml:"path" validate:"required"`
}

// WatcherConfig controls the alert log refresh
type WatcherConfig struct {
	Schedule      string        `yaml:"schedule" validate:"required"`
	HistoryWindow time.Duration `yaml:"history_window" validate:"gt=0"`
}

// Default returns the configuration used when nothing is overridden
func Default() *Config {
	return &Config{
		WMATA: WMATAConfig{
			BaseURL:       "https://api.wmata.com",
			Timeout:       30 * time.Second,
			RatePerSecond: 10,
		},
		Server:   ServerConfig{Addr: ":8080"},
		Database: DatabaseConfig{Path: "data/alerts.db"},
		Watcher: WatcherConfig{
			Schedule:      "*/5 * * * *",
			HistoryWindow: 24 * time.Hour,
		},
	}
}

// Load builds the configuration and validates it
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("Warning: could not read .env file: %v", err)
	}

	cfg := Default()

	path, explicit := os.LookupEnv("METRO_CONFIG")
	if !explicit {
		path = DefaultConfigPath
	}
	if err := cfg.loadFile(path); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	cfg.applyEnv()

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	log.Printf("Loaded configuration from %s", path)
	return nil
}

func (c *Config) applyEnv() {
	c.WMATA.APIKey = getEnv("WMATA_API_KEY", c.WMATA.APIKey)
	c.WMATA.BaseURL = getEnv("WMATA_API_BASE", c.WMATA.BaseURL)
	c.WMATA.Timeout = getEnvAsDuration("WMATA_TIMEOUT", c.WMATA.Timeout)
	c.WMATA.RatePerSecond = getEnvAsFloat("WMATA_RATE_PER_SECOND", c.WMATA.RatePerSecond)
	c.Telegram.BotToken = getEnv("TELEGRAM_BOT_TOKEN", c.Telegram.BotToken)
	c.OpenAI.APIKey = getEnv("OPENAI_API_KEY", c.OpenAI.APIKey)
	c.Server.Addr = getEnv("SERVER_ADDR", c.Server.Addr)
	c.Database.Path = getEnv("DB_PATH", c.Database.Path)
	c.Watcher.Schedule = getEnv("WATCHER_SCHEDULE", c.Watcher.Schedule)
	c.Watcher.HistoryWindow = getEnvAsDuration("HISTORY_WINDOW", c.Watcher.HistoryWindow)
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsFloat retrieves an environment variable as a float or returns a default value
func getEnvAsFloat(key string, defaultValue float64) float64 {
	if valueStr := os.Getenv(key); valueStr != "" {
		if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
			return value
		}
		log.Printf("Warning: ignoring invalid %s=%q", key, valueStr)
	}
	return defaultValue
}

// getEnvAsDuration retrieves an environment variable as a duration or returns a default value
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if valueStr := os.Getenv(key); valueStr != "" {
		if value, err := time.ParseDuration(valueStr); err == nil {
			return value
		}
		log.Printf("Warning: ignoring invalid %s=%q", key, valueStr)
	}
	return defaultValue
}
