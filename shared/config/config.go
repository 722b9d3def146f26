package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Telegram   TelegramConfig   `yaml:"telegram"`
	YouTube    YouTubeConfig    `yaml:"youtube"`
	AI         AIConfig         `yaml:"ai"`
	Monitoring MonitoringConfig `yaml:"monitoring"`
	LogLevel   string           `yaml:"log_level" env:"LOG_LEVEL"`
}

type TelegramConfig struct {
	BotToken       string `yaml:"bot_token" env:"BOT_TOKEN"`
	PollTimeoutSec int    `yaml:"poll_timeout_seconds"`
	Debug          bool   `yaml:"debug"`
}

type YouTubeConfig struct {
	APIKey string `yaml:"api_key" env:"YOUTUBE_API_KEY"`
}

type AIConfig struct {
	GeminiAPIKey string `yaml:"gemini_api_key" env:"GEMINI_API_KEY"`
	Model        string `yaml:"model"`
}

type MonitoringConfig struct {
	HealthPort    int    `yaml:"health_port" env:"HEALTH_PORT"`
	StatsSchedule string `yaml:"stats_schedule"`
}

type loadOptions struct {
	skipTelegram bool
}

// LoadOption adjusts what Load insists on.
type LoadOption func(*loadOptions)

// WithoutTelegram drops the bot token requirement for commands that never
// talk to Telegram.
func WithoutTelegram() LoadOption {
	return func(o *loadOptions) {
		o.skipTelegram = true
	}
}

// Load reads .env, then the optional YAML file named by CONFIG_FILE
// (config.yaml by default), then fills the gaps from the environment.
// Credentials are required; a missing one fails before any request is served.
func Load(opts ...LoadOption) (*Config, error) {
	var o loadOptions
	for _, opt := range opts {
		opt(&o)
	}

	_ = godotenv.Load()

	configFile := os.Getenv("CONFIG_FILE")
	explicit := configFile != ""
	if !explicit {
		configFile = "config.yaml"
	}

	var cfg Config
	data, err := os.ReadFile(configFile)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", configFile, err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
		// Environment-only deployment.
	default:
		return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
	}

	cfg.applyEnv()
	cfg.applyDefaults()

	if err := cfg.validate(o); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func (c *Config) applyEnv() {
	if c.Telegram.BotToken == "" {
		c.Telegram.BotToken = os.Getenv("BOT_TOKEN")
	}
	if c.YouTube.APIKey == "" {
		c.YouTube.APIKey = os.Getenv("YOUTUBE_API_KEY")
	}
	if c.AI.GeminiAPIKey == "" {
		c.AI.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	}
	if c.LogLevel == "" {
		c.LogLevel = os.Getenv("LOG_LEVEL")
	}
	if c.Monitoring.HealthPort == 0 {
		if port, err := strconv.Atoi(os.Getenv("HEALTH_PORT")); err == nil {
			c.Monitoring.HealthPort = port
		}
	}
}

func (c *Config) applyDefaults() {
	if c.AI.Model == "" {
		c.AI.Model = "gemini-2.5-flash"
	}
	if c.Telegram.PollTimeoutSec <= 0 {
		c.Telegram.PollTimeoutSec = 60
	}
	if c.Monitoring.HealthPort == 0 {
		c.Monitoring.HealthPort = 8080
	}
	if c.Monitoring.StatsSchedule == "" {
		c.Monitoring.StatsSchedule = "0 0 9 * * *" // Daily at 9 AM
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

func (c *Config) validate(o loadOptions) error {
	if c.Telegram.BotToken == "" && !o.skipTelegram {
		return fmt.Errorf("Telegram bot token is required (set BOT_TOKEN or telegram.bot_token)")
	}
	if c.AI.GeminiAPIKey == "" {
		return fmt.Errorf("Gemini API key is required (set GEMINI_API_KEY or ai.gemini_api_key)")
	}
	if c.YouTube.APIKey == "" {
		return fmt.Errorf("YouTube API key is required (set YOUTUBE_API_KEY or youtube.api_key)")
	}
	if c.Monitoring.HealthPort < 0 || c.Monitoring.HealthPort > 65535 {
		return fmt.Errorf("invalid health port %d", c.Monitoring.HealthPort)
	}
	return nil
}
