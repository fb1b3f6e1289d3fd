package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the application configuration loaded from environment
// variables and an optional .env file.
type Config struct {
	Port         string `mapstructure:"PORT"`
	DBPath       string `mapstructure:"QB_DB_PATH"`
	IsProduction bool   `mapstructure:"IS_PRODUCTION"`
	LogLevel     string `mapstructure:"LOG_LEVEL"`
	UserName     string `mapstructure:"QB_USER"`
}

// LoadConfig reads configuration from the environment. A .env file in the
// working directory is loaded first when present; real environment
// variables take precedence.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("Could not load .env file", slog.String("error", err.Error()))
	}

	v := viper.New()
	v.SetDefault("PORT", "8080")
	v.SetDefault("QB_DB_PATH", "quietbooks.db")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("QB_USER", "local")
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

// SlogLevel maps the configured log level string onto a slog.Level.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
