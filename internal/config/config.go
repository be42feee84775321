package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds runtime configuration values for the API service.
type Config struct {
	AppName           string
	AppEnv            string
	AppPort           string
	DatabaseURL       string
	SQLitePath        string
	RedisURL          string
	DashboardCacheTTL time.Duration
	EnforceDuration   bool
	DurationGrace     time.Duration
}

// HTTPAddress returns the address the HTTP server should listen on.
func (c Config) HTTPAddress() string {
	if strings.HasPrefix(c.AppPort, ":") {
		return c.AppPort
	}

	return fmt.Sprintf(":%s", c.AppPort)
}

// Load reads configuration values from environment variables and optional .env file.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("EXAMFORGE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("app.name", "ExamForge API")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.port", "8080")
	v.SetDefault("sqlite.path", "data/test-app.db")
	v.SetDefault("dashboard.cache_ttl", "5m")
	v.SetDefault("exam.enforce_duration", false)
	v.SetDefault("exam.duration_grace", "30s")

	ttlString := v.GetString("dashboard.cache_ttl")
	if ttlString == "" {
		ttlString = "5m"
	}

	ttl, err := time.ParseDuration(ttlString)
	if err != nil {
		return Config{}, fmt.Errorf("invalid dashboard cache ttl: %w", err)
	}

	graceString := v.GetString("exam.duration_grace")
	if graceString == "" {
		graceString = "30s"
	}

	grace, err := time.ParseDuration(graceString)
	if err != nil {
		return Config{}, fmt.Errorf("invalid exam duration grace: %w", err)
	}

	cfg := Config{
		AppName:           v.GetString("app.name"),
		AppEnv:            v.GetString("app.env"),
		AppPort:           v.GetString("app.port"),
		DatabaseURL:       v.GetString("database.url"),
		SQLitePath:        v.GetString("sqlite.path"),
		RedisURL:          v.GetString("redis.url"),
		DashboardCacheTTL: ttl,
		EnforceDuration:   v.GetBool("exam.enforce_duration"),
		DurationGrace:     grace,
	}

	if cfg.DatabaseURL == "" && cfg.SQLitePath == "" {
		return Config{}, fmt.Errorf("either a database url or a sqlite path must be provided")
	}

	return cfg, nil
}
