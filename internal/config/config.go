package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config captures runtime configuration for the dashboard API.
type Config struct {
	ListenAddr  string
	DatabaseDSN string

	FeedBaseURL string
	FeedTimeout time.Duration

	JWTSecret string
	TokenTTL  time.Duration

	// Value of the "Phone Status" field that marks a scheduled interview.
	// This is CRM data, not code, so it stays configurable.
	InterviewScheduledStatus string

	MetricsTopN int
}

// FromEnv creates a configuration instance sourced from environment variables.
func FromEnv() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		ListenAddr:               getEnv("DASH_LISTEN_ADDR", ":8080"),
		DatabaseDSN:              getEnv("DASH_DATABASE_DSN", "host=localhost user=postgres password=postgres dbname=dashboard port=5432 sslmode=disable"),
		FeedBaseURL:              getEnv("DASH_FEED_BASE_URL", ""),
		FeedTimeout:              15 * time.Second,
		JWTSecret:                os.Getenv("DASH_JWT_SECRET"),
		TokenTTL:                 24 * time.Hour,
		InterviewScheduledStatus: getEnv("DASH_INTERVIEW_SCHEDULED_STATUS", "Görüşme Ayarlandı"),
		MetricsTopN:              3,
	}

	if cfg.JWTSecret == "" {
		return Config{}, errors.New("DASH_JWT_SECRET is required")
	}

	if timeout := os.Getenv("DASH_FEED_TIMEOUT_S"); timeout != "" {
		var seconds int
		if _, err := fmt.Sscanf(timeout, "%d", &seconds); err != nil {
			return Config{}, fmt.Errorf("parse DASH_FEED_TIMEOUT_S: %w", err)
		}
		cfg.FeedTimeout = time.Duration(seconds) * time.Second
	}

	if ttl := os.Getenv("DASH_TOKEN_TTL_H"); ttl != "" {
		var hours int
		if _, err := fmt.Sscanf(ttl, "%d", &hours); err != nil {
			return Config{}, fmt.Errorf("parse DASH_TOKEN_TTL_H: %w", err)
		}
		cfg.TokenTTL = time.Duration(hours) * time.Hour
	}

	if topN := os.Getenv("DASH_METRICS_TOP_N"); topN != "" {
		if _, err := fmt.Sscanf(topN, "%d", &cfg.MetricsTopN); err != nil {
			return Config{}, fmt.Errorf("parse DASH_METRICS_TOP_N: %w", err)
		}
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
