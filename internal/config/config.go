package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// RateLimitConfig indicates how many requests are allowed within a given interval.
type RateLimitConfig struct {
	Requests int
	Interval time.Duration
}

// Config aggregates application-wide configuration values.
type Config struct {
	GeminiAPIKey     string
	GeminiModel      string
	FsqAPIKey        string
	FsqBaseURL       string
	APICode          string
	Port             string
	Env              string
	EnrichLimit      int
	RateLimitExecute RateLimitConfig
}

// Load reads configuration from environment variables and applies sane defaults.
// GEMINI_API_KEY, FSQ_API_KEY and API_CODE are required; missing ones fail
// startup with an error naming each of them.
func Load() (*Config, error) {
	cfg := &Config{
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		FsqAPIKey:    os.Getenv("FSQ_API_KEY"),
		FsqBaseURL:   getEnv("FSQ_BASE_URL", "https://places-api.foursquare.com/"),
		APICode:      os.Getenv("API_CODE"),
		Port:         getEnv("PORT", "3000"),
		Env:          getEnv("APP_ENV", "development"),
		EnrichLimit:  parseInt(getEnv("ENRICH_LIMIT", "12"), 12),
	}

	var missing []string
	if cfg.GeminiAPIKey == "" {
		missing = append(missing, "GEMINI_API_KEY")
	}
	if cfg.FsqAPIKey == "" {
		missing = append(missing, "FSQ_API_KEY")
	}
	if cfg.APICode == "" {
		missing = append(missing, "API_CODE")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	rl, err := parseRateLimit(getEnv("RATE_LIMIT_EXECUTE", "30/min"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_EXECUTE value: %w", err)
	}
	cfg.RateLimitExecute = rl

	return cfg, nil
}

func parseRateLimit(value string) (RateLimitConfig, error) {
	parts := strings.Split(value, "/")
	if len(parts) != 2 {
		return RateLimitConfig{}, fmt.Errorf("expected format <requests>/<interval>, got %q", value)
	}

	requests, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || requests <= 0 {
		return RateLimitConfig{}, fmt.Errorf("invalid request count: %v", parts[0])
	}

	unit := strings.ToLower(strings.TrimSpace(parts[1]))
	var interval time.Duration
	switch unit {
	case "s", "sec", "second", "seconds":
		interval = time.Second
	case "m", "min", "minute", "minutes":
		interval = time.Minute
	case "h", "hr", "hour", "hours":
		interval = time.Hour
	default:
		return RateLimitConfig{}, fmt.Errorf("unsupported interval unit: %s", unit)
	}

	return RateLimitConfig{Requests: requests, Interval: interval}, nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return fallback
}

func parseInt(input string, fallback int) int {
	v, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}
