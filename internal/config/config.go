package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/maenko-m/meeting-management-backend/internal/schedule"
)

const PROD_STRING = "prod"

// Config holds all application configuration loaded from environment.
type Config struct {
	IsProduction      bool
	ProdOrigins       string
	HTTPAddr          string
	DBDSN             string
	JWTSecret         string
	JWTAccessTokenTTL time.Duration
	BcryptCost        int
	UploadDir         string

	// Scheduling core knobs. Every one of these has a stock default so
	// the core never hardcodes them internally; tests override freely.
	RecurrenceHorizonMonths int
	RecurrenceMaxInstances  int
	TimelineWindowStart     schedule.TimeOfDay
	TimelineWindowEnd       schedule.TimeOfDay
	TimelineMargin          float64

	// HTTP middleware tuning.
	RateLimitRPS   float64
	RateLimitBurst int
	ListCacheTTL   time.Duration
}

// Load loads configuration from .env (optional) and environment variables.
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("failed to load .env file: %v", err)
	}

	cfg := &Config{}

	cfg.ProdOrigins = getEnv("PROD_ORIGINS", "")

	appEnvStr := getEnv("APP_ENV", "dev")
	cfg.IsProduction = appEnvStr == PROD_STRING

	cfg.HTTPAddr = getEnv("HTTP_ADDR", ":8080")

	cfg.DBDSN = os.Getenv("DB_DSN")
	if cfg.DBDSN == "" {
		return nil, fmt.Errorf("DB_DSN is required")
	}

	cfg.JWTSecret = os.Getenv("JWT_SECRET")
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	ttlStr := getEnv("JWT_ACCESS_TOKEN_TTL", "15m")
	ttl, err := time.ParseDuration(ttlStr)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_ACCESS_TOKEN_TTL: %w", err)
	}
	cfg.JWTAccessTokenTTL = ttl

	cfg.BcryptCost, err = getEnvAsInt("BCRYPT_COST", 12)
	if err != nil {
		return nil, fmt.Errorf("invalid BCRYPT_COST: %w", err)
	}

	cfg.UploadDir = getEnv("UPLOAD_DIR", "./uploads")

	cfg.RecurrenceHorizonMonths, err = getEnvAsInt("RECURRENCE_HORIZON_MONTHS", schedule.DefaultHorizonMonths)
	if err != nil {
		return nil, fmt.Errorf("invalid RECURRENCE_HORIZON_MONTHS: %w", err)
	}
	cfg.RecurrenceMaxInstances, err = getEnvAsInt("RECURRENCE_MAX_INSTANCES", schedule.DefaultMaxOccurrences)
	if err != nil {
		return nil, fmt.Errorf("invalid RECURRENCE_MAX_INSTANCES: %w", err)
	}

	cfg.TimelineWindowStart, err = getEnvAsTimeOfDay("TIMELINE_WINDOW_START", "06:00")
	if err != nil {
		return nil, err
	}
	cfg.TimelineWindowEnd, err = getEnvAsTimeOfDay("TIMELINE_WINDOW_END", "22:00")
	if err != nil {
		return nil, err
	}
	if cfg.TimelineWindowEnd <= cfg.TimelineWindowStart {
		return nil, fmt.Errorf("TIMELINE_WINDOW_END must be after TIMELINE_WINDOW_START")
	}

	cfg.TimelineMargin, err = getEnvAsFloat("TIMELINE_MARGIN", 10)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMELINE_MARGIN: %w", err)
	}

	cfg.RateLimitRPS, err = getEnvAsFloat("RATE_LIMIT_RPS", 20)
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_RPS: %w", err)
	}
	cfg.RateLimitBurst, err = getEnvAsInt("RATE_LIMIT_BURST", 40)
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_BURST: %w", err)
	}

	cacheTTLStr := getEnv("LIST_CACHE_TTL", "30s")
	cfg.ListCacheTTL, err = time.ParseDuration(cacheTTLStr)
	if err != nil {
		return nil, fmt.Errorf("invalid LIST_CACHE_TTL: %w", err)
	}

	return cfg, nil
}

// TimelineWindow assembles the configured visible timeline range.
func (c *Config) TimelineWindow() schedule.Window {
	return schedule.Window{
		Start:  c.TimelineWindowStart,
		End:    c.TimelineWindowEnd,
		Margin: c.TimelineMargin,
	}
}

// getEnv returns the value of the environment variable if set,
// otherwise returns the provided default value.
func getEnv(key, defaultValue string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer.
// It returns the default value if the variable is not set.
// It returns an error if the variable is set but is not a valid integer.
func getEnvAsInt(key string, defaultValue int) (int, error) {
	valStr := getEnv(key, "")
	if valStr == "" {
		return defaultValue, nil
	}

	val, err := strconv.Atoi(valStr)
	if err != nil {
		return 0, fmt.Errorf("env %s value %q is not a valid integer: %w", key, valStr, err)
	}

	return val, nil
}

func getEnvAsFloat(key string, defaultValue float64) (float64, error) {
	valStr := getEnv(key, "")
	if valStr == "" {
		return defaultValue, nil
	}

	val, err := strconv.ParseFloat(valStr, 64)
	if err != nil {
		return 0, fmt.Errorf("env %s value %q is not a valid number: %w", key, valStr, err)
	}

	return val, nil
}

func getEnvAsTimeOfDay(key, defaultValue string) (schedule.TimeOfDay, error) {
	valStr := getEnv(key, defaultValue)

	val, err := schedule.ParseTimeOfDay(valStr)
	if err != nil {
		return 0, fmt.Errorf("env %s: %w", key, err)
	}
	return val, nil
}
