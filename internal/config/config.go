package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"tally/internal/core"
)

type Config struct {
	// HTTP Server
	Port string

	// Logging
	LogLevel string

	// Engine
	DefaultPeriod string

	// HTTP read-model cache
	CacheTTL        time.Duration
	CacheMaxEntries int

	// Rate limiting
	RateLimitPerMinute int

	// Telegram adapter (optional; the bot binary requires it)
	TelegramBotToken string
}

func Load() *Config {
	cfg := &Config{
		Port:     getEnv("PORT", "8081"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		DefaultPeriod: getEnv("DEFAULT_PERIOD", "month"),

		CacheTTL:        getEnvDuration("CACHE_TTL", 30*time.Second),
		CacheMaxEntries: getEnvInt("CACHE_MAX_ENTRIES", 64),

		RateLimitPerMinute: getEnvInt("RATE_LIMIT_PER_MINUTE", 120),

		TelegramBotToken: getEnv("TELEGRAM_BOT_TOKEN", ""),
	}

	return cfg
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	// Validate port
	if port, err := strconv.Atoi(c.Port); err != nil {
		errors = append(errors, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	// Validate log level
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		errors = append(errors, fmt.Sprintf("invalid log level '%s': must be one of debug, info, warn, error", c.LogLevel))
	}

	// Validate default period against the window vocabulary
	if _, err := core.ParsePeriod(c.DefaultPeriod); err != nil {
		errors = append(errors, fmt.Sprintf("invalid default period '%s': must be one of day, week, month, year", c.DefaultPeriod))
	}

	// Validate cache configuration
	if c.CacheTTL < time.Second {
		errors = append(errors, fmt.Sprintf("invalid cache TTL %v: must be at least 1 second", c.CacheTTL))
	} else if c.CacheTTL > time.Hour {
		errors = append(errors, fmt.Sprintf("invalid cache TTL %v: must be at most 1 hour", c.CacheTTL))
	}
	if c.CacheMaxEntries < 1 {
		errors = append(errors, fmt.Sprintf("invalid cache max entries %d: must be at least 1", c.CacheMaxEntries))
	} else if c.CacheMaxEntries > 10000 {
		errors = append(errors, fmt.Sprintf("invalid cache max entries %d: must be at most 10000", c.CacheMaxEntries))
	}

	// Validate rate limiting
	if c.RateLimitPerMinute < 1 {
		errors = append(errors, fmt.Sprintf("invalid rate limit %d: must be at least 1 request per minute", c.RateLimitPerMinute))
	}

	// Return combined errors
	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

// Period returns the configured default period. Call Validate first; an
// invalid value falls back to month here.
func (c *Config) Period() core.Period {
	p, err := core.ParsePeriod(c.DefaultPeriod)
	if err != nil {
		return core.Month
	}
	return p
}

// SlogLevel maps the configured log level string to a slog level name
// understood by internal/log.
func (c *Config) SlogLevel() string {
	return strings.ToLower(c.LogLevel)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
