package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration for the application
type Config struct {
	Environment Environment

	// Server configuration
	ServerPort     string
	ServerHost     string
	AllowedOrigins []string
	LogLevel       string

	// SeedMenu installs a sample menu for the current date at startup
	SeedMenu bool

	// Redis configuration, used for rate limiting only
	RedisURL      string
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int

	RateLimitWindow   time.Duration
	RateLimitRequests int

	// Menu archive configuration; an empty bucket disables archiving
	S3BucketName string
	S3Prefix     string
	AWSRegion    string
}

// LoadConfig creates a new Config instance from environment variables and secrets
func LoadConfig() (*Config, error) {
	env := GetEnvironment()
	cfg := &Config{
		Environment:    env,
		ServerPort:     getEnvOrDefault("SERVER_PORT", "8080"),
		ServerHost:     os.Getenv("SERVER_HOST"),
		AllowedOrigins: splitList(getEnvOrDefault("ALLOWED_ORIGINS", "*")),
		LogLevel:       getEnvOrDefault("LOG_LEVEL", "info"),
		RedisURL:       os.Getenv("REDIS_URL"),
		RedisHost:      getEnvOrDefault("REDIS_HOST", "localhost"),
		RedisPort:      getEnvOrDefault("REDIS_PORT", "6379"),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
		S3BucketName:   os.Getenv("S3_BUCKET_NAME"),
		S3Prefix:       getEnvOrDefault("S3_PREFIX", "mess"),
		AWSRegion:      os.Getenv("AWS_REGION"),
	}

	// Production deployments may hand the Redis password in as a Docker secret
	if env == Production && cfg.RedisPassword == "" {
		cfg.RedisPassword = readSecret("redis_password")
	}

	var err error
	if cfg.SeedMenu, err = strconv.ParseBool(getEnvOrDefault("SEED_MENU", "true")); err != nil {
		return nil, fmt.Errorf("invalid SEED_MENU: %w", err)
	}
	if cfg.RedisDB, err = strconv.Atoi(getEnvOrDefault("REDIS_DB", "0")); err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}
	if cfg.RateLimitWindow, err = time.ParseDuration(getEnvOrDefault("RATE_LIMIT_WINDOW", "1m")); err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_WINDOW: %w", err)
	}
	if cfg.RateLimitRequests, err = strconv.Atoi(getEnvOrDefault("RATE_LIMIT_REQUESTS", "60")); err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_REQUESTS: %w", err)
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Addr returns the host:port the HTTP server listens on
func (c *Config) Addr() string {
	return c.ServerHost + ":" + c.ServerPort
}

// ArchiveEnabled reports whether an S3 bucket is configured
func (c *Config) ArchiveEnabled() bool {
	return c.S3BucketName != ""
}

// getEnvOrDefault returns environment variable value or default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	if data, err := os.ReadFile(filepath.Join(secretsDir, name)); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}
