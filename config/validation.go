package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors collects every problem found in one pass
type ValidationErrors []ValidationError

func (errs ValidationErrors) Error() string {
	msgs := make([]string, len(errs))
	for i, e := range errs {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "\n")
}

// ValidateConfig checks if the configuration meets the requirements for its environment
func ValidateConfig(cfg *Config) error {
	var errs ValidationErrors

	if port, err := strconv.Atoi(cfg.ServerPort); err != nil || port < 1 || port > 65535 {
		errs = append(errs, ValidationError{Field: "SERVER_PORT", Message: fmt.Sprintf("invalid port %q", cfg.ServerPort)})
	}
	if len(cfg.AllowedOrigins) == 0 {
		errs = append(errs, ValidationError{Field: "ALLOWED_ORIGINS", Message: "at least one origin is required"})
	}
	if _, err := logrus.ParseLevel(cfg.LogLevel); err != nil {
		errs = append(errs, ValidationError{Field: "LOG_LEVEL", Message: err.Error()})
	}
	if cfg.RateLimitWindow <= 0 {
		errs = append(errs, ValidationError{Field: "RATE_LIMIT_WINDOW", Message: "must be positive"})
	}
	if cfg.RateLimitRequests <= 0 {
		errs = append(errs, ValidationError{Field: "RATE_LIMIT_REQUESTS", Message: "must be positive"})
	}

	if cfg.Environment == Production {
		for _, origin := range cfg.AllowedOrigins {
			if origin == "*" {
				errs = append(errs, ValidationError{Field: "ALLOWED_ORIGINS", Message: "wildcard origin is not allowed in production"})
			}
		}
		if cfg.ArchiveEnabled() && cfg.AWSRegion == "" {
			errs = append(errs, ValidationError{Field: "AWS_REGION", Message: "required when S3_BUCKET_NAME is set"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
