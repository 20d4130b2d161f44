package config

import (
	"fmt"
	"net/url"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error for field '%s': %s", e.Field, e.Message)
}

func ValidateStatic(cfg *Config) error {
	var errors []error

	if err := validateServer(cfg.Server); err != nil {
		errors = append(errors, err)
	}

	if err := validateSpaceX(cfg.SpaceX); err != nil {
		errors = append(errors, err)
	}

	if err := validateRateLimit(cfg.API.RateLimit); err != nil {
		errors = append(errors, err)
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed: %v", errors)
	}

	return nil
}

func validateServer(cfg ServerConfig) error {
	if cfg.Port < 1 || cfg.Port > 65535 {
		return &ValidationError{
			Field:   "server.port",
			Message: fmt.Sprintf("port must be between 1 and 65535, got %d", cfg.Port),
		}
	}
	return nil
}

func validateSpaceX(cfg SpaceXConfig) error {
	if cfg.BaseURL == "" {
		return &ValidationError{
			Field:   "spacex.base_url",
			Message: "base URL is required",
		}
	}

	u, err := url.Parse(cfg.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return &ValidationError{
			Field:   "spacex.base_url",
			Message: fmt.Sprintf("base URL must be an absolute URL, got %q", cfg.BaseURL),
		}
	}

	if cfg.TimeoutSeconds < 1 {
		return &ValidationError{
			Field:   "spacex.timeout_seconds",
			Message: fmt.Sprintf("timeout must be at least 1 second, got %d", cfg.TimeoutSeconds),
		}
	}
	return nil
}

func validateRateLimit(cfg RateLimitConfig) error {
	if !cfg.Enabled {
		return nil
	}
	if cfg.RPS <= 0 {
		return &ValidationError{
			Field:   "api.rate_limit.rps",
			Message: fmt.Sprintf("rps must be positive, got %v", cfg.RPS),
		}
	}
	if cfg.Burst < 1 {
		return &ValidationError{
			Field:   "api.rate_limit.burst",
			Message: fmt.Sprintf("burst must be at least 1, got %d", cfg.Burst),
		}
	}
	return nil
}
