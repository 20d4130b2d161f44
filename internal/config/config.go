package config

import (
	"time"
)

type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Logging LoggingConfig `mapstructure:"logging"`
	SpaceX  SpaceXConfig  `mapstructure:"spacex"`
	API     APIConfig     `mapstructure:"api"`
}

type ServerConfig struct {
	Port                int           `mapstructure:"port"`
	ReadTimeoutSeconds  time.Duration `mapstructure:"read_timeout_seconds"`
	WriteTimeoutSeconds time.Duration `mapstructure:"write_timeout_seconds"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// SpaceXConfig describes the upstream launch-data source. The base URL is
// fixed at construction time; every outbound query carries the same request
// deadline.
type SpaceXConfig struct {
	BaseURL        string `mapstructure:"base_url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

type APIConfig struct {
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
}

type RateLimitConfig struct {
	Enabled         bool    `mapstructure:"enabled"`
	RPS             float64 `mapstructure:"rps"`
	Burst           int     `mapstructure:"burst"`
	CleanupInterval int     `mapstructure:"cleanup_interval_seconds"`
	MaxAge          int     `mapstructure:"max_age_seconds"`
}

func (c SpaceXConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}
