package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validConfig() *Config {
	return &Config{
		Server: ServerConfig{Port: 8080},
		SpaceX: SpaceXConfig{
			BaseURL:        "https://api.spacexdata.com/v4",
			TimeoutSeconds: 10,
		},
	}
}

func TestValidateStatic(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Config)
		wantError bool
	}{
		{
			name:      "valid config",
			mutate:    func(c *Config) {},
			wantError: false,
		},
		{
			name:      "port out of range",
			mutate:    func(c *Config) { c.Server.Port = 0 },
			wantError: true,
		},
		{
			name:      "missing base url",
			mutate:    func(c *Config) { c.SpaceX.BaseURL = "" },
			wantError: true,
		},
		{
			name:      "relative base url",
			mutate:    func(c *Config) { c.SpaceX.BaseURL = "api.spacexdata.com/v4" },
			wantError: true,
		},
		{
			name:      "zero timeout",
			mutate:    func(c *Config) { c.SpaceX.TimeoutSeconds = 0 },
			wantError: true,
		},
		{
			name: "rate limit enabled without rps",
			mutate: func(c *Config) {
				c.API.RateLimit.Enabled = true
				c.API.RateLimit.Burst = 10
			},
			wantError: true,
		},
		{
			name: "rate limit disabled skips validation",
			mutate: func(c *Config) {
				c.API.RateLimit.Enabled = false
				c.API.RateLimit.RPS = -1
			},
			wantError: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := ValidateStatic(cfg)
			if tt.wantError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
