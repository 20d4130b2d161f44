package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"starbase/internal/constants"
)

func Load(configFile string) (*Config, error) {
	viper.Reset()

	viper.SetConfigType("yaml")
	viper.SetConfigFile(configFile)

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()
	bindEnvVariables()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := ValidateStatic(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

func setDefaults() {
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("spacex.base_url", constants.DefaultBaseURL)
	viper.SetDefault("spacex.timeout_seconds", int(constants.DefaultHTTPTimeout.Seconds()))
}

func bindEnvVariables() {
	viper.BindEnv("server.port", "SERVER_PORT")
	viper.BindEnv("server.read_timeout_seconds", "SERVER_READ_TIMEOUT_SECONDS")
	viper.BindEnv("server.write_timeout_seconds", "SERVER_WRITE_TIMEOUT_SECONDS")

	viper.BindEnv("logging.level", "LOGGING_LEVEL")
	viper.BindEnv("logging.format", "LOGGING_FORMAT")

	viper.BindEnv("spacex.base_url", "SPACEX_BASE_URL")
	viper.BindEnv("spacex.timeout_seconds", "SPACEX_TIMEOUT_SECONDS")

	viper.BindEnv("api.rate_limit.enabled", "API_RATE_LIMIT_ENABLED")
	viper.BindEnv("api.rate_limit.rps", "API_RATE_LIMIT_RPS")
	viper.BindEnv("api.rate_limit.burst", "API_RATE_LIMIT_BURST")
}
