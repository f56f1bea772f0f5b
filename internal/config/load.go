package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable read by Load.
const EnvPrefix = "PLACES"

// Default values applied before files and environment are read.
const (
	DefaultPort                  = 8080
	DefaultLogLevel              = "info"
	DefaultRequestTimeoutSeconds = 30
	DefaultMaxOpenConns          = 25
	DefaultMaxIdleConns          = 25
	DefaultTokenLifetimeMinutes  = 60
	DefaultBcryptCost            = 12
	DefaultGeocodingBaseURL      = "https://maps.googleapis.com/maps/api/geocode/json"
	DefaultGeocodingTimeout      = 5
	DefaultGeocodingMaxRetries   = 2
	DefaultGeocodingRetryDelay   = 200
	DefaultUploadsDir            = "uploads/images"
	DefaultUploadsMaxBytes       = 500000
)

// Load configuration from environment variables and optionally config files.
// Environment variables take precedence over values from config files.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindEnvs(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks cfg against its struct tags.
func Validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", DefaultPort)
	v.SetDefault("server.log_level", DefaultLogLevel)
	v.SetDefault("server.request_timeout_seconds", DefaultRequestTimeoutSeconds)
	v.SetDefault("database.max_open_conns", DefaultMaxOpenConns)
	v.SetDefault("database.max_idle_conns", DefaultMaxIdleConns)
	v.SetDefault("auth.token_lifetime_minutes", DefaultTokenLifetimeMinutes)
	v.SetDefault("auth.bcrypt_cost", DefaultBcryptCost)
	v.SetDefault("geocoding.base_url", DefaultGeocodingBaseURL)
	v.SetDefault("geocoding.timeout_seconds", DefaultGeocodingTimeout)
	v.SetDefault("geocoding.max_retries", DefaultGeocodingMaxRetries)
	v.SetDefault("geocoding.retry_delay_millis", DefaultGeocodingRetryDelay)
	v.SetDefault("uploads.dir", DefaultUploadsDir)
	v.SetDefault("uploads.max_bytes", DefaultUploadsMaxBytes)
}

// bindEnvs registers keys without defaults so AutomaticEnv picks them up during Unmarshal.
func bindEnvs(v *viper.Viper) {
	for _, key := range []string{"database.url", "auth.jwt_secret", "geocoding.api_key"} {
		_ = v.BindEnv(key)
	}
}
