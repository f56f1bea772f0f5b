package config

import "time"

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server    ServerConfig    `mapstructure:"server" validate:"required"`
	Database  DatabaseConfig  `mapstructure:"database" validate:"required"`
	Auth      AuthConfig      `mapstructure:"auth" validate:"required"`
	Geocoding GeocodingConfig `mapstructure:"geocoding" validate:"required"`
	Uploads   UploadsConfig   `mapstructure:"uploads" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port                  int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel              string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	RequestTimeoutSeconds int    `mapstructure:"request_timeout_seconds" validate:"gt=0"`
}

// RequestTimeout returns the per-request deadline.
func (c ServerConfig) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutSeconds) * time.Second
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL          string `mapstructure:"url" validate:"required,url"`
	MaxOpenConns int    `mapstructure:"max_open_conns" validate:"gte=1"`
	MaxIdleConns int    `mapstructure:"max_idle_conns" validate:"gte=0"`
}

// AuthConfig contains all authentication and authorization settings.
type AuthConfig struct {
	JWTSecret            string `mapstructure:"jwt_secret" validate:"required,min=32"`
	TokenLifetimeMinutes int    `mapstructure:"token_lifetime_minutes" validate:"gt=0"`
	BcryptCost           int    `mapstructure:"bcrypt_cost" validate:"gte=4,lte=31"`
}

// TokenLifetime returns the validity window of issued tokens.
func (c AuthConfig) TokenLifetime() time.Duration {
	return time.Duration(c.TokenLifetimeMinutes) * time.Minute
}

// GeocodingConfig contains settings for the Google Geocoding API client.
type GeocodingConfig struct {
	APIKey         string `mapstructure:"api_key" validate:"required"`
	BaseURL        string `mapstructure:"base_url" validate:"required,url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds" validate:"gt=0"`
	// MaxRetries is how many times a transient failure is retried.
	MaxRetries int `mapstructure:"max_retries" validate:"gte=0,lte=5"`
	// RetryDelayMillis is the base delay for exponential backoff between retries.
	RetryDelayMillis int `mapstructure:"retry_delay_millis" validate:"gte=0"`
}

// Timeout returns the deadline for a single geocoding call.
func (c GeocodingConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// RetryDelay returns the base backoff delay.
func (c GeocodingConfig) RetryDelay() time.Duration {
	return time.Duration(c.RetryDelayMillis) * time.Millisecond
}

// UploadsConfig controls where uploaded images are stored and how large they may be.
type UploadsConfig struct {
	Dir      string `mapstructure:"dir" validate:"required"`
	MaxBytes int64  `mapstructure:"max_bytes" validate:"gt=0"`
}
