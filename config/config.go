package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"storeapi.app/errors"
)

// Config represents the application configuration structure
type Config struct {
	Server   ServerConfig   `split_words:"true"`
	Database DatabaseConfig `split_words:"true"`
	Email    EmailConfig    `split_words:"true"`
	OTP      OTPConfig      `split_words:"true"`
	Cache    CacheConfig    `split_words:"true"`
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Port                  int      `envconfig:"SERVER_PORT" default:"8080"`
	AllowedOrigins        []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`
	RequestTimeoutSeconds int      `envconfig:"SERVER_REQUEST_TIMEOUT_SECONDS" default:"10"`
}

// DatabaseConfig contains database connection and pool settings
type DatabaseConfig struct {
	Host            string `envconfig:"DB_HOST" default:"localhost"`
	Port            int    `envconfig:"DB_PORT" default:"5432"`
	User            string `envconfig:"DB_USER" default:"postgres"`
	Password        string `envconfig:"DB_PASSWORD" default:"postgres"`
	Name            string `envconfig:"DB_NAME" default:"storeapi"`
	SSLMode         string `envconfig:"DB_SSL_MODE" default:"disable"`
	MaxOpenConns    int    `envconfig:"DB_MAX_OPEN_CONNS" default:"10"`
	MaxIdleConns    int    `envconfig:"DB_MAX_IDLE_CONNS" default:"5"`
	ConnMaxLifetime int    `envconfig:"DB_CONN_MAX_LIFETIME_MINUTES" default:"30"`
}

// GetDSN returns a formatted database connection string
func (c DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

// EmailConfig contains email server and sending settings
type EmailConfig struct {
	SMTPHost     string `envconfig:"EMAIL_SMTP_HOST" default:"smtp.gmail.com"`
	SMTPPort     int    `envconfig:"EMAIL_SMTP_PORT" default:"587"`
	SMTPUsername string `envconfig:"EMAIL_SMTP_USERNAME" required:"true"`
	SMTPPassword string `envconfig:"EMAIL_SMTP_PASSWORD" required:"true"`
	FromName     string `envconfig:"EMAIL_FROM_NAME" default:"Store Ratings"`
	FromAddress  string `envconfig:"EMAIL_FROM_ADDRESS" default:"no-reply@storeapi.app"`
}

// OTPConfig contains settings for the one-time code flow
type OTPConfig struct {
	ExpiryMinutes   int `envconfig:"OTP_EXPIRY_MINUTES" default:"5"`
	CleanupInterval int `envconfig:"OTP_CLEANUP_INTERVAL_MINUTES" default:"60"`
}

// CacheConfig contains settings for the geo catalog cache
type CacheConfig struct {
	Type          string `envconfig:"CACHE_TYPE" default:"memory"`
	TTLMinutes    int    `envconfig:"CACHE_TTL_MINUTES" default:"10"`
	RedisAddr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	RedisPassword string `envconfig:"REDIS_PASSWORD" default:""`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0"`
}

// LoadConfig loads and validates application configuration from environment variables
func LoadConfig() (*Config, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, errors.NewConfigurationError("error processing config", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.Database.Validate(); err != nil {
		return err
	}
	if err := c.Email.Validate(); err != nil {
		return err
	}
	if err := c.OTP.Validate(); err != nil {
		return err
	}
	if err := c.Cache.Validate(); err != nil {
		return err
	}
	return nil
}

// Validate checks server configuration
func (s *ServerConfig) Validate() error {
	if s.Port < 1 || s.Port > 65535 {
		return errors.NewConfigurationError("SERVER_PORT must be between 1 and 65535", nil)
	}
	if len(s.AllowedOrigins) == 0 {
		return errors.NewConfigurationError("CORS_ALLOWED_ORIGINS cannot be empty", nil)
	}
	if s.RequestTimeoutSeconds < 1 {
		return errors.NewConfigurationError("SERVER_REQUEST_TIMEOUT_SECONDS must be at least 1 second", nil)
	}
	return nil
}

// ValidateSSLMode validates the SSL mode configuration
func (d *DatabaseConfig) ValidateSSLMode() error {
	validSSLModes := []string{"disable", "require", "verify-ca", "verify-full"}
	for _, mode := range validSSLModes {
		if d.SSLMode == mode {
			return nil
		}
	}
	return errors.NewConfigurationError(
		fmt.Sprintf("DB_SSL_MODE must be one of: %s", strings.Join(validSSLModes, ", ")), nil)
}

// Validate checks database configuration
func (d *DatabaseConfig) Validate() error {
	if d.Host == "" {
		return errors.NewConfigurationError("DB_HOST cannot be empty", nil)
	}
	if d.Port < 1 || d.Port > 65535 {
		return errors.NewConfigurationError("DB_PORT must be between 1 and 65535", nil)
	}
	if d.User == "" {
		return errors.NewConfigurationError("DB_USER cannot be empty", nil)
	}
	if d.Name == "" {
		return errors.NewConfigurationError("DB_NAME cannot be empty", nil)
	}
	if d.MaxOpenConns < 1 {
		return errors.NewConfigurationError("DB_MAX_OPEN_CONNS must be at least 1", nil)
	}
	if d.MaxIdleConns < 0 {
		return errors.NewConfigurationError("DB_MAX_IDLE_CONNS cannot be negative", nil)
	}
	if d.MaxIdleConns > d.MaxOpenConns {
		return errors.NewConfigurationError("DB_MAX_IDLE_CONNS cannot exceed DB_MAX_OPEN_CONNS", nil)
	}
	if d.ConnMaxLifetime < 1 {
		return errors.NewConfigurationError("DB_CONN_MAX_LIFETIME_MINUTES must be at least 1", nil)
	}
	if err := d.ValidateSSLMode(); err != nil {
		return err
	}
	return nil
}

// Validate checks email configuration
func (e *EmailConfig) Validate() error {
	if e.SMTPHost == "" {
		return errors.NewConfigurationError("EMAIL_SMTP_HOST cannot be empty", nil)
	}
	if e.SMTPPort < 1 || e.SMTPPort > 65535 {
		return errors.NewConfigurationError("EMAIL_SMTP_PORT must be between 1 and 65535", nil)
	}
	if e.SMTPUsername == "" {
		return errors.NewConfigurationError("EMAIL_SMTP_USERNAME is required", nil)
	}
	if e.SMTPPassword == "" {
		return errors.NewConfigurationError("EMAIL_SMTP_PASSWORD is required", nil)
	}
	if e.FromName == "" {
		return errors.NewConfigurationError("EMAIL_FROM_NAME cannot be empty", nil)
	}
	if e.FromAddress == "" {
		return errors.NewConfigurationError("EMAIL_FROM_ADDRESS cannot be empty", nil)
	}
	if !strings.Contains(e.FromAddress, "@") {
		return errors.NewConfigurationError("EMAIL_FROM_ADDRESS must be a valid email address", nil)
	}
	return nil
}

// Validate checks OTP configuration
func (o *OTPConfig) Validate() error {
	if o.ExpiryMinutes < 1 {
		return errors.NewConfigurationError("OTP_EXPIRY_MINUTES must be at least 1 minute", nil)
	}
	if o.ExpiryMinutes > 60 {
		return errors.NewConfigurationError("OTP_EXPIRY_MINUTES cannot exceed 60 minutes", nil)
	}
	if o.CleanupInterval < 1 {
		return errors.NewConfigurationError("OTP_CLEANUP_INTERVAL_MINUTES must be at least 1 minute", nil)
	}
	return nil
}

// Validate checks cache configuration
func (c *CacheConfig) Validate() error {
	validTypes := []string{"memory", "redis", "none"}
	for _, t := range validTypes {
		if c.Type == t {
			if c.TTLMinutes < 1 {
				return errors.NewConfigurationError("CACHE_TTL_MINUTES must be at least 1 minute", nil)
			}
			if c.Type == "redis" && c.RedisAddr == "" {
				return errors.NewConfigurationError("REDIS_ADDR is required when CACHE_TYPE is redis", nil)
			}
			return nil
		}
	}
	return errors.NewConfigurationError(
		fmt.Sprintf("CACHE_TYPE must be one of: %s", strings.Join(validTypes, ", ")), nil)
}
