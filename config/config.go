package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/Payphone-Digital/content-gateway/internal/constants"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// ErrInvalidConfig wraps every validation failure returned by Validate.
var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	App       AppConfig
	Content   ContentConfig
	RateLimit RateLimitConfig
	Log       LogConfig
}

type AppConfig struct {
	Name            string        `mapstructure:"name" validate:"required"`
	Environment     string        `mapstructure:"environment" validate:"oneof=development staging production"`
	Debug           bool          `mapstructure:"debug"`
	Port            string        `mapstructure:"port" validate:"required,numeric"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"min=0"`
}

// ContentConfig points the content client at the CMS backend.
type ContentConfig struct {
	BaseURL      string        `mapstructure:"base_url" validate:"required,url"`
	APIPath      string        `mapstructure:"api_path"`
	Timeout      time.Duration `mapstructure:"timeout" validate:"min=0"`
	EmptyOnError bool          `mapstructure:"empty_on_error"`
}

type RateLimitConfig struct {
	Request  int `mapstructure:"request" validate:"min=1"`
	Duration int `mapstructure:"duration" validate:"min=1"`
}

type LogConfig struct {
	Path       string `mapstructure:"path"`
	FileOutput bool   `mapstructure:"file_output"`
}

func LoadConfig() (*Config, error) {
	// A missing .env file is fine; the process environment still applies.
	_ = godotenv.Load()

	config := &Config{
		App: AppConfig{
			Name:            getEnv("APP_NAME", "content-gateway"),
			Environment:     getEnv("APP_ENV", constants.EnvDevelopment),
			Port:            getEnv("APP_PORT", "8080"),
			Debug:           getEnvAsBool("APP_DEBUG", true),
			ShutdownTimeout: getEnvAsDuration("APP_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Content: ContentConfig{
			BaseURL:      getEnv("PAYLOAD_API_URL", "http://localhost:3000/api"),
			APIPath:      getEnv("PAYLOAD_API_PATH", "/api"),
			Timeout:      getEnvAsDuration("PAYLOAD_TIMEOUT", 10*time.Second),
			EmptyOnError: getEnvAsBool("PAYLOAD_EMPTY_ON_ERROR", false),
		},
		RateLimit: RateLimitConfig{
			Request:  getEnvAsInt("RATE_LIMIT_MAX_REQUEST", 100),
			Duration: getEnvAsInt("RATE_LIMIT_DURATION", 60),
		},
		Log: LogConfig{
			Path:       getEnv("LOGS_PATH", "./logs"),
			FileOutput: getEnvAsBool("LOG_FILE_OUTPUT", false),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks struct tags on every section.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

func (c *Config) Address() string {
	return ":" + c.App.Port
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == constants.EnvProduction
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		boolValue, err := strconv.ParseBool(value)
		if err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
