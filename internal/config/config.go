package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration
type Config struct {
	Client  ClientConfig
	Server  ServerConfig
	Sandbox SandboxConfig
	Logger  LoggerConfig
}

// ClientConfig holds the settings used to reach the card-issuing API
type ClientConfig struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// SandboxConfig holds emulator-specific configuration
type SandboxConfig struct {
	// APIKey is the only key accepted by the emulator. Empty accepts any key.
	APIKey           string
	BINPrefix        string
	ValidateRequests bool
	FailureRate      float64
	MinLatencyMS     int
	MaxLatencyMS     int
}

// LoggerConfig holds logging configuration
type LoggerConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, text
}

// DefaultBaseURL is the sandbox environment of the card-issuing API
const DefaultBaseURL = "https://sandbox.privacy.com"

// Load loads configuration from environment variables with sensible defaults
func Load() (*Config, error) {
	cfg := &Config{
		Client: ClientConfig{
			APIKey:  getEnv("PRIVACY_API_KEY", ""),
			BaseURL: getEnv("PRIVACY_BASE_URL", DefaultBaseURL),
			Timeout: getEnvAsDuration("PRIVACY_HTTP_TIMEOUT", "30s"),
		},
		Server: ServerConfig{
			Port:         getEnv("PORT", "8080"),
			ReadTimeout:  getEnvAsDuration("SERVER_READ_TIMEOUT", "15s"),
			WriteTimeout: getEnvAsDuration("SERVER_WRITE_TIMEOUT", "15s"),
			IdleTimeout:  getEnvAsDuration("SERVER_IDLE_TIMEOUT", "60s"),
		},
		Sandbox: SandboxConfig{
			APIKey:           getEnv("SANDBOX_API_KEY", ""),
			BINPrefix:        getEnv("SANDBOX_BIN_PREFIX", "484718"),
			ValidateRequests: getEnvAsBool("SANDBOX_VALIDATE_REQUESTS", true),
			FailureRate:      getEnvAsFloat("FAILURE_RATE", 0),
			MinLatencyMS:     getEnvAsInt("MIN_LATENCY_MS", 0),
			MaxLatencyMS:     getEnvAsInt("MAX_LATENCY_MS", 0),
		},
		Logger: LoggerConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks the settings shared by every command. Client settings
// are checked separately by ClientConfig.Validate.
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("server port cannot be empty")
	}

	if c.Sandbox.FailureRate < 0 || c.Sandbox.FailureRate > 1 {
		return fmt.Errorf("failure rate must be between 0 and 1, got %f", c.Sandbox.FailureRate)
	}

	if c.Sandbox.MinLatencyMS < 0 {
		return fmt.Errorf("min latency cannot be negative")
	}
	if c.Sandbox.MaxLatencyMS < c.Sandbox.MinLatencyMS {
		return fmt.Errorf("max latency (%d) must be >= min latency (%d)", c.Sandbox.MaxLatencyMS, c.Sandbox.MinLatencyMS)
	}

	if len(c.Sandbox.BINPrefix) < 6 || len(c.Sandbox.BINPrefix) > 8 || !isDigits(c.Sandbox.BINPrefix) {
		return fmt.Errorf("invalid BIN prefix: %q (must be 6 to 8 digits)", c.Sandbox.BINPrefix)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logger.Level] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}

	if c.Logger.Format != "json" && c.Logger.Format != "text" {
		return fmt.Errorf("invalid log format: %s (must be json or text)", c.Logger.Format)
	}

	return nil
}

// Validate checks that the client can reach the API
func (c *ClientConfig) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("api key cannot be empty (set PRIVACY_API_KEY)")
	}

	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid base URL: %q", c.BaseURL)
	}

	if c.Timeout < 0 {
		return fmt.Errorf("http timeout cannot be negative")
	}

	return nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := strings.TrimSpace(os.Getenv(key))
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsDuration(key, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	duration, err := time.ParseDuration(valueStr)
	if err != nil {
		// Fallback to parsing the default if provided value is invalid
		duration, err = time.ParseDuration(defaultValue)
		if err != nil {
			return 0
		}
	}
	return duration
}
