// Package config provides configuration loading and validation for the service.
//
// Values come from environment variables, optionally layered over a JSON file. Environment
// variables win over the file and the file wins over built-in defaults.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Config represents the service configuration.
type Config struct {
	// Server
	Port       int    `json:"port,omitempty"`        // HTTP listen port
	CORSOrigin string `json:"cors_origin,omitempty"` // Access-Control-Allow-Origin value
	LogMode    string `json:"log_mode,omitempty"`    // dev or prod

	// Storage
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL URL; selects the document store when set
	RedisURL    string `json:"redis_url,omitempty"`    // Redis URL; selects the Redis session store when set

	// Caches
	EventCacheTTL      Duration `json:"event_cache_ttl,omitempty"`      // Freshness window of the event cache
	SessionCheckPeriod Duration `json:"session_check_period,omitempty"` // Memory session reaper interval

	// Auth
	BcryptCost         int    `json:"bcrypt_cost,omitempty"`
	PasswordPepper     string `json:"password_pepper,omitempty"`
	JWTSecret          string `json:"jwt_secret,omitempty"`
	JWTExpirationHours int    `json:"jwt_expiration_hours,omitempty"`
}

// Duration is a time.Duration that reads JSON strings such as "90m".
type Duration time.Duration

// UnmarshalJSON accepts a Go duration string.
func (d *Duration) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("duration must be a string: %w", err)
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// MarshalJSON writes the duration as a Go duration string.
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

// Std returns the value as a time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Port:               8080,
		CORSOrigin:         "*",
		LogMode:            "dev",
		EventCacheTTL:      Duration(time.Hour),
		SessionCheckPeriod: Duration(24 * time.Hour),
		BcryptCost:         12,
		JWTExpirationHours: 24,
	}
}

// Load reads the environment, layers it over the optional JSON file at path and the defaults,
// then validates the result.
func Load(path string) (*Config, error) {
	cfg, err := FromEnv()
	if err != nil {
		return nil, err
	}

	if path != "" {
		file, err := LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = cfg.MergeWithDefaults(*file)
	}

	cfg = cfg.MergeWithDefaults(Defaults())
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv reads every recognized environment variable. Unset variables leave zero values.
func FromEnv() (Config, error) {
	var cfg Config
	var err error

	if cfg.Port, err = envInt("PORT"); err != nil {
		return cfg, err
	}
	cfg.CORSOrigin = os.Getenv("CORS_ORIGIN")
	cfg.LogMode = os.Getenv("LOG_MODE")
	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	cfg.RedisURL = os.Getenv("REDIS_URL")

	if cfg.EventCacheTTL, err = envDuration("EVENT_CACHE_TTL"); err != nil {
		return cfg, err
	}
	if cfg.SessionCheckPeriod, err = envDuration("SESSION_CHECK_PERIOD"); err != nil {
		return cfg, err
	}

	if cfg.BcryptCost, err = envInt("BCRYPT_COST"); err != nil {
		return cfg, err
	}
	cfg.PasswordPepper = os.Getenv("PASSWORD_PEPPER")
	cfg.JWTSecret = os.Getenv("JWT_SECRET")
	if cfg.JWTExpirationHours, err = envInt("JWT_EXPIRATION_HOURS"); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 1 and 65535, got %d", c.Port)
	}

	switch strings.ToLower(c.LogMode) {
	case "dev", "development", "prod", "production":
	default:
		return fmt.Errorf("config error: 'log_mode' must be dev or prod, got %q", c.LogMode)
	}

	if c.EventCacheTTL <= 0 {
		return fmt.Errorf("config error: 'event_cache_ttl' must be positive")
	}
	if c.SessionCheckPeriod <= 0 {
		return fmt.Errorf("config error: 'session_check_period' must be positive")
	}

	if c.DatabaseURL != "" && c.JWTSecret == "" {
		return fmt.Errorf("config error: JWT_SECRET is required when DATABASE_URL is set")
	}

	return nil
}

// UsesDocumentStore reports whether the PostgreSQL backend is configured.
func (c *Config) UsesDocumentStore() bool {
	return c.DatabaseURL != ""
}

// Addr is the HTTP listen address.
func (c *Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}

// MergeWithDefaults returns a new Config with zero fields filled from defaults.
func (c Config) MergeWithDefaults(defaults Config) Config {
	result := c

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.CORSOrigin == "" {
		result.CORSOrigin = defaults.CORSOrigin
	}
	if result.LogMode == "" {
		result.LogMode = defaults.LogMode
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.RedisURL == "" {
		result.RedisURL = defaults.RedisURL
	}
	if result.EventCacheTTL == 0 {
		result.EventCacheTTL = defaults.EventCacheTTL
	}
	if result.SessionCheckPeriod == 0 {
		result.SessionCheckPeriod = defaults.SessionCheckPeriod
	}
	if result.BcryptCost == 0 {
		result.BcryptCost = defaults.BcryptCost
	}
	if result.PasswordPepper == "" {
		result.PasswordPepper = defaults.PasswordPepper
	}
	if result.JWTSecret == "" {
		result.JWTSecret = defaults.JWTSecret
	}
	if result.JWTExpirationHours == 0 {
		result.JWTExpirationHours = defaults.JWTExpirationHours
	}

	return result
}

func envInt(key string) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %v", key, err)
	}
	return v, nil
}

func envDuration(key string) (Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return 0, nil
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %v", key, err)
	}
	return Duration(v), nil
}
