package ratelimit

import (
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"
)

// Rule limits one method on a path. A Path ending in "/" matches every path below it.
// Limit requests are allowed per Window; Burst is the bucket capacity and defaults to Limit.
type Rule struct {
	Method string
	Path   string
	Limit  int
	Window time.Duration
	Burst  int
}

// Config holds rate limiting configuration. Buckets unused for IdleTimeout are dropped
// every CleanupInterval.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	CleanupInterval time.Duration
	IdleTimeout     time.Duration
	Allow           map[string]bool
	Deny            map[string]bool
	Rules           []Rule
}

// DefaultConfig is used when NewLimiter is given nil.
func DefaultConfig() *Config {
	return &Config{
		Enabled:         true,
		DefaultLimit:    600,
		DefaultWindow:   time.Minute,
		CleanupInterval: 5 * time.Minute,
		IdleTimeout:     time.Hour,
		Allow:           map[string]bool{},
		Deny:            map[string]bool{},
		Rules:           DefaultRules(),
	}
}

// LoadConfig reads RATE_LIMIT_* variables over DefaultConfig.
func LoadConfig() *Config {
	cfg := DefaultConfig()
	cfg.Enabled = envBool("RATE_LIMIT_ENABLED", cfg.Enabled)
	cfg.DefaultLimit = envInt("RATE_LIMIT_DEFAULT_LIMIT", cfg.DefaultLimit)
	cfg.DefaultWindow = envDuration("RATE_LIMIT_DEFAULT_WINDOW", cfg.DefaultWindow)
	cfg.CleanupInterval = envDuration("RATE_LIMIT_CLEANUP_INTERVAL", cfg.CleanupInterval)
	cfg.IdleTimeout = envDuration("RATE_LIMIT_IDLE_TIMEOUT", cfg.IdleTimeout)
	cfg.Allow = parseIPList(os.Getenv("RATE_LIMIT_WHITELIST"))
	cfg.Deny = parseIPList(os.Getenv("RATE_LIMIT_BLACKLIST"))
	return cfg
}

// DefaultRules returns the per-route limits. Routes not listed use the default limit,
// and GET /health is never limited.
func DefaultRules() []Rule {
	rules := []Rule{
		// Credential checks run bcrypt.
		{Method: http.MethodPost, Path: "/api/register", Limit: 10, Window: time.Minute, Burst: 3},
		{Method: http.MethodPost, Path: "/api/login", Limit: 20, Window: time.Minute, Burst: 5},

		{Method: http.MethodPost, Path: "/api/career-analysis/analyze", Limit: 30, Window: time.Hour, Burst: 5},
		{Method: http.MethodPost, Path: "/api/events/cache", Limit: 10, Window: time.Minute, Burst: 2},
	}
	for _, collection := range []string{"/api/resumes", "/api/job-applications", "/api/bookmarks", "/api/linkedin-profile"} {
		rules = append(rules, Rule{Method: http.MethodPost, Path: collection, Limit: 120, Window: time.Minute, Burst: 20})
		rules = append(rules, writes(collection+"/", 120, time.Minute, 20)...)
	}
	return append(rules, writes("/api/roadmaps/", 120, time.Minute, 20)...)
}

// writes limits every mutating method under prefix.
func writes(prefix string, limit int, window time.Duration, burst int) []Rule {
	methods := []string{http.MethodPost, http.MethodPut, http.MethodDelete}
	out := make([]Rule, 0, len(methods))
	for _, m := range methods {
		out = append(out, Rule{Method: m, Path: prefix, Limit: limit, Window: window, Burst: burst})
	}
	return out
}

func envInt(key string, fallback int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return v
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v, err := time.ParseDuration(os.Getenv(key)); err == nil {
		return v
	}
	return fallback
}

// parseIPList parses a comma-separated list of client addresses into a set.
func parseIPList(list string) map[string]bool {
	result := make(map[string]bool)
	for _, ip := range strings.Split(list, ",") {
		if ip = strings.TrimSpace(ip); ip != "" {
			result[ip] = true
		}
	}
	return result
}
