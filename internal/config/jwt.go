package config

import (
	"fmt"
	"time"
)

// DevJWTSecret signs tokens when no secret is configured and the memory backend is in use.
// Tokens signed with it do not survive a restart.
const DevJWTSecret = "careerpath-dev-secret"

// JWTConfig holds configuration for JWT token generation and validation.
type JWTConfig struct {
	Secret          string
	ExpirationHours int
}

// JWT builds the token configuration from c. Without a database the dev secret is used
// when none is set; Validate already rejects a missing secret alongside DATABASE_URL.
func (c *Config) JWT() (*JWTConfig, error) {
	secret := c.JWTSecret
	if secret == "" && !c.UsesDocumentStore() {
		secret = DevJWTSecret
	}

	jc := &JWTConfig{Secret: secret, ExpirationHours: c.JWTExpirationHours}
	if err := jc.normalize(); err != nil {
		return nil, err
	}
	return jc, nil
}

// Expiration is the token lifetime.
func (c *JWTConfig) Expiration() time.Duration {
	return time.Duration(c.ExpirationHours) * time.Hour
}

// normalize validates the configuration.
func (c *JWTConfig) normalize() error {
	if c.Secret == "" {
		return fmt.Errorf("JWT_SECRET cannot be empty")
	}
	if c.ExpirationHours < 1 {
		return fmt.Errorf("JWT_EXPIRATION_HOURS must be at least 1 hour, got: %d", c.ExpirationHours)
	}
	return nil
}
