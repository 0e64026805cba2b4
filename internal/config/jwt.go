package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// defaultTokenTTL applies when JWT_EXPIRATION_HOURS is unset.
const defaultTokenTTL = 24 * time.Hour

// JWTConfig holds the signing secret and lifetime for admin tokens.
type JWTConfig struct {
	Secret   string
	TokenTTL time.Duration
}

// NewJWTConfig builds JWT configuration from JWT_SECRET (required) and
// JWT_EXPIRATION_HOURS (whole hours, minimum 1).
func NewJWTConfig() (*JWTConfig, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required but not set")
	}

	ttl := defaultTokenTTL
	if v := os.Getenv("JWT_EXPIRATION_HOURS"); v != "" {
		hours, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid JWT_EXPIRATION_HOURS: %v", err)
		}
		if hours < 1 {
			return nil, fmt.Errorf("JWT_EXPIRATION_HOURS must be at least 1 hour, got: %d", hours)
		}
		ttl = time.Duration(hours) * time.Hour
	}

	return &JWTConfig{Secret: secret, TokenTTL: ttl}, nil
}
