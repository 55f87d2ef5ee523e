package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// JWTConfig holds token signing settings for the REST API.
type JWTConfig struct {
	Secret   string
	TokenTTL time.Duration
}

// NewJWTConfig reads JWT_SECRET (required) and JWT_TTL_HOURS (default 24)
// from the environment.
func NewJWTConfig() (*JWTConfig, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is required")
	}
	if len(secret) < 32 {
		return nil, fmt.Errorf("JWT_SECRET must be at least 32 characters")
	}

	hours := 24
	if raw := os.Getenv("JWT_TTL_HOURS"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return nil, fmt.Errorf("invalid JWT_TTL_HOURS: %q", raw)
		}
		hours = parsed
	}

	return &JWTConfig{
		Secret:   secret,
		TokenTTL: time.Duration(hours) * time.Hour,
	}, nil
}
