package auth

import (
	"fmt"
	"os"
	"time"
)

// Config holds auth configuration
type Config struct {
	Secret []byte
	Issuer string
	Expiry time.Duration
}

const DefaultIssuer = "health-records-service"

// DefaultExpiry matches the original deployment default of 7 days.
const DefaultExpiry = 7 * 24 * time.Hour

// LoadConfig reads config from env. JWT_SECRET is required; the signing key
// is a deployment secret and is never embedded in source.
// Override expiry with JWT_EXPIRE (Go duration, e.g. "168h") and issuer
// with JWT_ISSUER.
func LoadConfig() (Config, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET environment variable is required")
	}

	issuer := os.Getenv("JWT_ISSUER")
	if issuer == "" {
		issuer = DefaultIssuer
	}

	expiry := DefaultExpiry
	if v := os.Getenv("JWT_EXPIRE"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid JWT_EXPIRE value %q: %w", v, err)
		}
		expiry = d
	}

	return Config{
		Secret: []byte(secret),
		Issuer: issuer,
		Expiry: expiry,
	}, nil
}
