// Package sentient provides a client for the remote portfolio RPC API.
package sentient

import (
	"time"

	"crypto_dashboard/internal/shared/env"
)

// DefaultBaseURL is the RPC root used when SENTIENT_BASE_URL is not set.
const DefaultBaseURL = "https://sent-api.dev.sentient.xyz/rpc"

// Config holds configuration for the portfolio API client.
// Secrets are read from the environment only.
type Config struct {
	BaseURL       string        // RPC root, e.g. "https://sent-api.dev.sentient.xyz/rpc"
	CustomAuth    string        // Value of the x-custom-auth header
	BearerToken   string        // Static bearer token, used when JWTSecret is empty
	JWTSecret     string        // HS256 key for minting a bearer token per request
	JWTSubject    string        // sub/user claim of minted tokens
	JWTRole       string        // role claim of minted tokens
	JWTExpiration time.Duration // Lifetime of minted tokens
	Timeout       time.Duration // HTTP request timeout
	RateLimit     int           // Outbound calls per minute; <= 0 disables limiting
}

// LoadConfig loads the client configuration from environment variables.
func LoadConfig() Config {
	return Config{
		BaseURL:       env.String("SENTIENT_BASE_URL", DefaultBaseURL),
		CustomAuth:    env.String("SENTIENT_CUSTOM_AUTH", ""),
		BearerToken:   env.String("SENTIENT_BEARER_TOKEN", ""),
		JWTSecret:     env.String("SENTIENT_JWT_SECRET", ""),
		JWTSubject:    env.String("SENTIENT_JWT_SUBJECT", ""),
		JWTRole:       env.String("SENTIENT_JWT_ROLE", "sentapp"),
		JWTExpiration: env.Duration("SENTIENT_JWT_EXPIRATION", 24*time.Hour),
		Timeout:       env.Duration("SENTIENT_TIMEOUT", 10*time.Second),
		RateLimit:     env.Int("SENTIENT_RATE_LIMIT", 60),
	}
}
