// Package santiment provides a client for the Santiment analytics GraphQL API.
package santiment

import (
	"os"
	"strconv"
	"time"
)

const (
	// DefaultEndpoint is the public Santiment GraphQL endpoint.
	DefaultEndpoint = "https://api.santiment.net/graphql"
	// DefaultTimeout bounds one outbound request.
	DefaultTimeout = 30 * time.Second
)

// Config holds configuration for the Santiment API client.
type Config struct {
	APIKey   string        // API key sent as "Authorization: Apikey <key>"
	Endpoint string        // GraphQL endpoint URL
	Timeout  time.Duration // HTTP request timeout
}

// LoadConfig loads Santiment configuration from environment variables.
// SAN_API_KEY wins over the legacy NEXT_PUBLIC_SAN_API_KEY.
func LoadConfig() Config {
	key := os.Getenv("SAN_API_KEY")
	if key == "" {
		key = os.Getenv("NEXT_PUBLIC_SAN_API_KEY")
	}
	endpoint := os.Getenv("SAN_GRAPHQL_ENDPOINT")
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	timeout := DefaultTimeout
	if v := os.Getenv("SAN_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			timeout = time.Duration(n) * time.Second
		}
	}
	return Config{
		APIKey:   key,
		Endpoint: endpoint,
		Timeout:  timeout,
	}
}

// HasAPIKey reports whether an API key is configured.
func (c Config) HasAPIKey() bool {
	return c.APIKey != ""
}
