// Package config loads process configuration once at start-up.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"market_snapshot/internal/feature/market/domain/entity"
	"market_snapshot/internal/feature/market/usecase"
	"market_snapshot/internal/platform/externalapi/santiment"
)

// Config is the explicit configuration value handed to the DI factories.
type Config struct {
	Port            string
	CORSAllowOrigin string

	Assets       []entity.Asset
	LookbackDays int
	WindowSize   int

	Santiment santiment.Config
}

// Load reads an optional .env file and then the process environment.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:            envStr("PORT", "8080"),
		CORSAllowOrigin: envStr("CORS_ALLOW_ORIGIN", "*"),
		Assets:          ParseAssets(os.Getenv("MARKET_ASSETS")),
		LookbackDays:    envInt("MARKET_LOOKBACK_DAYS", usecase.DefaultLookbackDays),
		WindowSize:      envInt("MARKET_WINDOW_SIZE", usecase.DefaultWindowSize),
		Santiment:       santiment.LoadConfig(),
	}
}

// Validate reports every configuration problem at once.
// A missing API key is included; callers decide whether that is fatal.
func (c *Config) Validate() error {
	var errs []error
	if !c.Santiment.HasAPIKey() {
		errs = append(errs, errors.New("SAN_API_KEY is required"))
	}
	if len(c.Assets) == 0 {
		errs = append(errs, errors.New("MARKET_ASSETS must name at least one asset"))
	}
	if c.LookbackDays < 1 {
		errs = append(errs, fmt.Errorf("MARKET_LOOKBACK_DAYS must be positive, got %d", c.LookbackDays))
	}
	if c.WindowSize < 1 {
		errs = append(errs, fmt.Errorf("MARKET_WINDOW_SIZE must be positive, got %d", c.WindowSize))
	}
	return errors.Join(errs...)
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}

// ParseAssets parses a comma separated slug list, dropping blanks and duplicates.
// An empty list yields the default asset set.
func ParseAssets(raw string) []entity.Asset {
	seen := map[string]struct{}{}
	var out []entity.Asset
	for _, part := range strings.Split(raw, ",") {
		slug := strings.ToLower(strings.TrimSpace(part))
		if slug == "" {
			continue
		}
		if _, ok := seen[slug]; ok {
			continue
		}
		seen[slug] = struct{}{}
		out = append(out, entity.NewAsset(slug))
	}
	if len(out) == 0 {
		return entity.DefaultAssets()
	}
	return out
}

// --- helpers ---

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
