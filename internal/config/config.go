package config

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	// Product data: organizations, email accounts, leads, campaigns.
	CustomersDatabaseURL string
	// Identity data: users. A separate store, never joined with the above.
	AuthDatabaseURL string

	HTTPListenAddr string
	ServiceName    string
	LogLevel       string

	ScaledMailBaseURL        string
	ScaledMailAPIKey         string
	ScaledMailOrganizationID string

	// Daily sending limit assigned to freshly purchased accounts.
	DefaultDailyLimit int
}

func Load() (*Config, error) {
	cfg := &Config{
		CustomersDatabaseURL:     getEnv("CUSTOMERS_DATABASE_URL", ""),
		AuthDatabaseURL:          getEnv("AUTH_DATABASE_URL", ""),
		HTTPListenAddr:           getEnv("HTTP_LISTEN_ADDR", ":8090"),
		ServiceName:              getEnv("SERVICE_NAME", "admin-api"),
		LogLevel:                 getEnv("LOG_LEVEL", "info"),
		ScaledMailBaseURL:        getEnv("SCALEDMAIL_BASE_URL", "https://server.scaledmail.com/api/v1"),
		ScaledMailAPIKey:         getEnv("SCALEDMAIL_API_KEY", ""),
		ScaledMailOrganizationID: getEnv("SCALEDMAIL_ORGANIZATION_ID", ""),
		DefaultDailyLimit:        50,
	}

	if v := os.Getenv("DEFAULT_DAILY_LIMIT"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("parse DEFAULT_DAILY_LIMIT: %w", err)
		}
		cfg.DefaultDailyLimit = limit
	}

	return cfg, nil
}

// Validate checks that the named component has the configuration it cannot
// run without. Vendor credentials are checked at startup so a purchase never
// gets as far as the network with a half-configured client.
func (c *Config) Validate(component string) error {
	switch component {
	case "admin-api":
		if c.CustomersDatabaseURL == "" {
			return fmt.Errorf("CUSTOMERS_DATABASE_URL is required")
		}
		if c.AuthDatabaseURL == "" {
			return fmt.Errorf("AUTH_DATABASE_URL is required")
		}
		if c.ScaledMailAPIKey == "" {
			return fmt.Errorf("SCALEDMAIL_API_KEY is required")
		}
		if c.ScaledMailOrganizationID == "" {
			return fmt.Errorf("SCALEDMAIL_ORGANIZATION_ID is required")
		}
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
