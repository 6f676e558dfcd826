// Copyright (c) 2025-2026 Nexio Technologies
// SPDX-License-Identifier: GPL-3.0-or-later

// Package config loads the application configuration from environment
// variables and resolves provider credentials through an ordered source chain.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the application configuration loaded from environment variables.
type Config struct {
	ServerHost string `env:"SITEGATE_SERVER_HOST" envDefault:"localhost"`
	ServerPort int    `env:"SITEGATE_SERVER_PORT" envDefault:"8080"`
	Env        string `env:"SITEGATE_ENV" envDefault:"development"`
	LogLevel   string `env:"SITEGATE_LOG_LEVEL" envDefault:"info"`
	DBPath     string `env:"SITEGATE_DB_PATH" envDefault:"./data/sitegate.db"`
	SecretsDir string `env:"SITEGATE_SECRETS_DIR" envDefault:"/run/secrets"`

	// Cache configuration
	RedisURL     string `env:"SITEGATE_REDIS_URL"`                         // Optional Redis URL for distributed caching
	CachePrefix  string `env:"SITEGATE_CACHE_PREFIX" envDefault:"sg:"`     // Redis key prefix
	CacheTTL     int    `env:"SITEGATE_CACHE_TTL" envDefault:"120"`        // Content staleness window in seconds
	CacheMaxSize int    `env:"SITEGATE_CACHE_MAX_SIZE" envDefault:"10000"` // Max memory cache entries

	// CMS (Strapi) configuration
	StrapiURL   string `env:"STRAPI_API_URL"`
	StrapiToken string `env:"STRAPI_API_TOKEN"`

	// ERP (ERPNext) configuration
	ERPNextURL       string `env:"ERP_NEXT_URL"`
	ERPNextAPIKey    string `env:"ERP_NEXT_API_KEY"`
	ERPNextAPISecret string `env:"ERP_NEXT_API_SECRET"`

	// Analytics providers
	GA4MeasurementID string `env:"SITEGATE_GA4_MEASUREMENT_ID"`
	GA4APISecret     string `env:"SITEGATE_GA4_API_SECRET"`
	MetaPixelID      string `env:"SITEGATE_META_PIXEL_ID"`
	MetaAccessToken  string `env:"SITEGATE_META_ACCESS_TOKEN"`
	MatomoURL        string `env:"SITEGATE_MATOMO_URL"`
	MatomoSiteID     string `env:"SITEGATE_MATOMO_SITE_ID"`

	// GeoIP configuration
	GeoIPDBPath string `env:"SITEGATE_GEOIP_DB_PATH"` // Path to GeoLite2-Country.mmdb file

	// HTTP surface
	CORSOrigins string `env:"SITEGATE_CORS_ORIGINS" envDefault:"*"` // Comma-separated allowed origins
	APIKeys     string `env:"SITEGATE_API_KEYS"`                    // Comma-separated keys for write endpoints (optional)

	// Crawler surface
	SiteURL           string `env:"SITEGATE_SITE_URL"`                               // Public site base URL for sitemap/robots
	RobotsDisallowAll bool   `env:"SITEGATE_ROBOTS_DISALLOW_ALL" envDefault:"false"` // Block all crawlers (staging)

	// Seeding configuration
	DoSeed bool `env:"SITEGATE_DO_SEED" envDefault:"true"` // Seed the local store from bundled content
}

// IsDevelopment returns true if the application is running in development mode.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// ServerAddr returns the full server address in host:port format.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.ServerHost, c.ServerPort)
}

// UseRedisCache returns true if Redis caching is configured.
func (c Config) UseRedisCache() bool {
	return c.RedisURL != ""
}

// GeoIPEnabled returns true if a GeoIP database is configured.
func (c Config) GeoIPEnabled() bool {
	return c.GeoIPDBPath != ""
}

// ContentTTL returns the content staleness window as a duration.
func (c Config) ContentTTL() time.Duration {
	if c.CacheTTL <= 0 {
		return 2 * time.Minute
	}
	return time.Duration(c.CacheTTL) * time.Second
}

// AllowedOrigins returns the configured CORS origins as a slice.
func (c Config) AllowedOrigins() []string {
	var origins []string
	for _, o := range strings.Split(c.CORSOrigins, ",") {
		if trimmed := strings.TrimSpace(o); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}

// APIKeyList returns the configured API keys as a slice.
func (c Config) APIKeyList() []string {
	var keys []string
	for _, k := range strings.Split(c.APIKeys, ",") {
		if trimmed := strings.TrimSpace(k); trimmed != "" {
			keys = append(keys, trimmed)
		}
	}
	return keys
}

// Load parses environment variables and returns a Config struct.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if cfg.ServerPort < 1 || cfg.ServerPort > 65535 {
		return nil, fmt.Errorf("SITEGATE_SERVER_PORT out of range: %d", cfg.ServerPort)
	}

	return cfg, nil
}
