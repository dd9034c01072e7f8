// Fridgechef - Pantry Tracking and Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fridgechef

package config

import (
	"time"
)

// Config holds all application configuration
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Database  DatabaseConfig  `koanf:"database"`
	Security  SecurityConfig  `koanf:"security"`
	Catalog   CatalogConfig   `koanf:"catalog"`
	Recommend RecommendConfig `koanf:"recommend"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port        int           `koanf:"port"`
	Host        string        `koanf:"host"`
	Timeout     time.Duration `koanf:"timeout"`
	Environment string        `koanf:"environment"`
}

// DatabaseConfig holds DuckDB settings
type DatabaseConfig struct {
	Path      string `koanf:"path"`
	MaxMemory string `koanf:"max_memory"`
	// Threads is the DuckDB worker count; 0 means runtime.NumCPU().
	Threads int `koanf:"threads"`
	// Seed inserts a starter recipe catalog when the recipes table is empty.
	Seed bool `koanf:"seed"`
}

// SecurityConfig holds authentication and request-shaping settings.
type SecurityConfig struct {
	// AuthMode is "jwt" (verify bearer tokens) or "none" (local development).
	AuthMode  string `koanf:"auth_mode"`
	JWTSecret string `koanf:"jwt_secret"`
	// JWTIssuer is checked against the iss claim when non-empty.
	JWTIssuer string `koanf:"jwt_issuer"`
	// DevUserID is the user every request runs as when AuthMode is "none".
	DevUserID string `koanf:"dev_user_id"`

	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`

	// RevocationPath is the Badger directory for revoked token IDs.
	// Empty keeps the revocation list in memory.
	RevocationPath string `koanf:"revocation_path"`
}

// CatalogConfig selects where recipe definitions come from.
type CatalogConfig struct {
	// Source is "database" (local DuckDB catalog) or "remote" (HTTP catalog service).
	Source    string        `koanf:"source"`
	RemoteURL string        `koanf:"remote_url"`
	Timeout   time.Duration `koanf:"timeout"`
	// RateLimit is the steady-state request rate to the remote catalog, per second.
	RateLimit float64 `koanf:"rate_limit"`
	RateBurst int     `koanf:"rate_burst"`
	// SnapshotPath is the Badger directory holding the last good remote catalog.
	// Empty keeps the snapshot in memory.
	SnapshotPath string `koanf:"snapshot_path"`
	// CacheTTL keeps a fetched catalog in memory this long. Zero disables caching.
	CacheTTL time.Duration `koanf:"cache_ttl"`
}

// RecommendConfig holds ranking parameters
type RecommendConfig struct {
	TopK          int `koanf:"top_k"`
	FullThreshold int `koanf:"full_threshold"`
	HalfThreshold int `koanf:"half_threshold"`
	// Timeout bounds the pantry and catalog loads behind one request.
	Timeout time.Duration `koanf:"timeout"`
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Auth modes
const (
	AuthModeJWT  = "jwt"
	AuthModeNone = "none"
)

// Catalog sources
const (
	CatalogSourceDatabase = "database"
	CatalogSourceRemote   = "remote"
)

// Load reads configuration from defaults, an optional YAML file and the
// environment, then validates it. See LoadWithKoanf.
func Load() (*Config, error) {
	return LoadWithKoanf()
}

// IsProduction reports whether the server runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}
