package config

import (
	"fmt"
	"time"
)

// Defaults applied by validate for fields left unset by every source.
const (
	defaultHTTPAddress    = ":5002"
	defaultTokenIssuer    = "task-flow"
	defaultRequestTimeout = 30 * time.Second
	defaultPingTimeout    = 2 * time.Second
	defaultCORSOrigin     = "http://localhost:8080"
	defaultAdminName      = "Admin"
)

// validate checks the merged configuration for completeness and fills in
// defaults for optional fields. The database DSN is the only hard
// requirement: the server cannot do anything useful without a store.
func (c *StructuredConfig) validate() error {
	if c.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs)
	}

	if c.Storage.DB.PingTimeout <= 0 {
		c.Storage.DB.PingTimeout = defaultPingTimeout
	}

	if c.Auth.TokenSignKey == "" {
		c.Auth.TokenSignKey = InsecureDefaultTokenSignKey
	}
	if c.Auth.TokenIssuer == "" {
		c.Auth.TokenIssuer = defaultTokenIssuer
	}
	if c.Auth.TokenDuration <= 0 {
		c.Auth.TokenDuration = DefaultTokenDuration
	}

	// Admin.Password may legitimately stay empty: the register flow then
	// falls back to the submitted password (see the auth service).
	if c.Admin.Name == "" {
		c.Admin.Name = defaultAdminName
	}

	if c.Server.HTTPAddress == "" {
		c.Server.HTTPAddress = defaultHTTPAddress
	}
	if c.Server.RequestTimeout <= 0 {
		c.Server.RequestTimeout = defaultRequestTimeout
	}
	if c.Server.CORSOrigin == "" {
		c.Server.CORSOrigin = defaultCORSOrigin
	}

	return nil
}

// InsecureTokenSignKey reports whether the merged configuration ended up with
// the development-only signing secret. main uses it to emit a startup warning.
func (c *StructuredConfig) InsecureTokenSignKey() bool {
	return c.Auth.TokenSignKey == InsecureDefaultTokenSignKey
}
