package config

import (
	"fmt"
	"os"
	"time"
)

const (
	EnvAuthJWTSecret       = "DOCUVAULT_AUTH_JWT_SECRET"
	EnvAuthTokenTTL        = "DOCUVAULT_AUTH_TOKEN_TTL"
	EnvAuthDownloadLinkTTL = "DOCUVAULT_AUTH_DOWNLOAD_LINK_TTL"
)

// AuthConfig holds token signing secrets and expirations for login tokens
// and signed download links. It is passed explicitly into the services that
// need it; business logic never reads these values from ambient state.
type AuthConfig struct {
	JWTSecret       string `toml:"jwt_secret"`
	TokenTTL        string `toml:"token_ttl"`
	DownloadLinkTTL string `toml:"download_link_ttl"`
}

// TokenTTLDuration returns TokenTTL as a time.Duration.
func (c *AuthConfig) TokenTTLDuration() time.Duration {
	d, _ := time.ParseDuration(c.TokenTTL)
	return d
}

// DownloadLinkTTLDuration returns DownloadLinkTTL as a time.Duration.
func (c *AuthConfig) DownloadLinkTTLDuration() time.Duration {
	d, _ := time.ParseDuration(c.DownloadLinkTTL)
	return d
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *AuthConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *AuthConfig) Merge(overlay *AuthConfig) {
	if overlay.JWTSecret != "" {
		c.JWTSecret = overlay.JWTSecret
	}
	if overlay.TokenTTL != "" {
		c.TokenTTL = overlay.TokenTTL
	}
	if overlay.DownloadLinkTTL != "" {
		c.DownloadLinkTTL = overlay.DownloadLinkTTL
	}
}

func (c *AuthConfig) loadDefaults() {
	if c.TokenTTL == "" {
		c.TokenTTL = "1h"
	}
	if c.DownloadLinkTTL == "" {
		c.DownloadLinkTTL = "15m"
	}
}

func (c *AuthConfig) loadEnv() {
	if v := os.Getenv(EnvAuthJWTSecret); v != "" {
		c.JWTSecret = v
	}
	if v := os.Getenv(EnvAuthTokenTTL); v != "" {
		c.TokenTTL = v
	}
	if v := os.Getenv(EnvAuthDownloadLinkTTL); v != "" {
		c.DownloadLinkTTL = v
	}
}

func (c *AuthConfig) validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("jwt_secret required")
	}
	if _, err := time.ParseDuration(c.TokenTTL); err != nil {
		return fmt.Errorf("invalid token_ttl: %w", err)
	}
	if _, err := time.ParseDuration(c.DownloadLinkTTL); err != nil {
		return fmt.Errorf("invalid download_link_ttl: %w", err)
	}
	return nil
}
