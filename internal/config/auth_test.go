package config_test

import (
	"testing"
	"time"

	"docuvault/internal/config"
)

func TestAuthConfigFinalizeDefaults(t *testing.T) {
	cfg := config.AuthConfig{JWTSecret: "test-secret"}
	if err := cfg.Finalize(); err != nil {
		t.Fatalf("finalize failed: %v", err)
	}

	if cfg.TokenTTLDuration() != time.Hour {
		t.Errorf("token TTL = %v, want 1h", cfg.TokenTTLDuration())
	}
	if cfg.DownloadLinkTTLDuration() != 15*time.Minute {
		t.Errorf("download link TTL = %v, want 15m", cfg.DownloadLinkTTLDuration())
	}
}

func TestAuthConfigRequiresSecret(t *testing.T) {
	cfg := config.AuthConfig{}
	if err := cfg.Finalize(); err == nil {
		t.Error("expected error for missing jwt_secret")
	}
}

func TestAuthConfigRejectsInvalidTTL(t *testing.T) {
	cfg := config.AuthConfig{JWTSecret: "test-secret", TokenTTL: "not-a-duration"}
	if err := cfg.Finalize(); err == nil {
		t.Error("expected error for invalid token_ttl")
	}
}

func TestAuthConfigEnvOverrides(t *testing.T) {
	t.Setenv(config.EnvAuthJWTSecret, "env-secret")
	t.Setenv(config.EnvAuthTokenTTL, "30m")

	cfg := config.AuthConfig{JWTSecret: "file-secret"}
	if err := cfg.Finalize(); err != nil {
		t.Fatalf("finalize failed: %v", err)
	}

	if cfg.JWTSecret != "env-secret" {
		t.Errorf("jwt secret = %q, want env-secret", cfg.JWTSecret)
	}
	if cfg.TokenTTLDuration() != 30*time.Minute {
		t.Errorf("token TTL = %v, want 30m", cfg.TokenTTLDuration())
	}
}

func TestAuthConfigMerge(t *testing.T) {
	base := config.AuthConfig{JWTSecret: "base", TokenTTL: "1h"}
	base.Merge(&config.AuthConfig{TokenTTL: "2h", DownloadLinkTTL: "5m"})

	if base.JWTSecret != "base" {
		t.Errorf("jwt secret = %q, want base", base.JWTSecret)
	}
	if base.TokenTTL != "2h" {
		t.Errorf("token TTL = %q, want 2h", base.TokenTTL)
	}
	if base.DownloadLinkTTL != "5m" {
		t.Errorf("download link TTL = %q, want 5m", base.DownloadLinkTTL)
	}
}
