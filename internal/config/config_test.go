package config

import (
	"os"
	"testing"
)

func TestLoadWithDefaults(t *testing.T) {
	os.Unsetenv("PORT")
	os.Unsetenv("LOG_LEVEL")
	os.Unsetenv("AUTH_SECRET")
	os.Unsetenv("AUTH_ISSUER")

	cfg := Load()

	if cfg.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Port)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("expected default log level 'info', got %s", cfg.LogLevel)
	}
	if cfg.Auth.Issuer != "gtpyhop-go" {
		t.Errorf("expected default auth issuer, got %s", cfg.Auth.Issuer)
	}
	if cfg.Auth.Secret != "" {
		t.Errorf("expected empty auth secret, got %s", cfg.Auth.Secret)
	}
	if cfg.DomainsManifest != "domains.yaml" {
		t.Errorf("expected default domains manifest path, got %s", cfg.DomainsManifest)
	}
}

func TestLoadWithEnvironmentVariables(t *testing.T) {
	os.Setenv("PORT", "3000")
	os.Setenv("LOG_LEVEL", "debug")
	os.Setenv("AUTH_SECRET", "shh")
	os.Setenv("AUTH_ISSUER", "example")
	defer func() {
		os.Unsetenv("PORT")
		os.Unsetenv("LOG_LEVEL")
		os.Unsetenv("AUTH_SECRET")
		os.Unsetenv("AUTH_ISSUER")
	}()

	cfg := Load()

	if cfg.Port != 3000 {
		t.Errorf("expected port 3000, got %d", cfg.Port)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.LogLevel)
	}
	if cfg.Auth.Secret != "shh" {
		t.Errorf("expected auth secret 'shh', got %s", cfg.Auth.Secret)
	}
	if cfg.Auth.Issuer != "example" {
		t.Errorf("expected auth issuer 'example', got %s", cfg.Auth.Issuer)
	}
}

func TestLoadWithInvalidPort(t *testing.T) {
	os.Setenv("PORT", "invalid")
	defer os.Unsetenv("PORT")

	cfg := Load()

	if cfg.Port != 8080 {
		t.Errorf("expected default port 8080 for invalid value, got %d", cfg.Port)
	}
}
