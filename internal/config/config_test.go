// BuyMove - Vehicle Marketplace Backend
// Copyright 2026 BuyMove Team
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/buymove/backend

package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Expected default port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Mongo.URI != "mongodb://localhost:27017" {
		t.Errorf("Unexpected default Mongo URI: %s", cfg.Mongo.URI)
	}
	if cfg.Mongo.Database != "buymove" {
		t.Errorf("Unexpected default database: %s", cfg.Mongo.Database)
	}
	if cfg.API.DefaultPageSize != 12 || cfg.API.MaxPageSize != 60 {
		t.Errorf("Unexpected page size defaults: %d/%d", cfg.API.DefaultPageSize, cfg.API.MaxPageSize)
	}
	if cfg.API.RecommendLimit != 6 {
		t.Errorf("Expected recommend limit 6, got %d", cfg.API.RecommendLimit)
	}
	if cfg.Security.TokenTTL != 24*time.Hour {
		t.Errorf("Expected 24h token TTL, got %s", cfg.Security.TokenTTL)
	}
	if cfg.IsProduction() {
		t.Error("Default environment must not be production")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("MONGODB_URI", "mongodb://mongo:27017")
	t.Setenv("MONGODB_DB", "marketplace")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Expected HTTP_PORT to override port, got %d", cfg.Server.Port)
	}
	if cfg.Mongo.URI != "mongodb://mongo:27017" {
		t.Errorf("Expected MONGODB_URI override, got %s", cfg.Mongo.URI)
	}
	if cfg.Mongo.Database != "marketplace" {
		t.Errorf("Expected MONGODB_DB override, got %s", cfg.Mongo.Database)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Expected LOG_LEVEL override, got %s", cfg.Logging.Level)
	}
}

func TestLoad_CORSOriginsFromCommaList(t *testing.T) {
	t.Setenv("CORS_ORIGINS", "https://app.example.com, https://staging.example.com")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(cfg.Security.CORSOrigins) != 2 {
		t.Fatalf("Expected 2 origins, got %v", cfg.Security.CORSOrigins)
	}
	if cfg.Security.CORSOrigins[1] != "https://staging.example.com" {
		t.Errorf("Expected trimmed origins, got %v", cfg.Security.CORSOrigins)
	}
}

func TestLoad_IgnoresUnrelatedEnvVars(t *testing.T) {
	t.Setenv("PATH_TO_NOWHERE", "true")
	t.Setenv("HOSTNAME", "worker-7")

	if _, err := Load(); err != nil {
		t.Fatalf("Unrelated environment variables broke Load: %v", err)
	}
}

func TestValidate_ProductionRejectsDefaultSecret(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")

	_, err := Load()
	if err == nil {
		t.Fatal("Expected production to reject the default JWT secret")
	}
	if !strings.Contains(err.Error(), "jwt_secret") {
		t.Errorf("Expected a jwt_secret error, got: %v", err)
	}
}

func TestValidate_ProductionRejectsShortSecret(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("JWT_SECRET", "too-short")

	if _, err := Load(); err == nil {
		t.Fatal("Expected production to reject a short JWT secret")
	}
}

func TestValidate_ProductionAcceptsStrongSecret(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("JWT_SECRET", "a-strong-secret-with-enough-length!!")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !cfg.IsProduction() {
		t.Error("Expected production environment")
	}
}

func TestValidate_PortRange(t *testing.T) {
	t.Setenv("HTTP_PORT", "70000")

	if _, err := Load(); err == nil {
		t.Fatal("Expected out-of-range port to fail validation")
	}
}

func TestValidate_PageSizeBounds(t *testing.T) {
	t.Setenv("DEFAULT_PAGE_SIZE", "100")
	t.Setenv("MAX_PAGE_SIZE", "60")

	if _, err := Load(); err == nil {
		t.Fatal("Expected default page size above max to fail validation")
	}
}

func TestServerAddr(t *testing.T) {
	cfg := &Config{Server: ServerConfig{Host: "127.0.0.1", Port: 9090}}
	if addr := cfg.Server.Addr(); addr != "127.0.0.1:9090" {
		t.Errorf("Expected 127.0.0.1:9090, got %s", addr)
	}
}
