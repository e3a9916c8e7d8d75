package config

import (
	"os"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "CATALOG_FILE", "LIVE_RELOAD", "TRACK_OUTBOUND", "LOG_LEVEL", "RATE_LIMIT", "RATE_WINDOW", "SHUTDOWN_TIMEOUT", "TRUST_PROXY_HEADERS"} {
		// Setenv restores the original value after the test
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("Expected port '8080', got '%s'", cfg.Port)
	}
	if cfg.CatalogFile != "" {
		t.Errorf("Expected empty catalog file, got '%s'", cfg.CatalogFile)
	}
	if cfg.LiveReload {
		t.Error("LiveReload should default to false")
	}
	if cfg.TrackOutbound {
		t.Error("TrackOutbound should default to false")
	}
	if cfg.TrustProxy {
		t.Error("TrustProxy should default to false")
	}
	if cfg.RateLimit != DefaultRateLimit {
		t.Errorf("Expected rate limit %d, got %d", DefaultRateLimit, cfg.RateLimit)
	}
	if cfg.RateWindow != time.Minute {
		t.Errorf("Expected rate window 1m, got %s", cfg.RateWindow)
	}
	if cfg.ShutdownTimeout != DefaultShutdownTimeout {
		t.Errorf("Expected shutdown timeout %s, got %s", DefaultShutdownTimeout, cfg.ShutdownTimeout)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("CATALOG_FILE", "/etc/storefront/catalog.yaml")
	t.Setenv("LIVE_RELOAD", "true")
	t.Setenv("TRACK_OUTBOUND", "1")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("RATE_LIMIT", "10")
	t.Setenv("RATE_WINDOW", "30s")
	t.Setenv("SHUTDOWN_TIMEOUT", "2s")
	t.Setenv("TRUST_PROXY_HEADERS", "true")

	cfg := Load()

	if cfg.Addr() != ":9090" {
		t.Errorf("Expected addr ':9090', got '%s'", cfg.Addr())
	}
	if cfg.CatalogFile != "/etc/storefront/catalog.yaml" {
		t.Errorf("Unexpected catalog file '%s'", cfg.CatalogFile)
	}
	if !cfg.LiveReload || !cfg.TrackOutbound {
		t.Error("Expected LiveReload and TrackOutbound to be enabled")
	}
	if cfg.RateLimit != 10 || cfg.RateWindow != 30*time.Second {
		t.Errorf("Unexpected rate limit %d per %s", cfg.RateLimit, cfg.RateWindow)
	}
	if cfg.ShutdownTimeout != 2*time.Second {
		t.Errorf("Expected shutdown timeout 2s, got %s", cfg.ShutdownTimeout)
	}
	if !cfg.TrustProxy {
		t.Error("Expected TrustProxy to be enabled")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Expected valid config, got %v", err)
	}
}

func TestInvalidEnvFallsBack(t *testing.T) {
	t.Setenv("LIVE_RELOAD", "maybe")
	t.Setenv("RATE_LIMIT", "lots")
	t.Setenv("RATE_WINDOW", "soon")

	cfg := Load()

	if cfg.LiveReload {
		t.Error("Invalid boolean should fall back to false")
	}
	if cfg.RateLimit != DefaultRateLimit {
		t.Errorf("Expected fallback rate limit, got %d", cfg.RateLimit)
	}
	if cfg.RateWindow != DefaultRateWindow {
		t.Errorf("Expected fallback rate window, got %s", cfg.RateWindow)
	}
}

func TestValidate(t *testing.T) {
	valid := Config{Port: "8080", LogLevel: "info", RateLimit: 10, RateWindow: time.Minute}
	if err := valid.Validate(); err != nil {
		t.Fatalf("Expected valid config, got %v", err)
	}

	tests := map[string]Config{
		"bad port":     {Port: "http", LogLevel: "info"},
		"port range":   {Port: "70000", LogLevel: "info"},
		"negative":     {Port: "8080", LogLevel: "info", RateLimit: -1},
		"no window":    {Port: "8080", LogLevel: "info", RateLimit: 5},
		"bad loglevel": {Port: "8080", LogLevel: "loud"},
	}
	for name, cfg := range tests {
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}
