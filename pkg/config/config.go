package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
)

// Defaults
const (
	DefaultPort            = "8080"
	DefaultRateLimit       = 120
	DefaultRateWindow      = time.Minute
	DefaultShutdownTimeout = 10 * time.Second
	DefaultExportDir       = "dist"
)

// Config holds the server settings
type Config struct {
	Port            string
	CatalogFile     string // empty serves the built-in catalog
	LiveReload      bool
	TrackOutbound   bool
	LogLevel        string
	RateLimit       int  // requests per window per IP, 0 disables limiting
	TrustProxy      bool // take the client IP from X-Forwarded-For and X-Real-IP
	RateWindow      time.Duration
	ShutdownTimeout time.Duration
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
}

// Load reads the configuration from the environment
func Load() Config {
	return Config{
		Port:            getEnv("PORT", DefaultPort),
		CatalogFile:     getEnv("CATALOG_FILE", ""),
		LiveReload:      getEnvAsBool("LIVE_RELOAD", false),
		TrackOutbound:   getEnvAsBool("TRACK_OUTBOUND", false),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		RateLimit:       getEnvAsInt("RATE_LIMIT", DefaultRateLimit),
		TrustProxy:      getEnvAsBool("TRUST_PROXY_HEADERS", false),
		RateWindow:      getEnvAsDuration("RATE_WINDOW", DefaultRateWindow),
		ShutdownTimeout: getEnvAsDuration("SHUTDOWN_TIMEOUT", DefaultShutdownTimeout),
		ReadTimeout:     getEnvAsDuration("READ_TIMEOUT", 15*time.Second),
		WriteTimeout:    getEnvAsDuration("WRITE_TIMEOUT", 15*time.Second),
		IdleTimeout:     getEnvAsDuration("IDLE_TIMEOUT", 60*time.Second),
	}
}

// Addr returns the listen address
func (c Config) Addr() string {
	return ":" + c.Port
}

// Validate checks values that cannot be defaulted
func (c Config) Validate() error {
	port, err := strconv.Atoi(c.Port)
	if err != nil || port < 0 || port > 65535 {
		return fmt.Errorf("invalid port %q", c.Port)
	}
	if c.RateLimit < 0 {
		return fmt.Errorf("rate limit must not be negative, got %d", c.RateLimit)
	}
	if c.RateLimit > 0 && c.RateWindow <= 0 {
		return fmt.Errorf("rate window must be positive, got %s", c.RateWindow)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	return nil
}

// ConfigureLogging sets up logrus the way every command expects
func (c Config) ConfigureLogging() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
		logrus.WithField("key", key).Warn("Ignoring invalid boolean environment variable")
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
		logrus.WithField("key", key).Warn("Ignoring invalid integer environment variable")
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if dur, err := time.ParseDuration(value); err == nil {
			return dur
		}
		logrus.WithField("key", key).Warn("Ignoring invalid duration environment variable")
	}
	return defaultValue
}
