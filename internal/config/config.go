package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds service configuration from environment.
type Config struct {
	Port              int
	AdminPort         int
	Env               string
	PostgresURL       string
	RedisURL          string
	ReadyTimeout      time.Duration
	ShutdownTimeout   time.Duration
	ReadHeaderTimeout time.Duration
}

// Production reports whether the service runs in production mode.
func (c *Config) Production() bool {
	return strings.EqualFold(c.Env, "production")
}

// Load reads configuration from environment variables, after loading .env if present.
// Env prefix: MITA_
// Malformed values fall back to their defaults; each one is reported in warnings.
func Load() (cfg *Config, warnings []string) {
	_ = godotenv.Load()

	l := &loader{}
	cfg = &Config{
		Port:              l.getEnvInt("MITA_PORT", 8080),
		AdminPort:         l.getEnvInt("MITA_ADMIN_PORT", 9090),
		Env:               getEnv("MITA_ENV", "development"),
		PostgresURL:       getEnv("MITA_POSTGRES_URL", ""),
		RedisURL:          getEnv("MITA_REDIS_URL", ""),
		ReadyTimeout:      l.getEnvDuration("MITA_READY_TIMEOUT", 2*time.Second),
		ShutdownTimeout:   l.getEnvDuration("MITA_SHUTDOWN_TIMEOUT", 5*time.Second),
		ReadHeaderTimeout: l.getEnvDuration("MITA_READ_HEADER_TIMEOUT", 5*time.Second),
	}
	return cfg, l.warnings
}

type loader struct {
	warnings []string
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func (l *loader) getEnvInt(key string, def int) int {
	raw := getEnv(key, "")
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		l.warnings = append(l.warnings, fmt.Sprintf("invalid %s=%q, using %d", key, raw, def))
		return def
	}
	return n
}

func (l *loader) getEnvDuration(key string, def time.Duration) time.Duration {
	raw := getEnv(key, "")
	if raw == "" {
		return def
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		l.warnings = append(l.warnings, fmt.Sprintf("invalid %s=%q, using %s", key, raw, def))
		return def
	}
	return d
}
