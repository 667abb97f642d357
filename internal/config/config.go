package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const minJWTSecretBytes = 32

// Config holds all process configuration, resolved once at startup.
type Config struct {
	DatabaseURL        string
	JWTSecret          string
	Port               string
	TrackModifications bool
	MonitoringAPIKey   string

	DBMaxOpenConns    int
	DBMaxIdleConns    int
	DBConnMaxIdleTime time.Duration
	DBConnMaxLifetime time.Duration
}

// Load reads configuration from the environment. A .env file is honored
// when present but never required.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		DatabaseURL:        strings.TrimSpace(os.Getenv("DATABASE_URL")),
		JWTSecret:          strings.TrimSpace(os.Getenv("JWT_SECRET_KEY")),
		Port:               getEnvOrDefault("PORT", "8080"),
		TrackModifications: getBoolEnv("TRACK_MODIFICATIONS"),
		MonitoringAPIKey:   strings.TrimSpace(os.Getenv("MONITORING_API_KEY")),
		DBMaxOpenConns:     getIntEnvOrDefault("DB_MAX_OPEN_CONNS", 25),
		DBMaxIdleConns:     getIntEnvOrDefault("DB_MAX_IDLE_CONNS", 25),
		DBConnMaxIdleTime:  time.Duration(getIntEnvOrDefault("DB_CONN_MAX_IDLE_MINUTES", 5)) * time.Minute,
		DBConnMaxLifetime:  time.Duration(getIntEnvOrDefault("DB_CONN_MAX_LIFETIME_MINUTES", 30)) * time.Minute,
	}

	if cfg.DatabaseURL == "" {
		return nil, errors.New("DATABASE_URL is required")
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET_KEY is required")
	}
	if len(cfg.JWTSecret) < minJWTSecretBytes {
		return nil, fmt.Errorf("JWT_SECRET_KEY must be at least %d characters", minJWTSecretBytes)
	}

	return cfg, nil
}

// getEnvOrDefault returns the value of an environment variable or a default value
func getEnvOrDefault(key, defaultValue string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value != "" {
		return value
	}
	return defaultValue
}

func getIntEnvOrDefault(key string, defaultValue int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		logrus.Warnf("Invalid %s=%q, using default %d", key, raw, defaultValue)
		return defaultValue
	}

	return value
}

func getBoolEnv(key string) bool {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return false
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		logrus.Warnf("Invalid %s=%q, treating as false", key, raw)
		return false
	}
	return value
}
