package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// AppConfig is the process configuration read from the environment
type AppConfig struct {
	Addr               string
	DBPath             string
	LogLevel           string
	OrderChildrenByAge bool
}

// Environment variable names
const (
	EnvAddr               = "LIFEBRIDGE_ADDR"
	EnvDB                 = "LIFEBRIDGE_DB"
	EnvLogLevel           = "LOG_LEVEL"
	EnvOrderChildrenByAge = "LIFEBRIDGE_ORDER_CHILDREN_BY_AGE"
)

// DefaultAppConfig returns the configuration used when nothing is set
func DefaultAppConfig() AppConfig {
	return AppConfig{
		Addr:     ":8080",
		DBPath:   "lifebridge.db",
		LogLevel: "info",
	}
}

// LoadAppConfig reads .env files (missing ones are ignored; already-set
// variables win) and then the environment.
func LoadAppConfig(envFiles ...string) (AppConfig, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return AppConfig{}, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}
	return FromEnv(os.LookupEnv)
}

// FromEnv builds an AppConfig using lookup for each variable
func FromEnv(lookup func(string) (string, bool)) (AppConfig, error) {
	cfg := DefaultAppConfig()

	if v, ok := lookup(EnvAddr); ok && v != "" {
		cfg.Addr = v
	}
	if v, ok := lookup(EnvDB); ok && v != "" {
		cfg.DBPath = v
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	if v, ok := lookup(EnvOrderChildrenByAge); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return AppConfig{}, fmt.Errorf("%s: %w", EnvOrderChildrenByAge, err)
		}
		cfg.OrderChildrenByAge = b
	}

	return cfg, nil
}
