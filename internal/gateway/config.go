package gateway

import (
	"os"
	"strconv"
	"time"
)

// Config holds gateway configuration.
type Config struct {
	Address     string
	Environment string
	Cache       CacheConfig
}

// CacheConfig carries the tuning for the gateway-owned stores.
type CacheConfig struct {
	// DefaultTTL is the TTL store fallback; 0 disables it.
	DefaultTTL time.Duration
	// LRUCapacity and LRUTTL configure the timed LRU cache.
	LRUCapacity int
	LRUTTL      time.Duration
	// HistoryMaxEntries bounds each history group.
	HistoryMaxEntries int
	// SweepInterval drives the background expiry sweep; 0 disables it.
	SweepInterval time.Duration
}

// LoadConfig loads configuration from the environment.
func LoadConfig() *Config {
	return &Config{
		Address:     getEnv("OPENCLAW_GATEWAY_ADDR", ":8080"),
		Environment: getEnv("OPENCLAW_ENV", "development"),
		Cache: CacheConfig{
			DefaultTTL:        time.Duration(getEnvInt("OPENCLAW_CACHE_DEFAULT_TTL_MS", 0)) * time.Millisecond,
			LRUCapacity:       getEnvInt("OPENCLAW_LRU_CAPACITY", 1000),
			LRUTTL:            time.Duration(getEnvInt("OPENCLAW_LRU_TTL_SECONDS", 300)) * time.Second,
			HistoryMaxEntries: getEnvInt("OPENCLAW_HISTORY_MAX_ENTRIES", 100),
			SweepInterval:     time.Duration(getEnvInt("OPENCLAW_SWEEP_INTERVAL_SECONDS", 60)) * time.Second,
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}
