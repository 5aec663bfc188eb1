package config

import (
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

// SyncConfig holds configuration for the client-side sync layer
type SyncConfig struct {
	// Station catalog cache settings
	CatalogTTLSeconds int

	// Estimate LRU cache settings
	EstimateLRUSize       int
	EstimateLRUTTLMinutes int

	// Fallback filter bounds used when the catalog carries no known values
	FallbackMinPrice float64
	FallbackMaxPrice float64
	FallbackMinPower float64
	FallbackMaxPower float64
}

const (
	// Default values
	defaultCatalogTTLSeconds     = 300
	defaultEstimateLRUSize       = 500
	defaultEstimateLRUTTLMinutes = 15
	defaultFallbackMinPrice      = 0
	defaultFallbackMaxPrice      = 200
	defaultFallbackMinPower      = 0
	defaultFallbackMaxPower      = 400
)

// GetSyncConfig returns the sync configuration from environment variables or defaults
func GetSyncConfig() *SyncConfig {
	config := &SyncConfig{
		CatalogTTLSeconds:     getEnvInt("SYNC_CATALOG_TTL_SECONDS", defaultCatalogTTLSeconds),
		EstimateLRUSize:       getEnvInt("SYNC_ESTIMATE_LRU_SIZE", defaultEstimateLRUSize),
		EstimateLRUTTLMinutes: getEnvInt("SYNC_ESTIMATE_LRU_TTL_MINUTES", defaultEstimateLRUTTLMinutes),
		FallbackMinPrice:      getEnvFloat("SYNC_FALLBACK_MIN_PRICE", defaultFallbackMinPrice),
		FallbackMaxPrice:      getEnvFloat("SYNC_FALLBACK_MAX_PRICE", defaultFallbackMaxPrice),
		FallbackMinPower:      getEnvFloat("SYNC_FALLBACK_MIN_POWER", defaultFallbackMinPower),
		FallbackMaxPower:      getEnvFloat("SYNC_FALLBACK_MAX_POWER", defaultFallbackMaxPower),
	}

	log.Debug().
		Int("CatalogTTLSeconds", config.CatalogTTLSeconds).
		Int("EstimateLRUSize", config.EstimateLRUSize).
		Int("EstimateLRUTTLMinutes", config.EstimateLRUTTLMinutes).
		Float64("FallbackMinPrice", config.FallbackMinPrice).
		Float64("FallbackMaxPrice", config.FallbackMaxPrice).
		Float64("FallbackMinPower", config.FallbackMinPower).
		Float64("FallbackMaxPower", config.FallbackMaxPower).
		Msg("Sync configuration loaded")

	return config
}

// Helper methods for the SyncConfig struct
func (c *SyncConfig) GetCatalogTTL() time.Duration {
	return time.Duration(c.CatalogTTLSeconds) * time.Second
}

func (c *SyncConfig) GetEstimateLRUTTL() time.Duration {
	return time.Duration(c.EstimateLRUTTLMinutes) * time.Minute
}

// Helper functions to get environment variables with defaults
func getEnvInt(key string, defaultVal int) int {
	if val, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(val); err == nil {
			return intVal
		}
		log.Warn().Str("key", key).Msg("Invalid integer value in environment variable, using default")
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	if val, exists := os.LookupEnv(key); exists {
		if floatVal, err := strconv.ParseFloat(val, 64); err == nil {
			return floatVal
		}
		log.Warn().Str("key", key).Msg("Invalid float value in environment variable, using default")
	}
	return defaultVal
}
