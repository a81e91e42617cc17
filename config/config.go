package config

import (
	"os"
	"strconv"
)

// Fixed data sources. Both can be overridden through the environment, which
// is mainly useful for tests and offline development.
const (
	DefaultDataCSVPath = "dataheatmap.csv"
	DefaultGeoJSONURL  = "https://raw.githubusercontent.com/mtimet/tnacmaps/master/geojson/governorates.geojson"
)

// GetDataCSVPath returns the path of the reagent metrics CSV.
func GetDataCSVPath() string {
	return getEnvWithDefault("DATA_CSV_PATH", DefaultDataCSVPath)
}

// GetGeoJSONURL returns the URL of the governorate boundary document.
func GetGeoJSONURL() string {
	return getEnvWithDefault("GEOJSON_URL", DefaultGeoJSONURL)
}

// GetGeoFetchRetries returns how many times the boundary fetch is attempted
// before startup is aborted.
func GetGeoFetchRetries() int {
	return getEnvAsInt("GEO_FETCH_RETRIES", 3)
}

// CORSDebugEnabled gates the verbose CORS request logging middleware.
func CORSDebugEnabled() bool {
	return getEnvAsBool("CORS_DEBUG", false)
}

// Helper functions
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
