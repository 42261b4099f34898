package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/surfwatch/surfcast/pkg/log"
)

// AppConfig holds every setting the application needs. It is constructed once
// in main and passed by reference; nothing reads the environment afterwards.
type AppConfig struct {
	// OpenAI chat completion settings.
	OpenAIAPIKey string
	OpenAIModel  string

	// Provider base URLs.
	GeoBaseURL    string
	MarineBaseURL string

	// Optional Google geocoding fallback.
	GoogleAPIKey string

	// Marine fetch defaults.
	ForecastDays int
	Timezone     string

	// Outbound HTTP timeout.
	HTTPTimeout time.Duration

	// HomeSpots are refreshed periodically into the report store.
	HomeSpots       []string
	RefreshInterval time.Duration

	// Report store retention.
	StoreMaxHistory int
	StoreMaxAge     time.Duration

	Port string
}

// Load reads configuration from the environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Infof("no .env file found or error loading it: %v", err)
	}

	cfg := &AppConfig{}

	cfg.OpenAIAPIKey = os.Getenv("OPENAI_API_KEY")
	cfg.OpenAIModel = getenvDefault("OPENAI_MODEL", "gpt-4o")

	cfg.GeoBaseURL = getenvDefault("OPENMETEO_GEO_BASE_URL", "https://geocoding-api.open-meteo.com/v1")
	cfg.MarineBaseURL = getenvDefault("OPENMETEO_MARINE_BASE_URL", "https://marine-api.open-meteo.com/v1")
	cfg.GoogleAPIKey = os.Getenv("GOOGLE_API_KEY")

	cfg.ForecastDays = getenvInt("DEFAULT_FORECAST_DAYS", 3)
	cfg.Timezone = getenvDefault("DEFAULT_TIMEZONE", "auto")

	timeoutStr := getenvDefault("HTTP_TIMEOUT", "30s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}
	cfg.HTTPTimeout = timeout

	if spots := os.Getenv("HOME_SPOTS"); spots != "" {
		for _, s := range strings.Split(spots, ",") {
			if s = strings.TrimSpace(s); s != "" {
				cfg.HomeSpots = append(cfg.HomeSpots, s)
			}
		}
	}

	intervalStr := getenvDefault("REFRESH_INTERVAL", "30m")
	interval, err := time.ParseDuration(intervalStr)
	if err != nil {
		return nil, fmt.Errorf("invalid REFRESH_INTERVAL: %w", err)
	}
	cfg.RefreshInterval = interval

	cfg.StoreMaxHistory = getenvInt("STORE_MAX_HISTORY", 48)

	maxAgeStr := getenvDefault("STORE_MAX_AGE", "24h")
	maxAge, err := time.ParseDuration(maxAgeStr)
	if err != nil {
		return nil, fmt.Errorf("invalid STORE_MAX_AGE: %w", err)
	}
	cfg.StoreMaxAge = maxAge

	cfg.Port = getenvDefault("PORT", "8080")

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}
