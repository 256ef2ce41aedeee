package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultGeocodingURL = "https://geocoding-api.open-meteo.com/v1/search"
	DefaultForecastURL  = "https://api.open-meteo.com/v1/forecast"
)

// Config holds the settings that are not exposed as command-line flags.
type Config struct {
	GeocodingURL string
	ForecastURL  string
	Timeout      time.Duration
	RateLimit    float64 // requests per second
	RateBurst    int     // requests allowed before the rate applies
	LogLevel     slog.Level
}

// Load reads the given .env files (missing ones are skipped) and then builds
// a Config from the environment.
func Load(files ...string) (Config, error) {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}
	return FromEnv()
}

// FromEnv builds a Config from environment variables only.
func FromEnv() (Config, error) {
	cfg := Config{
		GeocodingURL: getEnv("WEATHER_NOW_GEOCODING_URL", DefaultGeocodingURL),
		ForecastURL:  getEnv("WEATHER_NOW_FORECAST_URL", DefaultForecastURL),
	}

	timeout, err := time.ParseDuration(getEnv("WEATHER_NOW_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("WEATHER_NOW_TIMEOUT: %w", err)
	}
	if timeout <= 0 {
		return Config{}, fmt.Errorf("WEATHER_NOW_TIMEOUT must be positive, got %s", timeout)
	}
	cfg.Timeout = timeout

	rps, err := strconv.ParseFloat(getEnv("WEATHER_NOW_RATE_LIMIT", "1"), 64)
	if err != nil {
		return Config{}, fmt.Errorf("WEATHER_NOW_RATE_LIMIT: %w", err)
	}
	if rps <= 0 {
		return Config{}, fmt.Errorf("WEATHER_NOW_RATE_LIMIT must be positive, got %g", rps)
	}
	cfg.RateLimit = rps

	burst, err := strconv.Atoi(getEnv("WEATHER_NOW_RATE_BURST", "2"))
	if err != nil {
		return Config{}, fmt.Errorf("WEATHER_NOW_RATE_BURST: %w", err)
	}
	if burst <= 0 {
		return Config{}, fmt.Errorf("WEATHER_NOW_RATE_BURST must be positive, got %d", burst)
	}
	cfg.RateBurst = burst

	if err := cfg.LogLevel.UnmarshalText([]byte(strings.TrimSpace(getEnv("WEATHER_NOW_LOG_LEVEL", "warn")))); err != nil {
		return Config{}, fmt.Errorf("WEATHER_NOW_LOG_LEVEL: %w", err)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
