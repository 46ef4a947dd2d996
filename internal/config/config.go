// Package config loads application settings from an optional TOML file
// with environment-variable overrides. The GraphHopper API key is taken
// from the environment only and is required.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config holds the application configuration.
type Config struct {
	Port string `toml:"port"`

	GraphHopper GraphHopperConfig `toml:"graphhopper"`
	Cache       CacheConfig       `toml:"cache"`
	History     HistoryConfig     `toml:"history"`
}

// GraphHopperConfig configures the remote geocoding/routing service.
type GraphHopperConfig struct {
	BaseURL string `toml:"base_url"`
	// APIKey comes from GRAPHHOPPER_API_KEY, never from the file.
	APIKey string `toml:"-"`
	// Client-side throttle for upstream calls.
	RatePerSecond float64 `toml:"rate_per_second"`
	RateBurst     int     `toml:"rate_burst"`
}

// CacheConfig selects the geocode cache backend.
// Backend is one of "sqlite", "postgres", "redis" or "none".
type CacheConfig struct {
	Backend     string `toml:"backend"`
	SQLitePath  string `toml:"sqlite_path"`
	DatabaseURL string `toml:"-"` // DATABASE_URL
	RedisAddr   string `toml:"redis_addr"`
	MemorySize  int    `toml:"memory_size"` // LRU tier entries, 0 disables
}

// HistoryConfig configures the append-only history log.
type HistoryConfig struct {
	Path string `toml:"path"`
}

// Load reads the TOML file at path (skipped when absent), applies
// defaults and environment overrides, and validates the result.
func Load(path string) (Config, error) {
	cfg := Config{
		Port: "8080",
		GraphHopper: GraphHopperConfig{
			BaseURL:       "https://graphhopper.com/api/1",
			RatePerSecond: 2,
			RateBurst:     2,
		},
		Cache: CacheConfig{
			Backend:    "sqlite",
			SQLitePath: "data/app.db",
			MemorySize: 256,
		},
		History: HistoryConfig{
			Path: "data/history.csv",
		},
	}

	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return Config{}, fmt.Errorf("load config: decode %q: %w", path, err)
			}
		}
	}

	cfg.Port = Get("PORT", cfg.Port)
	cfg.GraphHopper.BaseURL = Get("GRAPHHOPPER_BASE_URL", cfg.GraphHopper.BaseURL)
	cfg.GraphHopper.APIKey = os.Getenv("GRAPHHOPPER_API_KEY")
	cfg.Cache.Backend = Get("CACHE_BACKEND", cfg.Cache.Backend)
	cfg.Cache.SQLitePath = Get("CACHE_SQLITE_PATH", cfg.Cache.SQLitePath)
	cfg.Cache.DatabaseURL = os.Getenv("DATABASE_URL")
	cfg.Cache.RedisAddr = Get("REDIS_ADDR", cfg.Cache.RedisAddr)
	cfg.History.Path = Get("HISTORY_PATH", cfg.History.Path)

	if strings.TrimSpace(cfg.GraphHopper.APIKey) == "" {
		return Config{}, errors.New("load config: GRAPHHOPPER_API_KEY is required")
	}

	switch cfg.Cache.Backend {
	case "sqlite", "postgres", "redis", "none":
	default:
		return Config{}, fmt.Errorf("load config: unknown cache backend %q", cfg.Cache.Backend)
	}

	if cfg.Cache.Backend == "postgres" && strings.TrimSpace(cfg.Cache.DatabaseURL) == "" {
		return Config{}, errors.New("load config: DATABASE_URL is required for the postgres cache backend")
	}

	if cfg.Cache.Backend == "redis" && strings.TrimSpace(cfg.Cache.RedisAddr) == "" {
		return Config{}, errors.New("load config: redis_addr is required for the redis cache backend")
	}

	return cfg, nil
}

// Get returns the environment value for key, or fallback when unset.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
