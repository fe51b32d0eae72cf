// README: Config loader with env defaults for HTTP, DB, Redis, and API keys.
package config

import (
	"os"
	"strconv"
)

// Config carries everything the API binary needs. Empty DB, Redis, and API
// key values are valid: the server runs in degraded mode without them
// (in-memory only, deterministic replies, filler coordinates).
type Config struct {
	HTTP struct {
		Addr string
	}
	DB struct {
		DSN string
	}
	Redis struct {
		Addr string
	}
	AI struct {
		GeminiKey string
	}
	Maps struct {
		APIKey string
	}
	Plans struct {
		Seed int64
	}
}

func Load() (Config, error) {
	var cfg Config
	cfg.HTTP.Addr = envOrDefault("WAYFARER_HTTP_ADDR", ":8080")
	cfg.DB.DSN = os.Getenv("WAYFARER_DB_DSN")
	cfg.Redis.Addr = os.Getenv("WAYFARER_REDIS_ADDR")
	cfg.AI.GeminiKey = os.Getenv("GEMINI_API_KEY")
	cfg.Maps.APIKey = os.Getenv("MAPS_API_KEY")
	cfg.Plans.Seed = envOrDefaultInt64("WAYFARER_PLANS_SEED", 0)
	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envOrDefaultInt64(key string, def int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return def
}
