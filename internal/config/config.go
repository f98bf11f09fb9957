// README: Config loader with env defaults for HTTP, Redis, search, and AI settings.
package config

import (
	"os"
	"strconv"
	"time"
)

type SearchConfig struct {
	Mode       string
	DeepRounds int
	RoundDelay time.Duration
	Workers    int
	Currency   string
	Country    string
	RPS        float64
	Burst      int
}

type Config struct {
	HTTP struct {
		Addr string
	}
	Redis struct {
		Addr    string
		Enabled bool
		TTL     time.Duration
	}
	Search SearchConfig
	AI     struct {
		GeminiKey string
	}
	Provider struct {
		SerpAPIKey string
		BaseURL    string
	}
}

func Load() (Config, error) {
	var cfg Config
	cfg.HTTP.Addr = envOrDefault("FLYLESS_HTTP_ADDR", ":8080")
	cfg.Redis.Addr = envOrDefault("FLYLESS_REDIS_ADDR", "localhost:6379")
	cfg.Redis.Enabled = envOrDefaultBool("FLYLESS_CACHE_ENABLED", false)
	cfg.Redis.TTL = envOrDefaultDuration("FLYLESS_CACHE_TTL", 5*time.Minute)
	cfg.Search.Mode = envOrDefault("FLYLESS_SEARCH_MODE", "deep")
	cfg.Search.DeepRounds = envOrDefaultInt("FLYLESS_DEEP_ROUNDS", 5)
	cfg.Search.RoundDelay = envOrDefaultDuration("FLYLESS_ROUND_DELAY", 15*time.Second)
	cfg.Search.Workers = envOrDefaultInt("FLYLESS_SEARCH_WORKERS", 4)
	cfg.Search.Currency = envOrDefault("FLYLESS_CURRENCY", "CAD")
	cfg.Search.Country = envOrDefault("FLYLESS_COUNTRY", "ca")
	cfg.Search.RPS = envOrDefaultFloat("FLYLESS_PROVIDER_RPS", 1.0)
	cfg.Search.Burst = envOrDefaultInt("FLYLESS_PROVIDER_BURST", 2)
	cfg.AI.GeminiKey = envOrError("GEMINI_API_KEY")
	cfg.Provider.SerpAPIKey = envOrError("SERPAPI_KEY")
	cfg.Provider.BaseURL = envOrDefault("FLYLESS_PROVIDER_URL", "https://serpapi.com/search")
	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envOrError(key string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	panic("environment variable " + key + " is required")
}

func envOrDefaultInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envOrDefaultFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil {
			return n
		}
	}
	return def
}

func envOrDefaultBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		return v == "true" || v == "1" || v == "yes"
	}
	return def
}

func envOrDefaultDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
