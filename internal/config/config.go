// README: Config loader with env defaults for HTTP, logging, encyclopedia lookup, LLM and places settings.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type LLMConfig struct {
	Provider  string
	Model     string
	OllamaURL string
	GeminiKey string
}

type Config struct {
	HTTP struct {
		Addr        string
		CORSOrigins []string
	}
	Log struct {
		Level string
	}
	Wiki struct {
		Endpoint  string
		UserAgent string
	}
	LLM    LLMConfig
	Places struct {
		APIKey string
	}
	// Plan.RatePerMinute caps generation requests across the process; 0 disables it.
	Plan struct {
		RatePerMinute int
		Burst         int
	}
}

// Load reads the environment once. The result is passed to constructors and
// never mutated afterwards.
func Load() (Config, error) {
	var cfg Config
	cfg.HTTP.Addr = envOrDefault("VOYAGE_HTTP_ADDR", ":8080")
	cfg.HTTP.CORSOrigins = splitCSV(envOrDefault("VOYAGE_CORS_ORIGINS", "http://localhost:5173"))
	cfg.Log.Level = envOrDefault("VOYAGE_LOG_LEVEL", "info")
	cfg.Wiki.Endpoint = envOrDefault("VOYAGE_WIKI_ENDPOINT", "https://en.wikipedia.org/w/api.php")
	cfg.Wiki.UserAgent = envOrDefault("VOYAGE_WIKI_USER_AGENT", "voyage/1.0 (travel itinerary planner)")
	cfg.LLM.Provider = strings.ToLower(envOrDefault("VOYAGE_LLM_PROVIDER", "ollama"))
	cfg.LLM.OllamaURL = envOrDefault("VOYAGE_OLLAMA_URL", "http://localhost:11434")
	cfg.LLM.GeminiKey = os.Getenv("GEMINI_API_KEY")
	cfg.Places.APIKey = os.Getenv("GOOGLE_PLACES_API_KEY")
	cfg.Plan.RatePerMinute = envOrDefaultInt("VOYAGE_PLAN_RATE_PER_MIN", 0)
	cfg.Plan.Burst = envOrDefaultInt("VOYAGE_PLAN_BURST", 1)

	switch cfg.LLM.Provider {
	case "ollama":
		cfg.LLM.Model = envOrDefault("VOYAGE_LLM_MODEL", "llama3")
	case "gemini":
		cfg.LLM.Model = envOrDefault("VOYAGE_LLM_MODEL", "gemini-2.0-flash")
		if cfg.LLM.GeminiKey == "" {
			return Config{}, fmt.Errorf("environment variable GEMINI_API_KEY is required when VOYAGE_LLM_PROVIDER=gemini")
		}
	default:
		return Config{}, fmt.Errorf("unsupported VOYAGE_LLM_PROVIDER %q (want ollama or gemini)", cfg.LLM.Provider)
	}

	if cfg.Plan.RatePerMinute < 0 {
		return Config{}, fmt.Errorf("VOYAGE_PLAN_RATE_PER_MIN must not be negative, got %d", cfg.Plan.RatePerMinute)
	}
	if cfg.Plan.Burst < 1 {
		cfg.Plan.Burst = 1
	}
	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envOrDefaultInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
