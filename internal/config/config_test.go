package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"VOYAGE_HTTP_ADDR", "VOYAGE_CORS_ORIGINS", "VOYAGE_LOG_LEVEL",
		"VOYAGE_WIKI_ENDPOINT", "VOYAGE_WIKI_USER_AGENT",
		"VOYAGE_LLM_PROVIDER", "VOYAGE_LLM_MODEL", "VOYAGE_OLLAMA_URL",
		"GEMINI_API_KEY", "GOOGLE_PLACES_API_KEY",
		"VOYAGE_PLAN_RATE_PER_MIN", "VOYAGE_PLAN_BURST",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.HTTP.CORSOrigins)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "https://en.wikipedia.org/w/api.php", cfg.Wiki.Endpoint)
	assert.NotEmpty(t, cfg.Wiki.UserAgent)
	assert.Equal(t, "ollama", cfg.LLM.Provider)
	assert.Equal(t, "llama3", cfg.LLM.Model)
	assert.Equal(t, "http://localhost:11434", cfg.LLM.OllamaURL)
	assert.Empty(t, cfg.Places.APIKey)
	assert.Zero(t, cfg.Plan.RatePerMinute)
	assert.Equal(t, 1, cfg.Plan.Burst)
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("VOYAGE_HTTP_ADDR", "127.0.0.1:9000")
	t.Setenv("VOYAGE_CORS_ORIGINS", " http://a.test , ,http://b.test")
	t.Setenv("VOYAGE_LLM_MODEL", "mistral")
	t.Setenv("VOYAGE_PLAN_RATE_PER_MIN", "6")
	t.Setenv("VOYAGE_PLAN_BURST", "2")
	t.Setenv("GOOGLE_PLACES_API_KEY", "places-key")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9000", cfg.HTTP.Addr)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.HTTP.CORSOrigins)
	assert.Equal(t, "mistral", cfg.LLM.Model)
	assert.Equal(t, 6, cfg.Plan.RatePerMinute)
	assert.Equal(t, 2, cfg.Plan.Burst)
	assert.Equal(t, "places-key", cfg.Places.APIKey)
}

func TestLoadGeminiRequiresKey(t *testing.T) {
	clearEnv(t)
	t.Setenv("VOYAGE_LLM_PROVIDER", "Gemini")

	_, err := Load()
	assert.ErrorContains(t, err, "GEMINI_API_KEY")

	t.Setenv("GEMINI_API_KEY", "k")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "gemini", cfg.LLM.Provider)
	assert.Equal(t, "gemini-2.0-flash", cfg.LLM.Model)
}

func TestLoadUnknownProvider(t *testing.T) {
	clearEnv(t)
	t.Setenv("VOYAGE_LLM_PROVIDER", "llamafile")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadNegativeRate(t *testing.T) {
	clearEnv(t)
	t.Setenv("VOYAGE_PLAN_RATE_PER_MIN", "-1")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadIgnoresMalformedInts(t *testing.T) {
	clearEnv(t)
	t.Setenv("VOYAGE_PLAN_RATE_PER_MIN", "lots")
	t.Setenv("VOYAGE_PLAN_BURST", "0")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Zero(t, cfg.Plan.RatePerMinute)
	assert.Equal(t, 1, cfg.Plan.Burst)
}
