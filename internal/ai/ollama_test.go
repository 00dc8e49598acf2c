package ai

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOllamaGenerateReturnsResponseVerbatim(t *testing.T) {
	const itinerary = "  Day 1:\n- Louvre\n\nDay 2: Seine walk  \n"
	var gotBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/generate", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		raw, _ := io.ReadAll(r.Body)
		assert.NoError(t, json.Unmarshal(raw, &gotBody))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"model":    "llama3",
			"response": itinerary,
			"done":     true,
		})
	}))
	defer srv.Close()

	p := NewOllamaProvider(srv.URL+"/", "", nil)
	out, err := p.Generate(context.Background(), "plan Paris")
	require.NoError(t, err)
	assert.Equal(t, itinerary, out)

	assert.Equal(t, "llama3", gotBody["model"])
	assert.Equal(t, "plan Paris", gotBody["prompt"])
	assert.Equal(t, false, gotBody["stream"])
	_, hasOptions := gotBody["options"]
	assert.False(t, hasOptions, "no decoding parameters are sent")
}

func TestOllamaGenerateNonOKStatus(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"model 'llama3' not found"}`))
	}))
	defer srv.Close()

	_, err := NewOllamaProvider(srv.URL, "llama3", nil).Generate(context.Background(), "p")
	require.ErrorIs(t, err, ErrGenerationUnavailable)
	assert.Contains(t, err.Error(), "model 'llama3' not found")
	assert.EqualValues(t, 1, calls.Load(), "no retry")
}

func TestOllamaGenerateUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewOllamaProvider(url, "llama3", nil).Generate(context.Background(), "p")
	assert.ErrorIs(t, err, ErrGenerationUnavailable)
}

func TestOllamaGenerateMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer srv.Close()

	_, err := NewOllamaProvider(srv.URL, "llama3", nil).Generate(context.Background(), "p")
	assert.ErrorIs(t, err, ErrGenerationUnavailable)
}

func TestOllamaGenerateErrorField(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"error":"out of memory"}`))
	}))
	defer srv.Close()

	_, err := NewOllamaProvider(srv.URL, "llama3", nil).Generate(context.Background(), "p")
	require.ErrorIs(t, err, ErrGenerationUnavailable)
	assert.Contains(t, err.Error(), "out of memory")
}

func TestOllamaGenerateHonoursCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewOllamaProvider(srv.URL, "llama3", nil).Generate(ctx, "p")
	assert.ErrorIs(t, err, ErrGenerationUnavailable)
}

func TestNewOllamaProviderDefaults(t *testing.T) {
	p := NewOllamaProvider("", "", nil)
	assert.Equal(t, DefaultOllamaURL, p.baseURL)
	assert.Equal(t, DefaultOllamaModel, p.Model())
	assert.Zero(t, p.client.Timeout)
}

// TestOllamaLive talks to a real local Ollama server.
// It skips unless VOYAGE_OLLAMA_LIVE is set.
func TestOllamaLive(t *testing.T) {
	if os.Getenv("VOYAGE_OLLAMA_LIVE") == "" {
		t.Skip("VOYAGE_OLLAMA_LIVE not set; skipping live Ollama test")
	}
	url := os.Getenv("VOYAGE_OLLAMA_URL")
	p := NewOllamaProvider(url, os.Getenv("VOYAGE_LLM_MODEL"), nil)

	out, err := p.Generate(context.Background(), "Reply with one short sentence about Paris.")
	require.NoError(t, err)
	assert.NotEmpty(t, strings.TrimSpace(out))
	t.Logf("[TEST LOG] Ollama response: %s", out)
}

func TestOllamaGenerateInvalidBaseURL(t *testing.T) {
	_, err := NewOllamaProvider("localhost:11434", "llama3", nil).Generate(context.Background(), "p")
	assert.ErrorIs(t, err, ErrGenerationUnavailable)
}
