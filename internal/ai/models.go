package ai

import "errors"

// ErrGenerationUnavailable wraps every failure to obtain generated text.
var ErrGenerationUnavailable = errors.New("itinerary generation unavailable")

// Provider names accepted by NewGenerator.
const (
	ProviderOllama = "ollama"
	ProviderGemini = "gemini"
)

// Default model identifiers per provider.
const (
	DefaultOllamaModel = "llama3"
	DefaultGeminiModel = "gemini-2.0-flash"
	DefaultOllamaURL   = "http://localhost:11434"
)
