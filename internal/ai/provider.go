package ai

import (
	"context"
	"fmt"
	"net/http"
)

// Options selects and configures a Generator.
type Options struct {
	Provider  string
	Model     string
	OllamaURL string
	GeminiKey string

	// HTTPClient is used by the Ollama provider; nil means no timeout.
	HTTPClient *http.Client
}

// NewGenerator builds the configured provider. The returned close function
// releases provider resources and is always safe to call.
func NewGenerator(ctx context.Context, opts Options) (Generator, func(), error) {
	switch opts.Provider {
	case "", ProviderOllama:
		return NewOllamaProvider(opts.OllamaURL, opts.Model, opts.HTTPClient), func() {}, nil
	case ProviderGemini:
		p, err := NewGeminiProvider(ctx, opts.GeminiKey, opts.Model)
		if err != nil {
			return nil, func() {}, err
		}
		return p, p.Close, nil
	default:
		return nil, func() {}, fmt.Errorf("ai: unknown provider %q", opts.Provider)
	}
}
