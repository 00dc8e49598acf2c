package ai

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/ollama/ollama/api"
)

// OllamaProvider implements Generator against a locally running Ollama server.
type OllamaProvider struct {
	baseURL string
	model   string
	client  *http.Client
	api     *api.Client
}

// NewOllamaProvider creates a provider for baseURL (e.g. http://localhost:11434).
// A nil client means no client-side timeout; generation can take minutes.
func NewOllamaProvider(baseURL, model string, client *http.Client) *OllamaProvider {
	if baseURL == "" {
		baseURL = DefaultOllamaURL
	}
	if model == "" {
		model = DefaultOllamaModel
	}
	if client == nil {
		client = &http.Client{}
	}
	baseURL = strings.TrimRight(baseURL, "/")

	p := &OllamaProvider{
		baseURL: baseURL,
		model:   model,
		client:  client,
	}
	// A malformed URL is reported by Generate rather than here.
	if u, err := url.Parse(baseURL); err == nil && u.Scheme != "" && u.Host != "" {
		p.api = api.NewClient(u, client)
	}
	return p
}

// Model returns the model identifier sent with each request.
func (p *OllamaProvider) Model() string {
	return p.model
}

// Generate posts the prompt to /api/generate with streaming off and returns the
// response text verbatim. No decoding options are sent.
func (p *OllamaProvider) Generate(ctx context.Context, prompt string) (string, error) {
	if p.api == nil {
		return "", fmt.Errorf("%w: ollama: invalid base url %q", ErrGenerationUnavailable, p.baseURL)
	}

	stream := false
	req := &api.GenerateRequest{
		Model:  p.model,
		Prompt: prompt,
		Stream: &stream,
	}

	var out strings.Builder
	err := p.api.Generate(ctx, req, func(resp api.GenerateResponse) error {
		out.WriteString(resp.Response)
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: ollama: %v", ErrGenerationUnavailable, err)
	}
	return out.String(), nil
}
