package ai

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeneratorDefaultsToOllama(t *testing.T) {
	g, closeFn, err := NewGenerator(context.Background(), Options{OllamaURL: "http://127.0.0.1:11434", Model: "llama3"})
	require.NoError(t, err)
	defer closeFn()

	p, ok := g.(*OllamaProvider)
	require.True(t, ok, "expected *OllamaProvider, got %T", g)
	assert.Equal(t, "llama3", p.Model())
}

func TestNewGeneratorUnknownProvider(t *testing.T) {
	_, closeFn, err := NewGenerator(context.Background(), Options{Provider: "gpt4all"})
	assert.Error(t, err)
	closeFn()
}

func TestNewGeminiProviderRequiresKey(t *testing.T) {
	_, err := NewGeminiProvider(context.Background(), "  ", "")
	assert.Error(t, err)

	_, closeFn, err := NewGenerator(context.Background(), Options{Provider: ProviderGemini})
	assert.Error(t, err)
	closeFn()
}
