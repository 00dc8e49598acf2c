package ai

import (
	"context"
)

// Generator turns a composed prompt into itinerary text.
// Implementations return the model's text unmodified and never retry.
type Generator interface {
	// Generate sends prompt as-is with the model's default decoding settings.
	// Failures wrap ErrGenerationUnavailable.
	Generate(ctx context.Context, prompt string) (string, error)
}
