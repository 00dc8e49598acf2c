package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"voyage/internal/ai"
	"voyage/internal/modules/itinerary"
	"voyage/internal/prompt"
)

// SummaryFetcher supplies the external destination summary. It never fails;
// lookup problems are turned into fallback text by the implementation.
type SummaryFetcher interface {
	FetchSummary(ctx context.Context, destination string) string
}

// Plan is the outcome of one submission.
type Plan struct {
	Destination      string `json:"destination"`
	TripDurationDays int    `json:"trip_duration_days"`
	Preferences      string `json:"preferences"`
	ExternalData     string `json:"external_data"`
	Prompt           string `json:"prompt,omitempty"`
	Itinerary        string `json:"itinerary,omitempty"`
}

// TripPlanner runs validate → fetch → compose → generate, strictly in sequence.
// It holds no per-request state, so concurrent submissions are independent.
type TripPlanner struct {
	fetcher   SummaryFetcher
	generator ai.Generator
	log       *zap.Logger
}

// NewTripPlanner creates a TripPlanner with initialized dependencies.
func NewTripPlanner(fetcher SummaryFetcher, generator ai.Generator, log *zap.Logger) *TripPlanner {
	if log == nil {
		log = zap.NewNop()
	}
	return &TripPlanner{
		fetcher:   fetcher,
		generator: generator,
		log:       log,
	}
}

// PlanTrip validates the request, gathers the destination summary, composes the
// prompt and returns the generated itinerary. Invalid input returns an error
// wrapping itinerary.ErrInvalidInput before any external call is made; a
// generation failure wraps ai.ErrGenerationUnavailable and yields no plan.
func (p *TripPlanner) PlanTrip(ctx context.Context, req itinerary.TravelRequest) (*Plan, error) {
	plan, err := p.PreviewPrompt(ctx, req)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	text, err := p.generator.Generate(ctx, plan.Prompt)
	if err != nil {
		p.log.Error("itinerary generation failed",
			zap.String("destination", plan.Destination),
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err),
		)
		return nil, fmt.Errorf("plan trip: %w", err)
	}
	p.log.Info("itinerary generated",
		zap.String("destination", plan.Destination),
		zap.Int("trip_duration_days", plan.TripDurationDays),
		zap.Int("itinerary_bytes", len(text)),
		zap.Duration("elapsed", time.Since(start)),
	)

	plan.Itinerary = text
	return plan, nil
}

// PreviewPrompt runs every step except generation.
func (p *TripPlanner) PreviewPrompt(ctx context.Context, req itinerary.TravelRequest) (*Plan, error) {
	if err := req.Validate(); err != nil {
		p.log.Info("travel request rejected", zap.Error(err))
		return nil, err
	}

	prefs := req.PreferencesSummary()
	external := p.fetcher.FetchSummary(ctx, req.Destination)

	payload := prompt.NewPayload(
		req.Destination,
		prefs,
		req.ArrivalDate,
		req.ArrivalTime,
		req.DepartureDate,
		req.DepartureTime,
		external,
	)

	text, err := prompt.Compose(payload)
	if err != nil {
		return nil, err
	}

	return &Plan{
		Destination:      req.Destination,
		TripDurationDays: req.TripDurationDays(),
		Preferences:      prefs,
		ExternalData:     external,
		Prompt:           text,
	}, nil
}
