package maps

import (
	"context"
	"fmt"
	"strings"

	"googlemaps.github.io/maps"
)

// autocompleter is the subset of *maps.Client used for destination suggestions.
type autocompleter interface {
	PlaceAutocomplete(ctx context.Context, r *maps.PlaceAutocompleteRequest) (maps.AutocompleteResponse, error)
}

// PlacesService handles interactions with Google Places API.
type PlacesService struct {
	client autocompleter
}

// NewPlacesService creates a new PlacesService with the given API Key.
func NewPlacesService(apiKey string) (*PlacesService, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &PlacesService{client: client}, nil
}

// SuggestDestinations returns place descriptions matching the partial input,
// restricted to geocodable results (cities, regions, addresses).
// A nil service yields no suggestions.
func (s *PlacesService) SuggestDestinations(ctx context.Context, input string) ([]string, error) {
	input = strings.TrimSpace(input)
	if s == nil || input == "" {
		return []string{}, nil
	}

	r := &maps.PlaceAutocompleteRequest{
		Input: input,
		Types: maps.AutocompletePlaceTypeGeocode,
	}

	resp, err := s.client.PlaceAutocomplete(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("places api error: %w", err)
	}

	suggestions := make([]string, 0, len(resp.Predictions))
	for _, p := range resp.Predictions {
		if p.Description == "" {
			continue
		}
		suggestions = append(suggestions, p.Description)
	}
	return suggestions, nil
}
