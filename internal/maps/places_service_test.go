package maps

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"googlemaps.github.io/maps"
)

type stubAutocompleter struct {
	got  *maps.PlaceAutocompleteRequest
	resp maps.AutocompleteResponse
	err  error
}

func (s *stubAutocompleter) PlaceAutocomplete(_ context.Context, r *maps.PlaceAutocompleteRequest) (maps.AutocompleteResponse, error) {
	s.got = r
	return s.resp, s.err
}

func TestSuggestDestinations(t *testing.T) {
	stub := &stubAutocompleter{resp: maps.AutocompleteResponse{
		Predictions: []maps.AutocompletePrediction{
			{Description: "Paris, France"},
			{Description: ""},
			{Description: "Paris, TX, USA"},
		},
	}}
	svc := &PlacesService{client: stub}

	got, err := svc.SuggestDestinations(context.Background(), "  Par ")
	require.NoError(t, err)
	assert.Equal(t, []string{"Paris, France", "Paris, TX, USA"}, got)
	require.NotNil(t, stub.got)
	assert.Equal(t, "Par", stub.got.Input)
	assert.Equal(t, maps.AutocompletePlaceTypeGeocode, stub.got.Types)
}

func TestSuggestDestinationsEmptyInputSkipsCall(t *testing.T) {
	stub := &stubAutocompleter{}
	svc := &PlacesService{client: stub}

	got, err := svc.SuggestDestinations(context.Background(), "   ")
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Nil(t, stub.got)
}

func TestSuggestDestinationsNilService(t *testing.T) {
	var svc *PlacesService
	got, err := svc.SuggestDestinations(context.Background(), "Rome")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSuggestDestinationsAPIError(t *testing.T) {
	svc := &PlacesService{client: &stubAutocompleter{err: errors.New("REQUEST_DENIED")}}
	_, err := svc.SuggestDestinations(context.Background(), "Rome")
	assert.Error(t, err)
}
