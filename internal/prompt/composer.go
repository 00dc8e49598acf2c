// README: Prompt composition from the seven substitution values.
package prompt

import (
	"fmt"

	"cloud.google.com/go/civil"
	"github.com/tmc/langchaingo/prompts"
)

// Payload carries the substitution values for one generation call.
type Payload struct {
	Destination   string
	Preferences   string
	ArrivalDate   string
	ArrivalTime   string
	DepartureDate string
	DepartureTime string
	ExternalData  string
}

// NewPayload formats dates as YYYY-MM-DD and times as HH:MM:SS.
func NewPayload(destination, preferences string, arrivalDate civil.Date, arrivalTime civil.Time,
	departureDate civil.Date, departureTime civil.Time, externalData string) Payload {
	return Payload{
		Destination:   destination,
		Preferences:   preferences,
		ArrivalDate:   arrivalDate.String(),
		ArrivalTime:   arrivalTime.String(),
		DepartureDate: departureDate.String(),
		DepartureTime: departureTime.String(),
		ExternalData:  externalData,
	}
}

var itineraryPrompt = prompts.PromptTemplate{
	Template:       itineraryTemplate,
	TemplateFormat: prompts.TemplateFormatFString,
	InputVariables: []string{
		"destination", "preferences",
		"arrival_date", "arrival_time",
		"departure_date", "departure_time",
		"external_data",
	},
}

// Compose fills the itinerary template. Substitution is a single pass over the
// template, so placeholder-like text inside a value is left untouched.
func Compose(p Payload) (string, error) {
	out, err := itineraryPrompt.Format(map[string]any{
		"destination":    p.Destination,
		"preferences":    p.Preferences,
		"arrival_date":   p.ArrivalDate,
		"arrival_time":   p.ArrivalTime,
		"departure_date": p.DepartureDate,
		"departure_time": p.DepartureTime,
		"external_data":  p.ExternalData,
	})
	if err != nil {
		return "", fmt.Errorf("prompt: compose: %w", err)
	}
	return out, nil
}
