// README: Itinerary domain model (travel request, preference selections, sentinel errors).
package itinerary

import (
	"errors"

	"cloud.google.com/go/civil"
)

// ErrInvalidInput is returned when a travel request cannot be planned:
// the destination is empty, the trip is shorter than one day, or a preference
// falls outside the taxonomy.
var ErrInvalidInput = errors.New("invalid travel request")

// InvalidInputMessage is the user-facing text shown for ErrInvalidInput.
const InvalidInputMessage = "Please enter a destination, and ensure the trip duration is valid!"

// NoPreferences is substituted when no category has a selected sub-item.
const NoPreferences = "No specific preferences provided."

// Selection is one category with the sub-items the user picked from it.
// Items may be empty when the category was opened but nothing was chosen.
type Selection struct {
	Category string   `json:"category"`
	Items    []string `json:"items"`
}

// TravelRequest is a single form submission.
type TravelRequest struct {
	Destination   string
	ArrivalDate   civil.Date
	ArrivalTime   civil.Time
	DepartureDate civil.Date
	DepartureTime civil.Time

	// Preferences keeps the order in which the user picked categories.
	Preferences []Selection
}
