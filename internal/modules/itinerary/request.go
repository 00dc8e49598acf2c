// README: Travel request validation, trip duration and preference flattening.
package itinerary

import (
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/civil"
)

// TripDurationDays is the inclusive day count between arrival and departure.
// It is zero or negative when departure precedes arrival.
func (r TravelRequest) TripDurationDays() int {
	return r.DepartureDate.DaysSince(r.ArrivalDate) + 1
}

// Validate checks the request before any external call is made.
// Every failure wraps ErrInvalidInput.
func (r TravelRequest) Validate() error {
	if strings.TrimSpace(r.Destination) == "" {
		return fmt.Errorf("%w: destination is empty", ErrInvalidInput)
	}
	if !r.ArrivalDate.IsValid() || !r.DepartureDate.IsValid() {
		return fmt.Errorf("%w: arrival and departure dates are required", ErrInvalidInput)
	}
	if d := r.TripDurationDays(); d < 1 {
		return fmt.Errorf("%w: trip duration is %d days", ErrInvalidInput, d)
	}
	// Each category is chosen at most once, and each item at most once within it.
	seenCats := make(map[string]struct{}, len(r.Preferences))
	for _, sel := range r.Preferences {
		cat, ok := LookupCategory(sel.Category)
		if !ok {
			return fmt.Errorf("%w: unknown category %q", ErrInvalidInput, sel.Category)
		}
		if _, dup := seenCats[sel.Category]; dup {
			return fmt.Errorf("%w: category %q selected more than once", ErrInvalidInput, sel.Category)
		}
		seenCats[sel.Category] = struct{}{}

		seenItems := make(map[string]struct{}, len(sel.Items))
		for _, item := range sel.Items {
			if !cat.Offers(item) {
				return fmt.Errorf("%w: %q is not offered under %q", ErrInvalidInput, item, sel.Category)
			}
			if _, dup := seenItems[item]; dup {
				return fmt.Errorf("%w: %q selected more than once under %q", ErrInvalidInput, item, sel.Category)
			}
			seenItems[item] = struct{}{}
		}
	}
	return nil
}

// PreferencesSummary flattens the selections into "<Category>: a, b; <Category>: c".
// Categories without a chosen sub-item are skipped.
func (r TravelRequest) PreferencesSummary() string {
	return SummarizePreferences(r.Preferences)
}

// SummarizePreferences renders selections in the order given.
func SummarizePreferences(selections []Selection) string {
	parts := make([]string, 0, len(selections))
	for _, sel := range selections {
		if len(sel.Items) == 0 {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", sel.Category, strings.Join(sel.Items, ", ")))
	}
	if len(parts) == 0 {
		return NoPreferences
	}
	return strings.Join(parts, "; ")
}

// ParseClock accepts HH:MM, HH:MM:SS and HH:MM:SS with a fraction.
// An empty value is midnight, matching an untouched time picker.
func ParseClock(s string) (civil.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return civil.Time{}, nil
	}
	if t, err := civil.ParseTime(s); err == nil {
		return t, nil
	}
	t, err := time.Parse("15:04", s)
	if err != nil {
		return civil.Time{}, err
	}
	return civil.TimeOf(t), nil
}
