// README: Knowledge lookup results, fallback strings and failure causes.
package knowledge

import "errors"

const (
	// FallbackUnavailable is used when no page matched or the lookup failed.
	FallbackUnavailable = "No external data available for this destination."

	// FallbackNoExtract is used when a page exists but carries no extract.
	FallbackNoExtract = "No additional information available."
)

// DefaultEndpoint is the English Wikipedia query API.
const DefaultEndpoint = "https://en.wikipedia.org/w/api.php"

var (
	// ErrLookupTransport means the request never produced a response.
	ErrLookupTransport = errors.New("encyclopedia unreachable")
	// ErrLookupStatus means the endpoint answered with a non-2xx status.
	ErrLookupStatus = errors.New("encyclopedia returned non-success status")
	// ErrLookupDecode means the response body was not the expected JSON.
	ErrLookupDecode = errors.New("encyclopedia response malformed")
	// ErrPageNotFound means no page matched the title exactly.
	ErrPageNotFound = errors.New("no encyclopedia page for title")
)

// Source tells where a summary's text came from.
type Source string

const (
	SourceEncyclopedia Source = "encyclopedia"
	SourceFallback     Source = "fallback"
)

// Summary is the text handed to the prompt composer.
type Summary struct {
	Text   string
	Source Source
}

type queryResponse struct {
	Query struct {
		Pages map[string]page `json:"pages"`
	} `json:"query"`
}

type page struct {
	PageID  int     `json:"pageid"`
	Title   string  `json:"title"`
	Extract *string `json:"extract,omitempty"`
}
