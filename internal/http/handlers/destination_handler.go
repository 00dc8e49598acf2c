// README: Destination suggestion handler backed by Places autocomplete.
package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DestinationSuggester returns place names for a partial destination.
type DestinationSuggester interface {
	SuggestDestinations(ctx context.Context, input string) ([]string, error)
}

type DestinationHandler struct {
	places DestinationSuggester
	log    *zap.Logger
}

// NewDestinationHandler accepts a nil suggester; the endpoint then always
// answers with an empty list.
func NewDestinationHandler(places DestinationSuggester, log *zap.Logger) *DestinationHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &DestinationHandler{places: places, log: log}
}

type suggestionsResp struct {
	Suggestions []string `json:"suggestions"`
}

// Suggest handles GET /api/destinations/suggestions?q=.
// Upstream failures degrade to an empty list rather than an error.
func (h *DestinationHandler) Suggest(c *gin.Context) {
	if h.places == nil {
		writeJSON(c, http.StatusOK, suggestionsResp{Suggestions: []string{}})
		return
	}

	out, err := h.places.SuggestDestinations(c.Request.Context(), c.Query("q"))
	if err != nil {
		h.log.Warn("destination suggestions unavailable", zap.Error(err))
		out = []string{}
	}
	if out == nil {
		out = []string{}
	}
	writeJSON(c, http.StatusOK, suggestionsResp{Suggestions: out})
}
