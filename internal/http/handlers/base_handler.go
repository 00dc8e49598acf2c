// README: Base handler utilities (JSON helpers, error mapping).
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"voyage/internal/ai"
	"voyage/internal/modules/itinerary"
)

type errorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

// writePlanError maps pipeline failures onto status codes. Generation failures
// get a generic message; the cause is in the server log.
func writePlanError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, itinerary.ErrInvalidInput):
		writeJSON(c, http.StatusBadRequest, errorResponse{
			Error:  itinerary.InvalidInputMessage,
			Detail: err.Error(),
		})
	case errors.Is(err, ai.ErrGenerationUnavailable):
		writeError(c, http.StatusBadGateway, "itinerary generation failed")
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}
