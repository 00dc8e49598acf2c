// README: Itinerary handlers (taxonomy listing, prompt preview, itinerary generation).
package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"cloud.google.com/go/civil"
	"github.com/gin-gonic/gin"

	"voyage/internal/modules/itinerary"
	"voyage/internal/service"
)

// TripPlanner is the pipeline the handlers drive.
type TripPlanner interface {
	PlanTrip(ctx context.Context, req itinerary.TravelRequest) (*service.Plan, error)
	PreviewPrompt(ctx context.Context, req itinerary.TravelRequest) (*service.Plan, error)
}

type ItineraryHandler struct {
	planner TripPlanner
}

func NewItineraryHandler(planner TripPlanner) *ItineraryHandler {
	return &ItineraryHandler{planner: planner}
}

type planReq struct {
	Destination   string                `json:"destination"`
	ArrivalDate   string                `json:"arrival_date"`
	ArrivalTime   string                `json:"arrival_time"`
	DepartureDate string                `json:"departure_date"`
	DepartureTime string                `json:"departure_time"`
	Preferences   []itinerary.Selection `json:"preferences"`
}

type taxonomyResp struct {
	Categories []itinerary.Category `json:"categories"`
}

// Taxonomy handles GET /api/taxonomy.
func (h *ItineraryHandler) Taxonomy(c *gin.Context) {
	writeJSON(c, http.StatusOK, taxonomyResp{Categories: itinerary.Taxonomy()})
}

// Create handles POST /api/itineraries.
func (h *ItineraryHandler) Create(c *gin.Context) {
	req, ok := bindPlanRequest(c)
	if !ok {
		return
	}

	plan, err := h.planner.PlanTrip(c.Request.Context(), req)
	if err != nil {
		writePlanError(c, err)
		return
	}
	plan.Prompt = ""
	writeJSON(c, http.StatusOK, plan)
}

// Preview handles POST /api/itineraries/prompt.
func (h *ItineraryHandler) Preview(c *gin.Context) {
	req, ok := bindPlanRequest(c)
	if !ok {
		return
	}

	plan, err := h.planner.PreviewPrompt(c.Request.Context(), req)
	if err != nil {
		writePlanError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, plan)
}

func bindPlanRequest(c *gin.Context) (itinerary.TravelRequest, bool) {
	var body planReq
	if err := c.ShouldBindJSON(&body); err != nil {
		writeJSON(c, http.StatusBadRequest, errorResponse{
			Error:  itinerary.InvalidInputMessage,
			Detail: "invalid json: " + err.Error(),
		})
		return itinerary.TravelRequest{}, false
	}

	req, err := body.toTravelRequest()
	if err != nil {
		writeJSON(c, http.StatusBadRequest, errorResponse{
			Error:  itinerary.InvalidInputMessage,
			Detail: err.Error(),
		})
		return itinerary.TravelRequest{}, false
	}
	return req, true
}

func (b planReq) toTravelRequest() (itinerary.TravelRequest, error) {
	arrDate, err := civil.ParseDate(strings.TrimSpace(b.ArrivalDate))
	if err != nil {
		return itinerary.TravelRequest{}, fmt.Errorf("invalid arrival_date %q", b.ArrivalDate)
	}
	depDate, err := civil.ParseDate(strings.TrimSpace(b.DepartureDate))
	if err != nil {
		return itinerary.TravelRequest{}, fmt.Errorf("invalid departure_date %q", b.DepartureDate)
	}
	arrTime, err := itinerary.ParseClock(b.ArrivalTime)
	if err != nil {
		return itinerary.TravelRequest{}, fmt.Errorf("invalid arrival_time %q", b.ArrivalTime)
	}
	depTime, err := itinerary.ParseClock(b.DepartureTime)
	if err != nil {
		return itinerary.TravelRequest{}, fmt.Errorf("invalid departure_time %q", b.DepartureTime)
	}

	return itinerary.TravelRequest{
		Destination:   b.Destination,
		ArrivalDate:   arrDate,
		ArrivalTime:   arrTime,
		DepartureDate: depDate,
		DepartureTime: depTime,
		Preferences:   b.Preferences,
	}, nil
}
