// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"voyage/internal/http/handlers"
	"voyage/internal/http/middleware"
)

type RouterDeps struct {
	Planner handlers.TripPlanner
	// Places may be nil when no Places API key is configured.
	Places handlers.DestinationSuggester
	Logger *zap.Logger

	PlanRatePerMinute int
	PlanBurst         int
	CORSOrigins       []string
}

// NewRouter builds the gin engine with all API routes.
func NewRouter(deps RouterDeps) *gin.Engine {
	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}

	r := gin.New()
	r.Use(middleware.Logging(log), middleware.Recovery(log))

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	itineraryHandler := handlers.NewItineraryHandler(deps.Planner)
	destinationHandler := handlers.NewDestinationHandler(deps.Places, log)

	api := r.Group("/api")
	api.GET("/taxonomy", itineraryHandler.Taxonomy)
	api.GET("/destinations/suggestions", destinationHandler.Suggest)

	// Only generation reaches the model, so only it is rate limited.
	itineraries := api.Group("/itineraries")
	itineraries.POST("", middleware.RateLimit(deps.PlanRatePerMinute, deps.PlanBurst), itineraryHandler.Create)
	itineraries.POST("/prompt", itineraryHandler.Preview)

	return r
}

// NewHandler wraps the router with CORS so browser forms on other origins can post to it.
func NewHandler(deps RouterDeps) http.Handler {
	return middleware.NewCORSHandler(deps.CORSOrigins)(NewRouter(deps))
}
