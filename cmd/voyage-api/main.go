// README: Entry point; loads config, wires the lookup, model and planner, starts the HTTP server.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"voyage/internal/ai"
	"voyage/internal/config"
	httptransport "voyage/internal/http"
	"voyage/internal/http/handlers"
	"voyage/internal/infra"
	"voyage/internal/knowledge"
	"voyage/internal/maps"
	"voyage/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "voyage-api: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := infra.NewLogger(cfg.Log.Level)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	generator, closeGenerator, err := ai.NewGenerator(ctx, ai.Options{
		Provider:  cfg.LLM.Provider,
		Model:     cfg.LLM.Model,
		OllamaURL: cfg.LLM.OllamaURL,
		GeminiKey: cfg.LLM.GeminiKey,
	})
	if err != nil {
		return fmt.Errorf("llm init: %w", err)
	}
	defer closeGenerator()

	var places handlers.DestinationSuggester
	if cfg.Places.APIKey != "" {
		svc, err := maps.NewPlacesService(cfg.Places.APIKey)
		if err != nil {
			return fmt.Errorf("places init: %w", err)
		}
		places = svc
	} else {
		logger.Info("GOOGLE_PLACES_API_KEY not set; destination suggestions disabled")
	}

	fetcher := knowledge.NewFetcher(cfg.Wiki.Endpoint, cfg.Wiki.UserAgent, nil, logger)
	planner := service.NewTripPlanner(fetcher, generator, logger)

	gin.SetMode(gin.ReleaseMode)
	handler := httptransport.NewHandler(httptransport.RouterDeps{
		Planner:           planner,
		Places:            places,
		Logger:            logger,
		PlanRatePerMinute: cfg.Plan.RatePerMinute,
		PlanBurst:         cfg.Plan.Burst,
		CORSOrigins:       cfg.HTTP.CORSOrigins,
	})

	// No write timeout: a local model can take minutes to answer.
	server := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening",
			zap.String("addr", cfg.HTTP.Addr),
			zap.String("llm_provider", cfg.LLM.Provider),
			zap.String("llm_model", cfg.LLM.Model),
		)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
