// README: Command-line planner; takes the form fields as flags and prints the itinerary.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"cloud.google.com/go/civil"
	"github.com/joho/godotenv"

	"voyage/internal/ai"
	"voyage/internal/config"
	"voyage/internal/infra"
	"voyage/internal/knowledge"
	"voyage/internal/modules/itinerary"
	"voyage/internal/service"
)

// prefFlags collects repeated -pref "Category=Item1,Item2" values in order.
type prefFlags []itinerary.Selection

func (p *prefFlags) String() string {
	return itinerary.SummarizePreferences(*p)
}

func (p *prefFlags) Set(v string) error {
	cat, items, ok := strings.Cut(v, "=")
	if !ok || strings.TrimSpace(cat) == "" {
		return fmt.Errorf("want Category=Item1,Item2, got %q", v)
	}
	sel := itinerary.Selection{Category: strings.TrimSpace(cat)}
	for _, it := range strings.Split(items, ",") {
		if it = strings.TrimSpace(it); it != "" {
			sel.Items = append(sel.Items, it)
		}
	}
	*p = append(*p, sel)
	return nil
}

const (
	exitOK      = 0
	exitFailure = 1
	exitInvalid = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("plan_demo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	destination := fs.String("destination", "", "travel destination (encyclopedia title)")
	arriveDate := fs.String("arrive-date", "", "arrival date, YYYY-MM-DD")
	arriveTime := fs.String("arrive-time", "", "arrival time, HH:MM[:SS]")
	departDate := fs.String("depart-date", "", "departure date, YYYY-MM-DD")
	departTime := fs.String("depart-time", "", "departure time, HH:MM[:SS]")
	dryRun := fs.Bool("dry-run", false, "print the composed prompt instead of calling the model")
	var prefs prefFlags
	fs.Var(&prefs, "pref", `preference "Category=Item1,Item2" (repeatable)`)
	if err := fs.Parse(args); err != nil {
		return exitInvalid
	}

	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "config error: %v\n", err)
		return exitFailure
	}
	logger, err := infra.NewLogger("error")
	if err != nil {
		fmt.Fprintf(stderr, "logger error: %v\n", err)
		return exitFailure
	}
	defer func() { _ = logger.Sync() }()

	req, err := buildRequest(*destination, *arriveDate, *arriveTime, *departDate, *departTime, prefs)
	if err != nil {
		fmt.Fprintf(stderr, "%s (%v)\n", itinerary.InvalidInputMessage, err)
		return exitInvalid
	}
	if err := req.Validate(); err != nil {
		return report(stderr, err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fetcher := knowledge.NewFetcher(cfg.Wiki.Endpoint, cfg.Wiki.UserAgent, nil, logger)

	if *dryRun {
		plan, err := service.NewTripPlanner(fetcher, nil, logger).PreviewPrompt(ctx, req)
		if err != nil {
			return report(stderr, err)
		}
		fmt.Fprintln(stdout, plan.Prompt)
		return exitOK
	}

	generator, closeGenerator, err := ai.NewGenerator(ctx, ai.Options{
		Provider:  cfg.LLM.Provider,
		Model:     cfg.LLM.Model,
		OllamaURL: cfg.LLM.OllamaURL,
		GeminiKey: cfg.LLM.GeminiKey,
	})
	if err != nil {
		fmt.Fprintf(stderr, "llm init: %v\n", err)
		return exitFailure
	}
	defer closeGenerator()

	planner := service.NewTripPlanner(fetcher, generator, logger)
	plan, err := planner.PlanTrip(ctx, req)
	if err != nil {
		return report(stderr, err)
	}
	fmt.Fprintln(stdout, "Your AI-Generated Travel Plan:")
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, plan.Itinerary)
	return exitOK
}

func buildRequest(destination, arriveDate, arriveTime, departDate, departTime string, prefs []itinerary.Selection) (itinerary.TravelRequest, error) {
	ad, err := civil.ParseDate(arriveDate)
	if err != nil {
		return itinerary.TravelRequest{}, fmt.Errorf("-arrive-date: %w", err)
	}
	dd, err := civil.ParseDate(departDate)
	if err != nil {
		return itinerary.TravelRequest{}, fmt.Errorf("-depart-date: %w", err)
	}
	at, err := itinerary.ParseClock(arriveTime)
	if err != nil {
		return itinerary.TravelRequest{}, fmt.Errorf("-arrive-time: %w", err)
	}
	dt, err := itinerary.ParseClock(departTime)
	if err != nil {
		return itinerary.TravelRequest{}, fmt.Errorf("-depart-time: %w", err)
	}
	return itinerary.TravelRequest{
		Destination:   destination,
		ArrivalDate:   ad,
		ArrivalTime:   at,
		DepartureDate: dd,
		DepartureTime: dt,
		Preferences:   prefs,
	}, nil
}

func report(stderr io.Writer, err error) int {
	switch {
	case errors.Is(err, itinerary.ErrInvalidInput):
		fmt.Fprintf(stderr, "%s (%v)\n", itinerary.InvalidInputMessage, err)
		return exitInvalid
	case errors.Is(err, ai.ErrGenerationUnavailable):
		fmt.Fprintf(stderr, "Could not generate a travel plan: %v\n", err)
		return exitFailure
	default:
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitFailure
	}
}
