// Package main is a developer CLI for the autocomplete flow. It reads queries from stdin,
// one per line, debounces them and prints place suggestions. A line of the form
// "deals <ORIGIN>" looks up trending deals instead.
//
//	printf 'lo\nlon\nlondon\n' | go run ./cmd/placesearch
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/neon-travel/booking-gateway/internal/adapter/duffel"
	"github.com/neon-travel/booking-gateway/internal/adapter/gatewayclient"
	"github.com/neon-travel/booking-gateway/internal/config"
	"github.com/neon-travel/booking-gateway/internal/domain"
	"github.com/neon-travel/booking-gateway/internal/infrastructure/debounce"
	"github.com/neon-travel/booking-gateway/internal/infrastructure/logger"
	"github.com/neon-travel/booking-gateway/internal/infrastructure/metrics"
	"github.com/neon-travel/booking-gateway/internal/infrastructure/timeutil"
	"github.com/neon-travel/booking-gateway/internal/usecase"
)

const dealsCommand = "deals "

func main() {
	jsonOut := flag.Bool("json", false, "print results as JSON lines")
	flag.Parse()

	cfg := config.MustLoad()
	log := logger.NewWithOutput(logger.Config{
		Level:       cfg.Logging.Level,
		Format:      "console",
		ServiceName: "placesearch",
	}, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	orch := newOrchestrator(cfg, log)
	out := newPrinter(os.Stdout, *jsonOut)

	places := debounce.New(ctx, cfg.Debounce.Places,
		func(ctx context.Context, query string) ([]domain.Place, error) {
			return orch.SearchPlaces(ctx, query), nil
		},
		out.places,
	)
	defer places.Stop()

	deals := debounce.New(ctx, cfg.Debounce.Deals,
		func(ctx context.Context, origin string) ([]domain.DestinationDeal, error) {
			return orch.TrendingDeals(ctx, origin), nil
		},
		out.deals,
	)
	defer deals.Stop()

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if origin, ok := strings.CutPrefix(line, dealsCommand); ok {
			deals.Submit(strings.ToUpper(strings.TrimSpace(origin)))
			continue
		}
		places.Submit(line)
	}
	if err := scanner.Err(); err != nil {
		log.Error().Err(err).Msg("Failed to read stdin")
	}

	// Input is closed: wait for the latest submissions to settle
	drain := max(cfg.Debounce.Places, cfg.Debounce.Deals) + cfg.Duffel.Timeout + cfg.Deals.CandidateTimeout
	if !out.wait(ctx, places.Generation(), deals.Generation(), drain) {
		log.Warn().Dur("timeout", drain).Msg("Gave up waiting for pending lookups")
	}
}

func newOrchestrator(cfg *config.Config, log *logger.Logger) *usecase.Orchestrator {
	clock := timeutil.NewRealClock()
	rec := metrics.Nop()

	var port usecase.GatewayPort
	if cfg.RemoteGateway() {
		port = gatewayclient.NewClient(cfg.Gateway.URL, cfg.Gateway.APIKey, cfg.Duffel.Timeout)
	} else {
		upstream := duffel.NewClient(cfg.Duffel.BaseURL, cfg.Duffel.APIKey, cfg.Duffel.Version, cfg.Duffel.Timeout)
		port = usecase.NewGateway(upstream, log, rec, clock)
	}

	return usecase.NewOrchestrator(port, &usecase.OrchestratorConfig{
		Clock:   clock,
		Logger:  log,
		Metrics: rec,
		Deals: usecase.DealsConfig{
			Max:              cfg.Deals.Max,
			LeadDays:         cfg.Deals.LeadDays,
			CandidateTimeout: cfg.Deals.CandidateTimeout,
		},
	})
}

// printer writes delivered results and tracks the latest generation seen per lookup.
type printer struct {
	mu       sync.Mutex
	out      io.Writer
	json     bool
	placeGen uint64
	dealGen  uint64
	notify   chan struct{}
}

func newPrinter(out io.Writer, asJSON bool) *printer {
	return &printer{out: out, json: asJSON, notify: make(chan struct{}, 1)}
}

func (p *printer) places(r debounce.Result[[]domain.Place]) {
	p.mu.Lock()
	defer p.mu.Unlock()
	defer p.signal()

	p.placeGen = r.Generation
	if p.json {
		p.writeJSON("places", r.Generation, r.Value)
		return
	}
	fmt.Fprintf(p.out, "#%d places (%d)\n", r.Generation, len(r.Value))
	for _, pl := range r.Value {
		fmt.Fprintf(p.out, "  %s  %s, %s  %s\n", pl.Code, pl.City, pl.Country, pl.Name)
	}
}

func (p *printer) deals(r debounce.Result[[]domain.DestinationDeal]) {
	p.mu.Lock()
	defer p.mu.Unlock()
	defer p.signal()

	p.dealGen = r.Generation
	if p.json {
		p.writeJSON("deals", r.Generation, r.Value)
		return
	}
	fmt.Fprintf(p.out, "#%d deals (%d)\n", r.Generation, len(r.Value))
	for _, d := range r.Value {
		fmt.Fprintf(p.out, "  %s -> %s  %s %s  %s on %s\n", d.Origin, d.Destination, d.Price, d.Currency, d.Airline, d.DepartureDate)
	}
}

func (p *printer) writeJSON(kind string, gen uint64, value any) {
	line, err := json.Marshal(map[string]any{"kind": kind, "generation": gen, "results": value})
	if err != nil {
		fmt.Fprintf(p.out, "{\"kind\":%q,\"error\":%q}\n", kind, err.Error())
		return
	}
	fmt.Fprintf(p.out, "%s\n", line)
}

func (p *printer) signal() {
	select {
	case p.notify <- struct{}{}:
	default:
	}
}

// wait blocks until both lookups have delivered at least the given generations.
func (p *printer) wait(ctx context.Context, placeGen, dealGen uint64, timeout time.Duration) bool {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	for {
		p.mu.Lock()
		done := p.placeGen >= placeGen && p.dealGen >= dealGen
		p.mu.Unlock()
		if done {
			return true
		}

		select {
		case <-p.notify:
		case <-timer.C:
			return false
		case <-ctx.Done():
			return false
		}
	}
}
