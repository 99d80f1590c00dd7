// Package main is the entry point for the booking gateway service.
//
//	@title						Neon Booking Gateway API
//	@version					1.0.0
//	@description				Travel booking backend: a gateway surface over the Duffel aggregator and the booking API with demo fallbacks.
//
//	@contact.name				API Support
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
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

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	echoSwagger "github.com/swaggo/echo-swagger"

	// Import generated docs for swagger
	_ "github.com/neon-travel/booking-gateway/docs"

	bookinghttp "github.com/neon-travel/booking-gateway/internal/adapter/http"
	"github.com/neon-travel/booking-gateway/internal/adapter/duffel"
	"github.com/neon-travel/booking-gateway/internal/adapter/gatewayclient"
	"github.com/neon-travel/booking-gateway/internal/adapter/http/middleware"
	"github.com/neon-travel/booking-gateway/internal/config"
	"github.com/neon-travel/booking-gateway/internal/infrastructure/logger"
	"github.com/neon-travel/booking-gateway/internal/infrastructure/metrics"
	"github.com/neon-travel/booking-gateway/internal/infrastructure/timeutil"
	"github.com/neon-travel/booking-gateway/internal/session"
	"github.com/neon-travel/booking-gateway/internal/usecase"
)

const (
	shutdownTimeout = 10 * time.Second
)

func main() {
	cfg := config.MustLoad()

	log := logger.New(logger.Config{
		Level:        cfg.Logging.Level,
		Format:       cfg.Logging.Format,
		EnableCaller: cfg.Logging.Caller,
		ServiceName:  cfg.Logging.ServiceName,
	})

	mode := bookinghttp.ModeLive
	if cfg.DemoMode() {
		mode = bookinghttp.ModeDemo
	}

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Str("mode", mode).
		Bool("remote_gateway", cfg.RemoteGateway()).
		Msg("Configuration loaded")

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	rec := metrics.New(reg)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	middleware.Setup(e, log, rec, bookinghttp.GatewayPrefix)

	sessions := setupRoutes(e, cfg, log, rec, mode)
	defer sessions.Close()

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	gracefulShutdown(e, log)
}

// setupRoutes wires the gateway, the orchestrator and both HTTP surfaces.
// The returned session store must be closed on shutdown.
func setupRoutes(e *echo.Echo, cfg *config.Config, log *logger.Logger, rec *metrics.Recorder, mode string) *session.Store {
	clock := timeutil.NewRealClock()

	upstream := duffel.NewClient(cfg.Duffel.BaseURL, cfg.Duffel.APIKey, cfg.Duffel.Version, cfg.Duffel.Timeout)
	gateway := usecase.NewGateway(upstream, log.WithField("component", "gateway"), rec, clock)

	// The orchestrator either calls the in-process gateway or a deployed surface
	var port usecase.GatewayPort = gateway
	if cfg.RemoteGateway() {
		port = gatewayclient.NewClient(cfg.Gateway.URL, cfg.Gateway.APIKey, cfg.Duffel.Timeout)
	}

	orchestrator := usecase.NewOrchestrator(port, &usecase.OrchestratorConfig{
		Clock:   clock,
		Logger:  log.WithField("component", "orchestrator"),
		Metrics: rec,
		Deals: usecase.DealsConfig{
			Max:              cfg.Deals.Max,
			LeadDays:         cfg.Deals.LeadDays,
			CandidateTimeout: cfg.Deals.CandidateTimeout,
		},
	})

	sessions := session.NewStore()
	bookings := usecase.NewBookingService(orchestrator, sessions, clock, log.WithField("component", "booking"))

	bookinghttp.RegisterRoutes(e, bookinghttp.NewBookingHandler(orchestrator, bookings, sessions, mode))
	bookinghttp.RegisterGatewayRoutes(e, bookinghttp.NewGatewayHandler(gateway))

	e.GET("/metrics", echo.WrapHandler(rec.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return sessions
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server stopped")
}
