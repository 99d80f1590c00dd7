// Package config provides application configuration management.
// It loads configuration from environment variables with support for .env files.
package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Duffel   DuffelConfig
	Gateway  GatewayConfig
	Deals    DealsConfig
	Debounce DebounceConfig
	Logging  LoggingConfig
	App      AppConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"30s"`
}

// DuffelConfig holds the upstream aggregator settings.
// An empty APIKey runs the gateway in demo mode.
type DuffelConfig struct {
	APIKey  string        `env:"DUFFEL_API_KEY"`
	BaseURL string        `env:"DUFFEL_BASE_URL" envDefault:"https://api.duffel.com"`
	Version string        `env:"DUFFEL_VERSION" envDefault:"beta"`
	Timeout time.Duration `env:"UPSTREAM_TIMEOUT" envDefault:"30s"`
}

// GatewayConfig selects where the orchestrator sends gateway calls.
// An empty URL uses the in-process gateway.
type GatewayConfig struct {
	URL string `env:"GATEWAY_URL"`

	// APIKey is sent as a bearer token to a remote gateway surface
	APIKey string `env:"GATEWAY_API_KEY"`
}

// DealsConfig holds trending deal settings.
type DealsConfig struct {
	Max              int           `env:"DEALS_MAX" envDefault:"5"`
	LeadDays         int           `env:"DEALS_LEAD_DAYS" envDefault:"21"`
	CandidateTimeout time.Duration `env:"DEALS_CANDIDATE_TIMEOUT" envDefault:"10s"`
}

// DebounceConfig holds quiescence windows for interactive lookups.
type DebounceConfig struct {
	Places time.Duration `env:"DEBOUNCE_PLACES" envDefault:"400ms"`
	Deals  time.Duration `env:"DEBOUNCE_DEALS" envDefault:"500ms"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level       string `env:"LOG_LEVEL" envDefault:"info"`
	Format      string `env:"LOG_FORMAT" envDefault:"json"`
	Caller      bool   `env:"LOG_CALLER" envDefault:"false"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"booking-gateway"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Env string `env:"APP_ENV" envDefault:"development"`
}

// Load reads configuration from environment variables.
// It attempts to load a .env file first (optional - won't fail if missing).
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics on error.
// Use this in main() where configuration is required to start.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

// validate checks configuration values for correctness.
func validate(cfg *Config) error {
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", cfg.Server.Port)
	}

	positive := []struct {
		name  string
		value time.Duration
	}{
		{"SERVER_READ_TIMEOUT", cfg.Server.ReadTimeout},
		{"SERVER_WRITE_TIMEOUT", cfg.Server.WriteTimeout},
		{"UPSTREAM_TIMEOUT", cfg.Duffel.Timeout},
		{"DEALS_CANDIDATE_TIMEOUT", cfg.Deals.CandidateTimeout},
		{"DEBOUNCE_PLACES", cfg.Debounce.Places},
		{"DEBOUNCE_DEALS", cfg.Debounce.Deals},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return fmt.Errorf("%s must be positive", p.name)
		}
	}

	if err := validateURL("DUFFEL_BASE_URL", cfg.Duffel.BaseURL); err != nil {
		return err
	}
	if cfg.Gateway.URL != "" {
		if err := validateURL("GATEWAY_URL", cfg.Gateway.URL); err != nil {
			return err
		}
	}

	if cfg.Deals.Max < 1 {
		return fmt.Errorf("DEALS_MAX must be at least 1, got %d", cfg.Deals.Max)
	}
	if cfg.Deals.LeadDays < 1 {
		return fmt.Errorf("DEALS_LEAD_DAYS must be at least 1, got %d", cfg.Deals.LeadDays)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", cfg.Logging.Level)
	}

	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console; got %q", cfg.Logging.Format)
	}

	validEnvs := map[string]bool{"development": true, "staging": true, "production": true}
	if !validEnvs[cfg.App.Env] {
		return fmt.Errorf("APP_ENV must be one of: development, staging, production; got %q", cfg.App.Env)
	}

	return nil
}

func validateURL(name, raw string) error {
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%s must be an absolute http(s) URL, got %q", name, raw)
	}
	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}

// DemoMode reports whether no upstream credential is configured.
func (c *Config) DemoMode() bool {
	return c.Duffel.APIKey == ""
}

// RemoteGateway reports whether gateway calls go to a remote surface.
func (c *Config) RemoteGateway() bool {
	return c.Gateway.URL != ""
}
