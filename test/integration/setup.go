// Package integration provides helpers and end-to-end tests for the booking gateway.
// Tests drive the real echo stack (middleware, both surfaces, orchestrator, gateway
// and Duffel client) against a fake upstream served over HTTP.
package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"

	bookinghttp "github.com/neon-travel/booking-gateway/internal/adapter/http"
	"github.com/neon-travel/booking-gateway/internal/adapter/duffel"
	"github.com/neon-travel/booking-gateway/internal/adapter/gatewayclient"
	"github.com/neon-travel/booking-gateway/internal/adapter/http/middleware"
	"github.com/neon-travel/booking-gateway/internal/infrastructure/logger"
	"github.com/neon-travel/booking-gateway/internal/infrastructure/metrics"
	"github.com/neon-travel/booking-gateway/internal/infrastructure/timeutil"
	"github.com/neon-travel/booking-gateway/internal/session"
	"github.com/neon-travel/booking-gateway/internal/usecase"
	"github.com/neon-travel/booking-gateway/test/mock"
)

// TestAPIKey is the credential shared by the fake upstream and the test server.
const TestAPIKey = "duffel_test_integration"

// Options configures a TestServer.
type Options struct {
	// APIKey is the credential the server sends upstream. Empty runs in demo mode.
	APIKey string

	// Remote routes orchestrator calls through the gateway surface over HTTP
	Remote bool

	// Clock overrides the system clock
	Clock timeutil.Clock

	// Deals overrides the trending deal settings
	Deals usecase.DealsConfig
}

// TestServer wraps an Echo instance wired like cmd/server.
type TestServer struct {
	Echo     *echo.Echo
	Upstream *mock.Duffel
	Metrics  *metrics.Recorder
	Sessions *session.Store

	// Surface serves the echo instance when Options.Remote is set
	Surface *httptest.Server
}

// NewTestServer creates a test server in front of upstream. Everything is closed with the test.
func NewTestServer(t *testing.T, upstream *mock.Duffel, opts Options) *TestServer {
	t.Helper()

	clock := opts.Clock
	if clock == nil {
		clock = timeutil.NewRealClock()
	}
	log := logger.Nop()
	rec := metrics.New(prometheus.NewRegistry())

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	middleware.Setup(e, log, rec, bookinghttp.GatewayPrefix)

	client := duffel.NewClient(upstream.URL(), opts.APIKey, duffel.DefaultVersion, 5*time.Second)
	gateway := usecase.NewGateway(client, log, rec, clock)
	bookinghttp.RegisterGatewayRoutes(e, bookinghttp.NewGatewayHandler(gateway))

	ts := &TestServer{Echo: e, Upstream: upstream, Metrics: rec}

	var port usecase.GatewayPort = gateway
	if opts.Remote {
		ts.Surface = httptest.NewServer(e)
		t.Cleanup(ts.Surface.Close)
		port = gatewayclient.NewClient(ts.Surface.URL+bookinghttp.GatewayPrefix, "", 5*time.Second)
	}

	orchestrator := usecase.NewOrchestrator(port, &usecase.OrchestratorConfig{
		Clock:   clock,
		Logger:  log,
		Metrics: rec,
		Deals:   opts.Deals,
	})
	ts.Sessions = session.NewStore()
	t.Cleanup(ts.Sessions.Close)
	bookings := usecase.NewBookingService(orchestrator, ts.Sessions, clock, log)

	mode := bookinghttp.ModeLive
	if opts.APIKey == "" {
		mode = bookinghttp.ModeDemo
	}
	bookinghttp.RegisterRoutes(e, bookinghttp.NewBookingHandler(orchestrator, bookings, ts.Sessions, mode))
	e.GET("/metrics", echo.WrapHandler(rec.Handler()))

	return ts
}

// NewLiveServer starts a fake upstream accepting TestAPIKey and a server using it.
func NewLiveServer(t *testing.T, opts Options) *TestServer {
	t.Helper()

	upstream := mock.NewDuffel(TestAPIKey)
	t.Cleanup(upstream.Close)

	opts.APIKey = TestAPIKey
	return NewTestServer(t, upstream, opts)
}

// Request represents a test HTTP request configuration.
type Request struct {
	Method    string
	Path      string
	Body      interface{}
	SessionID string
	Headers   map[string]string
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Do executes a test request and returns the response.
func (ts *TestServer) Do(req Request) Response {
	var bodyReader *bytes.Reader
	if req.Body != nil {
		var raw []byte
		switch b := req.Body.(type) {
		case string:
			raw = []byte(b)
		default:
			raw, _ = json.Marshal(b)
		}
		bodyReader = bytes.NewReader(raw)
	} else {
		bodyReader = bytes.NewReader(nil)
	}

	httpReq := httptest.NewRequest(req.Method, req.Path, bodyReader)
	if req.Body != nil {
		httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if req.SessionID != "" {
		httpReq.Header.Set(middleware.SessionIDHeader, req.SessionID)
	}
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, httpReq)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// SearchFlights posts a flight search to the booking API.
func (ts *TestServer) SearchFlights(body interface{}) Response {
	return ts.Do(Request{Method: http.MethodPost, Path: "/api/v1/flights/search", Body: body})
}

// Signup signs up a traveler and returns the session id.
func (ts *TestServer) Signup(t *testing.T, email, firstName, lastName string) string {
	t.Helper()

	resp := ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/auth/signup",
		Body:   map[string]string{"email": email, "firstName": firstName, "lastName": lastName},
	})
	if resp.Code != http.StatusOK {
		t.Fatalf("signup failed with %d: %s", resp.Code, resp.Body)
	}
	id := resp.Headers.Get(middleware.SessionIDHeader)
	if id == "" {
		t.Fatal("signup returned no session id")
	}
	return id
}

// SearchRequestBody is a helper struct for building search request bodies.
type SearchRequestBody struct {
	Origin          string                 `json:"origin"`
	Destination     string                 `json:"destination"`
	DepartureDate   string                 `json:"departureDate"`
	Passengers      int                    `json:"passengers,omitempty"`
	CabinClass      string                 `json:"cabinClass,omitempty"`
	Filters         map[string]interface{} `json:"filters,omitempty"`
	SortBy          string                 `json:"sortBy,omitempty"`
	DisplayCurrency string                 `json:"displayCurrency,omitempty"`
}

// DefaultSearchRequest returns a valid JFK to LHR search.
func DefaultSearchRequest() SearchRequestBody {
	return SearchRequestBody{
		Origin:        "JFK",
		Destination:   "LHR",
		DepartureDate: "2026-06-15",
		Passengers:    1,
	}
}
