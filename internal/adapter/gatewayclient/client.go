// Package gatewayclient calls a remote Gateway surface over HTTP. It satisfies
// usecase.GatewayPort so the orchestrator can run against a deployed gateway.
package gatewayclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/neon-travel/booking-gateway/internal/domain"
	"github.com/neon-travel/booking-gateway/internal/usecase"
)

// DefaultTimeout bounds each gateway call.
const DefaultTimeout = 30 * time.Second

// Client talks to a Gateway surface.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a Client for the gateway mounted at baseURL.
// apiKey is sent as a bearer token when set.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL:    strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		apiKey:     strings.TrimSpace(apiKey),
		httpClient: &http.Client{Timeout: timeout},
	}
}

type flightsEnvelope struct {
	Data struct {
		Offers []domain.FlightOffer `json:"offers"`
	} `json:"data"`
}

type placesEnvelope struct {
	Data []placeJSON `json:"data"`
}

type placeJSON struct {
	IATACode    string `json:"iata_code"`
	Name        string `json:"name"`
	CityName    string `json:"city_name"`
	CountryName string `json:"country_name"`
}

type staysEnvelope struct {
	Data struct {
		Results []domain.StayResult `json:"results"`
	} `json:"data"`
}

type orderEnvelope struct {
	Data domain.Order `json:"data"`
}

// errorBody is the JSON error shape of the gateway surface.
type errorBody struct {
	Error      string          `json:"error"`
	Details    json.RawMessage `json:"details,omitempty"`
	StatusCode int             `json:"statusCode,omitempty"`
}

// SearchFlights implements usecase.GatewayPort.
func (c *Client) SearchFlights(ctx context.Context, req domain.FlightSearchRequest) ([]domain.FlightOffer, error) {
	var env flightsEnvelope
	if err := c.do(ctx, http.MethodPost, "/search", nil, req, &env); err != nil {
		return nil, err
	}
	if env.Data.Offers == nil {
		return []domain.FlightOffer{}, nil
	}
	return env.Data.Offers, nil
}

// SearchPlaces implements usecase.GatewayPort.
func (c *Client) SearchPlaces(ctx context.Context, query string) ([]domain.Place, error) {
	q := url.Values{}
	q.Set("query", query)

	var env placesEnvelope
	if err := c.do(ctx, http.MethodGet, "/places/suggestions", q, nil, &env); err != nil {
		return nil, err
	}

	places := make([]domain.Place, 0, len(env.Data))
	for _, p := range env.Data {
		if p.IATACode == "" {
			continue
		}
		city := p.CityName
		if city == "" {
			city = p.Name
		}
		places = append(places, domain.Place{Code: p.IATACode, City: city, Name: p.Name, Country: p.CountryName})
	}
	return places, nil
}

// SearchStays implements usecase.GatewayPort.
func (c *Client) SearchStays(ctx context.Context, payload domain.StaysSearchPayload) ([]domain.StayResult, error) {
	var env staysEnvelope
	if err := c.do(ctx, http.MethodPost, "/stays/search", nil, payload, &env); err != nil {
		return nil, err
	}
	if env.Data.Results == nil {
		return []domain.StayResult{}, nil
	}
	return env.Data.Results, nil
}

// CreateOrder implements usecase.GatewayPort.
func (c *Client) CreateOrder(ctx context.Context, req domain.OrderRequest) (*domain.Order, error) {
	var env orderEnvelope
	if err := c.do(ctx, http.MethodPost, "/order", nil, req, &env); err != nil {
		return nil, err
	}
	if env.Data.Status == "" {
		env.Data.Status = domain.OrderConfirmed
	}
	return &env.Data, nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode gateway request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.NewTransportError(fmt.Errorf("gateway request: %w", err))
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.NewTransportError(fmt.Errorf("read gateway response: %w", err))
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return classify(resp.StatusCode, payload)
	}

	if err := json.Unmarshal(payload, out); err != nil {
		return &domain.GatewayError{
			Kind:       domain.KindUnavailable,
			Message:    "decode gateway response",
			StatusCode: resp.StatusCode,
			Details:    domain.RawDetails(payload),
			Err:        err,
		}
	}
	return nil
}

// classify maps a gateway error response back to the error taxonomy.
func classify(status int, payload []byte) error {
	var body errorBody
	if err := json.Unmarshal(payload, &body); err != nil {
		return domain.NewUpstreamUnavailableError(status, domain.RawDetails(payload))
	}
	if body.Error == domain.MsgNotConfigured {
		return domain.NewNotConfiguredError()
	}

	upstreamStatus := body.StatusCode
	if upstreamStatus == 0 {
		upstreamStatus = status
	}
	if status == http.StatusBadRequest {
		return domain.NewUpstreamValidationError(upstreamStatus, body.Details)
	}
	return domain.NewUpstreamUnavailableError(upstreamStatus, body.Details)
}

// Ensure Client implements usecase.GatewayPort at compile time.
var _ usecase.GatewayPort = (*Client)(nil)
