// Package duffel implements domain.Upstream over the Duffel HTTP API.
package duffel

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
)

// Defaults for the client configuration.
const (
	DefaultBaseURL = "https://api.duffel.com"
	DefaultVersion = "beta"
	DefaultTimeout = 30 * time.Second
)

// Fixed traveler details sent with every instant order.
const (
	defaultPhone     = "+15550123456"
	defaultBornOn    = "1990-01-01"
	defaultTitle     = "mr"
	defaultGender    = "m"
	paymentType      = "balance"
	paymentAmount    = "100.00"
	paymentCurrency  = "USD"
	orderTypeInstant = "instant"
)

// Client talks to the Duffel API.
type Client struct {
	baseURL    string
	apiKey     string
	version    string
	httpClient *http.Client
}

// NewClient creates a Client. Empty values fall back to the defaults.
func NewClient(baseURL, apiKey, version string, timeout time.Duration) *Client {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultBaseURL
	}
	if strings.TrimSpace(version) == "" {
		version = DefaultVersion
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     strings.TrimSpace(apiKey),
		version:    strings.TrimSpace(version),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Configured implements domain.Upstream.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

// CreateOfferRequest implements domain.Upstream.
func (c *Client) CreateOfferRequest(ctx context.Context, req domain.FlightSearchRequest) ([]domain.FlightOffer, error) {
	count := req.Passengers
	if count < 1 {
		count = domain.DefaultPassengers
	}
	passengers := make([]passengerRequest, count)
	for i := range passengers {
		passengers[i] = passengerRequest{Type: domain.PassengerTypeAdult}
	}

	cabin := req.CabinClass
	if cabin == "" {
		cabin = domain.DefaultCabinClass
	}

	body := offerRequestBody{Data: offerRequestData{
		Slices: []sliceRequest{{
			Origin:        req.Origin,
			Destination:   req.Destination,
			DepartureDate: req.DepartureDate,
		}},
		Passengers: passengers,
		CabinClass: cabin,
	}}

	query := url.Values{}
	query.Set("return_offers", "true")

	var resp offerRequestResponse
	if err := c.do(ctx, http.MethodPost, "/air/offer_requests", query, body, &resp); err != nil {
		return nil, err
	}
	if resp.Data.Offers == nil {
		return []domain.FlightOffer{}, nil
	}
	return resp.Data.Offers, nil
}

// PlaceSuggestions implements domain.Upstream.
func (c *Client) PlaceSuggestions(ctx context.Context, query string) ([]domain.Place, error) {
	q := url.Values{}
	q.Set("query", query)

	var resp placesResponse
	if err := c.do(ctx, http.MethodGet, "/places/suggestions", q, nil, &resp); err != nil {
		return nil, err
	}
	return toPlaces(resp.Data), nil
}

// SearchStays implements domain.Upstream.
func (c *Client) SearchStays(ctx context.Context, payload domain.StaysSearchPayload) ([]domain.StayResult, error) {
	var resp staysResponse
	if err := c.do(ctx, http.MethodPost, "/stays/search", nil, staysRequestBody{Data: payload}, &resp); err != nil {
		return nil, err
	}
	if resp.Data.Results == nil {
		return []domain.StayResult{}, nil
	}
	return resp.Data.Results, nil
}

// CreateOrder implements domain.Upstream.
func (c *Client) CreateOrder(ctx context.Context, req domain.OrderRequest) (*domain.Order, error) {
	phone := req.Phone
	if phone == "" {
		phone = defaultPhone
	}

	body := orderRequestBody{Data: orderRequestData{
		Type:           orderTypeInstant,
		SelectedOffers: []string{req.OfferID},
		Passengers: []orderPassenger{{
			ID:          req.PassengerID,
			GivenName:   req.GivenName,
			FamilyName:  req.FamilyName,
			Email:       req.Email,
			PhoneNumber: phone,
			BornOn:      defaultBornOn,
			Title:       defaultTitle,
			Gender:      defaultGender,
		}},
		Payments: []orderPayment{{
			Type:     paymentType,
			Amount:   paymentAmount,
			Currency: paymentCurrency,
		}},
	}}

	var resp orderResponse
	if err := c.do(ctx, http.MethodPost, "/air/orders", nil, body, &resp); err != nil {
		return nil, err
	}

	order := resp.Data
	if order.Status == "" {
		order.Status = domain.OrderConfirmed
	}
	return &order, nil
}

// do sends one request and decodes a 2xx JSON body into out.
// Failures come back as *domain.GatewayError.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	if !c.Configured() {
		return domain.NewNotConfiguredError()
	}

	reqURL, err := c.buildURL(path, query)
	if err != nil {
		return err
	}

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode duffel request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Duffel-Version", c.version)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.NewTransportError(fmt.Errorf("duffel request: %w", err))
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.NewTransportError(fmt.Errorf("read duffel response: %w", err))
	}

	switch {
	case resp.StatusCode == http.StatusBadRequest:
		return domain.NewUpstreamValidationError(resp.StatusCode, domain.RawDetails(payload))
	case resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices:
		return domain.NewUpstreamUnavailableError(resp.StatusCode, domain.RawDetails(payload))
	}

	if err := json.Unmarshal(payload, out); err != nil {
		return &domain.GatewayError{
			Kind:       domain.KindUnavailable,
			Message:    "decode duffel response",
			StatusCode: resp.StatusCode,
			Details:    domain.RawDetails(payload),
			Err:        err,
		}
	}
	return nil
}

func (c *Client) buildURL(path string, query url.Values) (string, error) {
	u, err := url.Parse(c.baseURL + path)
	if err != nil {
		return "", fmt.Errorf("parse duffel base url: %w", err)
	}
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return u.String(), nil
}

// Ensure Client implements domain.Upstream at compile time.
var _ domain.Upstream = (*Client)(nil)
