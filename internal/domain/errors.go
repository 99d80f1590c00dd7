package domain

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Sentinel errors for the booking gateway.
var (
	// ErrInvalidRequest indicates the request failed validation.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrUpstreamValidation indicates the upstream aggregator rejected the request shape or values.
	ErrUpstreamValidation = errors.New("upstream validation error")

	// ErrUpstreamUnavailable indicates a network failure or an unexpected upstream status.
	ErrUpstreamUnavailable = errors.New("upstream unavailable")

	// ErrUpstreamNotConfigured indicates no upstream credential is configured.
	ErrUpstreamNotConfigured = errors.New("upstream credential not configured")

	// ErrUnauthenticated indicates the session has no signed-in user.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrNotFound indicates the requested item does not exist.
	ErrNotFound = errors.New("not found")
)

// MsgNotConfigured is the message of the missing credential error.
const MsgNotConfigured = "No Duffel API Key set"

// GatewayErrorKind classifies upstream failures.
type GatewayErrorKind string

// Gateway error kinds.
const (
	// KindValidation is an upstream rejection of the request (HTTP 400 upstream).
	KindValidation GatewayErrorKind = "validation"

	// KindUnavailable covers missing credentials, network failures and other non-2xx statuses.
	KindUnavailable GatewayErrorKind = "unavailable"
)

// GatewayError is a structured upstream failure.
// Details carries the upstream error payload unmodified so callers can decide to fall back.
type GatewayError struct {
	Kind       GatewayErrorKind
	Message    string
	StatusCode int
	Details    json.RawMessage
	Err        error
}

// Error implements the error interface.
func (e *GatewayError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = string(e.Kind)
	}
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, e.StatusCode)
	}
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying error.
func (e *GatewayError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is match a GatewayError against the kind sentinels.
func (e *GatewayError) Is(target error) bool {
	switch target {
	case ErrUpstreamValidation:
		return e.Kind == KindValidation
	case ErrUpstreamUnavailable:
		return e.Kind == KindUnavailable
	}
	return false
}

// NewUpstreamValidationError creates a validation error carrying upstream details verbatim.
func NewUpstreamValidationError(statusCode int, details json.RawMessage) *GatewayError {
	return &GatewayError{
		Kind:       KindValidation,
		Message:    "upstream rejected request",
		StatusCode: statusCode,
		Details:    details,
	}
}

// NewUpstreamUnavailableError creates an unavailable error for an unexpected upstream status.
func NewUpstreamUnavailableError(statusCode int, details json.RawMessage) *GatewayError {
	return &GatewayError{
		Kind:       KindUnavailable,
		Message:    "upstream request failed",
		StatusCode: statusCode,
		Details:    details,
	}
}

// NewTransportError wraps a network-level failure talking to the upstream.
func NewTransportError(err error) *GatewayError {
	return &GatewayError{
		Kind:    KindUnavailable,
		Message: "upstream unreachable",
		Err:     err,
	}
}

// NewNotConfiguredError reports a missing upstream credential.
func NewNotConfiguredError() *GatewayError {
	return &GatewayError{
		Kind:    KindUnavailable,
		Message: MsgNotConfigured,
		Err:     ErrUpstreamNotConfigured,
	}
}

// AsGatewayError extracts a GatewayError from an error chain.
func AsGatewayError(err error) (*GatewayError, bool) {
	var ge *GatewayError
	if errors.As(err, &ge) {
		return ge, true
	}
	return nil, false
}

// RawDetails converts an upstream body to a JSON value: the body itself when it is valid JSON,
// otherwise the body as a JSON string.
func RawDetails(body []byte) json.RawMessage {
	if len(body) == 0 {
		return nil
	}
	if json.Valid(body) {
		return json.RawMessage(body)
	}
	quoted, _ := json.Marshal(string(body))
	return quoted
}

// WrapInvalidRequest creates an ErrInvalidRequest error with a formatted message.
func WrapInvalidRequest(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidRequest, fmt.Sprintf(format, args...))
}

// IsInvalidRequest reports whether err is an invalid request error.
func IsInvalidRequest(err error) bool {
	return errors.Is(err, ErrInvalidRequest)
}

// IsUpstreamValidation reports whether err is an upstream validation error.
func IsUpstreamValidation(err error) bool {
	return errors.Is(err, ErrUpstreamValidation)
}

// IsUpstreamUnavailable reports whether err is an upstream availability error.
func IsUpstreamUnavailable(err error) bool {
	return errors.Is(err, ErrUpstreamUnavailable)
}
