// Package testutil provides test helper functions for unit and integration tests.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/neon-travel/booking-gateway/internal/domain"
)

// LoadTestJSON loads a JSON file from the test/testdata directory.
func LoadTestJSON(t *testing.T, filename string) []byte {
	t.Helper()

	_, currentFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}

	// testutil is in test/testutil
	testDataPath := filepath.Join(filepath.Dir(currentFile), "..", "testdata", filename)

	data, err := os.ReadFile(testDataPath)
	if err != nil {
		t.Fatalf("Failed to load test file %s: %v", filename, err)
	}
	return data
}

// LoadOffers decodes an upstream offer request response from test/testdata.
func LoadOffers(t *testing.T, filename string) []domain.FlightOffer {
	t.Helper()

	var resp struct {
		Data struct {
			Offers []domain.FlightOffer `json:"offers"`
		} `json:"data"`
	}
	if err := json.Unmarshal(LoadTestJSON(t, filename), &resp); err != nil {
		t.Fatalf("Failed to decode offers from %s: %v", filename, err)
	}
	return resp.Data.Offers
}

// DecodeJSON decodes body into T and fails the test on error.
func DecodeJSON[T any](t *testing.T, body []byte) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("Failed to decode response %q: %v", body, err)
	}
	return out
}

// MustParseDate parses a date string in YYYY-MM-DD format.
// It fails the test if parsing fails.
func MustParseDate(t *testing.T, dateStr string) time.Time {
	t.Helper()
	parsed, err := time.Parse(domain.DateLayout, dateStr)
	if err != nil {
		t.Fatalf("Failed to parse date %s: %v", dateStr, err)
	}
	return parsed
}

// FutureDate returns a date n days from now in YYYY-MM-DD format.
func FutureDate(days int) string {
	return time.Now().UTC().AddDate(0, 0, days).Format(domain.DateLayout)
}

// Ptr returns a pointer to the given value.
// Useful for creating pointers to literals in tests.
func Ptr[T any](v T) *T {
	return &v
}
