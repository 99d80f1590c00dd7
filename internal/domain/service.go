// Package domain contains the core business entities and rules for the booking gateway.
// These entities are independent of the upstream aggregator and of the HTTP surfaces.
package domain

import "strings"

// ServiceType tags what kind of item an offer or order refers to.
type ServiceType string

// Available service types.
const (
	ServiceFlights    ServiceType = "FLIGHTS"
	ServiceStays      ServiceType = "STAYS"
	ServiceCars       ServiceType = "CARS"
	ServiceSecurity   ServiceType = "SECURITY"
	ServiceExperience ServiceType = "EXPERIENCE"
)

// AllServiceTypes lists every service type in display order.
var AllServiceTypes = []ServiceType{
	ServiceFlights,
	ServiceStays,
	ServiceCars,
	ServiceSecurity,
	ServiceExperience,
}

// IsValid checks if the service type is one of the known values.
func (s ServiceType) IsValid() bool {
	switch s {
	case ServiceFlights, ServiceStays, ServiceCars, ServiceSecurity, ServiceExperience:
		return true
	default:
		return false
	}
}

// ParseServiceType converts a case-insensitive string to a ServiceType.
// The second return value is false when the string is not a known service type.
func ParseServiceType(s string) (ServiceType, bool) {
	st := ServiceType(strings.ToUpper(strings.TrimSpace(s)))
	return st, st.IsValid()
}
