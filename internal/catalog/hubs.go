package catalog

import "strings"

// Hub is a curated trending destination.
type Hub struct {
	Code     string
	ImageURL string
}

var trendingHubs = []Hub{
	{Code: "LHR", ImageURL: "https://images.unsplash.com/photo-1513635269975-59663e0ac1ad?ixlib=rb-4.0.3&auto=format&fit=crop&w=1000&q=80"},
	{Code: "CDG", ImageURL: "https://images.unsplash.com/photo-1502602898657-3e91760cbb34?ixlib=rb-4.0.3&auto=format&fit=crop&w=1000&q=80"},
	{Code: "DXB", ImageURL: "https://images.unsplash.com/photo-1512453979798-5ea266f8880c?ixlib=rb-4.0.3&auto=format&fit=crop&w=1000&q=80"},
	{Code: "HND", ImageURL: "https://images.unsplash.com/photo-1540959733332-eab4deabeeaf?ixlib=rb-4.0.3&auto=format&fit=crop&w=1000&q=80"},
	{Code: "SIN", ImageURL: "https://images.unsplash.com/photo-1525625293386-3f8f99389edd?ixlib=rb-4.0.3&auto=format&fit=crop&w=1000&q=80"},
	{Code: "LAX", ImageURL: "https://images.unsplash.com/photo-1534190760961-74e8c1c5c3da?ixlib=rb-4.0.3&auto=format&fit=crop&w=1000&q=80"},
	{Code: "JFK", ImageURL: "https://images.unsplash.com/photo-1496442226666-8d4d0e62e6e9?ixlib=rb-4.0.3&auto=format&fit=crop&w=1000&q=80"},
}

// TrendingHubs returns up to limit hubs in curated order, skipping origin.
func TrendingHubs(origin string, limit int) []Hub {
	origin = strings.ToUpper(strings.TrimSpace(origin))
	out := make([]Hub, 0, limit)
	for _, h := range trendingHubs {
		if len(out) == limit {
			break
		}
		if h.Code == origin {
			continue
		}
		out = append(out, h)
	}
	return out
}
