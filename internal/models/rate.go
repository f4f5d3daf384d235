package models

import "time"

// RateMapping maps currency codes to rates relative to one implicit base currency.
type RateMapping map[string]float64

// Clone returns an independent copy of the mapping.
func (m RateMapping) Clone() RateMapping {
	if m == nil {
		return nil
	}
	out := make(RateMapping, len(m))
	for currency, rate := range m {
		out[currency] = rate
	}
	return out
}

// RateSource tells where a resolved mapping came from.
type RateSource string

const (
	RateSourceCached   RateSource = "cached"
	RateSourceFetched  RateSource = "fetched"
	RateSourceFallback RateSource = "fallback"
)

// Provider connectivity reported by /health
const (
	APIStatusConnected = "connected"
	APIStatusFallback  = "fallback"
)

// RateSnapshot is a freshly fetched mapping published to downstream consumers.
type RateSnapshot struct {
	Base      string      `json:"base"`
	Rates     RateMapping `json:"rates"`
	FetchedAt time.Time   `json:"fetched_at"`
}

// RatesResponse represents a successful response with exchange rates
// swagger:model RatesResponse
type RatesResponse struct {
	// example: true
	Success bool `json:"success"`

	// Base currency
	// example: USD
	Base string `json:"base"`

	// Rates relative to the base currency
	Rates RateMapping `json:"rates"`

	// Served from the in-memory cache
	// example: false
	Cached bool `json:"cached"`

	// Served from the static fallback table
	// example: false
	Fallback bool `json:"fallback,omitempty"`

	// example: Using fallback rates due to API unavailability
	Warning string `json:"warning,omitempty"`

	// example: 2025-01-01T12:00:00Z
	Timestamp string `json:"timestamp"`
}

// CurrenciesResponse represents the list of supported currency codes
// swagger:model CurrenciesResponse
type CurrenciesResponse struct {
	Success    bool     `json:"success"`
	Currencies []string `json:"currencies"`
	Count      int      `json:"count"`
}

// HealthResponse represents the service health report
// swagger:model HealthResponse
type HealthResponse struct {
	Success bool `json:"success"`

	// example: currency-exchange
	Service string `json:"service"`

	// Live provider probe result
	// example: connected
	APIStatus string `json:"api_status"`

	// Number of base currencies held in the rate cache
	// example: 3
	CacheEntries int `json:"cache_entries"`

	Timestamp string `json:"timestamp"`
}

// ErrorResponse represents an error returned by any endpoint
// swagger:model ErrorResponse
type ErrorResponse struct {
	// example: false
	Success bool `json:"success"`

	// Error message
	// example: Invalid currency code. Please provide a 3-letter currency code.
	Error string `json:"error"`
}
