package models

import "time"

// ConversionResult is the outcome of a single currency conversion.
type ConversionResult struct {
	Amount          float64
	From            string
	To              string
	ConvertedAmount float64 // rounded to 2 decimal places
	Rate            float64
	Source          RateSource // empty when from == to
	Timestamp       time.Time
}

// ConvertResponse represents a successful conversion response
// swagger:model ConvertResponse
type ConvertResponse struct {
	// example: true
	Success bool `json:"success"`

	// Amount in the source currency
	// example: 100
	Amount float64 `json:"amount"`

	// Source currency
	// example: USD
	From string `json:"from"`

	// Target currency
	// example: EUR
	To string `json:"to"`

	// example: 85
	ConvertedAmount float64 `json:"converted_amount"`

	// example: 0.85
	Rate float64 `json:"rate"`

	// example: 2025-01-01T12:00:00Z
	Timestamp string `json:"timestamp"`
}
