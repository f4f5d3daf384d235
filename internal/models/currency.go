package models

import (
	"strings"
	"unicode/utf8"
)

// Currency codes with curated fallback rates
const (
	USD = "USD"
	EUR = "EUR"
	GBP = "GBP"
)

// CurrencyCodeLength is the only shape check applied to currency codes.
const CurrencyCodeLength = 3

// SupportedCurrencies is the curated list served by /currencies.
var SupportedCurrencies = []string{
	"USD", "EUR", "GBP", "INR", "JPY", "CNY", "AUD", "CAD", "NZD",
	"CHF", "SEK", "NOK", "DKK", "ZAR", "SGD", "HKD", "KRW", "BRL",
	"MXN", "AED", "SAR", "NGN", "RUB", "KES", "GHS", "EGP", "MAD",
}

// NormalizeCurrency trims and upper-cases a currency code.
func NormalizeCurrency(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// IsValidCurrency reports whether an already normalized code has three characters.
func IsValidCurrency(code string) bool {
	return utf8.RuneCountInString(code) == CurrencyCodeLength
}
