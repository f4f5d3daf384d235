package repositories

import (
	"github.com/sbilibin2017/gw-currency-rates/internal/logger"
	"github.com/sbilibin2017/gw-currency-rates/internal/models"
)

// fallbackRates is the curated offline table, keyed by base currency.
var fallbackRates = map[string]models.RateMapping{
	models.USD: {"EUR": 0.85, "GBP": 0.73, "INR": 83.12, "JPY": 110.0, "CNY": 7.23, "AUD": 1.52, "CAD": 1.36, "CHF": 0.92, "SEK": 10.87, "NOK": 10.72, "DKK": 6.34, "ZAR": 18.85, "SGD": 1.35, "HKD": 7.85, "KRW": 1342.0, "BRL": 5.17, "MXN": 17.12, "AED": 3.67, "SAR": 3.75, "NGN": 775.0, "NZD": 1.67},
	models.EUR: {"USD": 1.18, "GBP": 0.86, "INR": 97.84, "JPY": 129.53, "CNY": 8.52, "AUD": 1.79, "CAD": 1.60, "CHF": 1.08, "SEK": 12.80, "NOK": 12.63, "DKK": 7.46, "ZAR": 22.22, "SGD": 1.59, "HKD": 9.25, "KRW": 1580.36, "BRL": 6.09, "MXN": 20.18, "AED": 4.33, "SAR": 4.42, "NGN": 913.0, "NZD": 1.97},
	models.GBP: {"USD": 1.37, "EUR": 1.16, "INR": 113.80, "JPY": 150.70, "CNY": 9.91, "AUD": 2.08, "CAD": 1.86, "CHF": 1.26, "SEK": 14.89, "NOK": 14.69, "DKK": 8.68, "ZAR": 25.84, "SGD": 1.85, "HKD": 10.76, "KRW": 1838.94, "BRL": 7.08, "MXN": 23.46, "AED": 5.03, "SAR": 5.14, "NGN": 1062.5, "NZD": 2.29},
}

// basicRates is served for bases without a curated row. The values are
// USD-relative approximations regardless of the requested base.
var basicRates = models.RateMapping{
	models.USD: 1.0,
	models.EUR: 0.85,
	models.GBP: 0.73,
}

// FallbackRateRepository serves approximate rates when the provider is unreachable.
type FallbackRateRepository struct {
	table map[string]models.RateMapping
}

// NewFallbackRateRepository returns a repository over the built-in table.
func NewFallbackRateRepository() *FallbackRateRepository {
	return &FallbackRateRepository{table: fallbackRates}
}

// Lookup never fails: it returns a fresh mapping with base forced to 1.0.
func (r *FallbackRateRepository) Lookup(base string) models.RateMapping {
	rates, ok := r.table[base]
	if !ok {
		rates = basicRates
	}

	logger.Log.Warnw("using fallback rates", "base", base, "curated", ok)

	out := rates.Clone()
	out[base] = 1.0
	return out
}

