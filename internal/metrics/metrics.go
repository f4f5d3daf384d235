package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/sbilibin2017/gw-currency-rates/internal/models"
)

// Provider request outcomes
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

var (
	// RateResolutionsTotal counts resolved rate mappings by where they came from.
	RateResolutionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fx_rate_resolutions_total",
			Help: "Resolved rate mappings by source (cached, fetched, fallback)",
		},
		[]string{"source"},
	)

	// ProviderRequestDuration tracks outbound calls to the rate provider.
	ProviderRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fx_provider_request_duration_seconds",
			Help:    "Duration of rate provider requests",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"outcome"},
	)
)

// ObserveResolution records one Resolve outcome.
func ObserveResolution(source models.RateSource) {
	RateResolutionsTotal.WithLabelValues(string(source)).Inc()
}

// ObserveProviderRequest records one provider round trip.
func ObserveProviderRequest(outcome string, d time.Duration) {
	ProviderRequestDuration.WithLabelValues(outcome).Observe(d.Seconds())
}
