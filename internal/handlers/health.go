package handlers

//go:generate mockgen -source=health.go -destination=health_mock.go -package=handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/sbilibin2017/gw-currency-rates/internal/models"
)

const serviceName = "currency-exchange"

// HealthChecker defines the interface that the service must implement.
type HealthChecker interface {
	Health(ctx context.Context) (apiStatus string, cacheEntries int)
}

// NewHealthHandler returns an HTTP handler reporting provider connectivity.
// @Summary Health check
// @Description Probes the rate provider with a live USD fetch
// @Tags health
// @Produce json
// @Success 200 {object} models.HealthResponse
// @Router /health [get]
func NewHealthHandler(svc HealthChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status, entries := svc.Health(r.Context())

		writeJSON(w, http.StatusOK, models.HealthResponse{
			Success:      true,
			Service:      serviceName,
			APIStatus:    status,
			CacheEntries: entries,
			Timestamp:    timestamp(time.Now()),
		})
	}
}
