package handlers

//go:generate mockgen -source=rates.go -destination=rates_mock.go -package=handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/sbilibin2017/gw-currency-rates/internal/models"
	"github.com/sbilibin2017/gw-currency-rates/internal/services"
)

// RatesResolver defines the interface that the service must implement.
type RatesResolver interface {
	Resolve(ctx context.Context, base string) (models.RateMapping, models.RateSource, error)
}

// NewGetRatesHandler returns an HTTP handler for fetching exchange rates of a base currency.
// @Summary Get exchange rates
// @Description Returns rates for the base currency from cache, the live provider, or the fallback table
// @Tags exchange
// @Produce json
// @Param base query string false "Base currency" default(USD)
// @Success 200 {object} models.RatesResponse
// @Failure 400 {object} models.ErrorResponse "Invalid currency code"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /rates [get]
func NewGetRatesHandler(svc RatesResolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		base := models.NormalizeCurrency(r.URL.Query().Get("base"))
		if base == "" {
			base = models.USD
		}

		rates, source, err := svc.Resolve(r.Context(), base)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrValidation):
				writeError(w, http.StatusBadRequest, msgInvalidCurrency)
			default:
				internalError(w, err)
			}
			return
		}

		resp := models.RatesResponse{
			Success:   true,
			Base:      base,
			Rates:     rates,
			Cached:    source == models.RateSourceCached,
			Timestamp: timestamp(time.Now()),
		}
		if source == models.RateSourceFallback {
			resp.Fallback = true
			resp.Warning = msgFallbackWarning
		}

		writeJSON(w, http.StatusOK, resp)
	}
}
