package handlers

import (
	"net/http"

	"github.com/sbilibin2017/gw-currency-rates/internal/models"
)

// NewGetCurrenciesHandler returns the curated list of supported currency codes
// @Summary List supported currencies
// @Tags exchange
// @Produce json
// @Success 200 {object} models.CurrenciesResponse
// @Router /currencies [get]
func NewGetCurrenciesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, models.CurrenciesResponse{
			Success:    true,
			Currencies: models.SupportedCurrencies,
			Count:      len(models.SupportedCurrencies),
		})
	}
}
