package handlers

//go:generate mockgen -source=convert.go -destination=convert_mock.go -package=handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/sbilibin2017/gw-currency-rates/internal/models"
	"github.com/sbilibin2017/gw-currency-rates/internal/services"
)

// Converter defines the interface that the service must implement.
type Converter interface {
	Convert(ctx context.Context, amount float64, from, to string) (*models.ConversionResult, error)
}

// NewConvertHandler returns an HTTP handler for converting an amount between currencies.
// @Summary Convert currency
// @Description Converts amount from one currency to another; the result is rounded to 2 decimal places
// @Tags exchange
// @Produce json
// @Param amount query number true "Amount to convert"
// @Param from query string true "Source currency"
// @Param to query string true "Target currency"
// @Success 200 {object} models.ConvertResponse
// @Failure 400 {object} models.ErrorResponse "Invalid parameters or rate not available"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /convert [get]
func NewConvertHandler(svc Converter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		from := models.NormalizeCurrency(q.Get("from"))
		to := models.NormalizeCurrency(q.Get("to"))

		amount, err := strconv.ParseFloat(q.Get("amount"), 64)
		if err != nil || from == "" || to == "" {
			writeError(w, http.StatusBadRequest, msgMissingParams)
			return
		}

		result, err := svc.Convert(r.Context(), amount, from, to)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidCurrency):
				writeError(w, http.StatusBadRequest, msgInvalidCurrencies)
			case errors.Is(err, services.ErrInvalidAmount):
				writeError(w, http.StatusBadRequest, msgInvalidAmount)
			case errors.Is(err, services.ErrUnavailableRate):
				writeError(w, http.StatusBadRequest, fmt.Sprintf("Conversion rate not available for %s", to))
			default:
				internalError(w, err)
			}
			return
		}

		writeJSON(w, http.StatusOK, models.ConvertResponse{
			Success:         true,
			Amount:          result.Amount,
			From:            result.From,
			To:              result.To,
			ConvertedAmount: result.ConvertedAmount,
			Rate:            result.Rate,
			Timestamp:       timestamp(result.Timestamp),
		})
	}
}
