package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/sbilibin2017/gw-currency-rates/internal/logger"
	"github.com/sbilibin2017/gw-currency-rates/internal/models"
)

// Error messages returned to clients
const (
	msgInvalidCurrency   = "Invalid currency code. Please provide a 3-letter currency code."
	msgInvalidCurrencies = "Invalid currency codes. Please provide 3-letter currency codes."
	msgMissingParams     = "Missing required parameters: amount, from, to"
	msgInvalidAmount     = "Amount must be greater than 0"
	msgFallbackWarning   = "Using fallback rates due to API unavailability"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Errorw("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, models.ErrorResponse{
		Success: false,
		Error:   msg,
	})
}

func internalError(w http.ResponseWriter, err error) {
	logger.Log.Errorw("internal server error", "err", err)
	writeError(w, http.StatusInternalServerError, "Internal server error: "+err.Error())
}

func timestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
