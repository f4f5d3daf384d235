package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-currency-rates/internal/models"
)

func TestHealthHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	for _, status := range []string{models.APIStatusConnected, models.APIStatusFallback} {
		t.Run(status, func(t *testing.T) {
			mockSvc := NewMockHealthChecker(ctrl)
			mockSvc.EXPECT().Health(gomock.Any()).Return(status, 2)

			rr := httptest.NewRecorder()
			NewHealthHandler(mockSvc)(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

			assert.Equal(t, http.StatusOK, rr.Code)

			var resp models.HealthResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.True(t, resp.Success)
			assert.Equal(t, "currency-exchange", resp.Service)
			assert.Equal(t, status, resp.APIStatus)
			assert.Equal(t, 2, resp.CacheEntries)
			assert.NotEmpty(t, resp.Timestamp)
		})
	}
}

func TestGetCurrenciesHandler(t *testing.T) {
	rr := httptest.NewRecorder()
	NewGetCurrenciesHandler()(rr, httptest.NewRequest(http.MethodGet, "/currencies", nil))

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp models.CurrenciesResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, len(models.SupportedCurrencies), resp.Count)
	assert.Contains(t, resp.Currencies, "INR")
	assert.Equal(t, "USD", resp.Currencies[0])
}
