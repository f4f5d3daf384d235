package facades

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-currency-rates/internal/models"
)

func TestGetExchangeRates(t *testing.T) {
	tests := []struct {
		name      string
		apiKey    string
		base      string
		status    int
		body      string
		wantPath  string
		wantRates models.RateMapping
		wantErr   bool
	}{
		{
			name:      "free endpoint with rates shape",
			base:      "USD",
			status:    http.StatusOK,
			body:      `{"base":"USD","rates":{"EUR":0.9,"GBP":0.8}}`,
			wantPath:  "/free/USD",
			wantRates: models.RateMapping{"USD": 1.0, "EUR": 0.9, "GBP": 0.8},
		},
		{
			name:      "keyed endpoint with conversion_rates shape",
			apiKey:    "secret",
			base:      "EUR",
			status:    http.StatusOK,
			body:      `{"result":"success","base_code":"EUR","conversion_rates":{"EUR":1,"USD":1.1}}`,
			wantPath:  "/v6/secret/latest/EUR",
			wantRates: models.RateMapping{"EUR": 1.0, "USD": 1.1},
		},
		{
			name:      "base rate is injected even if upstream disagrees",
			base:      "GBP",
			status:    http.StatusOK,
			body:      `{"rates":{"GBP":0.99,"USD":1.3}}`,
			wantPath:  "/free/GBP",
			wantRates: models.RateMapping{"GBP": 1.0, "USD": 1.3},
		},
		{
			name:      "conversion_rates wins over rates",
			base:      "USD",
			status:    http.StatusOK,
			body:      `{"conversion_rates":{"EUR":0.9},"rates":{"EUR":0.1}}`,
			wantPath:  "/free/USD",
			wantRates: models.RateMapping{"USD": 1.0, "EUR": 0.9},
		},
		{
			name:      "non-positive rates are dropped",
			base:      "USD",
			status:    http.StatusOK,
			body:      `{"rates":{"EUR":-0.9,"GBP":0,"JPY":150.5}}`,
			wantPath:  "/free/USD",
			wantRates: models.RateMapping{"USD": 1.0, "JPY": 150.5},
		},
		{
			name:      "non-positive conversion_rates are dropped",
			apiKey:    "secret",
			base:      "EUR",
			status:    http.StatusOK,
			body:      `{"result":"success","conversion_rates":{"USD":-1.1,"CHF":0.95}}`,
			wantPath:  "/v6/secret/latest/EUR",
			wantRates: models.RateMapping{"EUR": 1.0, "CHF": 0.95},
		},
		{
			name:     "unknown shape",
			base:     "USD",
			status:   http.StatusOK,
			body:     `{"data":{"EUR":0.9}}`,
			wantPath: "/free/USD",
			wantErr:  true,
		},
		{
			name:     "provider result error",
			apiKey:   "secret",
			base:     "USD",
			status:   http.StatusOK,
			body:     `{"result":"error","error-type":"invalid-key"}`,
			wantPath: "/v6/secret/latest/USD",
			wantErr:  true,
		},
		{
			name:     "non-success status",
			base:     "USD",
			status:   http.StatusServiceUnavailable,
			body:     `{"rates":{"EUR":0.9}}`,
			wantPath: "/free/USD",
			wantErr:  true,
		},
		{
			name:     "invalid json",
			base:     "USD",
			status:   http.StatusOK,
			body:     `{not json`,
			wantPath: "/free/USD",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotPath string
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotPath = r.URL.Path
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			facade := NewExchangeRateHTTPFacade(srv.Client(), tt.apiKey, srv.URL+"/v6", srv.URL+"/free/")

			rates, err := facade.GetExchangeRates(context.Background(), tt.base)
			assert.Equal(t, tt.wantPath, gotPath)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrProvider))
				assert.Nil(t, rates)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantRates, rates)
		})
	}
}

func TestGetExchangeRates_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	client := &http.Client{Timeout: 50 * time.Millisecond}
	facade := NewExchangeRateHTTPFacade(client, "", "", srv.URL)

	rates, err := facade.GetExchangeRates(context.Background(), "USD")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrProvider)
	assert.Nil(t, rates)
}

func TestGetExchangeRates_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	facade := NewExchangeRateHTTPFacade(nil, "topsecret", url, "")

	_, err := facade.GetExchangeRates(context.Background(), "USD")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrProvider)
	assert.NotContains(t, err.Error(), "topsecret")
}

func TestNewExchangeRateHTTPFacade_Defaults(t *testing.T) {
	facade := NewExchangeRateHTTPFacade(nil, "", "", "")
	assert.Equal(t, DefaultTimeout, facade.client.Timeout)
	assert.Equal(t, DefaultFreeURL+"/USD", facade.url("USD"))

	keyed := NewExchangeRateHTTPFacade(nil, "k", "", "")
	assert.Equal(t, DefaultKeyedURL+"/k/latest/USD", keyed.url("USD"))
}
