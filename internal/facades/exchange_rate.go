package facades

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/sbilibin2017/gw-currency-rates/internal/logger"
	"github.com/sbilibin2017/gw-currency-rates/internal/metrics"
	"github.com/sbilibin2017/gw-currency-rates/internal/models"
)

// Default provider endpoints
const (
	DefaultKeyedURL = "https://v6.exchangerate-api.com/v6"
	DefaultFreeURL  = "https://api.exchangerate-api.com/v4/latest"
	DefaultTimeout  = 10 * time.Second
)

// ErrProvider wraps every failure to obtain rates from the external provider.
var ErrProvider = errors.New("exchange rate provider error")

// responseShape identifies which known layout a provider body uses.
type responseShape int

const (
	shapeUnknown         responseShape = iota
	shapeConversionRates               // {"conversion_rates": {...}} from the keyed v6 API
	shapeRates                         // {"rates": {...}} from the free v4 API
)

type providerResponse struct {
	Result          string             `json:"result"`
	ErrorType       string             `json:"error-type"`
	ConversionRates map[string]float64 `json:"conversion_rates"`
	Rates           map[string]float64 `json:"rates"`
}

func (r *providerResponse) shape() responseShape {
	switch {
	case r.ConversionRates != nil:
		return shapeConversionRates
	case r.Rates != nil:
		return shapeRates
	default:
		return shapeUnknown
	}
}

// normalize returns the rate table for base with base forced to 1.0.
func (r *providerResponse) normalize(base string) (models.RateMapping, error) {
	if r.Result == "error" {
		return nil, fmt.Errorf("%w: provider returned error %q", ErrProvider, r.ErrorType)
	}

	var raw map[string]float64
	switch r.shape() {
	case shapeConversionRates:
		raw = r.ConversionRates
	case shapeRates:
		raw = r.Rates
	default:
		return nil, fmt.Errorf("%w: unexpected response format", ErrProvider)
	}

	rates := make(models.RateMapping, len(raw)+1)
	for currency, rate := range raw {
		if rate <= 0 || math.IsInf(rate, 0) || math.IsNaN(rate) {
			logger.Log.Warnw("dropping invalid provider rate", "base", base, "currency", currency, "rate", rate)
			continue
		}
		rates[strings.ToUpper(currency)] = rate
	}
	rates[base] = 1.0
	return rates, nil
}

// ExchangeRateHTTPFacade fetches latest rates from exchangerate-api over HTTP.
type ExchangeRateHTTPFacade struct {
	client   *http.Client
	apiKey   string
	keyedURL string
	freeURL  string
}

// NewExchangeRateHTTPFacade creates a facade. With a non-empty apiKey the keyed
// endpoint is used, otherwise the free one. A nil client gets DefaultTimeout.
func NewExchangeRateHTTPFacade(client *http.Client, apiKey, keyedURL, freeURL string) *ExchangeRateHTTPFacade {
	if client == nil {
		client = &http.Client{Timeout: DefaultTimeout}
	}
	if keyedURL == "" {
		keyedURL = DefaultKeyedURL
	}
	if freeURL == "" {
		freeURL = DefaultFreeURL
	}
	return &ExchangeRateHTTPFacade{
		client:   client,
		apiKey:   apiKey,
		keyedURL: strings.TrimRight(keyedURL, "/"),
		freeURL:  strings.TrimRight(freeURL, "/"),
	}
}

func (f *ExchangeRateHTTPFacade) url(base string) string {
	if f.apiKey != "" {
		return fmt.Sprintf("%s/%s/latest/%s", f.keyedURL, f.apiKey, base)
	}
	return fmt.Sprintf("%s/%s", f.freeURL, base)
}

// redact hides the API key, which is part of the request path.
func (f *ExchangeRateHTTPFacade) redact(msg string) string {
	if f.apiKey == "" {
		return msg
	}
	return strings.ReplaceAll(msg, f.apiKey, "***")
}

// GetExchangeRates fetches all rates for base. Every failure wraps ErrProvider.
func (f *ExchangeRateHTTPFacade) GetExchangeRates(ctx context.Context, base string) (models.RateMapping, error) {
	start := time.Now()
	rates, err := f.getExchangeRates(ctx, base)

	outcome := metrics.OutcomeSuccess
	if err != nil {
		outcome = metrics.OutcomeError
		logger.Log.Errorw("failed to fetch exchange rates", "base", base, "error", err)
	} else {
		logger.Log.Infow("fetched exchange rates", "base", base, "count", len(rates))
	}
	metrics.ObserveProviderRequest(outcome, time.Since(start))

	return rates, err
}

func (f *ExchangeRateHTTPFacade) getExchangeRates(ctx context.Context, base string) (models.RateMapping, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url(base), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", ErrProvider, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrProvider, f.redact(err.Error()))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%w: status %d: %s", ErrProvider, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload providerResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", ErrProvider, err)
	}

	return payload.normalize(base)
}
