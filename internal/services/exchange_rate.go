package services

//go:generate mockgen -source=exchange_rate.go -destination=exchange_rate_mock.go -package=services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/sbilibin2017/gw-currency-rates/internal/logger"
	"github.com/sbilibin2017/gw-currency-rates/internal/metrics"
	"github.com/sbilibin2017/gw-currency-rates/internal/models"
)

// ExchangeRateReader fetches current exchange rates from an external provider
type ExchangeRateReader interface {
	GetExchangeRates(ctx context.Context, base string) (models.RateMapping, error)
}

// ExchangeRateCache stores rate mappings per base currency with a TTL
type ExchangeRateCache interface {
	Get(ctx context.Context, base string) (models.RateMapping, bool, error)
	Set(ctx context.Context, base string, rates models.RateMapping) error
	Len(ctx context.Context) (int, error)
}

// FallbackRateReader serves static rates when the provider is unavailable
type FallbackRateReader interface {
	Lookup(base string) models.RateMapping
}

// RatePublisher announces freshly fetched rates
type RatePublisher interface {
	Publish(ctx context.Context, snapshot models.RateSnapshot) error
}

// Error variables
var (
	ErrValidation      = errors.New("validation failed")
	ErrInvalidCurrency = fmt.Errorf("%w: invalid currency code", ErrValidation)
	ErrInvalidAmount   = fmt.Errorf("%w: amount must be greater than 0", ErrValidation)
	ErrUnavailableRate = errors.New("conversion rate not available")
)

// probeCurrency is the base used by the health probe.
const probeCurrency = models.USD

// ExchangeRateService resolves rates through cache, provider and fallback, in that order.
type ExchangeRateService struct {
	reader    ExchangeRateReader
	cache     ExchangeRateCache
	fallback  FallbackRateReader
	publisher RatePublisher
	group     singleflight.Group
	now       func() time.Time
}

// NewExchangeRateService creates a new service instance. publisher may be nil.
func NewExchangeRateService(
	reader ExchangeRateReader,
	cache ExchangeRateCache,
	fallback FallbackRateReader,
	publisher RatePublisher,
) *ExchangeRateService {
	return &ExchangeRateService{
		reader:    reader,
		cache:     cache,
		fallback:  fallback,
		publisher: publisher,
		now:       time.Now,
	}
}

// Resolve returns the rate mapping for base and where it came from.
// It fails only on a malformed code; provider failures degrade to the fallback table.
func (svc *ExchangeRateService) Resolve(ctx context.Context, base string) (models.RateMapping, models.RateSource, error) {
	base = models.NormalizeCurrency(base)
	if !models.IsValidCurrency(base) {
		return nil, "", fmt.Errorf("%w %q", ErrInvalidCurrency, base)
	}

	rates, ok, err := svc.cache.Get(ctx, base)
	if err != nil {
		logger.Log.Warnw("cache read failed, treating as miss", "base", base, "error", err)
	} else if ok {
		metrics.ObserveResolution(models.RateSourceCached)
		return rates, models.RateSourceCached, nil
	}

	// concurrent misses for the same base share one provider call, detached
	// from the caller that started it; the client timeout still bounds it
	fetchCtx := context.WithoutCancel(ctx)
	v, err, shared := svc.group.Do(base, func() (interface{}, error) {
		return svc.fetch(fetchCtx, base)
	})
	if err != nil {
		logger.Log.Errorw("provider fetch failed, using fallback rates", "base", base, "error", err)
		metrics.ObserveResolution(models.RateSourceFallback)
		return svc.fallback.Lookup(base), models.RateSourceFallback, nil
	}

	rates = v.(models.RateMapping)
	if shared {
		rates = rates.Clone()
	}
	metrics.ObserveResolution(models.RateSourceFetched)
	return rates, models.RateSourceFetched, nil
}

// fetch calls the provider and populates the cache on success.
func (svc *ExchangeRateService) fetch(ctx context.Context, base string) (models.RateMapping, error) {
	rates, err := svc.reader.GetExchangeRates(ctx, base)
	if err != nil {
		return nil, err
	}

	if err := svc.cache.Set(ctx, base, rates); err != nil {
		logger.Log.Errorw("failed to cache rates", "base", base, "error", err)
	}

	if svc.publisher != nil {
		snapshot := models.RateSnapshot{Base: base, Rates: rates.Clone(), FetchedAt: svc.now().UTC()}
		if err := svc.publisher.Publish(ctx, snapshot); err != nil {
			logger.Log.Errorw("failed to publish rates", "base", base, "error", err)
		}
	}

	return rates, nil
}

// Health probes the provider with a live USD fetch, bypassing the cache,
// and reports the number of cached base currencies.
func (svc *ExchangeRateService) Health(ctx context.Context) (apiStatus string, cacheEntries int) {
	apiStatus = models.APIStatusConnected
	if _, err := svc.reader.GetExchangeRates(ctx, probeCurrency); err != nil {
		logger.Log.Warnw("API health check failed", "error", err)
		apiStatus = models.APIStatusFallback
	}

	n, err := svc.cache.Len(ctx)
	if err != nil {
		logger.Log.Warnw("failed to count cache entries", "error", err)
	}
	return apiStatus, n
}
