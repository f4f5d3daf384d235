package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-currency-rates/internal/logger"
	"github.com/sbilibin2017/gw-currency-rates/internal/models"
)

const rateKeyPrefix = "exchange_rates:"

// ExchangeRateCacheRepository provides cached exchange rates using Redis
type ExchangeRateCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached rates
}

// NewExchangeRateCacheRepository creates a new repository instance with the given TTL
func NewExchangeRateCacheRepository(client *redis.Client, expiration time.Duration) *ExchangeRateCacheRepository {
	if expiration <= 0 {
		expiration = DefaultRateTTL
	}
	return &ExchangeRateCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func rateKey(base string) string {
	return rateKeyPrefix + base
}

// Get fetches the cached rate mapping for base. A missing or expired key is a miss, not an error.
func (r *ExchangeRateCacheRepository) Get(ctx context.Context, base string) (models.RateMapping, bool, error) {
	key := rateKey(base)

	val, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		logger.Log.Errorw("failed to read cached rates", "key", key, "error", err)
		return nil, false, err
	}

	var rates models.RateMapping
	if err := json.Unmarshal(val, &rates); err != nil {
		logger.Log.Errorw("failed to decode cached rates", "key", key, "error", err)
		return nil, false, fmt.Errorf("decode cached rates for %s: %w", base, err)
	}

	logger.Log.Debugw("cache hit", "key", key, "count", len(rates))
	return rates, true, nil
}

// Set caches the rate mapping for base in Redis with expiration
func (r *ExchangeRateCacheRepository) Set(ctx context.Context, base string, rates models.RateMapping) error {
	key := rateKey(base)

	payload, err := json.Marshal(rates)
	if err != nil {
		return fmt.Errorf("encode rates for %s: %w", base, err)
	}

	err = r.client.Set(ctx, key, payload, r.exp).Err()
	logger.Log.Debugw("cached rates",
		"key", key,
		"count", len(rates),
		"error", err,
	)
	return err
}

// Len counts cached base currencies.
func (r *ExchangeRateCacheRepository) Len(ctx context.Context) (int, error) {
	n := 0
	iter := r.client.Scan(ctx, 0, rateKeyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		n++
	}
	if err := iter.Err(); err != nil {
		return 0, err
	}
	return n, nil
}
