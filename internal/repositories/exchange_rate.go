package repositories

import (
	"context"
	"sync"
	"time"

	"github.com/sbilibin2017/gw-currency-rates/internal/logger"
	"github.com/sbilibin2017/gw-currency-rates/internal/models"
)

// DefaultRateTTL is how long a fetched rate mapping stays valid.
const DefaultRateTTL = 30 * time.Minute

type rateEntry struct {
	rates     models.RateMapping
	expiresAt time.Time
}

// ExchangeRateMemoryRepository keeps the latest rate mapping per base currency in memory.
// Entries are replaced whole under the write lock, so readers never see a partial mapping.
type ExchangeRateMemoryRepository struct {
	mu      sync.RWMutex
	entries map[string]rateEntry
	exp     time.Duration
	now     func() time.Time
}

// MemoryOption configures an ExchangeRateMemoryRepository.
type MemoryOption func(*ExchangeRateMemoryRepository)

// WithClock overrides the time source used for expiry checks.
func WithClock(now func() time.Time) MemoryOption {
	return func(r *ExchangeRateMemoryRepository) {
		r.now = now
	}
}

// NewExchangeRateMemoryRepository creates an empty cache; a non-positive expiration falls back to DefaultRateTTL.
func NewExchangeRateMemoryRepository(expiration time.Duration, opts ...MemoryOption) *ExchangeRateMemoryRepository {
	if expiration <= 0 {
		expiration = DefaultRateTTL
	}
	r := &ExchangeRateMemoryRepository{
		entries: make(map[string]rateEntry),
		exp:     expiration,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Get returns a copy of the cached mapping for base while it has not expired.
func (r *ExchangeRateMemoryRepository) Get(ctx context.Context, base string) (models.RateMapping, bool, error) {
	r.mu.RLock()
	entry, ok := r.entries[base]
	r.mu.RUnlock()

	if !ok || !r.now().Before(entry.expiresAt) {
		return nil, false, nil
	}

	logger.Log.Debugw("cache hit", "base", base, "expires_at", entry.expiresAt)
	return entry.rates.Clone(), true, nil
}

// Set stores rates for base until now+TTL, overwriting any previous entry.
func (r *ExchangeRateMemoryRepository) Set(ctx context.Context, base string, rates models.RateMapping) error {
	entry := rateEntry{
		rates:     rates.Clone(),
		expiresAt: r.now().Add(r.exp),
	}

	r.mu.Lock()
	r.entries[base] = entry
	r.mu.Unlock()

	logger.Log.Debugw("cached rates", "base", base, "count", len(rates), "expires_at", entry.expiresAt)
	return nil
}

// Len returns the number of stored entries, expired ones included.
func (r *ExchangeRateMemoryRepository) Len(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries), nil
}
