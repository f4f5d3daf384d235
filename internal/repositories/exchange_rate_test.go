package repositories

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-currency-rates/internal/models"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func TestExchangeRateMemoryRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("Get on empty cache is a miss", func(t *testing.T) {
		repo := NewExchangeRateMemoryRepository(DefaultRateTTL)

		rates, ok, err := repo.Get(ctx, "USD")
		assert.NoError(t, err)
		assert.False(t, ok)
		assert.Nil(t, rates)
	})

	t.Run("Set and Get rates", func(t *testing.T) {
		repo := NewExchangeRateMemoryRepository(DefaultRateTTL)
		want := models.RateMapping{"USD": 1.0, "EUR": 0.9}

		require.NoError(t, repo.Set(ctx, "USD", want))

		got, ok, err := repo.Get(ctx, "USD")
		assert.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, want, got)
	})

	t.Run("stored mapping is isolated from callers", func(t *testing.T) {
		repo := NewExchangeRateMemoryRepository(DefaultRateTTL)
		in := models.RateMapping{"USD": 1.0, "EUR": 0.9}
		require.NoError(t, repo.Set(ctx, "USD", in))

		in["EUR"] = 42
		got, _, _ := repo.Get(ctx, "USD")
		got["GBP"] = 7

		again, _, _ := repo.Get(ctx, "USD")
		assert.Equal(t, models.RateMapping{"USD": 1.0, "EUR": 0.9}, again)
	})

	t.Run("TTL boundary", func(t *testing.T) {
		clock := &fakeClock{now: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)}
		repo := NewExchangeRateMemoryRepository(30*time.Minute, WithClock(clock.Now))

		require.NoError(t, repo.Set(ctx, "EUR", models.RateMapping{"EUR": 1.0}))

		clock.Advance(30*time.Minute - time.Nanosecond)
		_, ok, _ := repo.Get(ctx, "EUR")
		assert.True(t, ok, "entry must be valid just before expiry")

		clock.Advance(time.Nanosecond)
		_, ok, _ = repo.Get(ctx, "EUR")
		assert.False(t, ok, "entry must be a miss exactly at expiry")

		n, err := repo.Len(ctx)
		assert.NoError(t, err)
		assert.Equal(t, 1, n)
	})

	t.Run("Set replaces without merging", func(t *testing.T) {
		repo := NewExchangeRateMemoryRepository(DefaultRateTTL)
		require.NoError(t, repo.Set(ctx, "USD", models.RateMapping{"USD": 1.0, "EUR": 0.9}))
		require.NoError(t, repo.Set(ctx, "USD", models.RateMapping{"USD": 1.0, "JPY": 150}))

		got, ok, _ := repo.Get(ctx, "USD")
		assert.True(t, ok)
		assert.Equal(t, models.RateMapping{"USD": 1.0, "JPY": 150}, got)
	})

	t.Run("non-positive expiration uses default", func(t *testing.T) {
		repo := NewExchangeRateMemoryRepository(0)
		assert.Equal(t, DefaultRateTTL, repo.exp)
	})

	t.Run("concurrent Set and Get never observe partial mappings", func(t *testing.T) {
		repo := NewExchangeRateMemoryRepository(DefaultRateTTL)
		var wg sync.WaitGroup

		for i := 0; i < 8; i++ {
			wg.Add(2)
			go func(i int) {
				defer wg.Done()
				for j := 0; j < 200; j++ {
					rate := float64(i*1000 + j)
					_ = repo.Set(ctx, "USD", models.RateMapping{"USD": 1.0, "A": rate, "B": rate})
				}
			}(i)
			go func() {
				defer wg.Done()
				for j := 0; j < 200; j++ {
					got, ok, _ := repo.Get(ctx, "USD")
					if ok {
						assert.Equal(t, got["A"], got["B"])
						assert.Len(t, got, 3)
					}
				}
			}()
		}
		wg.Wait()

		n, _ := repo.Len(ctx)
		assert.Equal(t, 1, n)
	})

	t.Run("Len counts distinct bases", func(t *testing.T) {
		repo := NewExchangeRateMemoryRepository(DefaultRateTTL)
		for i, base := range []string{"USD", "EUR", "GBP", "USD"} {
			require.NoError(t, repo.Set(ctx, base, models.RateMapping{base: 1.0, "X": float64(i)}))
		}
		n, err := repo.Len(ctx)
		assert.NoError(t, err)
		assert.Equal(t, 3, n, fmt.Sprintf("unexpected entries: %d", n))
	})
}
