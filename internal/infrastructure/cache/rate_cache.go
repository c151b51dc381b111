package cache

import (
	"sync"
	"time"

	"github.com/damon-houk/exchange-rate-converter/internal/domain/entity"
)

// RateCache provides a thread-safe in-memory cache of converted exchange
// rates, keyed by currency and date string.
type RateCache struct {
	entries    map[string]cacheEntry
	expiration time.Duration
	mu         sync.RWMutex
}

type cacheEntry struct {
	rate    *entity.ExchangeRate
	addedAt time.Time
}

// NewRateCache creates a new rate cache
func NewRateCache() *RateCache {
	return &RateCache{
		entries:    make(map[string]cacheEntry),
		expiration: 24 * time.Hour,
	}
}

func cacheKey(currency, date string) string {
	return currency + ":" + date
}

// Get retrieves a rate from the cache if present and not expired
func (c *RateCache) Get(currency, date string) *entity.ExchangeRate {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, exists := c.entries[cacheKey(currency, date)]
	if !exists || time.Since(entry.addedAt) > c.expiration {
		return nil
	}

	return entry.rate
}

// Put stores a rate in the cache
func (c *RateCache) Put(rate *entity.ExchangeRate) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[cacheKey(rate.Currency, rate.Date)] = cacheEntry{
		rate:    rate,
		addedAt: time.Now(),
	}
}

// SetExpiration sets the cache expiration duration
func (c *RateCache) SetExpiration(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.expiration = d
}

// Size returns the number of cached entries
func (c *RateCache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}

// Clear removes all entries from the cache
func (c *RateCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]cacheEntry)
}
