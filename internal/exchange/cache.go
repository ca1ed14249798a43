package exchange

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

type cachedRateEntry struct {
	Rate      decimal.Decimal
	RateDate  time.Time
	ExpiresAt time.Time
}

// CachedConverter wraps a Converter with in-memory TTL caching.
// Cache entries are keyed by normalized "FROM->TO" currency pair.
type CachedConverter struct {
	inner Converter
	ttl   time.Duration

	mu    sync.Mutex
	rates map[string]cachedRateEntry
}

// NewCachedConverter returns a converter that caches exchange rates in memory.
func NewCachedConverter(inner Converter, ttl time.Duration) *CachedConverter {
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &CachedConverter{
		inner: inner,
		ttl:   ttl,
		rates: make(map[string]cachedRateEntry),
	}
}

func normalizePair(fromCurrency, toCurrency string) string {
	from := strings.ToUpper(strings.TrimSpace(fromCurrency))
	to := strings.ToUpper(strings.TrimSpace(toCurrency))
	return from + "->" + to
}

// Convert returns converted amount using a cached rate when available.
func (c *CachedConverter) Convert(
	ctx context.Context,
	amount decimal.Decimal,
	fromCurrency, toCurrency string,
) (ConversionResult, error) {
	if c.inner == nil {
		return ConversionResult{}, errors.New("inner converter is required")
	}

	key := normalizePair(fromCurrency, toCurrency)
	now := time.Now()

	c.mu.Lock()
	entry, ok := c.rates[key]
	if ok && now.Before(entry.ExpiresAt) {
		c.mu.Unlock()
		return ConversionResult{
			Amount:   amount.Mul(entry.Rate).Round(2),
			Rate:     entry.Rate,
			RateDate: entry.RateDate,
		}, nil
	}
	if ok {
		delete(c.rates, key)
	}
	c.mu.Unlock()

	result, err := c.inner.Convert(ctx, amount, fromCurrency, toCurrency)
	if err != nil {
		return ConversionResult{}, err
	}

	c.mu.Lock()
	c.rates[key] = cachedRateEntry{
		Rate:      result.Rate,
		RateDate:  result.RateDate,
		ExpiresAt: now.Add(c.ttl),
	}
	c.mu.Unlock()

	return result, nil
}
