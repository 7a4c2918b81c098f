package cache

import (
	"fmt"
	"strconv"

	"fxswap/internal/domain"

	"github.com/dgraph-io/ristretto"
)

// RistrettoFormatCache caches formatted money strings keyed by currency code
// and amount in minor units, so repeated quotes for the same amount skip the
// formatter.
type RistrettoFormatCache struct {
	cache *ristretto.Cache
}

func NewFormatCache(maxItems int64) (*RistrettoFormatCache, error) {
	c, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 10 * maxItems,
		MaxCost:     maxItems,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("create format cache failed: %w", err)
	}
	return &RistrettoFormatCache{cache: c}, nil
}

func (c *RistrettoFormatCache) Get(code domain.Code, minorUnits int64) (string, bool) {
	if v, ok := c.cache.Get(toKey(code, minorUnits)); ok {
		s, ok := v.(string)
		return s, ok
	}
	return "", false
}

func (c *RistrettoFormatCache) Set(code domain.Code, minorUnits int64, formatted string) {
	c.cache.Set(toKey(code, minorUnits), formatted, 1)
}

func (c *RistrettoFormatCache) Close() { c.cache.Close() }

func toKey(code domain.Code, minorUnits int64) string {
	return string(code) + ":" + strconv.FormatInt(minorUnits, 10)
}
