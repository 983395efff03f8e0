package tracker

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/HonorBot_Go/internal/domain"
	"github.com/osse101/HonorBot_Go/internal/metrics"
)

// recordCache keeps recently read user records by platform ID. Every write
// through the service replaces or drops the entry for that ID.
type recordCache struct {
	lru *expirable.LRU[int64, domain.UserRecord]
}

func newRecordCache(size int, ttl time.Duration) *recordCache {
	if size <= 0 {
		size = DefaultCacheSize
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &recordCache{
		lru: expirable.NewLRU[int64, domain.UserRecord](size, nil, ttl),
	}
}

// Get returns a copy of the cached record.
func (c *recordCache) Get(platformID int64) (*domain.UserRecord, bool) {
	rec, ok := c.lru.Get(platformID)
	if !ok {
		metrics.UserCacheLookups.WithLabelValues(metrics.CacheMiss).Inc()
		return nil, false
	}
	metrics.UserCacheLookups.WithLabelValues(metrics.CacheHit).Inc()
	return &rec, true
}

func (c *recordCache) Set(rec *domain.UserRecord) {
	c.lru.Add(rec.PlatformID, *rec)
}

func (c *recordCache) Invalidate(platformID int64) {
	c.lru.Remove(platformID)
}

func (c *recordCache) Len() int {
	return c.lru.Len()
}
