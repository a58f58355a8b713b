package metrics

import (
	"context"
	"time"

	"collabhive-go/internal/domain/project"
)

type instrumentedCache struct {
	next    project.Cache
	metrics *Metrics
}

// InstrumentCache counts hits, misses and failures of a search cache.
func InstrumentCache(next project.Cache, m *Metrics) project.Cache {
	if m == nil {
		return next
	}
	return &instrumentedCache{next: next, metrics: m}
}

func (c *instrumentedCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	value, ok, err := c.next.Get(ctx, key)
	switch {
	case err != nil:
		c.metrics.CacheErrorsTotal.WithLabelValues("get").Inc()
	case ok:
		c.metrics.CacheRequestsTotal.WithLabelValues("hit").Inc()
	default:
		c.metrics.CacheRequestsTotal.WithLabelValues("miss").Inc()
	}
	return value, ok, err
}

func (c *instrumentedCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	err := c.next.Set(ctx, key, value, ttl)
	if err != nil {
		c.metrics.CacheErrorsTotal.WithLabelValues("set").Inc()
	}
	return err
}

func (c *instrumentedCache) Scan(ctx context.Context, cursor uint64, pattern string, count int64) ([]string, uint64, error) {
	keys, next, err := c.next.Scan(ctx, cursor, pattern, count)
	if err != nil {
		c.metrics.CacheErrorsTotal.WithLabelValues("scan").Inc()
	}
	return keys, next, err
}

func (c *instrumentedCache) Delete(ctx context.Context, keys ...string) error {
	err := c.next.Delete(ctx, keys...)
	if err != nil {
		c.metrics.CacheErrorsTotal.WithLabelValues("delete").Inc()
	}
	return err
}
