package project

import (
	"context"
	"time"
)

// Cache is the key/value store behind project search. Values are opaque
// bytes; Scan walks keys matching a glob pattern in pages and returns the
// next cursor, which is 0 once the walk is complete.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Scan(ctx context.Context, cursor uint64, pattern string, count int64) ([]string, uint64, error)
	Delete(ctx context.Context, keys ...string) error
}

type noopCache struct{}

func (noopCache) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, nil
}

func (noopCache) Set(context.Context, string, []byte, time.Duration) error {
	return nil
}

func (noopCache) Scan(context.Context, uint64, string, int64) ([]string, uint64, error) {
	return nil, 0, nil
}

func (noopCache) Delete(context.Context, ...string) error {
	return nil
}
