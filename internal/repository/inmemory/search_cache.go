package inmemory

import (
	"context"
	"sort"
	"sync"
	"time"
)

// SearchCache is a process-local project.Cache. Scan cursors are offsets
// into the sorted key list, so a walk may miss keys written mid-walk.
type SearchCache struct {
	mu    sync.RWMutex
	items map[string]searchItem
	now   func() time.Time
}

type searchItem struct {
	value     []byte
	expiresAt time.Time
}

func NewSearchCache() *SearchCache {
	return &SearchCache{
		items: make(map[string]searchItem),
		now:   time.Now,
	}
}

func (c *SearchCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	now := c.now()

	c.mu.RLock()
	item, ok := c.items[key]
	c.mu.RUnlock()
	if !ok {
		return nil, false, nil
	}

	if !item.expiresAt.After(now) {
		c.mu.Lock()
		item, ok = c.items[key]
		if ok && !item.expiresAt.After(now) {
			delete(c.items, key)
		}
		c.mu.Unlock()
		return nil, false, nil
	}

	return cloneBytes(item.value), true, nil
}

func (c *SearchCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		c.mu.Lock()
		delete(c.items, key)
		c.mu.Unlock()
		return nil
	}

	c.mu.Lock()
	c.items[key] = searchItem{
		value:     cloneBytes(value),
		expiresAt: c.now().Add(ttl),
	}
	c.mu.Unlock()
	return nil
}

func (c *SearchCache) Scan(_ context.Context, cursor uint64, pattern string, count int64) ([]string, uint64, error) {
	if count <= 0 {
		count = 10
	}
	now := c.now()

	c.mu.RLock()
	matched := make([]string, 0, len(c.items))
	for key, item := range c.items {
		if !item.expiresAt.After(now) {
			continue
		}
		if matchGlob(pattern, key) {
			matched = append(matched, key)
		}
	}
	c.mu.RUnlock()
	sort.Strings(matched)

	start := cursor
	if start >= uint64(len(matched)) {
		return nil, 0, nil
	}
	end := start + uint64(count)
	if end >= uint64(len(matched)) {
		return matched[start:], 0, nil
	}
	return matched[start:end], end, nil
}

func (c *SearchCache) Delete(_ context.Context, keys ...string) error {
	c.mu.Lock()
	for _, key := range keys {
		delete(c.items, key)
	}
	c.mu.Unlock()
	return nil
}

// matchGlob follows redis SCAN MATCH for '*' and '?': both match any byte,
// '/' included. A backslash makes the next byte literal.
func matchGlob(pattern, key string) bool {
	var (
		p, k         int
		starP, starK = -1, 0
	)
	for k < len(key) {
		if p < len(pattern) {
			switch c := pattern[p]; {
			case c == '*':
				starP, starK = p, k
				p++
				continue
			case c == '?':
				p++
				k++
				continue
			case c == '\\' && p+1 < len(pattern):
				if pattern[p+1] == key[k] {
					p += 2
					k++
					continue
				}
			case c == key[k]:
				p++
				k++
				continue
			}
		}
		if starP < 0 {
			return false
		}
		starK++
		p, k = starP+1, starK
	}
	for p < len(pattern) && pattern[p] == '*' {
		p++
	}
	return p == len(pattern)
}

func cloneBytes(value []byte) []byte {
	if value == nil {
		return nil
	}
	cloned := make([]byte, len(value))
	copy(cloned, value)
	return cloned
}
