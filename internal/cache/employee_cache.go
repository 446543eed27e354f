package cache

import (
	"context"
	"encoding/json"
	"time"

	dom "Staff/internal/domain"

	"github.com/redis/go-redis/v9"
)

const keyList = "employee:list"

// EmployeeCache caches the full employee list in Redis.
type EmployeeCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewEmployeeCache returns a new EmployeeCache.
func NewEmployeeCache(rdb *redis.Client, ttl time.Duration) *EmployeeCache {
	return &EmployeeCache{rdb: rdb, ttl: ttl}
}

// GetList returns cached list or nil if miss.
func (c *EmployeeCache) GetList(ctx context.Context) ([]dom.Employee, error) {
	b, err := c.rdb.Get(ctx, keyList).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var list []dom.Employee
	if err := json.Unmarshal(b, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// SetList stores the list in cache.
func (c *EmployeeCache) SetList(ctx context.Context, list []dom.Employee) error {
	b, err := json.Marshal(list)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, keyList, b, c.ttl).Err()
}

// Invalidate removes the cached list (cache invalidation on write).
func (c *EmployeeCache) Invalidate(ctx context.Context) error {
	return c.rdb.Del(ctx, keyList).Err()
}
