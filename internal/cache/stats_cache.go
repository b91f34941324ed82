package cache

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	dom "github.com/AvishekRimal/student-planner/internal/domain"

	"github.com/redis/go-redis/v9"
)

const keyStats = "stats:"

// StatsCache caches per-user productivity reports in Redis. Entries are
// invalidated on every task mutation, so the TTL only bounds staleness for
// writes that bypass the API (e.g. the recurrence job on another instance).
type StatsCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewStatsCache returns a new StatsCache.
func NewStatsCache(rdb *redis.Client, ttl time.Duration) *StatsCache {
	return &StatsCache{rdb: rdb, ttl: ttl}
}

// Get returns the cached report for the user, or nil on miss.
func (c *StatsCache) Get(ctx context.Context, userID int64) (*dom.Stats, error) {
	b, err := c.rdb.Get(ctx, statsKey(userID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var s dom.Stats
	if err := json.Unmarshal(b, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// Set stores the report for the user.
func (c *StatsCache) Set(ctx context.Context, userID int64, s dom.Stats) error {
	b, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, statsKey(userID), b, c.ttl).Err()
}

// Invalidate drops the user's cached report (cache invalidation on write).
func (c *StatsCache) Invalidate(ctx context.Context, userID int64) error {
	return c.rdb.Del(ctx, statsKey(userID)).Err()
}

func statsKey(userID int64) string {
	return keyStats + strconv.FormatInt(userID, 10)
}
