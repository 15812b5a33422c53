package cache

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/abdulaz06/medication-adherence-tracker/internal/adherence"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "adherence:"

// ViewCache caches derived schedule and stats views in Redis, keyed per user
// so a write by one user never touches another's entries.
type ViewCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewViewCache returns a new ViewCache.
func NewViewCache(rdb *redis.Client, ttl time.Duration) *ViewCache {
	return &ViewCache{rdb: rdb, ttl: ttl}
}

func userKey(userID int64, kind, suffix string) string {
	return keyPrefix + strconv.FormatInt(userID, 10) + ":" + kind + ":" + suffix
}

// GetSchedule returns the cached daily schedule or nil on miss.
func (c *ViewCache) GetSchedule(ctx context.Context, userID int64, date string) (*adherence.DailySchedule, error) {
	b, err := c.rdb.Get(ctx, userKey(userID, "schedule", date)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var v adherence.DailySchedule
	if err := json.Unmarshal(b, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

// SetSchedule stores the daily schedule.
func (c *ViewCache) SetSchedule(ctx context.Context, userID int64, date string, v adherence.DailySchedule) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, userKey(userID, "schedule", date), b, c.ttl).Err()
}

// GetStats returns the cached adherence report or nil on miss.
func (c *ViewCache) GetStats(ctx context.Context, userID int64, days int) (*adherence.Report, error) {
	b, err := c.rdb.Get(ctx, userKey(userID, "stats", strconv.Itoa(days))).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var v adherence.Report
	if err := json.Unmarshal(b, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

// SetStats stores the adherence report.
func (c *ViewCache) SetStats(ctx context.Context, userID int64, days int, v adherence.Report) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, userKey(userID, "stats", strconv.Itoa(days)), b, c.ttl).Err()
}

// InvalidateUser removes all cached views for one user (cache invalidation on write).
func (c *ViewCache) InvalidateUser(ctx context.Context, userID int64) error {
	pattern := keyPrefix + strconv.FormatInt(userID, 10) + ":*"
	iter := c.rdb.Scan(ctx, 0, pattern, 100).Iterator()
	for iter.Next(ctx) {
		if err := c.rdb.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}
