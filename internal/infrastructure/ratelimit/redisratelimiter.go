package ratelimit

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisRateLimiter counts requests in sliding windows backed by Redis sorted
// sets. Each request adds one member scored by its nanosecond timestamp, and
// members older than the window are trimmed before counting.
type RedisRateLimiter struct {
	client *redis.Client
}

func NewRedisRateLimiter(client *redis.Client) RateLimiter {
	return &RedisRateLimiter{client: client}
}

// Allow checks every configured window for the key. A zero or negative limit
// disables that window.
func (l *RedisRateLimiter) Allow(key string, config RateLimitConfig) (bool, error) {
	now := time.Now()

	for _, w := range []struct {
		span  time.Duration
		limit int
	}{
		{time.Minute, config.RequestsPerMinute},
		{time.Hour, config.RequestsPerHour},
		{24 * time.Hour, config.RequestsPerDay},
	} {
		if w.limit <= 0 {
			continue
		}
		ok, err := l.admit(key, w.span, w.limit, now)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}

	return true, nil
}

func (l *RedisRateLimiter) admit(key string, span time.Duration, limit int, now time.Time) (bool, error) {
	ctx := context.Background()
	redisKey := windowKey(key, span)
	cutoff := strconv.FormatInt(now.Add(-span).UnixNano(), 10)

	pipe := l.client.Pipeline()
	pipe.ZRemRangeByScore(ctx, redisKey, "0", cutoff)
	count := pipe.ZCard(ctx, redisKey)
	pipe.ZAdd(ctx, redisKey, redis.Z{Score: float64(now.UnixNano()), Member: now.UnixNano()})
	// The key lives a little longer than its window.
	pipe.Expire(ctx, redisKey, span+time.Minute)

	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("rate limit pipeline failed: %w", err)
	}

	return count.Val() < int64(limit), nil
}

// GetRemaining reports how many requests are currently recorded in the window.
func (l *RedisRateLimiter) GetRemaining(key string, window time.Duration) (int64, error) {
	ctx := context.Background()
	redisKey := windowKey(key, window)
	cutoff := strconv.FormatInt(time.Now().Add(-window).UnixNano(), 10)

	pipe := l.client.Pipeline()
	pipe.ZRemRangeByScore(ctx, redisKey, "0", cutoff)
	count := pipe.ZCard(ctx, redisKey)

	if _, err := pipe.Exec(ctx); err != nil {
		return 0, fmt.Errorf("rate limit count failed: %w", err)
	}

	return count.Val(), nil
}

// Reset drops every window recorded for the key.
func (l *RedisRateLimiter) Reset(key string) error {
	ctx := context.Background()

	iter := l.client.Scan(ctx, 0, fmt.Sprintf("ratelimit:%s:*", key), 0).Iterator()
	for iter.Next(ctx) {
		if err := l.client.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("failed to delete key %s: %w", iter.Val(), err)
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan rate limit keys: %w", err)
	}

	return nil
}

func windowKey(identifier string, window time.Duration) string {
	return "ratelimit:" + identifier + ":" + window.String()
}
