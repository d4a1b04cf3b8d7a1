package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: "localhost:6379",
		DB:   15,
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("Redis not available: %v", err)
	}

	client.FlushDB(ctx)

	t.Cleanup(func() {
		client.FlushDB(ctx)
		client.Close()
	})

	return client
}

func TestRedisRateLimiter_Allow_PerMinute(t *testing.T) {
	client := setupTestRedis(t)
	limiter := NewRedisRateLimiter(client)

	config := RateLimitConfig{RequestsPerMinute: 5}
	key := "login:10.0.0.1"

	for i := 0; i < 5; i++ {
		allowed, err := limiter.Allow(key, config)
		require.NoError(t, err)
		assert.True(t, allowed, "request %d should be allowed", i+1)
	}

	allowed, err := limiter.Allow(key, config)
	require.NoError(t, err)
	assert.False(t, allowed, "sixth request should be blocked")
}

func TestRedisRateLimiter_Allow_SeparateKeys(t *testing.T) {
	client := setupTestRedis(t)
	limiter := NewRedisRateLimiter(client)

	config := RateLimitConfig{RequestsPerMinute: 1}

	allowed, err := limiter.Allow("login:10.0.0.1", config)
	require.NoError(t, err)
	assert.True(t, allowed)

	allowed, err = limiter.Allow("login:10.0.0.2", config)
	require.NoError(t, err)
	assert.True(t, allowed, "a different client should have its own window")
}

func TestRedisRateLimiter_Allow_ZeroLimitsDisable(t *testing.T) {
	client := setupTestRedis(t)
	limiter := NewRedisRateLimiter(client)

	config := RateLimitConfig{}
	for i := 0; i < 20; i++ {
		allowed, err := limiter.Allow("unlimited", config)
		require.NoError(t, err)
		assert.True(t, allowed)
	}
}

func TestRedisRateLimiter_GetRemaining(t *testing.T) {
	client := setupTestRedis(t)
	limiter := NewRedisRateLimiter(client)

	config := RateLimitConfig{RequestsPerMinute: 10}
	key := "confirm:10.0.0.1"

	for i := 0; i < 3; i++ {
		_, err := limiter.Allow(key, config)
		require.NoError(t, err)
	}

	used, err := limiter.GetRemaining(key, time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(3), used)
}

func TestRedisRateLimiter_Reset(t *testing.T) {
	client := setupTestRedis(t)
	limiter := NewRedisRateLimiter(client)

	config := RateLimitConfig{RequestsPerMinute: 1}
	key := "login:10.0.0.1"

	allowed, err := limiter.Allow(key, config)
	require.NoError(t, err)
	assert.True(t, allowed)

	allowed, err = limiter.Allow(key, config)
	require.NoError(t, err)
	assert.False(t, allowed)

	require.NoError(t, limiter.Reset(key))

	allowed, err = limiter.Allow(key, config)
	require.NoError(t, err)
	assert.True(t, allowed, "the window should be empty after reset")
}
