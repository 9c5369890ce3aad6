package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) *redis.Client {
	t.Helper()
	mr := miniredis.RunT(t)
	return redis.NewClient(&redis.Options{Addr: mr.Addr()})
}

func TestCheckRateLimit(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	rdb := newTestRedis(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		allowed, err := CheckRateLimit(ctx, rdb, "test", "user:1", 3, time.Minute)
		require.NoError(t, err)
		assert.True(t, allowed, "request %d should be allowed", i+1)
	}

	allowed, err := CheckRateLimit(ctx, rdb, "test", "user:1", 3, time.Minute)
	require.NoError(t, err)
	assert.False(t, allowed)

	// A different identity has its own counter.
	allowed, err = CheckRateLimit(ctx, rdb, "test", "user:2", 3, time.Minute)
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestCheckRateLimit_TestEnvBypass(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	rdb := newTestRedis(t)

	for i := 0; i < 10; i++ {
		allowed, err := CheckRateLimit(context.Background(), rdb, "test", "user:1", 1, time.Minute)
		require.NoError(t, err)
		assert.True(t, allowed)
	}
}

func TestCheckRateLimit_NilClientFailsOpen(t *testing.T) {
	t.Setenv("APP_ENV", "development")

	allowed, err := CheckRateLimit(context.Background(), nil, "test", "user:1", 1, time.Minute)
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestRateLimitMiddleware(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	rdb := newTestRedis(t)

	app := fiber.New()
	app.Get("/limited", RateLimit(rdb, 2, time.Minute, "limited"), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodGet, "/limited", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		_ = resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	}

	req := httptest.NewRequest(http.MethodGet, "/limited", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
}
