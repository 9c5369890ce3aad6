package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func setupCache(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	SetClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { SetClient(nil) })
	return mr
}

func TestGetSetJSON(t *testing.T) {
	setupCache(t)
	ctx := context.Background()

	var missing payload
	found, err := GetJSON(ctx, "absent", &missing)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, SetJSON(ctx, "present", payload{Name: "x", Count: 3}, time.Minute))

	var loaded payload
	found, err = GetJSON(ctx, "present", &loaded)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, payload{Name: "x", Count: 3}, loaded)
}

func TestAside(t *testing.T) {
	setupCache(t)
	ctx := context.Background()

	fetches := 0
	fetch := func(dest *payload) func() error {
		return func() error {
			fetches++
			*dest = payload{Name: "fetched", Count: fetches}
			return nil
		}
	}

	var first payload
	require.NoError(t, Aside(ctx, "aside-key", &first, time.Minute, fetch(&first)))
	assert.Equal(t, 1, fetches)
	assert.Equal(t, "fetched", first.Name)

	// Second read is served from the cache without re-fetching.
	var second payload
	require.NoError(t, Aside(ctx, "aside-key", &second, time.Minute, fetch(&second)))
	assert.Equal(t, 1, fetches)
	assert.Equal(t, first, second)
}

func TestInvalidate(t *testing.T) {
	setupCache(t)
	ctx := context.Background()

	require.NoError(t, SetJSON(ctx, PostKey(5), payload{Name: "cached"}, time.Minute))
	Invalidate(ctx, PostKey(5))

	var dest payload
	found, err := GetJSON(ctx, PostKey(5), &dest)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestNilClientIsNoOp(t *testing.T) {
	SetClient(nil)
	ctx := context.Background()

	found, err := GetJSON(ctx, "anything", &payload{})
	require.NoError(t, err)
	assert.False(t, found)
	require.NoError(t, SetJSON(ctx, "anything", payload{}, time.Minute))
	Invalidate(ctx, "anything")

	// Aside degrades to a plain fetch.
	var dest payload
	require.NoError(t, Aside(ctx, "anything", &dest, time.Minute, func() error {
		dest = payload{Name: "direct"}
		return nil
	}))
	assert.Equal(t, "direct", dest.Name)
}
