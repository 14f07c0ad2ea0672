package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DominikMe/acs-token-exchange/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache_SetGet(t *testing.T) {
	c := NewMemoryCache[int64]()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "count", 42, time.Minute))

	got, err := c.Get(ctx, "count")
	require.NoError(t, err)
	assert.EqualValues(t, 42, got)
}

func TestMemoryCache_Miss(t *testing.T) {
	c := NewMemoryCache[int64]()

	_, err := c.Get(context.Background(), "absent")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestMemoryCache_Expiry(t *testing.T) {
	c := NewMemoryCache[string]()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "short", "value", -time.Second))

	_, err := c.Get(ctx, "short")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestMemoryCache_Delete(t *testing.T) {
	c := NewMemoryCache[string]()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "key", "value", time.Minute))
	require.NoError(t, c.Delete(ctx, "key"))

	_, err := c.Get(ctx, "key")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestGetWithFetch_MissFetchesAndStores(t *testing.T) {
	c := NewMemoryCache[int64]()
	ctx := context.Background()
	fetches := 0

	fetch := func(ctx context.Context, key string) (int64, error) {
		fetches++
		return 9, nil
	}

	got, err := core.GetWithFetch[int64](ctx, c, "k", time.Minute, fetch)
	require.NoError(t, err)
	assert.EqualValues(t, 9, got)
	assert.Equal(t, 1, fetches)

	// Second call is served from cache.
	got, err = core.GetWithFetch[int64](ctx, c, "k", time.Minute, fetch)
	require.NoError(t, err)
	assert.EqualValues(t, 9, got)
	assert.Equal(t, 1, fetches)
}

func TestGetWithFetch_FetchError(t *testing.T) {
	c := NewMemoryCache[int64]()
	wantErr := errors.New("store down")

	_, err := core.GetWithFetch[int64](context.Background(), c, "k", time.Minute,
		func(ctx context.Context, key string) (int64, error) {
			return 0, wantErr
		})
	assert.ErrorIs(t, err, wantErr)
}
