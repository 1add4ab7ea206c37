package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) *MemoryCache {
	t.Helper()
	c := NewMemoryCache()
	t.Cleanup(func() { c.Close() })
	return c
}

func TestMemoryCache_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	c := newTestCache(t)

	require.NoError(t, c.Set(ctx, "key", []byte("value"), time.Minute))

	got, err := c.Get(ctx, "key")
	require.NoError(t, err)
	assert.Equal(t, []byte("value"), got)

	require.NoError(t, c.Delete(ctx, "key"))

	_, err = c.Get(ctx, "key")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestMemoryCache_ZeroTTLNeverExpires(t *testing.T) {
	ctx := context.Background()
	c := newTestCache(t)

	require.NoError(t, c.Set(ctx, "forever", []byte("v"), 0))

	// Force the sweep; the entry must survive it.
	c.removeExpired()

	got, err := c.Get(ctx, "forever")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), got)
}

func TestMemoryCache_ExpiredEntryIsMiss(t *testing.T) {
	ctx := context.Background()
	c := newTestCache(t)

	require.NoError(t, c.Set(ctx, "blink", []byte("v"), time.Millisecond))
	time.Sleep(5 * time.Millisecond)

	_, err := c.Get(ctx, "blink")
	assert.ErrorIs(t, err, ErrCacheMiss)

	exists, err := c.Exists(ctx, "blink")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestMemoryCache_GetOrSet(t *testing.T) {
	ctx := context.Background()
	c := newTestCache(t)

	calls := 0
	loader := func() ([]byte, error) {
		calls++
		return []byte("loaded"), nil
	}

	got, err := c.GetOrSet(ctx, "key", 0, loader)
	require.NoError(t, err)
	assert.Equal(t, []byte("loaded"), got)

	// Second call is a hit; the loader does not run again.
	got, err = c.GetOrSet(ctx, "key", 0, loader)
	require.NoError(t, err)
	assert.Equal(t, []byte("loaded"), got)
	assert.Equal(t, 1, calls)
}

func TestMemoryCache_GetOrSetPropagatesLoaderError(t *testing.T) {
	ctx := context.Background()
	c := newTestCache(t)

	wantErr := errors.New("backend down")
	_, err := c.GetOrSet(ctx, "key", 0, func() ([]byte, error) {
		return nil, wantErr
	})
	assert.ErrorIs(t, err, wantErr)

	// Nothing was stored for the failed load.
	_, err = c.Get(ctx, "key")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestMemoryCache_Clear(t *testing.T) {
	ctx := context.Background()
	c := newTestCache(t)

	require.NoError(t, c.Set(ctx, "a", []byte("1"), 0))
	require.NoError(t, c.Set(ctx, "b", []byte("2"), 0))
	require.NoError(t, c.Clear(ctx))

	_, err := c.Get(ctx, "a")
	assert.ErrorIs(t, err, ErrCacheMiss)
	_, err = c.Get(ctx, "b")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestMemoryCache_GetReturnsCopy(t *testing.T) {
	ctx := context.Background()
	c := newTestCache(t)

	require.NoError(t, c.Set(ctx, "key", []byte("safe"), 0))

	got, err := c.Get(ctx, "key")
	require.NoError(t, err)
	got[0] = 'X'

	again, err := c.Get(ctx, "key")
	require.NoError(t, err)
	assert.Equal(t, []byte("safe"), again)
}
