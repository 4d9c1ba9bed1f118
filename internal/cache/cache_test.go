package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct{ t time.Time }

func (f *fakeClock) now() time.Time { return f.t }

func newTestCache(ttl time.Duration) (*QueryCache, *fakeClock) {
	clock := &fakeClock{t: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	c := New(ttl)
	c.now = clock.now
	return c, clock
}

func TestQueryCache_SetGet(t *testing.T) {
	c, _ := newTestCache(time.Minute)

	_, ok := c.Get("k")
	assert.False(t, ok)

	c.Set("k", 42)
	v, ok := c.Get("k")
	require.True(t, ok)
	assert.Equal(t, 42, v)
}

func TestQueryCache_Expiry(t *testing.T) {
	c, clock := newTestCache(30 * time.Second)
	c.Set("k", "v")

	clock.t = clock.t.Add(29 * time.Second)
	_, ok := c.Get("k")
	assert.True(t, ok)

	clock.t = clock.t.Add(time.Second)
	_, ok = c.Get("k")
	assert.False(t, ok)
	assert.Zero(t, c.Len(), "expired entry is evicted on read")
}

func TestQueryCache_InvalidateAndClear(t *testing.T) {
	c, _ := newTestCache(time.Minute)
	c.Set(KeyProfile, 1)
	c.Set(KeyLocales, 2)
	c.Set(KeyRole, 3)

	c.Invalidate(KeyProfile, "missing")
	_, ok := c.Get(KeyProfile)
	assert.False(t, ok)
	assert.Equal(t, 2, c.Len())

	c.Clear()
	assert.Zero(t, c.Len())
}

func TestFetch(t *testing.T) {
	c, clock := newTestCache(time.Minute)
	calls := 0
	load := func(context.Context) (string, error) {
		calls++
		return "loaded", nil
	}

	v, err := Fetch(context.Background(), c, "k", load)
	require.NoError(t, err)
	assert.Equal(t, "loaded", v)

	v, err = Fetch(context.Background(), c, "k", load)
	require.NoError(t, err)
	assert.Equal(t, "loaded", v)
	assert.Equal(t, 1, calls)

	clock.t = clock.t.Add(time.Minute)
	_, err = Fetch(context.Background(), c, "k", load)
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestFetch_ErrorNotCached(t *testing.T) {
	c, _ := newTestCache(time.Minute)
	boom := errors.New("boom")

	_, err := Fetch(context.Background(), c, "k", func(context.Context) (int, error) { return 0, boom })
	assert.ErrorIs(t, err, boom)
	assert.Zero(t, c.Len())
}
