package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionStorePutAndRemove(t *testing.T) {
	ctx := context.Background()
	backend := NewMemoryCache()
	store := NewSessionStore(backend, "ciaan:", time.Hour)

	require.True(t, store.IsEnabled())

	store.Put(ctx, "sess-1", "user-1")
	value, err := backend.Get(ctx, "ciaan:session:sess-1")
	require.NoError(t, err)
	assert.Equal(t, "user-1", string(value))

	store.Remove(ctx, "sess-1")
	_, err = backend.Get(ctx, "ciaan:session:sess-1")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestSessionStoreDisabled(t *testing.T) {
	store := NewSessionStore(nil, "ciaan:", time.Hour)
	assert.False(t, store.IsEnabled())

	// No backend attached; both must be safe no-ops.
	store.Put(context.Background(), "sess-1", "user-1")
	store.Remove(context.Background(), "sess-1")
}

func TestMemoryCacheExpiry(t *testing.T) {
	ctx := context.Background()
	backend := NewMemoryCache()

	require.NoError(t, backend.Set(ctx, "k", []byte("v"), -time.Second))
	_, err := backend.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	// Zero TTL never expires
	require.NoError(t, backend.Set(ctx, "p", []byte("v"), 0))
	value, err := backend.Get(ctx, "p")
	require.NoError(t, err)
	assert.Equal(t, "v", string(value))
}
