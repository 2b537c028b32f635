package cache

import (
	"context"
	"errors"
	"time"
)

// Cache defines the backend contract for the session cache
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
	Close() error
}

// Cache errors
var (
	ErrKeyNotFound      = errors.New("cache key not found")
	ErrCacheUnavailable = errors.New("cache unavailable")
)
