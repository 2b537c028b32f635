package cache

import (
	"context"
	"time"

	"github.com/ciaanhq/ciaan-api/internal/pkg/log"
)

// SessionStore records issued sessions in the cache. It is written on login
// and logout only; request authentication never consults it, so a cold or
// absent cache does not affect serving.
type SessionStore struct {
	cache   Cache
	prefix  string
	ttl     time.Duration
	enabled bool
}

// NewSessionStore creates a session store over the given cache backend.
// A nil cache yields a disabled store whose methods are no-ops.
func NewSessionStore(cache Cache, prefix string, ttl time.Duration) *SessionStore {
	return &SessionStore{
		cache:   cache,
		prefix:  prefix,
		ttl:     ttl,
		enabled: cache != nil,
	}
}

// IsEnabled reports whether a backend is attached
func (s *SessionStore) IsEnabled() bool {
	return s.enabled
}

func (s *SessionStore) key(sessionID string) string {
	return s.prefix + "session:" + sessionID
}

// Put records a session for a user. Failures are logged, not propagated;
// the session cache is best-effort.
func (s *SessionStore) Put(ctx context.Context, sessionID, userID string) {
	if !s.enabled {
		return
	}
	if err := s.cache.Set(ctx, s.key(sessionID), []byte(userID), s.ttl); err != nil {
		log.Warn("session cache put failed: %v", err)
	}
}

// Remove drops a session, e.g. on logout
func (s *SessionStore) Remove(ctx context.Context, sessionID string) {
	if !s.enabled {
		return
	}
	if err := s.cache.Delete(ctx, s.key(sessionID)); err != nil {
		log.Warn("session cache remove failed: %v", err)
	}
}
