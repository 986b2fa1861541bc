package cache

import (
	"context"
	"time"
)

// Store is the cache backend contract. Implementations wrap a single shared
// connection to a key-value store and are expected to be safe for concurrent
// use by multiple request workers.
//
// Failure semantics matter more than the happy path here: every backend
// error (timeout, connection reset, auth failure) must be absorbed at this
// layer and reported as "absent" or "not applied" so that callers degrade to
// system-of-record reads instead of failing.
type Store interface {
	// Get returns the cached payload for key. The boolean is false on a
	// miss and on backend unavailability; callers cannot distinguish the
	// two, and should not: both fall through to the loader.
	Get(ctx context.Context, key string) ([]byte, bool)

	// SetWithTTL stores payload under key for ttl. Best effort: it reports
	// whether the write was applied and never returns an error. Callers must
	// not block a response path waiting for it.
	SetWithTTL(ctx context.Context, key string, payload []byte, ttl time.Duration) bool

	// Delete removes the given keys and reports how many were removed.
	Delete(ctx context.Context, keys ...string) int

	// DeleteByPattern resolves the glob pattern to concrete keys and batch
	// deletes them. An empty resolution is a no-op, not an error.
	DeleteByPattern(ctx context.Context, pattern string) int

	// Ping reports backend connectivity. It exists for health reporting only
	// and is never called on the request hot path.
	Ping(ctx context.Context) error

	// Close releases the backend connection.
	Close() error
}

// Codec converts an aggregate value to its cached wire form and back.
// Decode errors are treated by callers as cache misses, never hard failures.
type Codec interface {
	Encode(v any) ([]byte, error)
	Decode(payload []byte, dest any) error
}
