package cacheinfra

import (
	"context"
	"path"
	"time"

	"github.com/viccon/sturdyc"
	"go.uber.org/zap"

	"github.com/goliatone/go-board-cache/cache"
)

// MemoryConfig sizes the in-process store.
type MemoryConfig struct {
	// Capacity is the maximum number of entries before eviction kicks in.
	Capacity int
	// NumShards spreads keys across independent locks.
	NumShards int
	// MaxTTL is the eviction ceiling. Individual entries carry their own
	// deadline, which is always at or below this.
	MaxTTL time.Duration
	// EvictionPercentage is how much of a full shard gets evicted at once.
	EvictionPercentage int
}

// DefaultMemoryConfig returns sizing suitable for a single dashboard
// process.
func DefaultMemoryConfig() MemoryConfig {
	return MemoryConfig{
		Capacity:           10000,
		NumShards:          64,
		MaxTTL:             30 * time.Minute,
		EvictionPercentage: 10,
	}
}

func (c MemoryConfig) withDefaults() MemoryConfig {
	def := DefaultMemoryConfig()
	if c.Capacity <= 0 {
		c.Capacity = def.Capacity
	}
	if c.NumShards <= 0 {
		c.NumShards = def.NumShards
	}
	if c.MaxTTL <= 0 {
		c.MaxTTL = def.MaxTTL
	}
	if c.EvictionPercentage <= 0 {
		c.EvictionPercentage = def.EvictionPercentage
	}
	return c
}

// memoryEntry stamps each payload with its own expiry so per-resource TTLs
// survive inside a cache that only knows one global TTL.
type memoryEntry struct {
	Payload  []byte
	Deadline time.Time
}

// MemoryStore implements cache.Store on an in-process sharded cache. It is
// the drop-in alternative when no external backend is available: same key
// schema, same TTL semantics, same pattern invalidation. A restart empties
// it, which is acceptable for read-through data.
type MemoryStore struct {
	cfg   MemoryConfig
	inner *sturdyc.Client[memoryEntry]
	log   *zap.Logger
	now   func() time.Time
}

var _ cache.Store = (*MemoryStore)(nil)

// NewMemoryStore builds an in-process store. Zero-value config fields fall
// back to DefaultMemoryConfig.
func NewMemoryStore(cfg MemoryConfig, log *zap.Logger) *MemoryStore {
	cfg = cfg.withDefaults()
	if log == nil {
		log = zap.NewNop()
	}
	return &MemoryStore{
		cfg:   cfg,
		inner: sturdyc.New[memoryEntry](cfg.Capacity, cfg.NumShards, cfg.MaxTTL, cfg.EvictionPercentage),
		log:   log,
		now:   time.Now,
	}
}

// Get returns the payload for key. Entries past their own deadline are
// removed and reported absent even if the underlying cache still holds them.
func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, bool) {
	entry, ok := s.inner.Get(key)
	if !ok {
		return nil, false
	}
	if s.now().After(entry.Deadline) {
		s.inner.Delete(key)
		return nil, false
	}
	return entry.Payload, true
}

// SetWithTTL stores the payload with its own deadline, capped by the
// configured MaxTTL.
func (s *MemoryStore) SetWithTTL(_ context.Context, key string, payload []byte, ttl time.Duration) bool {
	if ttl <= 0 {
		ttl = cache.DefaultTTL
	}
	if ttl > s.cfg.MaxTTL {
		ttl = s.cfg.MaxTTL
	}
	s.inner.Set(key, memoryEntry{Payload: payload, Deadline: s.now().Add(ttl)})
	return true
}

// Delete removes the given keys and reports how many existed.
func (s *MemoryStore) Delete(_ context.Context, keys ...string) int {
	removed := 0
	for _, key := range keys {
		if _, ok := s.inner.Get(key); ok {
			removed++
		}
		s.inner.Delete(key)
	}
	return removed
}

// DeleteByPattern walks the live key set and removes every key matching the
// glob. The separator has no special meaning, so "board:p1:*" matches the
// whole family exactly like the external backend does.
func (s *MemoryStore) DeleteByPattern(_ context.Context, pattern string) int {
	removed := 0
	for _, key := range s.inner.ScanKeys() {
		matched, err := path.Match(pattern, key)
		if err != nil {
			s.log.Warn("invalid invalidation pattern", zap.String("pattern", pattern), zap.Error(err))
			return removed
		}
		if matched {
			s.inner.Delete(key)
			removed++
		}
	}
	return removed
}

// Ping always succeeds: the store lives in the same process.
func (s *MemoryStore) Ping(context.Context) error { return nil }

// Close is a no-op; there is no connection to release.
func (s *MemoryStore) Close() error { return nil }
