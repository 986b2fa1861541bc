// Package testsupport provides an in-memory cache.Store double for tests
// outside the cache packages themselves: deterministic, inspectable, and
// switchable into an unavailable state.
package testsupport

import (
	"context"
	"errors"
	"path"
	"sort"
	"sync"
	"time"
)

// ErrUnavailable is what Ping reports while the store is switched off.
var ErrUnavailable = errors.New("fake store unavailable")

type entry struct {
	payload []byte
	ttl     time.Duration
}

// FakeStore implements cache.Store on a plain map. Toggle Unavailable to
// simulate a backend outage; every operation then degrades the way the real
// adapters do.
type FakeStore struct {
	mu          sync.Mutex
	entries     map[string]entry
	unavailable bool
}

// NewFakeStore returns an empty store.
func NewFakeStore() *FakeStore {
	return &FakeStore{entries: make(map[string]entry)}
}

// SetUnavailable switches the simulated outage on or off.
func (f *FakeStore) SetUnavailable(v bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.unavailable = v
}

func (f *FakeStore) Get(_ context.Context, key string) ([]byte, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.unavailable {
		return nil, false
	}
	e, ok := f.entries[key]
	if !ok {
		return nil, false
	}
	return e.payload, true
}

func (f *FakeStore) SetWithTTL(_ context.Context, key string, payload []byte, ttl time.Duration) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.unavailable {
		return false
	}
	f.entries[key] = entry{payload: payload, ttl: ttl}
	return true
}

func (f *FakeStore) Delete(_ context.Context, keys ...string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.unavailable {
		return 0
	}
	removed := 0
	for _, key := range keys {
		if _, ok := f.entries[key]; ok {
			delete(f.entries, key)
			removed++
		}
	}
	return removed
}

func (f *FakeStore) DeleteByPattern(_ context.Context, pattern string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.unavailable {
		return 0
	}
	removed := 0
	for key := range f.entries {
		if matched, err := path.Match(pattern, key); err == nil && matched {
			delete(f.entries, key)
			removed++
		}
	}
	return removed
}

func (f *FakeStore) Ping(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.unavailable {
		return ErrUnavailable
	}
	return nil
}

func (f *FakeStore) Close() error { return nil }

// Put seeds a raw payload, bypassing any codec.
func (f *FakeStore) Put(key string, payload []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries[key] = entry{payload: payload}
}

// Has reports whether a key is present.
func (f *FakeStore) Has(key string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.entries[key]
	return ok
}

// Keys returns the sorted key set.
func (f *FakeStore) Keys() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	keys := make([]string, 0, len(f.entries))
	for key := range f.entries {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// TTLOf returns the TTL recorded with the last write of key, or zero.
func (f *FakeStore) TTLOf(key string) time.Duration {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.entries[key].ttl
}
