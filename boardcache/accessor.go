package boardcache

import (
	"context"
	"reflect"

	"go.uber.org/zap"

	"github.com/goliatone/go-board-cache/cache"
)

// LoaderFn produces a fresh value from the system of record. It runs only
// on cache misses; its error passes through to the caller unchanged.
type LoaderFn[T any] func(ctx context.Context) (T, error)

// CheckFn reports whether a decoded snapshot is still fit to serve. A
// false result evicts the entry and falls through to the loader.
type CheckFn[T any] func(value T) bool

// Accessor is the read-through front for every cacheable resource. Reads
// consult the store first and fall back to the loader; fresh values are
// written back asynchronously so the caller never waits on the backend.
//
// An unavailable or misbehaving store degrades the accessor to a plain
// loader call. No store condition ever produces an error here.
type Accessor struct {
	store  cache.Store
	codec  cache.Codec
	policy cache.Policy
	log    *zap.Logger
	stats  *Stats
}

// AccessorOption mutates construction defaults.
type AccessorOption func(*Accessor)

// WithCodec replaces the default JSON codec.
func WithCodec(codec cache.Codec) AccessorOption {
	return func(a *Accessor) { a.codec = codec }
}

// WithPolicy replaces the default TTL policy.
func WithPolicy(policy cache.Policy) AccessorOption {
	return func(a *Accessor) { a.policy = policy }
}

// WithLogger sets the accessor logger.
func WithLogger(log *zap.Logger) AccessorOption {
	return func(a *Accessor) { a.log = log }
}

// NewAccessor builds an accessor over store. Defaults: JSON codec, the
// standard TTL policy, a no-op logger.
func NewAccessor(store cache.Store, opts ...AccessorOption) *Accessor {
	a := &Accessor{
		store:  store,
		codec:  cache.JSONCodec{},
		policy: cache.DefaultPolicy(),
		log:    zap.NewNop(),
		stats:  NewStats(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Stats exposes the accessor's outcome counters.
func (a *Accessor) Stats() *Stats { return a.stats }

// GetOrLoad returns the cached value for the resource key, loading and
// populating on a miss. Defined at package level because methods cannot
// carry their own type parameters.
func GetOrLoad[T any](ctx context.Context, a *Accessor, resource cache.Resource, parts []string, load LoaderFn[T]) (T, error) {
	return getOrLoad(ctx, a, resource, parts, nil, load)
}

// GetOrLoadChecked is GetOrLoad with a fitness check applied to cache hits.
// Snapshots failing the check are evicted immediately and reloaded.
func GetOrLoadChecked[T any](ctx context.Context, a *Accessor, resource cache.Resource, parts []string, check CheckFn[T], load LoaderFn[T]) (T, error) {
	return getOrLoad(ctx, a, resource, parts, check, load)
}

func getOrLoad[T any](ctx context.Context, a *Accessor, resource cache.Resource, parts []string, check CheckFn[T], load LoaderFn[T]) (T, error) {
	key := cache.BuildKey(resource, parts...)

	if payload, found := a.store.Get(ctx, key); found {
		var value T
		if err := a.codec.Decode(payload, &value); err != nil {
			// Undecodable entries are evicted right away. Decode failures are
			// deterministic, so leaving the entry in place would repeat this
			// branch on every read until the TTL clears it.
			a.store.Delete(ctx, key)
			a.log.Debug("cache entry undecodable, evicted",
				zap.String("key", key),
				zap.Error(err))
		} else if check != nil && !check(value) {
			a.stats.degenerate.Inc()
			a.store.Delete(ctx, key)
			a.log.Debug("cache entry failed fitness check, evicted",
				zap.String("key", key))
		} else {
			a.stats.hits.Inc()
			return value, nil
		}
	}

	a.stats.misses.Inc()

	value, err := load(ctx)
	if err != nil {
		return value, err
	}

	if !isZeroOrEmpty(value) {
		a.populate(ctx, key, resource, value)
	}
	return value, nil
}

// populate writes the freshly loaded value back without blocking the
// caller. Encoding happens synchronously so the goroutine captures an
// immutable payload; the store write detaches from the request's
// cancellation but keeps its values.
func (a *Accessor) populate(ctx context.Context, key string, resource cache.Resource, value any) {
	payload, err := a.codec.Encode(value)
	if err != nil {
		a.log.Warn("cache population skipped, encode failed",
			zap.String("key", key),
			zap.Error(err))
		return
	}

	ttl := a.policy.TTL(resource)
	bg := context.WithoutCancel(ctx)
	go func() {
		if a.store.SetWithTTL(bg, key, payload, ttl) {
			a.stats.populates.Inc()
		}
	}()
}

// isZeroOrEmpty reports whether a loader result should be kept out of the
// cache: nil values, empty collections, and zero-valued structs would pin
// an absent state for a full TTL.
func isZeroOrEmpty(value any) bool {
	if value == nil {
		return true
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			return true
		}
		return isZeroOrEmpty(rv.Elem().Interface())
	case reflect.Slice, reflect.Map:
		return rv.Len() == 0
	default:
		return rv.IsZero()
	}
}
