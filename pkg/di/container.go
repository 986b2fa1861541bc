// Package di wires the cache layer's components together: one store, one
// accessor, one invalidator, one health reporter, built from a single
// options struct.
package di

import (
	"go.uber.org/zap"

	"github.com/goliatone/go-board-cache/boardcache"
	"github.com/goliatone/go-board-cache/cache"
	"github.com/goliatone/go-board-cache/internal/cacheinfra"
)

// Options selects and configures the container's components. The zero value
// yields a working container backed by the external store in degraded mode.
type Options struct {
	// Backend configures the external key-value store. Ignored when
	// UseMemory is set.
	Backend cache.Config
	// UseMemory selects the in-process store instead of the external one.
	UseMemory bool
	// Memory sizes the in-process store when UseMemory is set.
	Memory cacheinfra.MemoryConfig
	// Store overrides the built store entirely. Tests inject their double
	// here; production code normally leaves it nil.
	Store cache.Store
	// Codec overrides the wire format. Nil means JSON.
	Codec cache.Codec
	// Policy overrides the per-resource TTL table. Nil means defaults.
	Policy cache.Policy
	// Logger receives cache-layer diagnostics. Nil means no-op.
	Logger *zap.Logger
}

// Container holds the cache layer's singletons.
type Container struct {
	store       cache.Store
	accessor    *boardcache.Accessor
	invalidator *boardcache.Invalidator
	health      *boardcache.HealthReporter
	log         *zap.Logger
}

// New builds a container from opts.
func New(opts Options) (*Container, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	store := opts.Store
	if store == nil {
		if opts.UseMemory {
			store = cacheinfra.NewMemoryStore(opts.Memory, log)
		} else {
			redisStore, err := cacheinfra.NewRedisStore(opts.Backend, log)
			if err != nil {
				return nil, err
			}
			store = redisStore
		}
	}

	accessorOpts := []boardcache.AccessorOption{boardcache.WithLogger(log)}
	if opts.Codec != nil {
		accessorOpts = append(accessorOpts, boardcache.WithCodec(opts.Codec))
	}
	if opts.Policy != nil {
		accessorOpts = append(accessorOpts, boardcache.WithPolicy(opts.Policy))
	}

	return &Container{
		store:       store,
		accessor:    boardcache.NewAccessor(store, accessorOpts...),
		invalidator: boardcache.NewInvalidator(store, log),
		health:      boardcache.NewHealthReporter(store),
		log:         log,
	}, nil
}

// NewWithDefaults builds a container for the common case: external backend
// at the default address, JSON codec, default TTL policy.
func NewWithDefaults() (*Container, error) {
	return New(Options{Backend: cache.DefaultConfig()})
}

// Store returns the underlying store, for callers needing raw access.
func (c *Container) Store() cache.Store { return c.store }

// Accessor returns the read-through accessor singleton.
func (c *Container) Accessor() *boardcache.Accessor { return c.accessor }

// Invalidator returns the invalidation dispatcher singleton.
func (c *Container) Invalidator() *boardcache.Invalidator { return c.invalidator }

// Health returns the health reporter singleton.
func (c *Container) Health() *boardcache.HealthReporter { return c.health }

// Close releases the store's resources.
func (c *Container) Close() error { return c.store.Close() }
