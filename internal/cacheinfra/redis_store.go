package cacheinfra

import (
	"context"
	"errors"
	"io"
	"net"
	"sync"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/goliatone/go-board-cache/cache"
)

// ErrNotConfigured reports that no backend address was supplied. The store
// stays in permanently degraded mode: every read falls through to the system
// of record.
var ErrNotConfigured = errors.New("cache backend address not configured")

// scanBatchSize bounds how many keys one SCAN page returns during pattern
// resolution.
const scanBatchSize = 200

// RedisStore implements cache.Store over a single shared go-redis client.
// The handle is created lazily on first use and dropped after terminal
// connection errors so the next operation reconnects. go-redis pools and
// serializes the underlying connections, so concurrent requests issue
// operations on the shared handle without application-level locks.
//
// Every backend error is absorbed here: reads report absent, writes report
// not-applied, and the error itself only reaches the log.
type RedisStore struct {
	cfg cache.Config
	log *zap.Logger

	mu     sync.Mutex
	client *redis.Client
}

var _ cache.Store = (*RedisStore)(nil)

// NewRedisStore validates cfg and returns a store. No connection is dialed
// here; an unreachable backend shows up as degraded operation, not as a
// construction failure.
func NewRedisStore(cfg cache.Config, log *zap.Logger) (*RedisStore, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &RedisStore{cfg: cfg, log: log}, nil
}

// connect returns the shared client, creating it if needed. Idempotent: a
// live handle is reused. Returns nil when no address is configured.
func (s *RedisStore) connect() *redis.Client {
	if s.cfg.Addr == "" {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.client == nil {
		s.client = redis.NewClient(&redis.Options{
			Addr:         s.cfg.Addr,
			Password:     s.cfg.Password,
			DB:           s.cfg.DB,
			DialTimeout:  s.cfg.DialTimeout,
			ReadTimeout:  s.cfg.ReadTimeout,
			WriteTimeout: s.cfg.WriteTimeout,
		})
	}
	return s.client
}

// dropClient tears the shared handle down after a terminal error so the next
// operation triggers connect again.
func (s *RedisStore) dropClient() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.client != nil {
		_ = s.client.Close()
		s.client = nil
	}
}

// observe logs a backend failure and tears the connection down when the
// error indicates the connection is gone rather than one command failing.
func (s *RedisStore) observe(op, key string, err error) {
	s.log.Warn("cache backend error",
		zap.String("op", op),
		zap.String("key", key),
		zap.Error(err))
	if isTerminal(err) {
		s.dropClient()
	}
}

func isTerminal(err error) bool {
	return errors.Is(err, io.EOF) ||
		errors.Is(err, net.ErrClosed) ||
		errors.Is(err, redis.ErrClosed) ||
		errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, syscall.ECONNREFUSED)
}

func (s *RedisStore) key(k string) string {
	return s.cfg.KeyPrefix + k
}

// Get returns the payload for key, or absent on miss and on any backend
// failure. Callers cannot distinguish the two.
func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, bool) {
	client := s.connect()
	if client == nil {
		return nil, false
	}

	payload, err := client.Get(ctx, s.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false
	}
	if err != nil {
		s.observe("GET", key, err)
		return nil, false
	}
	return payload, true
}

// SetWithTTL stores the payload best-effort and reports whether it was
// applied. Failures are logged, never propagated or retried.
func (s *RedisStore) SetWithTTL(ctx context.Context, key string, payload []byte, ttl time.Duration) bool {
	client := s.connect()
	if client == nil {
		return false
	}
	if ttl <= 0 {
		ttl = cache.DefaultTTL
	}

	if err := client.Set(ctx, s.key(key), payload, ttl).Err(); err != nil {
		s.observe("SET", key, err)
		return false
	}
	return true
}

// Delete removes the given keys and reports how many existed.
func (s *RedisStore) Delete(ctx context.Context, keys ...string) int {
	client := s.connect()
	if client == nil || len(keys) == 0 {
		return 0
	}

	prefixed := make([]string, len(keys))
	for i, k := range keys {
		prefixed[i] = s.key(k)
	}

	n, err := client.Del(ctx, prefixed...).Result()
	if err != nil {
		s.observe("DEL", keys[0], err)
		return 0
	}
	return int(n)
}

// DeleteByPattern resolves the glob to concrete keys via SCAN and batch
// deletes each page. An empty resolution is a no-op.
func (s *RedisStore) DeleteByPattern(ctx context.Context, pattern string) int {
	client := s.connect()
	if client == nil {
		return 0
	}

	var (
		cursor  uint64
		deleted int
	)
	for {
		keys, next, err := client.Scan(ctx, cursor, s.key(pattern), scanBatchSize).Result()
		if err != nil {
			s.observe("SCAN", pattern, err)
			return deleted
		}

		if len(keys) > 0 {
			// SCAN returns fully qualified keys; delete them as-is.
			n, err := client.Del(ctx, keys...).Result()
			if err != nil {
				s.observe("DEL", pattern, err)
				return deleted
			}
			deleted += int(n)
		}

		cursor = next
		if cursor == 0 {
			return deleted
		}
	}
}

// Ping reports backend connectivity for the health reporter.
func (s *RedisStore) Ping(ctx context.Context) error {
	client := s.connect()
	if client == nil {
		return ErrNotConfigured
	}
	if err := client.Ping(ctx).Err(); err != nil {
		if isTerminal(err) {
			s.dropClient()
		}
		return err
	}
	return nil
}

// Close releases the shared connection. Safe to call with no live handle.
func (s *RedisStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.client == nil {
		return nil
	}
	err := s.client.Close()
	s.client = nil
	return err
}
