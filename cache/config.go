package cache

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Config holds the cache backend connection settings, read once at process
// start. A Config with an empty Addr is valid and yields a permanently
// unavailable backend: every read falls through to the system of record and
// every write is a no-op, which the rest of the system must tolerate.
type Config struct {
	// Addr is the backend address as host:port. Empty disables the backend.
	Addr string

	// Password authenticates against the backend when it requires auth.
	Password string

	// DB selects the backend's logical database.
	DB int

	// KeyPrefix namespaces every key issued through this configuration so
	// multiple environments can share one backend.
	KeyPrefix string

	// DialTimeout bounds connection establishment.
	DialTimeout time.Duration

	// ReadTimeout and WriteTimeout bound individual operations; on timeout
	// the operation is reported as unavailable, never left half-applied.
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// DefaultConfig returns connection settings suitable for a local backend.
func DefaultConfig() Config {
	return Config{
		Addr:         "localhost:6379",
		DialTimeout:  2 * time.Second,
		ReadTimeout:  500 * time.Millisecond,
		WriteTimeout: 500 * time.Millisecond,
	}
}

// Validate checks the configuration values. An empty Addr passes: degraded
// operation is a supported mode, not a misconfiguration.
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.DB, validation.Min(0)),
		validation.Field(&c.DialTimeout, validation.Min(time.Duration(0))),
		validation.Field(&c.ReadTimeout, validation.Min(time.Duration(0))),
		validation.Field(&c.WriteTimeout, validation.Min(time.Duration(0))),
	)
}
