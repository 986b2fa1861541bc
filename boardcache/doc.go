// Package boardcache provides read-through caching for the dashboard's
// read models, with mutation-driven invalidation.
//
// # Overview
//
// The Accessor is the single read entry point: it checks the configured
// store, decodes on a hit, and calls the supplied loader on a miss. Fresh
// values are written back asynchronously so requests never wait on the
// backend. The Invalidator is the single write-side hook: each domain
// mutation maps to the exact keys and key families it stales, removed
// synchronously before the mutation's response returns.
//
// # Degradation
//
// The store is an optimization, never a dependency. Backend failures turn
// reads into plain loader calls and invalidations into no-ops whose entries
// expire on TTL. No error from the cache layer reaches a caller; loader
// errors pass through unchanged.
//
// # Fitness checks
//
// Two aggregate resources, the dashboard and the per-user project list, are
// validated on every hit. Snapshots that lost their nested detail to a
// partial aggregation are evicted eagerly instead of being served until
// expiry.
package boardcache
