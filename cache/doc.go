// Package cache defines the contracts and key schema for the board read-view
// cache.
//
// # Overview
//
// The package exports the pieces every other layer composes:
//
//   - Store: the backend contract (get/set-with-expiry/delete/delete-by-pattern/ping)
//   - Codec: wire encoding for cached aggregates
//   - BuildKey / Pattern: deterministic key construction per resource type
//   - Policy: the per-resource TTL table
//   - Config: backend connection settings
//
// Concrete Store implementations live in internal/cacheinfra; the cache-aside
// accessors that consume them live in the boardcache package.
//
// # Key Schema
//
// Every key is "{prefix}:{part1}:{part2}:...". Prefixes are the fixed
// Resource constants; parts are opaque identifiers supplied in a fixed order
// per resource type:
//
//	cache.BuildKey(cache.ResourceBoard, projectID, teamID) // "board:p1:t9"
//	cache.Pattern(cache.ResourceBoard, projectID)          // "board:p1:*"
//
// Because keys are pure functions of their inputs, pattern invalidation can
// target a whole family (every team's board in a project) without knowing
// which concrete keys were ever written.
//
// # Failure Semantics
//
// Store implementations absorb every backend failure. Get answers "absent"
// whether the key is missing, the payload is undecodable, or the backend is
// down; the accessor treats all three identically and falls through to the
// system of record. Nothing in this package surfaces a backend error to a
// read or write caller.
//
// # Wire Form
//
// JSONCodec is the default: JSON with a pruning pass that omits object fields
// holding null, "", empty arrays, or empty objects. Re-encoding a decoded
// value is lossy only for those pruned fields, which is an accepted
// optimization, not a defect. MsgpackCodec is available where a binary wire
// form is preferred.
package cache
